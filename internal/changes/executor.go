package changes

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

const (
	dirMode  = 0o755
	fileMode = 0o644
)

// ErrExists is returned when a change targets a path that is already present.
var ErrExists = errors.New("already exists")

// Executor applies change lists to a filesystem.
type Executor struct {
	fs     afero.Fs
	out    io.Writer
	logger *zap.Logger
}

// NewExecutor returns an Executor writing to fsys. Each applied change
// prints its comment on out. A nil logger disables structured logging.
func NewExecutor(fsys afero.Fs, out io.Writer, logger *zap.Logger) *Executor {
	if logger == nil {
		logger = zap.NewNop()
	}
	if out == nil {
		out = io.Discard
	}
	return &Executor{fs: fsys, out: out, logger: logger}
}

// Apply performs the changes in order and stops at the first failure.
// Changes applied before the failure are left in place. The error is
// returned to the caller to report and only logged at debug level.
func (e *Executor) Apply(list []Change) error {
	for i, c := range list {
		var err error
		switch c := c.(type) {
		case DirectoryCreation:
			err = e.createDirectory(c)
		case FileCreation:
			err = e.createFile(c)
		default:
			return fmt.Errorf("change %d: unsupported change type %T", i, c)
		}
		if err != nil {
			e.logger.Debug("change failed",
				zap.Int("index", i),
				zap.String("path", Path(c)),
				zap.Error(err))
			return err
		}
		fmt.Fprintln(e.out, Comment(c))
	}
	e.logger.Debug("changes applied", zap.Int("count", len(list)))
	return nil
}

func (e *Executor) createDirectory(c DirectoryCreation) error {
	if err := e.fs.Mkdir(c.Path, dirMode); err != nil {
		if errors.Is(err, fs.ErrExist) {
			return fmt.Errorf("creating directory %s: %w", c.Path, ErrExists)
		}
		return fmt.Errorf("creating directory %s: %w", c.Path, err)
	}
	e.logger.Debug("directory created", zap.String("path", c.Path))
	return nil
}

func (e *Executor) createFile(c FileCreation) error {
	f, err := e.fs.OpenFile(c.Path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, fileMode)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return fmt.Errorf("creating file %s: %w", c.Path, ErrExists)
		}
		return fmt.Errorf("creating file %s: %w", c.Path, err)
	}

	if _, err := io.WriteString(f, c.Content); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", c.Path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", c.Path, err)
	}

	e.logger.Debug("file created",
		zap.String("path", c.Path),
		zap.Int("bytes", len(c.Content)))
	return nil
}
