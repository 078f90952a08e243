package generate

import (
	"fmt"
	"strings"

	"github.com/clarinet-labs/clarinet/internal/changes"
	"github.com/clarinet-labs/clarinet/internal/manifest"
	"go.uber.org/multierr"
)

// Verify decodes every configuration file in list and reports all files
// that downstream tooling would fail to read. Unknown file names are
// skipped.
func Verify(list []changes.Change) error {
	var errs error
	for _, c := range list {
		f, ok := c.(changes.FileCreation)
		if !ok {
			continue
		}
		if err := verifyFile(f); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", f.Path, err))
		}
	}
	return errs
}

func verifyFile(f changes.FileCreation) error {
	data := []byte(f.Content)
	switch {
	case f.Name == "Clarinet.toml":
		_, err := manifest.ParseProject(data)
		return err
	case strings.HasSuffix(f.Path, "/settings/"+f.Name) && strings.HasSuffix(f.Name, ".toml"):
		_, err := manifest.ParseNetwork(data)
		return err
	case strings.HasSuffix(f.Path, "/.vscode/settings.json"):
		return validateJSON(manifest.SchemaVSCodeSettings, data)
	case strings.HasSuffix(f.Path, "/.vscode/tasks.json"):
		return validateJSON(manifest.SchemaVSCodeTasks, data)
	default:
		return nil
	}
}

func validateJSON(schema string, data []byte) error {
	result, err := manifest.ValidateJSON(schema, data)
	if err != nil {
		return err
	}
	if result.Valid {
		return nil
	}
	msgs := make([]string, 0, len(result.Issues))
	for _, issue := range result.Issues {
		msgs = append(msgs, issue.String())
	}
	return fmt.Errorf("schema %s: %s", schema, strings.Join(msgs, "; "))
}
