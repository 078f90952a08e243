//go:build integration

package integration_test

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/clarinet-labs/clarinet/internal/changes"
	"github.com/clarinet-labs/clarinet/internal/generate"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// newProject plans and applies a project on the real filesystem inside a
// temp directory. It returns the parent directory and the progress output.
func newProject(t *testing.T, name string, telemetry bool, opts ...generate.Option) (string, string) {
	t.Helper()

	parent := t.TempDir()
	list, err := generate.NewProject(parent, name, telemetry, opts...).Run()
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if err := generate.Verify(list); err != nil {
		t.Fatalf("Verify() error: %v", err)
	}

	var out bytes.Buffer
	if err := changes.NewExecutor(afero.NewOsFs(), &out, zap.NewNop()).Apply(list); err != nil {
		t.Fatalf("Apply() error: %v", err)
	}
	return parent, out.String()
}

// assertFileExists fails the test if the file does not exist.
func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file to exist: %s (error: %v)", path, err)
	}
}

// assertFileNotExists fails the test if the file exists.
func assertFileNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err == nil {
		t.Errorf("expected file NOT to exist: %s", path)
	}
}

// assertDirExists fails the test if the directory does not exist.
func assertDirExists(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Errorf("expected directory to exist: %s (error: %v)", path, err)
		return
	}
	if !info.IsDir() {
		t.Errorf("expected %s to be a directory, but it is a file", path)
	}
}

// assertFileContains fails if the file doesn't exist or doesn't contain substr.
func assertFileContains(t *testing.T, path, substr string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Errorf("reading %s: %v", path, err)
		return
	}
	if !strings.Contains(string(data), substr) {
		t.Errorf("file %s does not contain %q.\nContents:\n%s", path, substr, string(data))
	}
}
