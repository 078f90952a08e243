//go:build integration

package integration_test

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/clarinet-labs/clarinet/internal/changes"
	"github.com/clarinet-labs/clarinet/internal/generate"
	"github.com/clarinet-labs/clarinet/internal/manifest"
	"github.com/spf13/afero"
)

func TestNewProjectOnDisk(t *testing.T) {
	parent, out := newProject(t, "counter", false)
	root := filepath.Join(parent, "counter")

	for _, dir := range []string{"", "contracts", "settings", "tests", ".vscode"} {
		assertDirExists(t, filepath.Join(root, dir))
	}
	for _, dir := range []string{"clients", "notebooks", "scripts"} {
		assertFileNotExists(t, filepath.Join(root, dir))
	}
	assertFileExists(t, filepath.Join(root, ".gitignore"))
	assertFileContains(t, filepath.Join(root, "Clarinet.toml"), `name = "counter"`)
	assertFileContains(t, filepath.Join(root, "settings", "Testnet.toml"), "stacks-node-api.testnet.stacks.co")

	if got := strings.Count(out, "\n"); got != 12 {
		t.Errorf("got %d progress lines, want 12:\n%s", got, out)
	}
}

func TestNewProjectFilesDecode(t *testing.T) {
	parent, _ := newProject(t, "counter", true)
	root := filepath.Join(parent, "counter")

	m, err := manifest.ParseProjectFile(filepath.Join(root, "Clarinet.toml"))
	if err != nil {
		t.Fatalf("ParseProjectFile() error: %v", err)
	}
	if m.Project.Name != "counter" || !m.Project.Telemetry {
		t.Errorf("project = %+v, want counter with telemetry", m.Project)
	}

	networks := map[string]string{
		"Devnet.toml":  manifest.NetworkDevnet,
		"Testnet.toml": manifest.NetworkTestnet,
		"Mainnet.toml": manifest.NetworkMainnet,
	}
	for file, want := range networks {
		s, err := manifest.ParseNetworkFile(filepath.Join(root, "settings", file))
		if err != nil {
			t.Errorf("ParseNetworkFile(%s) error: %v", file, err)
			continue
		}
		if s.Network.Name != want {
			t.Errorf("%s network = %q, want %q", file, s.Network.Name, want)
		}
	}

	schemas := map[string]string{
		"settings.json": manifest.SchemaVSCodeSettings,
		"tasks.json":    manifest.SchemaVSCodeTasks,
	}
	for file, schema := range schemas {
		result, err := manifest.ValidateJSONFile(schema, filepath.Join(root, ".vscode", file))
		if err != nil {
			t.Errorf("ValidateJSONFile(%s) error: %v", file, err)
			continue
		}
		if !result.Valid {
			t.Errorf("%s invalid: %v", file, result.Issues)
		}
	}
}

func TestNewProjectWithOptionalDirs(t *testing.T) {
	parent, _ := newProject(t, "nft", false,
		generate.WithOptionalDirs(generate.DirClients, generate.DirScripts))
	root := filepath.Join(parent, "nft")

	assertDirExists(t, filepath.Join(root, "clients"))
	assertDirExists(t, filepath.Join(root, "scripts"))
	assertFileNotExists(t, filepath.Join(root, "notebooks"))
}

func TestNewProjectTwiceFails(t *testing.T) {
	parent, _ := newProject(t, "counter", false)

	list, err := generate.NewProject(parent, "counter", false).Run()
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	err = changes.NewExecutor(afero.NewOsFs(), nil, nil).Apply(list)
	if !errors.Is(err, changes.ErrExists) {
		t.Fatalf("second Apply() error = %v, want ErrExists", err)
	}
	assertFileContains(t, filepath.Join(parent, "counter", "Clarinet.toml"), "telemetry = false")
}
