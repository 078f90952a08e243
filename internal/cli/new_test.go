package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

func TestRunNewCreatesProject(t *testing.T) {
	fs := afero.NewMemMapFs()
	var out bytes.Buffer

	opts := newOptions{path: "/work", name: "counter", telemetry: true, with: []string{"scripts"}}
	if err := runNew(opts, fs, &out, zap.NewNop()); err != nil {
		t.Fatalf("runNew() error: %v", err)
	}

	for _, p := range []string{
		"/work/counter/contracts",
		"/work/counter/tests",
		"/work/counter/scripts",
		"/work/counter/settings/Devnet.toml",
		"/work/counter/.vscode/tasks.json",
		"/work/counter/.gitignore",
	} {
		if ok, _ := afero.Exists(fs, p); !ok {
			t.Errorf("%s was not created", p)
		}
	}

	manifest, err := afero.ReadFile(fs, "/work/counter/Clarinet.toml")
	if err != nil {
		t.Fatalf("reading Clarinet.toml: %v", err)
	}
	if !strings.Contains(string(manifest), "telemetry = true") {
		t.Errorf("Clarinet.toml does not enable telemetry:\n%s", manifest)
	}

	output := out.String()
	if !strings.Contains(output, "counter/settings/Testnet.toml") {
		t.Errorf("output missing Testnet.toml progress line:\n%s", output)
	}
	if !strings.Contains(output, "Next steps:") {
		t.Errorf("output missing next steps:\n%s", output)
	}
}

func TestRunNewDryRunWritesNothing(t *testing.T) {
	fs := afero.NewMemMapFs()
	var out bytes.Buffer

	opts := newOptions{path: "/work", name: "counter", dryRun: true}
	if err := runNew(opts, fs, &out, zap.NewNop()); err != nil {
		t.Fatalf("runNew() error: %v", err)
	}

	if ok, _ := afero.Exists(fs, "/work/counter"); ok {
		t.Error("dry run created the project directory")
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 13 {
		t.Errorf("got %d output lines, want header plus 12 changes:\n%s", len(lines), out.String())
	}
}

func TestRunNewExistingProject(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := fs.MkdirAll("/work/counter", 0o755); err != nil {
		t.Fatal(err)
	}

	err := runNew(newOptions{path: "/work", name: "counter"}, fs, &bytes.Buffer{}, zap.NewNop())
	if err == nil {
		t.Fatal("expected error for existing project directory")
	}
	if !strings.Contains(err.Error(), "already exists") {
		t.Errorf("error = %v, want mention of already exists", err)
	}
}

func TestRunNewRejectsBadInput(t *testing.T) {
	tests := []struct {
		name    string
		opts    newOptions
		wantMsg string
	}{
		{"empty name", newOptions{path: "/work", name: ""}, "invalid project name"},
		{"path separator", newOptions{path: "/work", name: "a/b"}, "invalid project name"},
		{"leading dash", newOptions{path: "/work", name: "-x"}, "invalid project name"},
		{"unknown optional dir", newOptions{path: "/work", name: "ok", with: []string{"docs"}}, "unknown optional directory"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			err := runNew(tt.opts, fs, &bytes.Buffer{}, zap.NewNop())
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error = %v, want %q", err, tt.wantMsg)
			}
			if ok, _ := afero.Exists(fs, "/work"); ok {
				t.Error("rejected input still wrote to the filesystem")
			}
		})
	}
}

func TestValidateName(t *testing.T) {
	tests := []struct {
		name  string
		valid bool
	}{
		{"counter", true},
		{"My_Project-2", true},
		{"9lives", true},
		{"", false},
		{"_hidden", false},
		{"has space", false},
		{"../escape", false},
	}
	for _, tt := range tests {
		err := validateName(tt.name)
		if (err == nil) != tt.valid {
			t.Errorf("validateName(%q) error = %v, want valid=%v", tt.name, err, tt.valid)
		}
	}
}

func TestResolveTelemetry(t *testing.T) {
	tests := []struct {
		name string
		args []string
		def  bool
		want bool
	}{
		{"no flags keeps config default on", nil, true, true},
		{"no flags keeps config default off", nil, false, false},
		{"telemetry", []string{"--telemetry"}, false, true},
		{"telemetry=false", []string{"--telemetry=false"}, true, false},
		{"no-telemetry", []string{"--no-telemetry"}, true, false},
		{"no-telemetry=false keeps default off", []string{"--no-telemetry=false"}, false, false},
		{"no-telemetry=false keeps default on", []string{"--no-telemetry=false"}, true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flags := pflag.NewFlagSet("new", pflag.ContinueOnError)
			flags.Bool("telemetry", false, "")
			flags.Bool("no-telemetry", false, "")
			if err := flags.Parse(tt.args); err != nil {
				t.Fatalf("parse %v: %v", tt.args, err)
			}
			if got := resolveTelemetry(flags, tt.def); got != tt.want {
				t.Errorf("resolveTelemetry(%v, %v) = %v, want %v", tt.args, tt.def, got, tt.want)
			}
		})
	}
}
