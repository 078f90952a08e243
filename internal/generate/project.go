package generate

import (
	"fmt"
	"strings"

	"github.com/clarinet-labs/clarinet/internal/changes"
)

// OptionalDir names an auxiliary project directory that is only created
// when asked for.
type OptionalDir string

const (
	DirClients   OptionalDir = "clients"
	DirNotebooks OptionalDir = "notebooks"
	DirScripts   OptionalDir = "scripts"
)

// optionalDirOrder is the order in which enabled optional dirs are emitted.
var optionalDirOrder = []OptionalDir{DirClients, DirNotebooks, DirScripts}

// ParseOptionalDir maps a user supplied name to an OptionalDir.
func ParseOptionalDir(s string) (OptionalDir, error) {
	name := OptionalDir(strings.ToLower(strings.TrimSpace(s)))
	for _, d := range optionalDirOrder {
		if d == name {
			return d, nil
		}
	}
	return "", fmt.Errorf("unknown optional directory %q (valid: clients, notebooks, scripts)", s)
}

// Option configures a ProjectGenerator.
type Option func(*ProjectGenerator)

// WithOptionalDirs enables the given auxiliary directories.
func WithOptionalDirs(dirs ...OptionalDir) Option {
	return func(g *ProjectGenerator) {
		for _, d := range dirs {
			g.optional[d] = true
		}
	}
}

// ProjectGenerator computes the changes that materialize a new project.
// It performs no I/O. A generator is meant to be run once.
type ProjectGenerator struct {
	projectPath      string
	projectName      string
	telemetryEnabled bool
	optional         map[OptionalDir]bool

	changes []changes.Change
}

// NewProject returns a generator for a project named projectName inside
// projectPath. Inputs are not validated.
func NewProject(projectPath, projectName string, telemetryEnabled bool, opts ...Option) *ProjectGenerator {
	g := &ProjectGenerator{
		projectPath:      projectPath,
		projectName:      projectName,
		telemetryEnabled: telemetryEnabled,
		optional:         make(map[OptionalDir]bool),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Run returns the ordered change list. Directories always precede the
// files placed inside them.
func (g *ProjectGenerator) Run() ([]changes.Change, error) {
	g.changes = nil

	g.createRootDirectory()
	g.createSubdirectory("contracts")
	g.createSubdirectory("settings")
	g.createSubdirectory("tests")
	for _, d := range optionalDirOrder {
		if g.optional[d] {
			g.createSubdirectory(string(d))
		}
	}
	g.createClarinetTOML()
	g.createFile("settings", "Testnet.toml", testnetTOML)
	g.createFile("settings", "Mainnet.toml", mainnetTOML)
	g.createFile("settings", "Devnet.toml", devnetTOML)
	g.createSubdirectory(".vscode")
	g.createFile(".vscode", "settings.json", vscodeSettingsJSON)
	g.createFile(".vscode", "tasks.json", vscodeTasksJSON)
	g.createFile("", ".gitignore", gitignore)

	out := make([]changes.Change, len(g.changes))
	copy(out, g.changes)
	return out, nil
}

func (g *ProjectGenerator) rootPath() string {
	return g.projectPath + "/" + g.projectName
}

func (g *ProjectGenerator) createRootDirectory() {
	g.changes = append(g.changes,
		changes.NewDirectory(g.projectName, g.rootPath(), g.projectName))
}

func (g *ProjectGenerator) createSubdirectory(name string) {
	g.changes = append(g.changes, changes.NewDirectory(
		name,
		g.rootPath()+"/"+name,
		g.projectName+"/"+name,
	))
}

func (g *ProjectGenerator) createClarinetTOML() {
	content := fmt.Sprintf(clarinetTOMLTemplate, g.projectName, g.telemetryEnabled)
	g.createFile("", "Clarinet.toml", content)
}

// createFile appends a file creation. dir is relative to the project root;
// empty means the root itself.
func (g *ProjectGenerator) createFile(dir, name, content string) {
	rel := name
	if dir != "" {
		rel = dir + "/" + name
	}
	g.changes = append(g.changes, changes.NewFile(
		name,
		g.rootPath()+"/"+rel,
		g.projectName+"/"+rel,
		content,
	))
}
