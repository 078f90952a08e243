package changes

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Change is a single planned filesystem mutation. The concrete types are
// DirectoryCreation and FileCreation; consumers switch on them.
type Change interface {
	change()
}

// DirectoryCreation creates a single directory at Path.
type DirectoryCreation struct {
	Comment string // Display line, e.g. "Created directory demo/contracts"
	Name    string // Last path segment
	Path    string // Full target path
}

// FileCreation creates a file at Path holding Content.
type FileCreation struct {
	Comment string
	Name    string
	Content string
	Path    string
}

func (DirectoryCreation) change() {}
func (FileCreation) change()      {}

var greenStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))

// Green renders s in the terminal's green. Without a color-capable
// terminal the string comes back unchanged.
func Green(s string) string {
	return greenStyle.Render(s)
}

// NewDirectory builds a DirectoryCreation whose comment shows displayPath.
func NewDirectory(name, path, displayPath string) DirectoryCreation {
	return DirectoryCreation{
		Comment: fmt.Sprintf("%s %s", Green("Created directory"), displayPath),
		Name:    name,
		Path:    path,
	}
}

// NewFile builds a FileCreation whose comment shows displayPath.
func NewFile(name, path, displayPath, content string) FileCreation {
	return FileCreation{
		Comment: fmt.Sprintf("%s %s", Green("Created file"), displayPath),
		Name:    name,
		Content: content,
		Path:    path,
	}
}

// Comment returns the display comment of a change, or "" for nil.
func Comment(c Change) string {
	switch c := c.(type) {
	case DirectoryCreation:
		return c.Comment
	case FileCreation:
		return c.Comment
	default:
		return ""
	}
}

// Path returns the target path of a change, or "" for nil.
func Path(c Change) string {
	switch c := c.(type) {
	case DirectoryCreation:
		return c.Path
	case FileCreation:
		return c.Path
	default:
		return ""
	}
}
