// Package generate computes the change lists behind "clarinet new".
// Generators are pure: they format templates into changes.Change values
// and leave applying them to changes.Executor.
package generate
