// Package changes describes pending filesystem mutations and applies them.
// A change list is produced by a generator without touching the disk; the
// Executor turns it into directories and files in list order and reports
// each step as it goes.
package changes
