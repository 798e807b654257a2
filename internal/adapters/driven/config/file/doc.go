// Package file provides the TOML-backed configuration store.
//
// The file lives at ~/.docpatch/config.toml by default. Nested tables are
// exposed as dot-separated keys, so
//
//	[backup]
//	suffix = ".orig"
//
// is read with GetString("backup.suffix").
package file
