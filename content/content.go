// Package content embeds the stock dungeon definition. Hosts load it
// through the loader when no content directory is given on the
// command line.
package content

import (
	"embed"
	"io/fs"
)

//go:embed *.lua
var files embed.FS

// FS returns the embedded content files.
func FS() fs.FS { return files }
