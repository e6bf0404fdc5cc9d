// Package embedded carries the sample plan catalogs compiled into the binary.
package embedded

import (
	"embed"
	"io/fs"
)

// FS embeds the sample catalogs under catalogs/.
//
//go:embed catalogs/*.csv
var FS embed.FS

// Catalogs returns the catalog directory as its own filesystem.
func Catalogs() fs.FS {
	sub, err := fs.Sub(FS, "catalogs")
	if err != nil {
		panic(err) // the directory is embedded at build time
	}
	return sub
}
