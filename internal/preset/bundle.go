package preset

import (
	"embed"
	"io/fs"
)

//go:embed profiles/*.tcl
var bundle embed.FS

// Bundled returns the profile documents shipped with the binary.
func Bundled() fs.FS {
	sub, err := fs.Sub(bundle, "profiles")
	if err != nil {
		// fs.Sub only fails on an invalid path.
		panic(err)
	}
	return sub
}
