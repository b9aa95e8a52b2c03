// Package web holds the embedded browser UI.
package web

import (
	"embed"
	"io/fs"
)

//go:embed index.html
var index []byte

//go:embed static
var static embed.FS

// Index returns the UI page.
func Index() []byte {
	return index
}

// Static returns the UI assets rooted at the static directory.
func Static() fs.FS {
	sub, err := fs.Sub(static, "static")
	if err != nil {
		// fs.Sub only fails on an invalid path, which "static" is not.
		panic(err)
	}
	return sub
}
