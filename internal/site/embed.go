package site

import (
	"embed"
	"io/fs"
)

//go:embed all:web
var webFS embed.FS

func staticFS() fs.FS {
	sub, err := fs.Sub(webFS, "web/static")
	if err != nil {
		return webFS
	}
	return sub
}

// hasWasm reports whether the browser controller was built into the assets.
func hasWasm(static fs.FS) bool {
	for _, name := range []string{"motion.wasm", "wasm_exec.js"} {
		if _, err := fs.Stat(static, name); err != nil {
			return false
		}
	}
	return true
}
