package embeddata

import (
	"embed"
	"io/fs"
)

//go:embed help.md
var embeddedFS embed.FS

// FS returns the embedded filesystem with access to help.md.
func FS() fs.FS {
	return embeddedFS
}

// ReadHelpMD returns the contents of help.md.
func ReadHelpMD() ([]byte, error) {
	return embeddedFS.ReadFile("help.md")
}
