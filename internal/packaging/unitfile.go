package packaging

import (
	"bytes"
)

// TemplateBinDir is the bin directory baked into the unit-file template.
const TemplateBinDir = "/usr/local/bin"

// RewriteUnitFile replaces every literal occurrence of TemplateBinDir in
// template with bindir, so the unit file points at the installed executable.
func RewriteUnitFile(template []byte, bindir string) []byte {
	return bytes.ReplaceAll(template, []byte(TemplateBinDir), []byte(bindir))
}
