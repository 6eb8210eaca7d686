// Package ident derives deterministic identifiers and filesystem-safe
// flattened names from relative paths. All functions are pure string
// transforms: the same path always yields the same name, independent of
// scan order or file content.
package ident

import (
	"crypto/md5"
	"encoding/hex"
	"regexp"
	"strings"
)

var (
	unsafeChars    = regexp.MustCompile(`[^A-Za-z0-9._-]`)
	underscoreRuns = regexp.MustCompile(`_{2,}`)
)

// Hash returns an 8-character lowercase hex identifier for a relative path.
// The path string itself is hashed, not file content, so the identifier is
// stable across runs for an unchanged tree.
func Hash(relPath string) string {
	sum := md5.Sum([]byte(relPath))
	return hex.EncodeToString(sum[:])[:8]
}

// FlatName builds the unique output filename for a relative path: separators
// become underscores, unsafe characters become underscores, underscore runs
// collapse, leading/trailing underscores are stripped, and the hash is
// prepended. Re-sanitizing its own output changes nothing.
func FlatName(relPath, hash string) string {
	name := strings.ReplaceAll(relPath, "/", "_")
	name = unsafeChars.ReplaceAllString(name, "_")
	name = underscoreRuns.ReplaceAllString(name, "_")
	name = strings.Trim(name, "_")
	return hash + "_" + name
}
