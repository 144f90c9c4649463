// Package langdetect decides whether a file is lintable source text.
// It uses go-enry for binary detection and language identification, so the
// runner can skip generated artifacts, images, and vendored minified code
// without relying on extension lists alone.
package langdetect

import (
	"path/filepath"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// LangUnknown is returned when no language can be determined.
const LangUnknown = "unknown"

// DefaultExtensions is the extension set linted when the configuration does
// not provide one. The scanner understands C-like surface syntax, so the
// defaults cover the common curly-brace languages.
var DefaultExtensions = []string{
	".c", ".cc", ".cpp", ".cs", ".go", ".h", ".hpp",
	".java", ".js", ".jsx", ".kt", ".rs", ".scala",
	".swift", ".ts", ".tsx",
}

// IsBinary reports whether content looks like binary data.
func IsBinary(content []byte) bool {
	return enry.IsBinary(content)
}

// Detect returns a lowercase language name for the file, using the filename
// first and content heuristics as a fallback. Returns LangUnknown when
// nothing matches.
func Detect(path string, content []byte) string {
	lang := enry.GetLanguage(filepath.Base(path), content)
	if lang == "" {
		return LangUnknown
	}
	return strings.ToLower(lang)
}

// ShouldLint reports whether a file should be linted: its extension must be
// in the allowed set and its content must not be binary.
//
// Generated and vendored files are excluded; their spacing is owned by the
// tool that wrote them.
func ShouldLint(path string, content []byte, extensions []string) bool {
	if !HasAllowedExtension(path, extensions) {
		return false
	}
	if IsBinary(content) {
		return false
	}
	if enry.IsGenerated(path, content) || enry.IsVendor(path) {
		return false
	}
	return true
}

// HasAllowedExtension reports whether path carries one of the allowed
// extensions. An empty slice means DefaultExtensions.
func HasAllowedExtension(path string, extensions []string) bool {
	if len(extensions) == 0 {
		extensions = DefaultExtensions
	}

	ext := strings.ToLower(filepath.Ext(path))
	if ext == "" {
		return false
	}

	for _, allowed := range extensions {
		if ext == strings.ToLower(allowed) {
			return true
		}
	}
	return false
}
