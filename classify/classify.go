// Package classify maps file paths to type tags used by per-hook `types`
// matching. Tags are derived from file extensions and well-known file names.
package classify

import (
	"path/filepath"
	"strings"
)

// extensionTags maps lowercase file extensions to their type tags.
var extensionTags = map[string][]string{
	".go":       {"go", "text"},
	".py":       {"python", "text"},
	".pyi":      {"python", "text"},
	".js":       {"javascript", "text"},
	".mjs":      {"javascript", "text"},
	".ts":       {"typescript", "text"},
	".tsx":      {"typescript", "text"},
	".rb":       {"ruby", "text"},
	".rs":       {"rust", "text"},
	".c":        {"c", "text"},
	".h":        {"c", "header", "text"},
	".cc":       {"c++", "text"},
	".cpp":      {"c++", "text"},
	".hpp":      {"c++", "header", "text"},
	".java":     {"java", "text"},
	".sh":       {"shell", "text"},
	".bash":     {"shell", "text"},
	".zsh":      {"shell", "text"},
	".yaml":     {"yaml", "text"},
	".yml":      {"yaml", "text"},
	".json":     {"json", "text"},
	".toml":     {"toml", "text"},
	".md":       {"markdown", "text"},
	".rst":      {"rst", "text"},
	".txt":      {"text"},
	".sql":      {"sql", "text"},
	".proto":    {"proto", "text"},
	".html":     {"html", "text"},
	".css":      {"css", "text"},
	".xml":      {"xml", "text"},
	".mod":      {"go-mod", "text"},
	".sum":      {"go-sum", "text"},
	".tf":       {"terraform", "text"},
	".hcl":      {"hcl", "text"},
	".ini":      {"ini", "text"},
	".cfg":      {"ini", "text"},
	".png":      {"image", "binary"},
	".jpg":      {"image", "binary"},
	".jpeg":     {"image", "binary"},
	".gif":      {"image", "binary"},
	".pdf":      {"pdf", "binary"},
	".zip":      {"archive", "binary"},
	".tar":      {"archive", "binary"},
	".gz":       {"archive", "binary"},
	".so":       {"binary"},
	".a":        {"binary"},
	".exe":      {"binary"},
	".wasm":     {"binary"},
	".tflite":   {"binary"},
	".bin":      {"binary"},
	".gitignore": {"text"},
}

// nameTags maps well-known base names (without extension semantics) to tags.
var nameTags = map[string][]string{
	"Dockerfile": {"dockerfile", "text"},
	"Makefile":   {"makefile", "text"},
	"go.mod":     {"go-mod", "text"},
	"go.sum":     {"go-sum", "text"},
	"LICENSE":    {"text"},
	"README":     {"text"},
}

// Tags returns the type tags for a path. Unknown extensions yield {"text"},
// matching the common case of source trees; callers needing stricter
// behavior should match on explicit tags only.
func Tags(path string) []string {
	base := filepath.Base(path)
	if tags, ok := nameTags[base]; ok {
		return tags
	}

	ext := strings.ToLower(filepath.Ext(base))
	if tags, ok := extensionTags[ext]; ok {
		return tags
	}

	return []string{"text"}
}

// Matches reports whether the file at path carries every requested tag.
// An empty request matches everything.
func Matches(path string, requested []string) bool {
	if len(requested) == 0 {
		return true
	}

	have := make(map[string]bool)
	for _, tag := range Tags(path) {
		have[tag] = true
	}

	for _, want := range requested {
		if !have[want] {
			return false
		}
	}
	return true
}
