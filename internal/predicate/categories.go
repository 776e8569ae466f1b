package predicate

import (
	"path/filepath"
	"strings"
)

// categoryTable is the fixed extension-to-category mapping authoritative
// per the external-interfaces category table. Extensions are lowercase,
// without a leading dot.
var categoryTable = map[string]string{
	"rs": "source", "js": "source", "jsx": "source", "ts": "source",
	"tsx": "source", "py": "source", "go": "source", "c": "source",
	"h": "source", "cpp": "source", "hpp": "source", "cc": "source",
	"cs": "source", "java": "source", "kt": "source", "kts": "source",
	"swift": "source", "rb": "source", "php": "source", "lua": "source",
	"bash": "source", "zsh": "source", "fish": "source", "ps1": "source",

	"toml": "config", "yaml": "config", "yml": "config", "json": "config",
	"ini": "config", "env": "config", "conf": "config", "cfg": "config",
	"properties": "config",

	"md": "docs", "txt": "docs", "rst": "docs", "adoc": "docs",
	"pdf": "docs", "doc": "docs", "docx": "docs",

	"jpg": "media", "jpeg": "media", "png": "media", "gif": "media",
	"webp": "media", "bmp": "media", "svg": "media", "mp3": "media",
	"wav": "media", "flac": "media", "ogg": "media", "mp4": "media",
	"mov": "media", "mkv": "media", "avi": "media",

	"csv": "data", "tsv": "data", "xml": "data", "sqlite": "data",
	"db": "data", "parquet": "data", "arrow": "data",

	"zip": "archive", "tar": "archive", "gz": "archive", "bz2": "archive",
	"xz": "archive", "7z": "archive", "rar": "archive",

	// "sh" appears in both source and executable in the category table;
	// this map holds one category per extension, so "sh" is listed only
	// here and maps to executable.
	"exe": "executable", "app": "executable", "bat": "executable",
	"cmd": "executable", "sh": "executable",
}

// CategoryOf maps name's lowercase extension to its category. ok is false
// for no extension or an extension absent from the table.
func CategoryOf(name string) (category string, ok bool) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
	if ext == "" {
		return "", false
	}
	cat, found := categoryTable[ext]
	return cat, found
}
