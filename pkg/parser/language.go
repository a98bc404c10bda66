package parser

import (
	"path/filepath"
	"strings"
)

// Language identifies a supported grammar.
type Language int

const (
	// LanguageTypeScript covers .ts and .tsx sources (TSX via IsTSXFile).
	LanguageTypeScript Language = iota
	// LanguageJavaScript covers .js, .jsx and module variants.
	LanguageJavaScript
	// LanguageUnknown is anything else.
	LanguageUnknown
)

// String returns the language name.
func (l Language) String() string {
	switch l {
	case LanguageTypeScript:
		return "typescript"
	case LanguageJavaScript:
		return "javascript"
	default:
		return "unknown"
	}
}

// DetectLanguage infers the grammar from a file path extension.
func DetectLanguage(filePath string) Language {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".ts", ".tsx", ".mts", ".cts":
		return LanguageTypeScript
	case ".js", ".jsx", ".mjs", ".cjs":
		return LanguageJavaScript
	default:
		return LanguageUnknown
	}
}

// IsTSXFile reports whether the path needs the TSX grammar variant.
func IsTSXFile(filePath string) bool {
	return strings.ToLower(filepath.Ext(filePath)) == ".tsx"
}
