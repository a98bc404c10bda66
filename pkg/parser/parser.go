// Package parser wraps tree-sitter parsers for the TypeScript and
// JavaScript grammars used when reading project theme sources and when
// validating generated component code.
package parser

import (
	"fmt"
	"log/slog"
	"sync"

	ts "github.com/tree-sitter/go-tree-sitter"
	ts_javascript "github.com/tree-sitter/tree-sitter-javascript/bindings/go"
	ts_typescript "github.com/tree-sitter/tree-sitter-typescript/bindings/go"
)

type parserKey struct {
	lang  Language
	isTSX bool
}

// Manager lazily creates one parser per grammar variant and serializes
// access to each. Parsing volume here is a handful of theme files and one
// generated source per run, so a single parser per grammar is enough.
//
// Callers own returned trees and must call tree.Close().
type Manager struct {
	mu      sync.Mutex
	parsers map[parserKey]*ts.Parser
	logger  *slog.Logger
}

// NewManager creates a parser manager. Close() must be called to release
// grammar resources.
func NewManager(logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{
		parsers: make(map[parserKey]*ts.Parser),
		logger:  logger,
	}
}

// Parse parses source with the given grammar. isTSX selects the TSX
// variant and is ignored for JavaScript. Partial trees with errors are
// still returned; syntax problems surface through the tree itself.
func (m *Manager) Parse(source []byte, lang Language, isTSX bool) (*ts.Tree, error) {
	if lang == LanguageUnknown {
		return nil, fmt.Errorf("parser: unknown language")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	key := parserKey{lang: lang, isTSX: isTSX}
	p, ok := m.parsers[key]
	if !ok {
		p = ts.NewParser()
		if err := p.SetLanguage(grammar(lang, isTSX)); err != nil {
			p.Close()
			return nil, fmt.Errorf("parser: set %s grammar: %w", lang, err)
		}
		m.parsers[key] = p
		m.logger.Debug("initialized parser", "language", lang.String(), "tsx", isTSX)
	}

	tree := p.Parse(source, nil)
	if tree == nil {
		return nil, fmt.Errorf("parser: %s parse returned no tree", lang)
	}
	return tree, nil
}

// ParseFile parses source, detecting the grammar from the file path.
func (m *Manager) ParseFile(source []byte, filePath string) (*ts.Tree, error) {
	lang := DetectLanguage(filePath)
	if lang == LanguageUnknown {
		return nil, fmt.Errorf("parser: unsupported file extension: %s", filePath)
	}
	return m.Parse(source, lang, IsTSXFile(filePath))
}

// Close releases all parsers. The manager cannot be used afterwards.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range m.parsers {
		p.Close()
	}
	m.parsers = make(map[parserKey]*ts.Parser)
}

func grammar(lang Language, isTSX bool) *ts.Language {
	switch lang {
	case LanguageTypeScript:
		if isTSX {
			return ts.NewLanguage(ts_typescript.LanguageTSX())
		}
		return ts.NewLanguage(ts_typescript.LanguageTypescript())
	default:
		return ts.NewLanguage(ts_javascript.Language())
	}
}
