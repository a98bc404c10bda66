package ir

import "fmt"

// TokenCategory names one of the five independent token tables.
type TokenCategory string

const (
	CategoryColor      TokenCategory = "color"
	CategorySpacing    TokenCategory = "spacing"
	CategoryRadius     TokenCategory = "radius"
	CategoryTypography TokenCategory = "typography"
	CategoryShadow     TokenCategory = "shadow"
)

// ShadowKey is the structured identity of a shadow: offset, blur and
// spread. It serializes to the canonical "x,y,blur,spread" form only at
// the extractor/matcher boundary.
type ShadowKey struct {
	OffsetX float64 `json:"offsetX"`
	OffsetY float64 `json:"offsetY"`
	Blur    float64 `json:"blur"`
	Spread  float64 `json:"spread"`
}

// Canonical returns the composite string used for exact shadow lookup.
func (k ShadowKey) Canonical() string {
	return FormatNumber(k.OffsetX) + "," + FormatNumber(k.OffsetY) + "," +
		FormatNumber(k.Blur) + "," + FormatNumber(k.Spread)
}

// ShadowValue is a shadow token: its structured key plus the shadow color.
type ShadowValue struct {
	Key ShadowKey `json:"key"`
	Hex string    `json:"hex"`
}

// TokenTable is an insertion-ordered table of extracted token values.
// Keys are generated "<prefix>_<n>" in first-seen order and carry no
// meaning beyond that order. Identical values (by canonical form) reuse
// the key they were first registered under.
type TokenTable[T any] struct {
	prefix string
	canon  func(T) string

	keys   []string
	values map[string]T
	byVal  map[string]string
}

// NewTokenTable builds an empty table generating keys with the given
// prefix and deduplicating values by the canon function.
func NewTokenTable[T any](prefix string, canon func(T) string) *TokenTable[T] {
	return &TokenTable[T]{
		prefix: prefix,
		canon:  canon,
		values: make(map[string]T),
		byVal:  make(map[string]string),
	}
}

// Add registers a value and returns its key. A value already present
// returns the key generated when it was first seen.
func (t *TokenTable[T]) Add(v T) string {
	c := t.canon(v)
	if key, ok := t.byVal[c]; ok {
		return key
	}
	key := fmt.Sprintf("%s_%d", t.prefix, len(t.keys))
	t.keys = append(t.keys, key)
	t.values[key] = v
	t.byVal[c] = key
	return key
}

// Get returns the value stored under key.
func (t *TokenTable[T]) Get(key string) (T, bool) {
	v, ok := t.values[key]
	return v, ok
}

// Keys returns the keys in extraction order.
func (t *TokenTable[T]) Keys() []string {
	return t.keys
}

// Values returns a key→value snapshot of the table.
func (t *TokenTable[T]) Values() map[string]T {
	out := make(map[string]T, len(t.keys))
	for k, v := range t.values {
		out[k] = v
	}
	return out
}

// Len returns the number of distinct values in the table.
func (t *TokenTable[T]) Len() int {
	return len(t.keys)
}

// DesignTokens is the running collection of values extracted during style
// extraction: five independent, insertion-ordered tables.
type DesignTokens struct {
	Colors     *TokenTable[string]
	Spacing    *TokenTable[float64]
	Radii      *TokenTable[float64]
	Typography *TokenTable[Typography]
	Shadows    *TokenTable[ShadowValue]
}

// NewDesignTokens builds an empty token collection.
func NewDesignTokens() *DesignTokens {
	return &DesignTokens{
		Colors:     NewTokenTable("color", func(hex string) string { return hex }),
		Spacing:    NewTokenTable("spacing", FormatNumber),
		Radii:      NewTokenTable("radius", FormatNumber),
		Typography: NewTokenTable("typography", Typography.Key),
		Shadows: NewTokenTable("shadow", func(s ShadowValue) string {
			return s.Key.Canonical() + "/" + s.Hex
		}),
	}
}

// TokenMappings is the resolution result per extracted token key: either a
// dotted theme path or the stringified original value as a fallback.
// Consumed only by the code generator.
type TokenMappings struct {
	Colors     map[string]string `json:"colors"`
	Spacing    map[string]string `json:"spacing"`
	Radii      map[string]string `json:"radii"`
	Typography map[string]string `json:"typography"`
	Shadows    map[string]string `json:"shadows"`
	// Resolved records, per category, which keys resolved to a theme path
	// (true) as opposed to falling back to the literal (false).
	Resolved map[TokenCategory]map[string]bool `json:"resolved,omitempty"`
}

// NewTokenMappings builds an empty mapping set.
func NewTokenMappings() *TokenMappings {
	return &TokenMappings{
		Colors:     make(map[string]string),
		Spacing:    make(map[string]string),
		Radii:      make(map[string]string),
		Typography: make(map[string]string),
		Shadows:    make(map[string]string),
		Resolved: map[TokenCategory]map[string]bool{
			CategoryColor:      {},
			CategorySpacing:    {},
			CategoryRadius:     {},
			CategoryTypography: {},
			CategoryShadow:     {},
		},
	}
}

// Lookup returns the mapping for a token reference and whether it resolved
// to a theme path.
func (m *TokenMappings) Lookup(ref TokenRef) (value string, resolved, ok bool) {
	var table map[string]string
	switch ref.Category {
	case CategoryColor:
		table = m.Colors
	case CategorySpacing:
		table = m.Spacing
	case CategoryRadius:
		table = m.Radii
	case CategoryTypography:
		table = m.Typography
	case CategoryShadow:
		table = m.Shadows
	default:
		return "", false, false
	}
	value, ok = table[ref.Key]
	if !ok {
		return "", false, false
	}
	return value, m.Resolved[ref.Category][ref.Key], true
}
