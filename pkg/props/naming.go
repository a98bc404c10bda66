package props

import (
	"strings"
	"unicode"
)

// BaseName turns a node's display name into the prop identifier to start
// from. Common naming patterns map to semantic names; anything else is
// normalized to a camelCase identifier. Pattern order matters: subtitle
// must hit the description rule before the title rule sees it.
func BaseName(display string) string {
	lower := strings.ToLower(display)
	switch {
	case containsAny(lower, "description", "subtitle", "body"):
		return "description"
	case strings.Contains(lower, "title"):
		return "title"
	case strings.Contains(lower, "price"):
		return "price"
	case containsAny(lower, "date", "time"):
		return "dateTime"
	}
	return Identifier(display)
}

// Identifier normalizes an arbitrary display name to a valid camelCase
// identifier. Empty or fully non-alphanumeric names become "value".
func Identifier(display string) string {
	var words []string
	var current strings.Builder
	flush := func() {
		if current.Len() > 0 {
			words = append(words, current.String())
			current.Reset()
		}
	}
	var prev rune
	for _, r := range display {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			// Split camelCase boundaries from the source name too.
			if unicode.IsUpper(r) && unicode.IsLower(prev) {
				flush()
			}
			current.WriteRune(r)
		default:
			flush()
		}
		prev = r
	}
	flush()

	if len(words) == 0 {
		return "value"
	}

	var b strings.Builder
	for i, w := range words {
		if i == 0 {
			b.WriteString(strings.ToLower(w))
			continue
		}
		b.WriteString(strings.ToUpper(w[:1]))
		b.WriteString(strings.ToLower(w[1:]))
	}
	name := b.String()
	if unicode.IsDigit(rune(name[0])) {
		name = "value" + strings.ToUpper(name[:1]) + name[1:]
	}
	return name
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
