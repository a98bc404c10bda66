package color

// DefaultThreshold is the Delta-E ceiling for a fuzzy match. Values around
// 5 are just-noticeably different to most observers.
const DefaultThreshold = 5.0

// Dict is an insertion-ordered hex→path dictionary. Iteration order is part
// of the matching contract: when two entries are equally close, the one
// inserted first wins.
type Dict struct {
	keys  []string
	paths map[string]string
	labs  map[string]Lab
}

// NewDict builds an empty dictionary.
func NewDict() *Dict {
	return &Dict{
		paths: make(map[string]string),
		labs:  make(map[string]Lab),
	}
}

// Add inserts a hex→path entry. The hex value is canonicalized; an entry
// for the same color keeps its original position and path.
func (d *Dict) Add(hex, path string) {
	key := Normalize(hex)
	if _, exists := d.paths[key]; exists {
		return
	}
	d.keys = append(d.keys, key)
	d.paths[key] = path
	if lab, err := HexToLab(key); err == nil {
		d.labs[key] = lab
	}
}

// Len returns the number of entries.
func (d *Dict) Len() int {
	if d == nil {
		return 0
	}
	return len(d.keys)
}

// Entry is one hex→path pair.
type Entry struct {
	Hex  string `json:"hex"`
	Path string `json:"path"`
}

// Entries returns all pairs in insertion order.
func (d *Dict) Entries() []Entry {
	out := make([]Entry, 0, len(d.keys))
	for _, k := range d.keys {
		out = append(out, Entry{Hex: k, Path: d.paths[k]})
	}
	return out
}

// FindClosest resolves a hex color against the dictionary. An exact
// (case-insensitive) match returns immediately without computing any
// distance. Otherwise the entry with the minimum Delta-E wins, provided
// that minimum is within the threshold; ties break to the entry inserted
// first. Returns ("", false) for an empty dictionary, a malformed color,
// or when nothing is close enough — callers must not conflate "no match"
// with a matched empty path.
func (d *Dict) FindClosest(hex string, threshold float64) (string, bool) {
	if d == nil || len(d.keys) == 0 {
		return "", false
	}

	key := Normalize(hex)
	if path, ok := d.paths[key]; ok {
		return path, true
	}

	target, err := HexToLab(hex)
	if err != nil {
		return "", false
	}

	bestPath := ""
	bestDist := 0.0
	found := false
	for _, k := range d.keys {
		lab, ok := d.labs[k]
		if !ok {
			continue
		}
		dist := Distance(target, lab)
		if !found || dist < bestDist {
			found = true
			bestDist = dist
			bestPath = d.paths[k]
		}
	}

	if !found || bestDist > threshold {
		return "", false
	}
	return bestPath, true
}
