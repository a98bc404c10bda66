package classify

import (
	"path/filepath"
	"strings"
)

// AssetConfig is the injectable asset-detection configuration consulted by
// the image predicate. It is threaded as a parameter so tests and callers
// can override the defaults; there is no process-wide state.
type AssetConfig struct {
	// ImageExtensions are file extensions that mark a node name as a bitmap
	// asset reference (lowercase, with leading dot).
	ImageExtensions []string
}

// DefaultAssetConfig returns the documented default detection heuristics.
func DefaultAssetConfig() AssetConfig {
	return AssetConfig{
		ImageExtensions: []string{".png", ".jpg", ".jpeg", ".webp", ".gif"},
	}
}

// matchesImageName reports whether a node name looks like an image asset
// reference under this configuration.
func (c AssetConfig) matchesImageName(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	if ext == "" {
		return false
	}
	for _, e := range c.ImageExtensions {
		if ext == e {
			return true
		}
	}
	return false
}
