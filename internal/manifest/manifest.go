// Package manifest loads the TOML document describing which dictionary
// files feed the translation core, and in what order. It is deliberately
// independent of internal/config: the manifest describes dictionary data
// provenance, not application settings, so it is parsed directly with
// BurntSushi/toml rather than through viper.
package manifest

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Layer names one dictionary file and a human-readable label for it.
type Layer struct {
	Path  string `toml:"path"`
	Label string `toml:"label"`
}

// Manifest is an ordered list of dictionary layers, lowest priority
// first. Layers are not deduplicated by path: listing the same file twice
// loads it twice, and the later occurrence wins when the resulting
// documents are merged.
type Manifest struct {
	Layers []Layer `toml:"layer"`
}

// Load reads and parses the manifest file at path.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest %s: %w", path, err)
	}

	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", path, err)
	}
	return &m, nil
}

// ReadDocs reads every layer's dictionary file, in manifest order, relative
// to baseDir when a layer path is not already absolute. The returned slice
// is ready to pass to dictionary.Load: duplicate paths are read once per
// occurrence, never collapsed, so later layers keep the ability to
// override earlier ones on a shared key.
func (m *Manifest) ReadDocs(baseDir string) ([]string, error) {
	docs := make([]string, 0, len(m.Layers))
	for _, l := range m.Layers {
		p := l.Path
		if !filepath.IsAbs(p) {
			p = filepath.Join(baseDir, p)
		}
		data, err := os.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("reading dictionary layer %q (%s): %w", l.Label, p, err)
		}
		docs = append(docs, string(data))
	}
	return docs, nil
}
