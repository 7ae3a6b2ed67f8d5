package dataset

import (
	"fmt"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// Manifest is the plexus.toml dataset descriptor.
type Manifest struct {
	Dataset Files   `toml:"dataset"`
	Options Options `toml:"options"`
}

// Files names the input files of a dataset. Relative paths are
// resolved against the manifest's directory on load.
type Files struct {
	Proteins     string `toml:"proteins"`
	Compartments string `toml:"compartments"`
	Interactions string `toml:"interactions"`
	Sequences    string `toml:"sequences"` // optional, for motif search
}

// Options carries per-dataset analysis settings.
type Options struct {
	// MaxPairs caps the pair universe; zero means no cap.
	MaxPairs int `toml:"max_pairs"`

	// Strict escalates tolerated data anomalies (duplicate edges,
	// self-interactions) to validation failures.
	Strict bool `toml:"strict"`
}

// LoadManifest reads plexus.toml from a dataset directory and resolves
// its file paths.
func LoadManifest(dir string) (Manifest, error) {
	path := filepath.Join(dir, "plexus.toml")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Manifest{}, fmt.Errorf("%w: %s", ErrNoManifest, dir)
		}
		return Manifest{}, fmt.Errorf("reading plexus.toml: %w", err)
	}

	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return Manifest{}, fmt.Errorf("parsing plexus.toml: %w", err)
	}

	for _, f := range []*string{
		&m.Dataset.Proteins,
		&m.Dataset.Compartments,
		&m.Dataset.Interactions,
		&m.Dataset.Sequences,
	} {
		if *f != "" && !filepath.IsAbs(*f) {
			*f = filepath.Join(dir, *f)
		}
	}
	return m, nil
}
