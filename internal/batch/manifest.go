package batch

import (
	"encoding/json"
	"fmt"
	"os"
)

// ManifestEntry describes one imported object in the batch manifest.
type ManifestEntry struct {
	Name       string `json:"name"`
	Source     string `json:"source"`
	FrameIndex int    `json:"frame_index"`
}

// Manifest is the on-disk report of a batch import.
type Manifest struct {
	Objects []ManifestEntry `json:"objects"`
	Skipped []SkipRecord    `json:"skipped,omitempty"`
}

// WriteManifest writes a JSON manifest of an import result so
// downstream tooling can consume the batch ordering and frame indices.
func WriteManifest(path string, res *ImportResult) error {
	m := Manifest{
		Objects: make([]ManifestEntry, len(res.Imported)),
		Skipped: res.Skipped,
	}
	for i, obj := range res.Imported {
		m.Objects[i] = ManifestEntry{
			Name:       obj.Name,
			Source:     obj.Source,
			FrameIndex: obj.FrameIndex,
		}
	}

	data, err := json.MarshalIndent(&m, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding manifest: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}
