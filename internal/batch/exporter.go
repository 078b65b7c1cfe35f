package batch

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/amudkip/uimbatch/internal/logger"
	"github.com/amudkip/uimbatch/internal/scene"
	"github.com/amudkip/uimbatch/pkg/geom"
	"github.com/amudkip/uimbatch/pkg/uim"
)

// ExportOptions controls a batch export.
type ExportOptions struct {
	// InvertY flips Y coordinates from scene back to screen orientation.
	InvertY bool
	// SelectedOnly restricts the export to selected objects.
	SelectedOnly bool
}

// DefaultExportOptions returns the standard export settings.
func DefaultExportOptions() ExportOptions {
	return ExportOptions{InvertY: true, SelectedOnly: true}
}

// Export writes a <Name>.json / <Name>.txt pair for every eligible mesh
// object in the collection and returns the number of pairs written.
// Unlike import there is no per-item recovery: the first write or
// encode failure aborts the remaining export.
func Export(col *scene.Collection, dir string, opts ExportOptions) (int, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return 0, fmt.Errorf("creating export directory: %w", err)
	}

	exported := 0
	for _, obj := range col.Objects() {
		if opts.SelectedOnly && !obj.Selected {
			continue
		}
		if obj.Mesh == nil {
			continue
		}

		// Triangulate-in-place then filter, so n-gons survive as fans.
		mesh := geom.ExtractTriangles(geom.Triangulate(obj.Mesh))

		if err := writePair(mesh, obj.Name, dir, opts.InvertY); err != nil {
			return exported, err
		}
		exported++
	}

	logger.Info("batch export finished",
		zap.Int("pairs", exported),
		zap.String("dir", dir))
	return exported, nil
}

// writePair writes the JSON document and its legacy text sidecar for
// one mesh.
func writePair(mesh *geom.Mesh, name, dir string, invertY bool) error {
	doc, err := uim.Encode(mesh, name, invertY)
	if err != nil {
		return err
	}
	jsonPath := filepath.Join(dir, name+".json")
	if err := os.WriteFile(jsonPath, doc, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", jsonPath, err)
	}

	verts := uim.ConvertVertices(mesh.Vertices, invertY)
	minX, minY, maxX, maxY := uim.VertexBounds(verts)
	logger.Debug("exported mesh bounds",
		zap.String("object", name),
		zap.Float64("minX", minX),
		zap.Float64("minY", minY),
		zap.Float64("maxX", maxX),
		zap.Float64("maxY", maxY))

	txt := uim.EncodePlgData(verts, mesh.Indices())
	txtPath := filepath.Join(dir, name+".txt")
	if err := os.WriteFile(txtPath, []byte(txt), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", txtPath, err)
	}
	return nil
}

// ConvertFile decodes a single UIM file and rewrites it as a normalized
// JSON/text pair in outDir, named after the file's base name. Decoding
// and encoding use the same invertY flag, so coordinates round-trip
// unchanged.
func ConvertFile(path, outDir string, invertY bool) error {
	mesh, err := uim.DecodeFile(path, invertY)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return writePair(mesh, name, outDir, invertY)
}
