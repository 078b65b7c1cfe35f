// Package uim implements the UIM asset container codecs: the JSON mesh
// format used for import and export, and the legacy PlgDatas text
// descriptor written alongside every exported JSON file.
package uim

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/amudkip/uimbatch/pkg/geom"
)

// UIM format errors.
var (
	ErrMalformedDocument = errors.New("malformed UIM document")
	ErrInvalidRoot       = errors.New("invalid UIM root: must be a non-empty list")
	ErrMissingGeometry   = errors.New("missing Properties.UimData.p2DGeomVertex")
	ErrMissingIndices    = errors.New("missing Properties.UimData.Indices")
)

// Asset envelope constants.
const (
	AssetType  = "UimAsset"
	AssetClass = "UScriptClass'UimAsset'"
	AssetFlags = "RF_Public | RF_Standalone | RF_LoadCompleted"
)

// Vertex is a 2D vertex as stored on disk.
type Vertex struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Data is the mesh payload of a UIM asset. The counts are derived from
// the vertex and index lists on encode; a stored count that disagrees
// with its list length is a producer defect.
type Data struct {
	FrameNum     int      `json:"frameNum"`
	VertexNum    int      `json:"vertexNum"`
	PolygonNum   int      `json:"polygonNum"`
	IndexNum     int      `json:"indexNum"`
	Coordinate   int      `json:"coordinate"`
	GeomFormat   int      `json:"geomFormat"`
	AnimFormat   int      `json:"animFormat"`
	GeomVertices []Vertex `json:"p2DGeomVertex"`
	AnimVertices []Vertex `json:"p2DAnimVertex"`
	Indices      []int    `json:"Indices"`
}

// Properties wraps the mesh payload inside the asset envelope.
type Properties struct {
	UimData *Data `json:"UimData"`
}

// Asset is one element of the root document list.
type Asset struct {
	Type       string     `json:"Type"`
	Name       string     `json:"Name"`
	Class      string     `json:"Class"`
	Flags      string     `json:"Flags"`
	Properties Properties `json:"Properties"`
}

// DecodeAsset parses a UIM document and validates its structure: the
// root must be a non-empty JSON array and the first asset must carry
// both p2DGeomVertex and Indices. It returns the first asset.
func DecodeAsset(data []byte) (*Asset, error) {
	var root []Asset
	if err := json.Unmarshal(data, &root); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, fmt.Errorf("%w: root is %s", ErrInvalidRoot, typeErr.Value)
		}
		return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}
	if len(root) == 0 {
		return nil, ErrInvalidRoot
	}

	asset := &root[0]
	ud := asset.Properties.UimData
	if ud == nil || ud.GeomVertices == nil {
		return nil, ErrMissingGeometry
	}
	if ud.Indices == nil {
		return nil, ErrMissingIndices
	}
	return asset, nil
}

// Decode parses a UIM document into a triangle mesh. When invertY is
// set, every y coordinate is negated (screen to scene convention).
// Indices are consumed in strides of 3; a trailing remainder shorter
// than a full triangle is dropped without error.
func Decode(data []byte, invertY bool) (*geom.Mesh, error) {
	asset, err := DecodeAsset(data)
	if err != nil {
		return nil, err
	}
	ud := asset.Properties.UimData

	sign := 1.0
	if invertY {
		sign = -1.0
	}

	verts := make([]geom.Vertex2D, len(ud.GeomVertices))
	for i, v := range ud.GeomVertices {
		verts[i] = geom.Vertex2D{X: v.X, Y: v.Y * sign}
	}

	tris := make([]geom.Triangle, 0, len(ud.Indices)/3)
	for i := 0; i+2 < len(ud.Indices); i += 3 {
		tris = append(tris, geom.Triangle{
			A: ud.Indices[i],
			B: ud.Indices[i+1],
			C: ud.Indices[i+2],
		})
	}

	return &geom.Mesh{Vertices: verts, Triangles: tris}, nil
}

// DecodeFile parses a UIM document from disk.
func DecodeFile(path string, invertY bool) (*geom.Mesh, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading UIM file: %w", err)
	}
	return Decode(data, invertY)
}

// ConvertVertices applies the on-disk sign convention to a vertex list.
// The same conversion runs on encode and decode, so a round trip with a
// consistent invertY flag is the identity on coordinates.
func ConvertVertices(verts []geom.Vertex2D, invertY bool) []Vertex {
	sign := 1.0
	if invertY {
		sign = -1.0
	}
	out := make([]Vertex, len(verts))
	for i, v := range verts {
		out[i] = Vertex{X: v.X, Y: v.Y * sign}
	}
	return out
}

// Encode serializes a triangle mesh as a one-asset UIM document named
// name. The animated-vertex channel is always a static copy of the
// geometry channel; the format carries it but nothing drives it.
func Encode(mesh *geom.Mesh, name string, invertY bool) ([]byte, error) {
	verts := ConvertVertices(mesh.Vertices, invertY)

	asset := Asset{
		Type:  AssetType,
		Name:  name,
		Class: AssetClass,
		Flags: AssetFlags,
		Properties: Properties{
			UimData: &Data{
				FrameNum:     1,
				VertexNum:    mesh.VertexNum(),
				PolygonNum:   mesh.PolygonNum(),
				IndexNum:     mesh.IndexNum(),
				Coordinate:   3,
				GeomFormat:   1,
				AnimFormat:   1,
				GeomVertices: verts,
				AnimVertices: verts,
				Indices:      mesh.Indices(),
			},
		},
	}

	data, err := json.MarshalIndent([]Asset{asset}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding UIM asset %q: %w", name, err)
	}
	return data, nil
}
