package uim

import (
	"encoding/json"
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/amudkip/uimbatch/pkg/geom"
)

const validDoc = `[
  {
    "Type": "UimAsset",
    "Name": "frame_001",
    "Class": "UScriptClass'UimAsset'",
    "Flags": "RF_Public | RF_Standalone | RF_LoadCompleted",
    "Properties": {
      "UimData": {
        "frameNum": 1,
        "vertexNum": 3,
        "polygonNum": 1,
        "indexNum": 3,
        "coordinate": 3,
        "geomFormat": 1,
        "animFormat": 1,
        "p2DGeomVertex": [
          {"x": 0.0, "y": 0.0},
          {"x": 10.0, "y": 0.0},
          {"x": 10.0, "y": 5.0}
        ],
        "p2DAnimVertex": [
          {"x": 0.0, "y": 0.0},
          {"x": 10.0, "y": 0.0},
          {"x": 10.0, "y": 5.0}
        ],
        "Indices": [0, 1, 2]
      }
    }
  }
]`

func TestDecode_ValidDocument(t *testing.T) {
	mesh, err := Decode([]byte(validDoc), false)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	if mesh.VertexNum() != 3 {
		t.Errorf("expected 3 vertices, got %d", mesh.VertexNum())
	}
	if mesh.PolygonNum() != 1 {
		t.Errorf("expected 1 triangle, got %d", mesh.PolygonNum())
	}
	if mesh.Vertices[2] != (geom.Vertex2D{X: 10.0, Y: 5.0}) {
		t.Errorf("vertex 2 wrong: %+v", mesh.Vertices[2])
	}
	if mesh.Triangles[0] != (geom.Triangle{A: 0, B: 1, C: 2}) {
		t.Errorf("triangle wrong: %+v", mesh.Triangles[0])
	}
}

func TestDecode_InvertY(t *testing.T) {
	mesh, err := Decode([]byte(validDoc), true)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	if mesh.Vertices[2].Y != -5.0 {
		t.Errorf("expected y -5.0 with invertY, got %v", mesh.Vertices[2].Y)
	}
	if mesh.Vertices[2].X != 10.0 {
		t.Errorf("x must be unchanged, got %v", mesh.Vertices[2].X)
	}
}

func TestDecode_TruncatesTrailingIndices(t *testing.T) {
	doc := `[{"Properties":{"UimData":{
		"p2DGeomVertex":[{"x":0,"y":0},{"x":1,"y":0},{"x":1,"y":1},{"x":0,"y":1}],
		"Indices":[0,1,2,2,3]}}}]`

	mesh, err := Decode([]byte(doc), false)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if mesh.PolygonNum() != 1 {
		t.Errorf("expected the trailing partial triangle to be dropped, got %d triangles", mesh.PolygonNum())
	}
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want error
	}{
		{"object root", `{}`, ErrInvalidRoot},
		{"empty list", `[]`, ErrInvalidRoot},
		{"invalid json", `[{`, ErrMalformedDocument},
		{"missing UimData", `[{"Properties":{}}]`, ErrMissingGeometry},
		{"missing vertices", `[{"Properties":{"UimData":{"Indices":[0,1,2]}}}]`, ErrMissingGeometry},
		{"missing indices", `[{"Properties":{"UimData":{"p2DGeomVertex":[{"x":0,"y":0}]}}}]`, ErrMissingIndices},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Decode([]byte(tc.doc), false)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !errors.Is(err, tc.want) {
				t.Errorf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	mesh := &geom.Mesh{
		Vertices: []geom.Vertex2D{
			{X: 0.125, Y: -3.75},
			{X: 100.5, Y: 200.25},
			{X: -0.001, Y: 0.999},
		},
		Triangles: []geom.Triangle{{A: 0, B: 1, C: 2}},
	}

	for _, invertY := range []bool{false, true} {
		data, err := Encode(mesh, "roundtrip", invertY)
		if err != nil {
			t.Fatalf("Encode failed: %v", err)
		}
		out, err := Decode(data, invertY)
		if err != nil {
			t.Fatalf("Decode failed: %v", err)
		}

		if len(out.Vertices) != len(mesh.Vertices) {
			t.Fatalf("invertY=%v: vertex count changed", invertY)
		}
		for i := range mesh.Vertices {
			if math.Abs(out.Vertices[i].X-mesh.Vertices[i].X) > 1e-9 ||
				math.Abs(out.Vertices[i].Y-mesh.Vertices[i].Y) > 1e-9 {
				t.Errorf("invertY=%v: vertex %d drifted: %+v vs %+v",
					invertY, i, out.Vertices[i], mesh.Vertices[i])
			}
		}
		if len(out.Triangles) != 1 || out.Triangles[0] != mesh.Triangles[0] {
			t.Errorf("invertY=%v: triangles changed: %+v", invertY, out.Triangles)
		}
	}
}

func TestEncode_Envelope(t *testing.T) {
	mesh := &geom.Mesh{
		Vertices:  []geom.Vertex2D{{X: 1, Y: 2}, {X: 3, Y: 4}, {X: 5, Y: 6}},
		Triangles: []geom.Triangle{{A: 0, B: 1, C: 2}},
	}

	data, err := Encode(mesh, "hero_012", true)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	var root []Asset
	if err := json.Unmarshal(data, &root); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(root) != 1 {
		t.Fatalf("expected one-element root list, got %d", len(root))
	}

	asset := root[0]
	if asset.Type != AssetType {
		t.Errorf("expected Type %q, got %q", AssetType, asset.Type)
	}
	if asset.Name != "hero_012" {
		t.Errorf("expected Name hero_012, got %q", asset.Name)
	}
	if asset.Class != AssetClass {
		t.Errorf("expected Class %q, got %q", AssetClass, asset.Class)
	}
	if asset.Flags != AssetFlags {
		t.Errorf("expected Flags %q, got %q", AssetFlags, asset.Flags)
	}

	ud := asset.Properties.UimData
	if ud.FrameNum != 1 || ud.Coordinate != 3 || ud.GeomFormat != 1 || ud.AnimFormat != 1 {
		t.Errorf("format constants wrong: %+v", ud)
	}
	if ud.VertexNum != 3 || ud.PolygonNum != 1 || ud.IndexNum != 3 {
		t.Errorf("derived counts wrong: %+v", ud)
	}
	if ud.GeomVertices[0].Y != -2.0 {
		t.Errorf("expected y sign flip on encode, got %v", ud.GeomVertices[0].Y)
	}

	// The animated channel is always a static copy of the geometry.
	if len(ud.AnimVertices) != len(ud.GeomVertices) {
		t.Fatalf("p2DAnimVertex length differs from p2DGeomVertex")
	}
	for i := range ud.GeomVertices {
		if ud.AnimVertices[i] != ud.GeomVertices[i] {
			t.Errorf("p2DAnimVertex[%d] differs: %+v vs %+v",
				i, ud.AnimVertices[i], ud.GeomVertices[i])
		}
	}
}

func TestDecodeFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "frame_001.json")
	if err := os.WriteFile(path, []byte(validDoc), 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	mesh, err := DecodeFile(path, false)
	if err != nil {
		t.Fatalf("DecodeFile failed: %v", err)
	}
	if mesh.VertexNum() != 3 {
		t.Errorf("expected 3 vertices, got %d", mesh.VertexNum())
	}

	if _, err := DecodeFile(filepath.Join(dir, "missing.json"), false); err == nil {
		t.Error("expected error for missing file")
	}
}
