// Package geom defines the in-memory representation of 2D meshes used by
// the UIM codecs: a triangulated Mesh for the on-disk index stream and a
// PolyMesh for arbitrary closed polygons coming from the host scene.
package geom

// Vertex2D is a single 2D vertex. The formats this package feeds are
// strictly two-dimensional; z is implicitly 0 and never stored.
type Vertex2D struct {
	X float64
	Y float64
}

// Triangle is an ordered triple of indices into a vertex list.
type Triangle struct {
	A int
	B int
	C int
}

// Mesh is a strictly triangulated 2D mesh.
type Mesh struct {
	Vertices  []Vertex2D
	Triangles []Triangle
}

// VertexNum returns the number of vertices.
func (m *Mesh) VertexNum() int {
	return len(m.Vertices)
}

// PolygonNum returns the number of triangles.
func (m *Mesh) PolygonNum() int {
	return len(m.Triangles)
}

// IndexNum returns the length of the flat index stream (3 per triangle).
func (m *Mesh) IndexNum() int {
	return 3 * len(m.Triangles)
}

// Indices returns the flat triangle-index stream in triangle order.
func (m *Mesh) Indices() []int {
	out := make([]int, 0, 3*len(m.Triangles))
	for _, t := range m.Triangles {
		out = append(out, t.A, t.B, t.C)
	}
	return out
}

// PolyMesh returns the mesh as a polygon mesh where every face is a
// 3-gon. The vertex slice is shared, not copied.
func (m *Mesh) PolyMesh() *PolyMesh {
	polys := make([][]int, len(m.Triangles))
	for i, t := range m.Triangles {
		polys[i] = []int{t.A, t.B, t.C}
	}
	return &PolyMesh{Vertices: m.Vertices, Polygons: polys}
}

// PolyMesh is an arbitrary closed polygon mesh. Each polygon is an
// ordered list of at least 3 vertex indices.
type PolyMesh struct {
	Vertices []Vertex2D
	Polygons [][]int
}

// Bounds returns the axis-aligned bounding box of verts. Both results
// are zero when verts is empty.
func Bounds(verts []Vertex2D) (min, max Vertex2D) {
	if len(verts) == 0 {
		return Vertex2D{}, Vertex2D{}
	}
	min, max = verts[0], verts[0]
	for _, v := range verts[1:] {
		if v.X < min.X {
			min.X = v.X
		}
		if v.X > max.X {
			max.X = v.X
		}
		if v.Y < min.Y {
			min.Y = v.Y
		}
		if v.Y > max.Y {
			max.Y = v.Y
		}
	}
	return min, max
}
