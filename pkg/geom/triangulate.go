package geom

// Triangulate returns a copy of pm with every n-gon fan-triangulated
// from its first vertex. Faces that are already triangles pass through
// unchanged; faces with fewer than 3 indices are dropped. The vertex
// slice is shared, not copied.
func Triangulate(pm *PolyMesh) *PolyMesh {
	polys := make([][]int, 0, len(pm.Polygons))
	for _, p := range pm.Polygons {
		if len(p) < 3 {
			continue
		}
		if len(p) == 3 {
			polys = append(polys, p)
			continue
		}
		for i := 1; i < len(p)-1; i++ {
			polys = append(polys, []int{p[0], p[i], p[i+1]})
		}
	}
	return &PolyMesh{Vertices: pm.Vertices, Polygons: polys}
}

// ExtractTriangles reduces a polygon mesh to a triangle mesh by keeping
// faces with exactly 3 vertices, in their existing winding. Faces of any
// other size are silently skipped; run Triangulate first when n-gons
// must survive.
func ExtractTriangles(pm *PolyMesh) *Mesh {
	tris := make([]Triangle, 0, len(pm.Polygons))
	for _, p := range pm.Polygons {
		if len(p) != 3 {
			continue
		}
		tris = append(tris, Triangle{A: p[0], B: p[1], C: p[2]})
	}
	return &Mesh{Vertices: pm.Vertices, Triangles: tris}
}
