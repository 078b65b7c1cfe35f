package uim

import (
	"fmt"
	"strings"
)

// EncodePlgData renders the legacy single-line PlgDatas descriptor for a
// mesh. verts must already be in on-disk orientation (same list the JSON
// encoder writes); indices is the flat triangle-index stream. The output
// is ASCII with every coordinate in fixed 6-decimal notation.
//
// The consumer of this format ignores the bounding box, so it is not
// emitted; use VertexBounds when the box is needed.
func EncodePlgData(verts []Vertex, indices []int) string {
	indexNum := len(indices)
	polygonNum := indexNum / 3

	var b strings.Builder
	fmt.Fprintf(&b,
		"(frameSkip=0,frameNum=1,vertexNum=%d,polygonNum=%d,indexNum=%d,coordinate=3,geomFormat=1,animFormat=1,p2DGeomVertex=(",
		len(verts), polygonNum, indexNum)
	for i, v := range verts {
		if i > 0 {
			b.WriteByte(',')
		}
		fmt.Fprintf(&b, "(X=%.6f,Y=%.6f)", v.X, v.Y)
	}
	b.WriteString("))")
	return b.String()
}

// VertexBounds returns the bounding box of an on-disk vertex list. All
// four results are zero when verts is empty.
func VertexBounds(verts []Vertex) (minX, minY, maxX, maxY float64) {
	if len(verts) == 0 {
		return 0, 0, 0, 0
	}
	minX, maxX = verts[0].X, verts[0].X
	minY, maxY = verts[0].Y, verts[0].Y
	for _, v := range verts[1:] {
		if v.X < minX {
			minX = v.X
		}
		if v.X > maxX {
			maxX = v.X
		}
		if v.Y < minY {
			minY = v.Y
		}
		if v.Y > maxY {
			maxY = v.Y
		}
	}
	return minX, minY, maxX, maxY
}
