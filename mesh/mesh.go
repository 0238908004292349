// Package mesh provides the triangle mesh plumbing that feeds surfaces to
// the contact selector: a binary STL codec and unique world-space vertex
// extraction from triangle soups.
package mesh

import (
	"errors"
	"fmt"
	"math"

	"github.com/soypat/contact"
	"github.com/soypat/contact/internal/d3"
	"gonum.org/v1/gonum/spatial/r3"
)

// Triangle is a 3D triangle defined by its three vertices.
type Triangle [3]r3.Vec

// Normal returns the unit normal of the triangle given by the right hand
// rule applied to its vertices.
func (t Triangle) Normal() r3.Vec {
	e1 := r3.Sub(t[1], t[0])
	e2 := r3.Sub(t[2], t[0])
	return r3.Unit(r3.Cross(e1, e2))
}

// Surface extracts the unique vertices of a triangle mesh in first
// appearance order, producing the ordered vertex set the contact selector
// consumes. Triangle files such as STL repeat shared vertices once per
// adjoining triangle, so vertices closer than tol are merged into one.
// tol should be of the order of 1/1000th of the size of the smallest
// triangle in the model. If set to 0 then it is inferred automatically.
func Surface(triangles []Triangle, tol float64) (contact.Surface, error) {
	if len(triangles) == 0 {
		return nil, errors.New("empty triangle slice")
	}
	bb := d3.Box{Min: d3.Elem(math.MaxFloat64), Max: d3.Elem(-math.MaxFloat64)}
	minSide2 := math.MaxFloat64
	maxSide2 := -math.MaxFloat64
	for i := range triangles {
		for j, vert := range triangles[i] {
			bb = bb.Include(vert)
			// Calculate minimum and maximum triangle side.
			vert2 := triangles[i][(j+1)%3]
			side2 := r3.Norm2(r3.Sub(vert2, vert))
			minSide2 = math.Min(minSide2, side2)
			maxSide2 = math.Max(maxSide2, side2)
		}
	}
	suggested := math.Sqrt(minSide2) / 256
	if tol > math.Sqrt(maxSide2)/2 {
		return nil, fmt.Errorf("vertex tolerance too large to distinguish mesh vertices, suggested tolerance: %g", suggested)
	}
	if tol == 0 {
		tol = suggested
	}
	size := bb.Size()
	maxDim := math.Max(size.X, math.Max(size.Y, size.Z))
	div := int64(maxDim/tol + 1e-12)
	if div <= 0 {
		return nil, errors.New("tolerance larger than model size")
	}
	if div > math.MaxInt64/2 {
		return nil, errors.New("tolerance too small. overflowed int64")
	}
	// vertex index cache over integer resolution-space coordinates.
	cache := make(map[[3]int64]int)
	verts := make(contact.Surface, 0, len(triangles))
	ri := 1 / tol
	for i := range triangles {
		for _, vert := range triangles[i] {
			v := r3.Scale(ri, vert)
			vi := [3]int64{int64(v.X), int64(v.Y), int64(v.Z)}
			if _, ok := cache[vi]; !ok {
				cache[vi] = len(verts)
				verts = append(verts, vert)
			}
		}
	}
	return verts, nil
}
