// Package contactplot renders contact selector distance tables as images
// to help the operator choose a samplesize. The contact band shows up as
// mass near zero distance; samplesize should cover it and stop before the
// distances of vertices belonging to surface regions moving away from the
// counterpart surface.
package contactplot

import (
	"errors"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// SaveHistogram saves a histogram of the minimum cross-surface distances
// dists to an image file at path. The image format is inferred from the
// path extension (png, pdf, svg among others).
func SaveHistogram(dists []float64, bins int, path string) error {
	if len(dists) == 0 {
		return errors.New("empty distance table")
	}
	h, err := plotter.NewHist(plotter.Values(dists), bins)
	if err != nil {
		return err
	}
	p := plot.New()
	p.Title.Text = "minimum cross-surface distance"
	p.X.Label.Text = "distance"
	p.Y.Label.Text = "vertex count"
	p.Add(h)
	return p.Save(6*vg.Inch, 4*vg.Inch, path)
}
