// Package fshost implements the contact selector's host interface over
// binary STL files on disk. The two selected objects are STL files and
// vertex groups are materialized as CalculiX/Abaqus *NSET card files,
// ready for a downstream solver's boundary condition setup.
package fshost

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/soypat/contact"
	"github.com/soypat/contact/mesh"
)

// Config holds the optional knobs of a file-system host.
type Config struct {
	// OutDir receives the group card files. When empty each group file is
	// written alongside its STL file.
	OutDir string
	// VertexTol merges STL vertices closer than this distance into a
	// single surface vertex. Zero infers a tolerance from the smallest
	// triangle in each model.
	VertexTol float64
}

// Host selects two STL files as the contact surfaces.
type Host struct {
	pathA, pathB string
	cfg          Config
}

// New returns a host whose two selected objects are the STL files at
// pathA and pathB.
func New(pathA, pathB string, cfg Config) *Host {
	return &Host{pathA: pathA, pathB: pathB, cfg: cfg}
}

// Selected returns the two STL file objects.
func (h *Host) Selected() (a, b contact.Object, err error) {
	if h.pathA == "" || h.pathB == "" {
		return nil, nil, fmt.Errorf("%w: two STL file paths required", contact.ErrInvalidInput)
	}
	return &object{path: h.pathA, cfg: h.cfg}, &object{path: h.pathB, cfg: h.cfg}, nil
}

type object struct {
	path string
	cfg  Config
}

// Surface reads the object's STL model and extracts its unique world-space
// vertices.
func (o *object) Surface() (contact.Surface, error) {
	fp, err := os.Open(o.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", contact.ErrInvalidInput, err)
	}
	defer fp.Close()
	model, err := mesh.ReadSTL(fp)
	if err != nil && !errors.Is(err, mesh.ErrNormalMismatch) {
		return nil, fmt.Errorf("%w: %s: %s", contact.ErrInvalidInput, o.path, err)
	}
	surf, err := mesh.Surface(model, o.cfg.VertexTol)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", o.path, err)
	}
	return surf, nil
}

// WriteGroup writes set to <stem>_<name>.nset next to the STL file, or in
// the configured output directory.
func (o *object) WriteGroup(name string, set contact.ContactSet) error {
	dir := o.cfg.OutDir
	if dir == "" {
		dir = filepath.Dir(o.path)
	}
	stem := strings.TrimSuffix(filepath.Base(o.path), filepath.Ext(o.path))
	fp, err := os.Create(filepath.Join(dir, stem+"_"+name+".nset"))
	if err != nil {
		return err
	}
	defer fp.Close()
	return writeNSET(fp, name, set)
}

// writeNSET writes the vertex group as a solver node set card. Node ids
// are 1-based with at most 16 ids per line, per the fixed card format.
func writeNSET(w io.Writer, name string, set contact.ContactSet) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "*NSET,NSET=%s\n", name)
	for i, idx := range set {
		fmt.Fprintf(bw, "%d,", idx+1)
		if i%16 == 15 {
			bw.WriteByte('\n')
		}
	}
	if len(set)%16 != 0 {
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
