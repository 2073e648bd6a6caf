package mesh

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"strings"
)

type stlFacet struct {
	Normal [3]float32
	V      [3][3]float32
	Attr   uint16
}

// WriteBinarySTL writes the mesh in binary STL format. The mesh name goes
// into the 80 byte header.
func (m *Mesh) WriteBinarySTL(w io.Writer) error {
	var header [80]byte
	copy(header[:], "binary STL: "+m.Name)
	bw := bufio.NewWriter(w)
	if _, err := bw.Write(header[:]); err != nil {
		return err
	}
	if err := binary.Write(bw, binary.LittleEndian, uint32(len(m.Triangles))); err != nil {
		return err
	}
	for _, t := range m.Triangles {
		n := t.Normal()
		f := stlFacet{Normal: [3]float32{float32(n.X), float32(n.Y), float32(n.Z)}}
		for k, v := range t {
			f.V[k] = [3]float32{float32(v.X), float32(v.Y), float32(v.Z)}
		}
		if err := binary.Write(bw, binary.LittleEndian, &f); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteASCIISTL writes the mesh in ASCII STL format, as a solid named after
// the mesh.
func (m *Mesh) WriteASCIISTL(w io.Writer) error {
	name := strings.Fields(m.Name + " mesh")[0]
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "solid %s\n", name)
	for _, t := range m.Triangles {
		n := t.Normal()
		fmt.Fprintf(bw, "  facet normal %e %e %e\n    outer loop\n", n.X, n.Y, n.Z)
		for _, v := range t {
			fmt.Fprintf(bw, "      vertex %e %e %e\n", v.X, v.Y, v.Z)
		}
		fmt.Fprint(bw, "    endloop\n  endfacet\n")
	}
	fmt.Fprintf(bw, "endsolid %s\n", name)
	return bw.Flush()
}
