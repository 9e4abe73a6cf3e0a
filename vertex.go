package sandbox

import "unsafe"

// PositionVertex is a vertex with a position only.
type PositionVertex struct {
	Pos [3]float32
}

// ColorVertex is a vertex with an interleaved RGBA color.
// Memory layout matches the attribute layout returned by ColorLayout.
type ColorVertex struct {
	Pos   [3]float32
	Color [4]float32
}

// Attrib describes one float vertex attribute.
type Attrib struct {
	Index  uint32  // shader location
	Size   int32   // component count
	Offset uintptr // byte offset in the vertex
}

// Layout describes how a vertex array reads an interleaved buffer.
type Layout struct {
	Stride  int32
	Attribs []Attrib
}

// PositionLayout is the layout of PositionVertex.
func PositionLayout() Layout {
	return Layout{
		Stride: int32(unsafe.Sizeof(PositionVertex{})),
		Attribs: []Attrib{
			{Index: 0, Size: 3, Offset: unsafe.Offsetof(PositionVertex{}.Pos)},
		},
	}
}

// ColorLayout is the layout of ColorVertex: position first, color following.
func ColorLayout() Layout {
	return Layout{
		Stride: int32(unsafe.Sizeof(ColorVertex{})),
		Attribs: []Attrib{
			{Index: 0, Size: 3, Offset: unsafe.Offsetof(ColorVertex{}.Pos)},
			{Index: 1, Size: 4, Offset: unsafe.Offsetof(ColorVertex{}.Color)},
		},
	}
}

// Mesh is an immutable vertex list together with its layout.
type Mesh struct {
	name     string
	vertices any // []PositionVertex or []ColorVertex
	count    int
	size     int
	layout   Layout
}

// NewPositionMesh builds a mesh from position-only vertices.
func NewPositionMesh(name string, verts []PositionVertex) Mesh {
	v := append([]PositionVertex(nil), verts...)
	return Mesh{
		name:     name,
		vertices: v,
		count:    len(v),
		size:     len(v) * int(unsafe.Sizeof(PositionVertex{})),
		layout:   PositionLayout(),
	}
}

// NewColorMesh builds a mesh from position+color vertices.
func NewColorMesh(name string, verts []ColorVertex) Mesh {
	v := append([]ColorVertex(nil), verts...)
	return Mesh{
		name:     name,
		vertices: v,
		count:    len(v),
		size:     len(v) * int(unsafe.Sizeof(ColorVertex{})),
		layout:   ColorLayout(),
	}
}

func (m Mesh) Name() string   { return m.name }
func (m Mesh) Count() int     { return m.count }
func (m Mesh) Size() int      { return m.size }
func (m Mesh) Layout() Layout { return m.layout }

// Data returns the vertex slice for upload. Callers must not modify it.
func (m Mesh) Data() any { return m.vertices }

// cubePositions are the 36 vertices of a cube of half-extent 0.25,
// wound clockwise when viewed from outside.
var cubePositions = [...][3]float32{
	{-0.25, 0.25, -0.25}, {-0.25, -0.25, -0.25}, {0.25, -0.25, -0.25},
	{0.25, -0.25, -0.25}, {0.25, 0.25, -0.25}, {-0.25, 0.25, -0.25},

	{0.25, -0.25, -0.25}, {0.25, -0.25, 0.25}, {0.25, 0.25, -0.25},
	{0.25, -0.25, 0.25}, {0.25, 0.25, 0.25}, {0.25, 0.25, -0.25},

	{0.25, -0.25, 0.25}, {-0.25, -0.25, 0.25}, {0.25, 0.25, 0.25},
	{-0.25, -0.25, 0.25}, {-0.25, 0.25, 0.25}, {0.25, 0.25, 0.25},

	{-0.25, -0.25, 0.25}, {-0.25, -0.25, -0.25}, {-0.25, 0.25, 0.25},
	{-0.25, -0.25, -0.25}, {-0.25, 0.25, -0.25}, {-0.25, 0.25, 0.25},

	{-0.25, -0.25, 0.25}, {0.25, -0.25, 0.25}, {0.25, -0.25, -0.25},
	{0.25, -0.25, -0.25}, {-0.25, -0.25, -0.25}, {-0.25, -0.25, 0.25},

	{-0.25, 0.25, -0.25}, {0.25, 0.25, -0.25}, {0.25, 0.25, 0.25},
	{0.25, 0.25, 0.25}, {-0.25, 0.25, 0.25}, {-0.25, 0.25, -0.25},
}

// CubeMesh returns the position-only cube.
func CubeMesh() Mesh {
	verts := make([]PositionVertex, len(cubePositions))
	for i, p := range cubePositions {
		verts[i] = PositionVertex{Pos: p}
	}
	return NewPositionMesh("cube", verts)
}

// TriangleMesh returns a clockwise triangle with one primary color per corner.
func TriangleMesh() Mesh {
	return NewColorMesh("triangle", []ColorVertex{
		{Pos: [3]float32{-0.5, -0.5, 0}, Color: [4]float32{1, 0, 0, 1}},
		{Pos: [3]float32{0, 0.5, 0}, Color: [4]float32{0, 0, 1, 1}},
		{Pos: [3]float32{0.5, -0.5, 0}, Color: [4]float32{0, 1, 0, 1}},
	})
}
