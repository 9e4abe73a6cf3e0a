package opengl

import (
	"github.com/go-gl/gl/v4.6-core/gl"

	"github.com/go-theft-auto/sandbox"
)

// MeshBuffer is a vertex buffer and the vertex array that reads it.
type MeshBuffer struct {
	vao, vbo uint32
	count    int32
	attribs  []uint32
}

// UploadMesh copies the mesh into a static buffer and records its attribute
// layout in a new vertex array.
func UploadMesh(m sandbox.Mesh) *MeshBuffer {
	b := &MeshBuffer{count: int32(m.Count())}

	gl.GenVertexArrays(1, &b.vao)
	gl.BindVertexArray(b.vao)

	gl.GenBuffers(1, &b.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, m.Size(), gl.Ptr(m.Data()), gl.STATIC_DRAW)

	layout := m.Layout()
	for _, a := range layout.Attribs {
		gl.VertexAttribPointerWithOffset(a.Index, a.Size, gl.FLOAT, false, layout.Stride, a.Offset)
		gl.EnableVertexAttribArray(a.Index)
		b.attribs = append(b.attribs, a.Index)
	}

	gl.BindVertexArray(0)
	return b
}

// Draw issues the single draw call for the whole buffer.
func (b *MeshBuffer) Draw() {
	gl.BindVertexArray(b.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, b.count)
}

// Delete releases the vertex array and buffer.
func (b *MeshBuffer) Delete() {
	if b.vao != 0 {
		for _, idx := range b.attribs {
			gl.DisableVertexArrayAttrib(b.vao, idx)
		}
		gl.DeleteVertexArrays(1, &b.vao)
		b.vao = 0
	}
	if b.vbo != 0 {
		gl.DeleteBuffers(1, &b.vbo)
		b.vbo = 0
	}
}
