package renderer

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/csulb-cecs449-2025sp/modern-3d-template/internal/engine/mesh"
	"github.com/csulb-cecs449-2025sp/modern-3d-template/internal/logger"
)

// Mesh is a GPU-resident mesh: one vertex array with its vertex and
// index buffers. It owns the GL objects it names.
type Mesh struct {
	vao        uint32
	vbo        uint32
	ebo        uint32
	indexCount int32
}

// IndexCount returns the number of indices recorded at upload time.
func (m *Mesh) IndexCount() int32 {
	return m.indexCount
}

// Destroy releases the mesh's GPU objects. Safe to call more than
// once.
func (m *Mesh) Destroy() {
	if m.vao != 0 {
		gl.DeleteVertexArrays(1, &m.vao)
		m.vao = 0
	}
	if m.vbo != 0 {
		gl.DeleteBuffers(1, &m.vbo)
		m.vbo = 0
	}
	if m.ebo != 0 {
		gl.DeleteBuffers(1, &m.ebo)
		m.ebo = 0
	}
}

// UploadMesh copies mesh data into GPU buffers and records the
// attribute layout: location 0 is three contiguous floats per vertex.
// The data is validated first, so malformed or empty meshes never
// reach the GPU. All bindings are restored to zero before returning.
func (c *Context) UploadMesh(data *mesh.Data) (*Mesh, error) {
	if err := data.Validate(); err != nil {
		return nil, fmt.Errorf("uploading mesh: %w", err)
	}

	m := &Mesh{indexCount: int32(len(data.Indices))}

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	vertexSize := int(unsafe.Sizeof(mesh.Vertex{}))
	gl.BufferData(gl.ARRAY_BUFFER, len(data.Vertices)*vertexSize, unsafe.Pointer(&data.Vertices[0]), gl.STATIC_DRAW)

	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, int32(vertexSize), 0)
	gl.EnableVertexAttribArray(0)

	gl.GenBuffers(1, &m.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(data.Indices)*4, unsafe.Pointer(&data.Indices[0]), gl.STATIC_DRAW)

	// Unbind the VAO before the element buffer: unbinding the element
	// buffer while the VAO is bound would detach it from the VAO.
	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, 0)

	logger.Debug("mesh uploaded",
		zap.Uint32("vao", m.vao),
		zap.Int("vertices", len(data.Vertices)),
		zap.Int32("indices", m.indexCount),
	)
	return m, nil
}

// DrawMesh draws all of the mesh's triangles with whatever shader
// program is currently active.
func (c *Context) DrawMesh(m *Mesh) {
	gl.BindVertexArray(m.vao)
	gl.DrawElements(gl.TRIANGLES, m.indexCount, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
}
