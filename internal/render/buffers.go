package render

import (
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"voxcraft/internal/meshing"
)

const streamCount = 3

// vertexStride and the attribute offsets are derived from the actual
// struct layout so the GL attribute setup can never drift from the
// vertex definition.
var (
	vertexStride   = int32(unsafe.Sizeof(meshing.Vertex{}))
	offsetPosition = int(unsafe.Offsetof(meshing.Vertex{}.Position))
	offsetUV       = int(unsafe.Offsetof(meshing.Vertex{}.TexCoords))
	offsetLight    = int(unsafe.Offsetof(meshing.Vertex{}.Light))
	offsetShade    = int(unsafe.Offsetof(meshing.Vertex{}.Shade))
)

// sharedIndexBuffer is the one process-wide element buffer, encoding the
// repeating quad triangulation for the worst-case face count. Created by
// InitSharedIndexBuffer on the GL thread, read-only afterwards.
var sharedIndexBuffer uint32

// InitSharedIndexBuffer uploads the shared quad index pattern once.
// Must run on the GL thread before any ChunkMeshGL is created.
func InitSharedIndexBuffer() {
	if sharedIndexBuffer != 0 {
		return
	}
	indices := meshing.QuadIndices()
	gl.GenBuffers(1, &sharedIndexBuffer)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, sharedIndexBuffer)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.STATIC_DRAW)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, 0)
}

// ChunkMeshGL owns the GPU buffers for one chunk: a VAO/VBO pair per
// stream, all indexed through the shared element buffer. It implements
// meshing.Sink; Upload must run on the GL thread.
type ChunkMeshGL struct {
	vaos   [streamCount]uint32
	vbos   [streamCount]uint32
	counts [streamCount]int32
}

// NewChunkMeshGL allocates the per-stream buffer objects and wires the
// four fixed vertex attributes.
func NewChunkMeshGL() *ChunkMeshGL {
	m := &ChunkMeshGL{}
	gl.GenVertexArrays(streamCount, &m.vaos[0])
	gl.GenBuffers(streamCount, &m.vbos[0])
	for i := 0; i < streamCount; i++ {
		setupStreamVAO(m.vaos[i], m.vbos[i])
	}
	return m
}

func setupStreamVAO(vao, vbo uint32) {
	gl.BindVertexArray(vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, sharedIndexBuffer)

	gl.EnableVertexAttribArray(0)
	gl.VertexAttribIPointer(0, 3, gl.UNSIGNED_BYTE, vertexStride, gl.PtrOffset(offsetPosition))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribIPointer(1, 2, gl.UNSIGNED_SHORT, vertexStride, gl.PtrOffset(offsetUV))
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribIPointer(2, 1, gl.UNSIGNED_BYTE, vertexStride, gl.PtrOffset(offsetLight))
	gl.EnableVertexAttribArray(3)
	gl.VertexAttribIPointer(3, 1, gl.UNSIGNED_BYTE, vertexStride, gl.PtrOffset(offsetShade))

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}

// Upload replaces one stream's vertex data and records its renderable
// size. Implements meshing.Sink.
func (m *ChunkMeshGL) Upload(stream meshing.Stream, verts []meshing.Vertex) {
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbos[stream])
	gl.BufferData(gl.ARRAY_BUFFER, len(verts)*int(vertexStride), gl.Ptr(verts), gl.STATIC_DRAW)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	m.counts[stream] = int32(len(verts))
}

// ResetCounts zeroes the renderable sizes before re-upload so streams
// that became empty stop drawing stale geometry.
func (m *ChunkMeshGL) ResetCounts() {
	for i := range m.counts {
		m.counts[i] = 0
	}
}

// DrawStream issues the indexed draw for one stream, if non-empty.
func (m *ChunkMeshGL) DrawStream(stream meshing.Stream) {
	count := m.counts[stream]
	if count == 0 {
		return
	}
	// 6 indices per 4 vertices.
	gl.BindVertexArray(m.vaos[stream])
	gl.DrawElements(gl.TRIANGLES, count/4*6, gl.UNSIGNED_INT, gl.PtrOffset(0))
	gl.BindVertexArray(0)
}

// Delete frees all GPU buffers owned by this mesh.
func (m *ChunkMeshGL) Delete() {
	gl.DeleteBuffers(streamCount, &m.vbos[0])
	gl.DeleteVertexArrays(streamCount, &m.vaos[0])
}
