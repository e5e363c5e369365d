package meshing

// Vertex is the exact per-vertex GPU layout: local position as unsigned
// bytes, atlas texel coordinates as unsigned shorts, the sampled dynamic
// light value and the static directional shading constant. All four
// vertices of a quad carry the same Light and Shade.
type Vertex struct {
	Position  [3]uint8
	TexCoords [2]uint16
	Light     uint8
	Shade     uint8
}

// Stream identifies one of the three independent vertex streams a chunk
// mesh produces.
type Stream int

const (
	StreamOpaque Stream = iota
	StreamTransparent
	StreamModel
)

func (s Stream) String() string {
	switch s {
	case StreamOpaque:
		return "opaque"
	case StreamTransparent:
		return "transparent"
	case StreamModel:
		return "model"
	default:
		return "unknown"
	}
}

// Sink receives finished vertex streams, e.g. a GPU buffer uploader.
// It is invoked at most once per stream per build and never with an
// empty payload.
type Sink interface {
	Upload(stream Stream, verts []Vertex)
}
