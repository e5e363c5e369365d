package meshing

import (
	"voxcraft/internal/registry"
	"voxcraft/internal/world"
)

const (
	// shadowRange is how far the column above a voxel is scanned for
	// shadow-casting blocks before giving up.
	shadowRange = 24

	// shadowDim is subtracted from the ambient shade under a shadow.
	shadowDim = 2

	// waterShade replaces the directional shade on every water face.
	waterShade = 85

	// modelShade is the base ambient shade for billboard models.
	modelShade = 10
)

// meshBuffers are one tile task's private accumulation buffers. Tasks
// never share them; merging happens after the join barrier.
type meshBuffers struct {
	opaque      []Vertex
	transparent []Vertex
	model       []Vertex
}

// hasShadowAbove scans the column directly above the voxel, up to
// shadowRange cells or the grid ceiling, for any shadow-casting block.
// The scan stays inside the center chunk.
func hasShadowAbove(c *world.Chunk, x, y, z int) bool {
	for i := y + 1; i < y+shadowRange && i < world.ChunkSizeY; i++ {
		if c.Blocks[x][i][z].CastsShadow() {
			return true
		}
	}
	return false
}

// addFace emits the 4 vertices of one visible cube face into the opaque
// or transparent buffer. All vertices share the sampled light and the
// resolved shade.
func (b *meshBuffers) addFace(n *Neighborhood, x, y, z int, block world.BlockType, face world.BlockFace, light uint8) {
	tmpl := &faceTemplates[face]

	shade := tmpl.shade
	if face == world.FaceTop && hasShadowAbove(n.Center, x, y, z) {
		shade -= shadowDim
	}
	if block == world.BlockTypeWater {
		shade = waterShade
	}

	uv := registry.GetFaceUV(block, face)

	var quad [4]Vertex
	for i := 0; i < 4; i++ {
		c := tmpl.corners[i]
		ui := i
		if tmpl.reverseUV {
			ui = 3 - i
		}
		quad[i] = Vertex{
			Position:  [3]uint8{uint8(x) + c[0], uint8(y) + c[1], uint8(z) + c[2]},
			TexCoords: [2]uint16{uv[ui*2], uv[ui*2+1]},
			Light:     light,
			Shade:     shade,
		}
	}

	if block.IsOpaque() {
		b.opaque = append(b.opaque, quad[:]...)
	} else {
		b.transparent = append(b.transparent, quad[:]...)
	}
}

// addModel emits a billboard block by translating its registry template
// to the voxel position. Light is sampled at the voxel's own cell; shade
// follows the same shadow-column rule as a top face. Model geometry only
// ever reaches the model stream.
func (b *meshBuffers) addModel(n *Neighborhood, x, y, z int, block world.BlockType) {
	verts := registry.GetModel(block)
	if len(verts) == 0 {
		return
	}

	light := n.lightAt(x, y, z)
	shade := uint8(modelShade)
	if hasShadowAbove(n.Center, x, y, z) {
		shade -= shadowDim
	}

	for _, mv := range verts {
		b.model = append(b.model, Vertex{
			Position: [3]uint8{
				uint8(x) + mv.Position[0],
				uint8(y) + mv.Position[1],
				uint8(z) + mv.Position[2],
			},
			TexCoords: mv.UV,
			Light:     light,
			Shade:     shade,
		})
	}
}
