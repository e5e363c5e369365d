package registry

import (
	"voxcraft/internal/world"
)

// ModelVertex is one vertex of a billboard model template: a corner
// offset inside the unit cube plus its atlas UV. The mesher translates
// the offsets by the voxel position and attaches lighting.
type ModelVertex struct {
	Position [3]uint8
	UV       [2]uint16
}

// crossQuads builds the classic two-quad diagonal cross used by flowers
// and bushes. 8 vertices, two quads, consumed through the shared quad
// index buffer like any face geometry.
func crossQuads(t tile) []ModelVertex {
	uv := tileUV(t)
	pair := func(i int) [2]uint16 { return [2]uint16{uv[i*2], uv[i*2+1]} }

	return []ModelVertex{
		// Diagonal (0,0) -> (1,1)
		{Position: [3]uint8{0, 0, 0}, UV: pair(0)},
		{Position: [3]uint8{1, 0, 1}, UV: pair(1)},
		{Position: [3]uint8{1, 1, 1}, UV: pair(2)},
		{Position: [3]uint8{0, 1, 0}, UV: pair(3)},
		// Diagonal (1,0) -> (0,1)
		{Position: [3]uint8{1, 0, 0}, UV: pair(0)},
		{Position: [3]uint8{0, 0, 1}, UV: pair(1)},
		{Position: [3]uint8{0, 1, 1}, UV: pair(2)},
		{Position: [3]uint8{1, 1, 0}, UV: pair(3)},
	}
}

var models = map[world.BlockType][]ModelVertex{
	world.BlockTypeFlower:   crossQuads(tile{12, 0}),
	world.BlockTypeDeadBush: crossQuads(tile{13, 0}),
}

// GetModel returns the fixed vertex template for a model-flagged block
// type, or nil when the type has no model. Callers must not mutate the
// returned slice.
func GetModel(b world.BlockType) []ModelVertex {
	return models[b]
}
