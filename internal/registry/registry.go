// Package registry maps block types to texture-atlas coordinates and to
// the fixed vertex templates used by non-cube "model" blocks. Everything
// here is built at init and read-only afterwards.
package registry

import (
	"voxcraft/internal/world"
)

const (
	// The block atlas is a square grid of fixed-size tiles. UVs are
	// emitted in atlas texel units as unsigned 16-bit values.
	AtlasTilePx  = 16
	AtlasTilesXY = 16
	AtlasSizePx  = AtlasTilePx * AtlasTilesXY
)

// tile addresses one texture tile on the atlas grid.
type tile struct {
	X, Y uint16
}

// blockTextures gives the atlas tile per block type for the three face
// groups the atlas distinguishes. Side covers front/back/left/right.
type blockTextures struct {
	Top    tile
	Bottom tile
	Side   tile
}

func uniform(t tile) blockTextures {
	return blockTextures{Top: t, Bottom: t, Side: t}
}

var textures = map[world.BlockType]blockTextures{
	world.BlockTypeGrass:     {Top: tile{0, 0}, Bottom: tile{2, 0}, Side: tile{1, 0}},
	world.BlockTypeDirt:      uniform(tile{2, 0}),
	world.BlockTypeStone:     uniform(tile{3, 0}),
	world.BlockTypeSand:      uniform(tile{4, 0}),
	world.BlockTypeWater:     uniform(tile{5, 0}),
	world.BlockTypeOakLog:    {Top: tile{7, 0}, Bottom: tile{7, 0}, Side: tile{6, 0}},
	world.BlockTypeOakLeaves: uniform(tile{8, 0}),
	world.BlockTypeGlass:     uniform(tile{9, 0}),
	world.BlockTypeCactus:    {Top: tile{11, 0}, Bottom: tile{11, 0}, Side: tile{10, 0}},
	world.BlockTypeFlower:    uniform(tile{12, 0}),
	world.BlockTypeDeadBush:  uniform(tile{13, 0}),
}

// tileUV expands a tile to its 4 corner (u,v) pairs in atlas units.
// Pair order matches the face template corner order: bottom-left,
// bottom-right, top-right, top-left.
func tileUV(t tile) [8]uint16 {
	u0 := t.X * AtlasTilePx
	v0 := t.Y * AtlasTilePx
	u1 := u0 + AtlasTilePx
	v1 := v0 + AtlasTilePx
	return [8]uint16{
		u0, v1,
		u1, v1,
		u1, v0,
		u0, v0,
	}
}

// GetFaceUV returns the 4 (u,v) atlas-unit pairs for a block face.
// Unknown block types fall back to the stone tile.
func GetFaceUV(b world.BlockType, face world.BlockFace) [8]uint16 {
	tex, ok := textures[b]
	if !ok {
		tex = textures[world.BlockTypeStone]
	}
	switch face {
	case world.FaceTop:
		return tileUV(tex.Top)
	case world.FaceBottom:
		return tileUV(tex.Bottom)
	default:
		return tileUV(tex.Side)
	}
}
