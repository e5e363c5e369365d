package world

// BlockType identifies a block. Air and Water have special meaning to the
// mesher: air emits nothing, water overrides the per-face shading constant.
type BlockType uint8

const (
	BlockTypeAir BlockType = iota
	BlockTypeGrass
	BlockTypeDirt
	BlockTypeStone
	BlockTypeSand
	BlockTypeWater
	BlockTypeOakLog
	BlockTypeOakLeaves
	BlockTypeGlass
	BlockTypeCactus
	BlockTypeFlower
	BlockTypeDeadBush

	// blockTypeCount is the number of known block types; keep last.
	blockTypeCount
)

// BlockProperties holds the material predicates derived from a block type.
// Model blocks (flowers, bushes) render as billboard crosses instead of
// cube faces and never occlude anything.
type BlockProperties struct {
	Opaque      bool
	Transparent bool
	CastsShadow bool
	Model       bool
	Collidable  bool
}

var blockProperties = [blockTypeCount]BlockProperties{
	BlockTypeAir:       {},
	BlockTypeGrass:     {Opaque: true, CastsShadow: true, Collidable: true},
	BlockTypeDirt:      {Opaque: true, CastsShadow: true, Collidable: true},
	BlockTypeStone:     {Opaque: true, CastsShadow: true, Collidable: true},
	BlockTypeSand:      {Opaque: true, CastsShadow: true, Collidable: true},
	BlockTypeWater:     {Transparent: true},
	BlockTypeOakLog:    {Opaque: true, CastsShadow: true, Collidable: true},
	BlockTypeOakLeaves: {Transparent: true, CastsShadow: true, Collidable: true},
	BlockTypeGlass:     {Transparent: true, Collidable: true},
	BlockTypeCactus:    {Opaque: true, CastsShadow: true, Collidable: true},
	BlockTypeFlower:    {Model: true},
	BlockTypeDeadBush:  {Model: true},
}

// Properties returns the material predicates for a block type. Unknown
// types behave as plain opaque stone so a bad value never panics.
func (b BlockType) Properties() BlockProperties {
	if b >= blockTypeCount {
		return BlockProperties{Opaque: true, CastsShadow: true, Collidable: true}
	}
	return blockProperties[b]
}

// IsAir reports whether the block is the distinguished air value.
func (b BlockType) IsAir() bool { return b == BlockTypeAir }

// IsOpaque reports whether the block fully occludes faces behind it.
func (b BlockType) IsOpaque() bool { return b.Properties().Opaque }

// IsTransparent reports whether the block is see-through (water, leaves,
// glass). Air is neither opaque nor transparent; it is simply absent.
func (b BlockType) IsTransparent() bool { return b.Properties().Transparent }

// CastsShadow reports whether the block darkens top faces below it.
func (b BlockType) CastsShadow() bool { return b.Properties().CastsShadow }

// IsModel reports whether the block renders as billboard geometry.
func (b BlockType) IsModel() bool { return b.Properties().Model }

// IsCollidable reports whether the block participates in collision.
func (b BlockType) IsCollidable() bool { return b.Properties().Collidable }

// BlockFace identifies one of the six cube-aligned directions of a block.
// The order is load-bearing: the face shading table and the atlas lookup
// are both indexed by it.
type BlockFace int

const (
	FaceTop BlockFace = iota
	FaceBottom
	FaceFront // +Z
	FaceBack  // -Z
	FaceLeft  // -X
	FaceRight // +X

	FaceCount = 6
)

func (f BlockFace) String() string {
	switch f {
	case FaceTop:
		return "top"
	case FaceBottom:
		return "bottom"
	case FaceFront:
		return "front"
	case FaceBack:
		return "back"
	case FaceLeft:
		return "left"
	case FaceRight:
		return "right"
	default:
		return "unknown"
	}
}
