package world

const (
	// Chunk dimensions. Y never crosses a chunk boundary: above and below
	// the grid is open air with zero light.
	ChunkSizeX = 16
	ChunkSizeY = 96
	ChunkSizeZ = 16
)

// BlockGrid is a dense block volume with fixed compile-time extents.
type BlockGrid [ChunkSizeX][ChunkSizeY][ChunkSizeZ]BlockType

// LightGrid is the 8-bit dynamic light volume, index-aligned with the
// block grid. It is produced by the light pass and only sampled here.
type LightGrid [ChunkSizeX][ChunkSizeY][ChunkSizeZ]uint8

// ChunkCoord addresses a chunk on the horizontal chunk grid.
type ChunkCoord struct {
	X, Z int
}

// Chunk is a fixed-size block column, the unit of meshing and streaming.
// Blocks and Light are borrowed read-only by the mesher; callers must not
// mutate them while a mesh build for this chunk or a neighbor is in flight.
type Chunk struct {
	Coord  ChunkCoord
	Blocks BlockGrid
	Light  LightGrid

	dirty bool
}

// NewChunk creates an all-air chunk at the given chunk coordinate.
func NewChunk(coord ChunkCoord) *Chunk {
	return &Chunk{Coord: coord, dirty: true}
}

func inBounds(x, y, z int) bool {
	return x >= 0 && x < ChunkSizeX && y >= 0 && y < ChunkSizeY && z >= 0 && z < ChunkSizeZ
}

// GetBlock returns the block at local coordinates, air when out of range.
func (c *Chunk) GetBlock(x, y, z int) BlockType {
	if !inBounds(x, y, z) {
		return BlockTypeAir
	}
	return c.Blocks[x][y][z]
}

// SetBlock sets the block at local coordinates and marks the chunk dirty.
// Out-of-range coordinates are ignored.
func (c *Chunk) SetBlock(x, y, z int, b BlockType) {
	if !inBounds(x, y, z) {
		return
	}
	if c.Blocks[x][y][z] != b {
		c.Blocks[x][y][z] = b
		c.dirty = true
	}
}

// GetLight returns the dynamic light value at local coordinates, 0 when
// out of range.
func (c *Chunk) GetLight(x, y, z int) uint8 {
	if !inBounds(x, y, z) {
		return 0
	}
	return c.Light[x][y][z]
}

// SetLight sets the light value at local coordinates.
func (c *Chunk) SetLight(x, y, z int, v uint8) {
	if !inBounds(x, y, z) {
		return
	}
	c.Light[x][y][z] = v
}

// IsDirty returns whether the chunk changed since the last mesh build.
func (c *Chunk) IsDirty() bool { return c.dirty }

// SetClean marks the chunk as meshed.
func (c *Chunk) SetClean() { c.dirty = false }

// MarkDirty requests a remesh, e.g. when a neighbor border block changed.
func (c *Chunk) MarkDirty() { c.dirty = true }
