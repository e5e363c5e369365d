package meshing

import "voxcraft/internal/world"

// Neighborhood bundles the chunk being meshed with its four horizontal
// neighbors. Neighbor entries may be nil: a missing neighbor behaves
// exactly as a boundary of air blocks with zero light, so meshing never
// refuses to build at a world edge. Y never crosses a chunk boundary;
// above and below the grid is always open air with light 0.
//
// All grids are borrowed read-only. The caller must not mutate the
// center or neighbor chunks while a build is in flight.
type Neighborhood struct {
	Center *world.Chunk
	Left   *world.Chunk // -X
	Right  *world.Chunk // +X
	Front  *world.Chunk // +Z
	Back   *world.Chunk // -Z
}

// ResolveNeighborhood looks up the four horizontal neighbors of a chunk
// in the store. Absent neighbors stay nil.
func ResolveNeighborhood(store *world.ChunkStore, chunk *world.Chunk) Neighborhood {
	c := chunk.Coord
	return Neighborhood{
		Center: chunk,
		Left:   store.GetChunk(world.ChunkCoord{X: c.X - 1, Z: c.Z}, false),
		Right:  store.GetChunk(world.ChunkCoord{X: c.X + 1, Z: c.Z}, false),
		Front:  store.GetChunk(world.ChunkCoord{X: c.X, Z: c.Z + 1}, false),
		Back:   store.GetChunk(world.ChunkCoord{X: c.X, Z: c.Z - 1}, false),
	}
}

// blockAt resolves a local coordinate to the correct block grid, mapping
// out-of-range X/Z into the neighbor chunks. At most one coordinate may
// be out of range, which face traversal guarantees.
func (n *Neighborhood) blockAt(x, y, z int) world.BlockType {
	if y < 0 || y >= world.ChunkSizeY {
		return world.BlockTypeAir
	}
	switch {
	case x < 0:
		if n.Left == nil {
			return world.BlockTypeAir
		}
		return n.Left.Blocks[world.ChunkSizeX-1][y][z]
	case x >= world.ChunkSizeX:
		if n.Right == nil {
			return world.BlockTypeAir
		}
		return n.Right.Blocks[0][y][z]
	case z < 0:
		if n.Back == nil {
			return world.BlockTypeAir
		}
		return n.Back.Blocks[x][y][world.ChunkSizeZ-1]
	case z >= world.ChunkSizeZ:
		if n.Front == nil {
			return world.BlockTypeAir
		}
		return n.Front.Blocks[x][y][0]
	}
	return n.Center.Blocks[x][y][z]
}

// lightAt resolves a local coordinate to the correct light grid with the
// same mapping rules as blockAt.
func (n *Neighborhood) lightAt(x, y, z int) uint8 {
	if y < 0 || y >= world.ChunkSizeY {
		return 0
	}
	switch {
	case x < 0:
		if n.Left == nil {
			return 0
		}
		return n.Left.Light[world.ChunkSizeX-1][y][z]
	case x >= world.ChunkSizeX:
		if n.Right == nil {
			return 0
		}
		return n.Right.Light[0][y][z]
	case z < 0:
		if n.Back == nil {
			return 0
		}
		return n.Back.Light[x][y][world.ChunkSizeZ-1]
	case z >= world.ChunkSizeZ:
		if n.Front == nil {
			return 0
		}
		return n.Front.Light[x][y][0]
	}
	return n.Center.Light[x][y][z]
}
