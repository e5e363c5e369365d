package world

import "sync"

// ChunkStore manages the storage and retrieval of chunks.
type ChunkStore struct {
	chunks   map[ChunkCoord]*Chunk
	mu       sync.RWMutex
	modCount uint64 // increases on any chunk add/remove
}

// NewChunkStore creates an empty chunk store.
func NewChunkStore() *ChunkStore {
	return &ChunkStore{chunks: make(map[ChunkCoord]*Chunk)}
}

// GetChunk returns the chunk at the given chunk coordinate. If it does not
// exist and create is true it is created (all air, NOT generated).
func (cs *ChunkStore) GetChunk(coord ChunkCoord, create bool) *Chunk {
	cs.mu.RLock()
	chunk, exists := cs.chunks[coord]
	cs.mu.RUnlock()
	if !exists && create {
		cs.mu.Lock()
		// Double-check: another goroutine may have created it meanwhile.
		if existing, ok := cs.chunks[coord]; ok {
			cs.mu.Unlock()
			return existing
		}
		chunk = NewChunk(coord)
		cs.chunks[coord] = chunk
		cs.modCount++
		cs.mu.Unlock()
	}
	return chunk
}

// HasChunk checks existence without creating.
func (cs *ChunkStore) HasChunk(coord ChunkCoord) bool {
	cs.mu.RLock()
	_, ok := cs.chunks[coord]
	cs.mu.RUnlock()
	return ok
}

// AddChunk adds a pre-generated chunk; existing chunks are not replaced.
func (cs *ChunkStore) AddChunk(chunk *Chunk) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	if _, ok := cs.chunks[chunk.Coord]; !ok {
		cs.chunks[chunk.Coord] = chunk
		cs.modCount++
	}
}

// GetAllChunks returns all loaded chunks.
func (cs *ChunkStore) GetAllChunks() []*Chunk {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	out := make([]*Chunk, 0, len(cs.chunks))
	for _, c := range cs.chunks {
		out = append(out, c)
	}
	return out
}

// GetModCount returns the current modification count of the chunk map.
func (cs *ChunkStore) GetModCount() uint64 {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	return cs.modCount
}

// EvictFarChunks removes chunks outside the given radius (in chunks)
// around the center coordinate. Returns the number removed.
func (cs *ChunkStore) EvictFarChunks(center ChunkCoord, radius int) int {
	removed := 0
	cs.mu.Lock()
	for coord := range cs.chunks {
		dx := coord.X - center.X
		dz := coord.Z - center.Z
		if dx*dx+dz*dz > radius*radius {
			delete(cs.chunks, coord)
			cs.modCount++
			removed++
		}
	}
	cs.mu.Unlock()
	return removed
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// mod returns the non-negative remainder of a/b.
func mod(a, b int) int {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}

// BlockToChunk returns the chunk coordinate containing a world X/Z block
// position.
func BlockToChunk(x, z int) ChunkCoord {
	return ChunkCoord{X: floorDiv(x, ChunkSizeX), Z: floorDiv(z, ChunkSizeZ)}
}

// Get returns the block type at world coordinates, air where no chunk is
// loaded or Y is out of range.
func (cs *ChunkStore) Get(x, y, z int) BlockType {
	coord := ChunkCoord{X: floorDiv(x, ChunkSizeX), Z: floorDiv(z, ChunkSizeZ)}
	chunk := cs.GetChunk(coord, false)
	if chunk == nil {
		return BlockTypeAir
	}
	return chunk.GetBlock(mod(x, ChunkSizeX), y, mod(z, ChunkSizeZ))
}

// Set sets the block type at world coordinates, creating the chunk when
// needed. Border writes mark the adjacent chunk dirty so its mesh picks
// up the changed face.
func (cs *ChunkStore) Set(x, y, z int, b BlockType) {
	coord := ChunkCoord{X: floorDiv(x, ChunkSizeX), Z: floorDiv(z, ChunkSizeZ)}
	chunk := cs.GetChunk(coord, true)

	localX := mod(x, ChunkSizeX)
	localZ := mod(z, ChunkSizeZ)
	chunk.SetBlock(localX, y, localZ, b)

	markDirty := func(c ChunkCoord) {
		if nb := cs.GetChunk(c, false); nb != nil {
			nb.MarkDirty()
		}
	}
	if localX == 0 {
		markDirty(ChunkCoord{X: coord.X - 1, Z: coord.Z})
	} else if localX == ChunkSizeX-1 {
		markDirty(ChunkCoord{X: coord.X + 1, Z: coord.Z})
	}
	if localZ == 0 {
		markDirty(ChunkCoord{X: coord.X, Z: coord.Z - 1})
	} else if localZ == ChunkSizeZ-1 {
		markDirty(ChunkCoord{X: coord.X, Z: coord.Z + 1})
	}
}

// IsAir checks whether the block at world coordinates is air.
func (cs *ChunkStore) IsAir(x, y, z int) bool {
	return cs.Get(x, y, z) == BlockTypeAir
}
