package meshing

import (
	"sync"

	"voxcraft/internal/profiling"
	"voxcraft/internal/world"
)

// Tile shape for the parallel traversal. The chunk volume divides evenly
// into these; every voxel belongs to exactly one tile.
const (
	tileSizeX = 4
	tileSizeY = 8
	tileSizeZ = 4

	tilesX = world.ChunkSizeX / tileSizeX
	tilesY = world.ChunkSizeY / tileSizeY
	tilesZ = world.ChunkSizeZ / tileSizeZ

	// Capacity hints for per-tile buffers, to limit reallocation on
	// typical terrain.
	opaqueCapHint      = 256
	transparentCapHint = 64
	modelCapHint       = 16
)

// MeshData is the finished output of one build: three independent vertex
// streams, any of which may be empty. Face-stream lengths are always
// multiples of 4.
type MeshData struct {
	Opaque      []Vertex
	Transparent []Vertex
	Model       []Vertex
}

// VertexCount returns the renderable size of one stream.
func (m *MeshData) VertexCount(s Stream) int {
	switch s {
	case StreamOpaque:
		return len(m.Opaque)
	case StreamTransparent:
		return len(m.Transparent)
	case StreamModel:
		return len(m.Model)
	default:
		return 0
	}
}

// Empty reports whether the build produced no geometry at all.
func (m *MeshData) Empty() bool {
	return len(m.Opaque) == 0 && len(m.Transparent) == 0 && len(m.Model) == 0
}

// Upload hands each non-empty stream to the sink exactly once. The sink
// is never invoked with a zero-size payload.
func (m *MeshData) Upload(sink Sink) {
	if len(m.Opaque) > 0 {
		sink.Upload(StreamOpaque, m.Opaque)
	}
	if len(m.Transparent) > 0 {
		sink.Upload(StreamTransparent, m.Transparent)
	}
	if len(m.Model) > 0 {
		sink.Upload(StreamModel, m.Model)
	}
}

// faceVisible is the one visibility rule, evaluated per direction.
// Opaque blocks show a face against anything that is not opaque.
// Transparent blocks seal against same-type transparent neighbors
// (shell merging) but show the interface against a different transparent
// type. Air neighbors, including cells in an absent neighbor chunk,
// always expose the face.
func faceVisible(cur, nb world.BlockType) bool {
	if nb == world.BlockTypeAir {
		return true
	}
	if cur.IsTransparent() {
		return nb.IsTransparent() && nb != cur
	}
	return !nb.IsOpaque()
}

// Build meshes a chunk against its resolved neighborhood. It is a pure
// fork-join map over the tile partition: every tile task reads only the
// read-only grids and writes only its private buffers, so no locking
// happens during emission. The set of emitted quads is deterministic;
// their order within a stream is not part of the contract.
//
// Builds for the same chunk must be serialized by the caller, and no
// other goroutine may mutate the chunk or its neighbors while a build is
// in flight.
func Build(n Neighborhood) *MeshData {
	defer profiling.Track("meshing.Build")()

	const tileCount = tilesX * tilesY * tilesZ
	buffers := make([]meshBuffers, tileCount)

	var wg sync.WaitGroup
	for i := 0; i < tileCount; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			tx := i / (tilesY * tilesZ)
			ty := i / tilesZ % tilesY
			tz := i % tilesZ
			buffers[i] = meshTile(&n, tx*tileSizeX, ty*tileSizeY, tz*tileSizeZ)
		}(i)
	}
	wg.Wait()

	return mergeBuffers(buffers)
}

// BuildChunk resolves the neighborhood from the store and builds.
func BuildChunk(store *world.ChunkStore, chunk *world.Chunk) *MeshData {
	return Build(ResolveNeighborhood(store, chunk))
}

// meshTile classifies and emits every voxel of one tile in fixed scan
// order, accumulating into task-private buffers.
func meshTile(n *Neighborhood, x0, y0, z0 int) meshBuffers {
	buf := meshBuffers{
		opaque:      make([]Vertex, 0, opaqueCapHint),
		transparent: make([]Vertex, 0, transparentCapHint),
		model:       make([]Vertex, 0, modelCapHint),
	}

	for x := x0; x < x0+tileSizeX; x++ {
		for y := y0; y < y0+tileSizeY; y++ {
			for z := z0; z < z0+tileSizeZ; z++ {
				block := n.Center.Blocks[x][y][z]
				if block == world.BlockTypeAir {
					continue
				}

				if block.IsModel() {
					buf.addModel(n, x, y, z, block)
					continue
				}

				for face := world.BlockFace(0); face < world.FaceCount; face++ {
					d := faceDeltas[face]
					nx, ny, nz := x+d[0], y+d[1], z+d[2]
					if !faceVisible(block, n.blockAt(nx, ny, nz)) {
						continue
					}
					buf.addFace(n, x, y, z, block, face, n.lightAt(nx, ny, nz))
				}
			}
		}
	}
	return buf
}

// mergeBuffers concatenates the per-task buffers into one contiguous
// sequence per stream. Runs strictly after the join barrier.
func mergeBuffers(buffers []meshBuffers) *MeshData {
	var no, nt, nm int
	for i := range buffers {
		no += len(buffers[i].opaque)
		nt += len(buffers[i].transparent)
		nm += len(buffers[i].model)
	}

	out := &MeshData{}
	if no > 0 {
		out.Opaque = make([]Vertex, 0, no)
	}
	if nt > 0 {
		out.Transparent = make([]Vertex, 0, nt)
	}
	if nm > 0 {
		out.Model = make([]Vertex, 0, nm)
	}
	for i := range buffers {
		out.Opaque = append(out.Opaque, buffers[i].opaque...)
		out.Transparent = append(out.Transparent, buffers[i].transparent...)
		out.Model = append(out.Model, buffers[i].model...)
		// Release task-local storage eagerly.
		buffers[i] = meshBuffers{}
	}
	return out
}
