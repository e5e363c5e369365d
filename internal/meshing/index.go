package meshing

import (
	"sync"

	"voxcraft/internal/world"
)

// MaxQuadsPerChunk is the worst case: every voxel emitting all 6 faces.
// The shared index buffer is sized for it once and reused unmodified by
// every chunk mesh and every stream.
const MaxQuadsPerChunk = world.ChunkSizeX * world.ChunkSizeY * world.ChunkSizeZ * 6

var (
	quadIndicesOnce sync.Once
	quadIndices     []uint32
)

// QuadIndices returns the process-wide quad triangulation index pattern:
// 0,1,2, 2,3,0 per quad, offset by 4 per quad. Built on first use, then
// read-only and safe to share between concurrent mesh builds. Callers
// must not mutate the returned slice.
func QuadIndices() []uint32 {
	quadIndicesOnce.Do(func() {
		quadIndices = make([]uint32, 0, MaxQuadsPerChunk*6)
		base := uint32(0)
		for q := 0; q < MaxQuadsPerChunk; q++ {
			quadIndices = append(quadIndices,
				base+0, base+1, base+2,
				base+2, base+3, base+0,
			)
			base += 4
		}
	})
	return quadIndices
}
