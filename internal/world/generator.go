package world

import (
	"github.com/aquilax/go-perlin"
	"github.com/ojrac/opensimplex-go"
)

const (
	seaLevel        = 28
	minTerrainY     = 8
	terrainAmp      = 22.0
	terrainScale    = 64.0
	floraScale      = 4.0
	floraDensity    = 0.68
	flowerThreshold = 0.82
)

// Generator fills chunks with terrain. Heights come from simplex noise;
// a separate perlin field drives flora placement so flowers and bushes
// cluster instead of scattering uniformly.
type Generator struct {
	height opensimplex.Noise32
	flora  *perlin.Perlin
}

// NewGenerator creates a generator for the given world seed.
func NewGenerator(seed int64) *Generator {
	return &Generator{
		height: opensimplex.New32(seed),
		flora:  perlin.NewPerlin(2.0, 2.0, 3, seed),
	}
}

// surfaceHeight returns the terrain height for a world column.
func (g *Generator) surfaceHeight(wx, wz int) int {
	n := g.height.Eval2(float32(wx)/terrainScale, float32(wz)/terrainScale)
	h := seaLevel + int(n*terrainAmp)
	if h < minTerrainY {
		h = minTerrainY
	}
	if h > ChunkSizeY-2 {
		h = ChunkSizeY - 2
	}
	return h
}

// Generate populates a chunk's block grid and seeds its sunlight.
func (g *Generator) Generate(chunk *Chunk) {
	baseX := chunk.Coord.X * ChunkSizeX
	baseZ := chunk.Coord.Z * ChunkSizeZ

	for x := 0; x < ChunkSizeX; x++ {
		for z := 0; z < ChunkSizeZ; z++ {
			wx, wz := baseX+x, baseZ+z
			h := g.surfaceHeight(wx, wz)

			for y := 0; y <= h; y++ {
				switch {
				case y == h && h > seaLevel:
					chunk.Blocks[x][y][z] = BlockTypeGrass
				case y == h:
					chunk.Blocks[x][y][z] = BlockTypeSand
				case y >= h-3:
					chunk.Blocks[x][y][z] = BlockTypeDirt
				default:
					chunk.Blocks[x][y][z] = BlockTypeStone
				}
			}

			// Flood everything below sea level with water.
			for y := h + 1; y <= seaLevel; y++ {
				chunk.Blocks[x][y][z] = BlockTypeWater
			}

			g.placeFlora(chunk, x, z, wx, wz, h)
		}
	}

	SeedSunlight(chunk)
	chunk.MarkDirty()
}

// placeFlora drops a flower or dead bush on dry grass where the flora
// noise exceeds the density threshold.
func (g *Generator) placeFlora(chunk *Chunk, x, z, wx, wz, h int) {
	if h <= seaLevel || h+1 >= ChunkSizeY {
		return
	}
	n := (g.flora.Noise2D(float64(wx)/floraScale, float64(wz)/floraScale) + 1.0) / 2.0
	switch {
	case n > flowerThreshold:
		chunk.Blocks[x][h+1][z] = BlockTypeFlower
	case n > floraDensity:
		chunk.Blocks[x][h+1][z] = BlockTypeDeadBush
	}
}
