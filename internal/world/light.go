package world

// Light values are 8-bit. The mesher samples these; it never computes
// them. SeedSunlight is a plain column fill: full daylight above the
// highest occluder, dimming by a fixed step per block below it.
const (
	LightFullDay  = 255
	lightFalloff  = 32
	lightMinLevel = 16
)

// SeedSunlight fills the chunk's light grid from vertical sunlight.
// Water and leaves dim the column without blocking it entirely.
func SeedSunlight(chunk *Chunk) {
	for x := 0; x < ChunkSizeX; x++ {
		for z := 0; z < ChunkSizeZ; z++ {
			level := LightFullDay
			for y := ChunkSizeY - 1; y >= 0; y-- {
				chunk.Light[x][y][z] = uint8(level)
				b := chunk.Blocks[x][y][z]
				switch {
				case b.IsOpaque():
					level = lightMinLevel
				case b.IsTransparent():
					if level-lightFalloff > lightMinLevel {
						level -= lightFalloff
					} else {
						level = lightMinLevel
					}
				}
			}
		}
	}
}
