package meshing

import (
	"testing"

	"voxcraft/internal/registry"
	"voxcraft/internal/world"
)

// solo returns a neighborhood with no neighbor chunks at all: every
// border behaves as air (the missing-neighbor policy).
func solo(c *world.Chunk) Neighborhood {
	return Neighborhood{Center: c}
}

func quadMultiset(verts []Vertex) map[[4]Vertex]int {
	quads := make(map[[4]Vertex]int, len(verts)/4)
	for i := 0; i+4 <= len(verts); i += 4 {
		var q [4]Vertex
		copy(q[:], verts[i:i+4])
		quads[q]++
	}
	return quads
}

func sameQuads(a, b []Vertex) bool {
	if len(a) != len(b) {
		return false
	}
	qa, qb := quadMultiset(a), quadMultiset(b)
	if len(qa) != len(qb) {
		return false
	}
	for q, n := range qa {
		if qb[q] != n {
			return false
		}
	}
	return true
}

func TestAllAirChunk(t *testing.T) {
	c := world.NewChunk(world.ChunkCoord{})
	m := Build(solo(c))
	if !m.Empty() {
		t.Fatalf("all-air chunk: got %d/%d/%d vertices, want all zero",
			len(m.Opaque), len(m.Transparent), len(m.Model))
	}
}

func TestSingleOpaqueBlockAtOrigin(t *testing.T) {
	store := world.NewChunkStore()
	c := store.GetChunk(world.ChunkCoord{}, true)
	c.SetBlock(0, 0, 0, world.BlockTypeStone)
	// All 4 horizontal neighbors present and entirely air.
	for _, d := range [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
		store.GetChunk(world.ChunkCoord{X: d[0], Z: d[1]}, true)
	}

	m := BuildChunk(store, c)
	if got := len(m.Opaque); got != 24 {
		t.Fatalf("single block: got %d opaque vertices, want 24", got)
	}
	if len(m.Transparent) != 0 || len(m.Model) != 0 {
		t.Fatalf("single block leaked into other streams: %d transparent, %d model",
			len(m.Transparent), len(m.Model))
	}
}

func TestMissingNeighborsBehaveAsAir(t *testing.T) {
	// Same block, but no neighbor chunks exist anywhere: the air-default
	// policy must still emit all 6 faces rather than refuse the build.
	c := world.NewChunk(world.ChunkCoord{})
	c.SetBlock(0, 0, 0, world.BlockTypeStone)

	m := Build(solo(c))
	if got := len(m.Opaque); got != 24 {
		t.Fatalf("missing neighbors: got %d opaque vertices, want 24", got)
	}
}

func TestFullyBuriedBlockEmitsNothing(t *testing.T) {
	store := world.NewChunkStore()
	c := store.GetChunk(world.ChunkCoord{}, true)
	// Block at the -X border so one of its occluders lives in the
	// neighbor chunk.
	c.SetBlock(0, 5, 5, world.BlockTypeStone)
	c.SetBlock(1, 5, 5, world.BlockTypeStone)
	c.SetBlock(0, 4, 5, world.BlockTypeStone)
	c.SetBlock(0, 6, 5, world.BlockTypeStone)
	c.SetBlock(0, 5, 4, world.BlockTypeStone)
	c.SetBlock(0, 5, 6, world.BlockTypeStone)
	left := store.GetChunk(world.ChunkCoord{X: -1}, true)
	left.SetBlock(world.ChunkSizeX-1, 5, 5, world.BlockTypeStone)

	m := BuildChunk(store, c)
	// The buried block contributes nothing. This chunk holds 5 of the
	// occluders (the sixth sits in the left chunk), none adjacent to
	// each other, so each shows 5 faces: 25 total.
	if got := len(m.Opaque) / 4; got != 25 {
		t.Fatalf("buried block cluster: got %d faces, want 25", got)
	}
}

func TestOneExposedFace(t *testing.T) {
	c := world.NewChunk(world.ChunkCoord{})
	// Bury the center block on 5 sides so only its top face shows.
	c.SetBlock(5, 5, 5, world.BlockTypeStone)
	c.SetBlock(4, 5, 5, world.BlockTypeDirt)
	c.SetBlock(6, 5, 5, world.BlockTypeDirt)
	c.SetBlock(5, 4, 5, world.BlockTypeDirt)
	c.SetBlock(5, 5, 4, world.BlockTypeDirt)
	c.SetBlock(5, 5, 6, world.BlockTypeDirt)

	m := Build(solo(c))

	// Only the center block's top face shows at y=6 around (5..6, 6, 5..6).
	centerTop := 0
	for i := 0; i+4 <= len(m.Opaque); i += 4 {
		isTop := true
		for _, v := range m.Opaque[i : i+4] {
			if v.Position[1] != 6 || v.Position[0] < 5 || v.Position[0] > 6 || v.Position[2] < 5 || v.Position[2] > 6 {
				isTop = false
			}
		}
		if isTop {
			centerTop++
		}
	}
	if centerTop != 1 {
		t.Fatalf("expected exactly 1 exposed top face on the center block, found %d", centerTop)
	}
	if len(m.Transparent) != 0 || len(m.Model) != 0 {
		t.Fatalf("opaque-only chunk leaked %d transparent, %d model vertices",
			len(m.Transparent), len(m.Model))
	}
}

func TestTransparentShellMerging(t *testing.T) {
	// Two water blocks sharing a face: the interface is suppressed on
	// both sides, so the pair emits 10 faces, not 12.
	c := world.NewChunk(world.ChunkCoord{})
	c.SetBlock(3, 3, 3, world.BlockTypeWater)
	c.SetBlock(4, 3, 3, world.BlockTypeWater)

	m := Build(solo(c))
	if got := len(m.Transparent) / 4; got != 10 {
		t.Fatalf("same-type transparent pair: got %d faces, want 10", got)
	}

	// Different transparent types: both sides of the interface emit.
	c2 := world.NewChunk(world.ChunkCoord{})
	c2.SetBlock(3, 3, 3, world.BlockTypeWater)
	c2.SetBlock(4, 3, 3, world.BlockTypeGlass)

	m2 := Build(solo(c2))
	if got := len(m2.Transparent) / 4; got != 12 {
		t.Fatalf("different-type transparent pair: got %d faces, want 12", got)
	}
}

func TestShellMergingAcrossChunkBorder(t *testing.T) {
	store := world.NewChunkStore()
	c := store.GetChunk(world.ChunkCoord{}, true)
	right := store.GetChunk(world.ChunkCoord{X: 1}, true)
	c.SetBlock(world.ChunkSizeX-1, 10, 0, world.BlockTypeWater)
	right.SetBlock(0, 10, 0, world.BlockTypeWater)

	m := BuildChunk(store, c)
	// 5 faces from this chunk's water block; its +X face seals against
	// the neighbor chunk's water.
	if got := len(m.Transparent) / 4; got != 5 {
		t.Fatalf("cross-chunk shell merge: got %d faces, want 5", got)
	}
}

func TestWaterShadeOverride(t *testing.T) {
	c := world.NewChunk(world.ChunkCoord{})
	c.SetBlock(2, 2, 2, world.BlockTypeWater)
	// Opaque shadow caster above: the override must still win, and the
	// caster's own faces stay out of the transparent stream.
	c.SetBlock(2, 6, 2, world.BlockTypeStone)

	m := Build(solo(c))
	if len(m.Transparent) == 0 {
		t.Fatal("water block emitted no transparent faces")
	}
	for i, v := range m.Transparent {
		if v.Shade != 85 {
			t.Fatalf("water vertex %d: shade %d, want 85", i, v.Shade)
		}
	}
}

func TestTopFaceShadowColumn(t *testing.T) {
	c := world.NewChunk(world.ChunkCoord{})
	c.SetBlock(8, 8, 8, world.BlockTypeGrass)
	c.SetBlock(8, 20, 8, world.BlockTypeStone) // casts shadow, 12 above

	m := Build(solo(c))
	sawShadedTop, sawBottom := false, false
	for i := 0; i+4 <= len(m.Opaque); i += 4 {
		q := m.Opaque[i : i+4]
		switch q[0].Shade {
		case 8: // top shade 10 dimmed by 2
			sawShadedTop = true
		case 3:
			sawBottom = true
		}
		for _, v := range q[1:] {
			if v.Shade != q[0].Shade || v.Light != q[0].Light {
				t.Fatal("face vertices disagree on shade or light")
			}
		}
	}
	if !sawShadedTop {
		t.Fatal("top face under a shadow caster was not dimmed to 8")
	}
	if !sawBottom {
		t.Fatal("bottom face missing")
	}
}

func TestShadowColumnRangeLimit(t *testing.T) {
	c := world.NewChunk(world.ChunkCoord{})
	c.SetBlock(8, 8, 8, world.BlockTypeGrass)
	// Caster past the scan range must not dim the top face.
	c.SetBlock(8, 8+shadowRange, 8, world.BlockTypeStone)

	m := Build(solo(c))
	for i := 0; i+4 <= len(m.Opaque); i += 4 {
		q := m.Opaque[i : i+4]
		if q[0].Position[1] == 9 && q[0].Shade == 8 {
			t.Fatal("shadow applied beyond the scan range")
		}
	}
}

func TestFaceLightSampledAtNeighborCell(t *testing.T) {
	c := world.NewChunk(world.ChunkCoord{})
	c.SetBlock(4, 4, 4, world.BlockTypeStone)
	c.SetLight(4, 5, 4, 200) // above
	c.SetLight(5, 4, 4, 90)  // +X side

	m := Build(solo(c))
	var topLight, rightLight uint8
	for i := 0; i+4 <= len(m.Opaque); i += 4 {
		q := m.Opaque[i : i+4]
		if q[0].Shade == 10 || q[0].Shade == 8 {
			topLight = q[0].Light
		}
		// Right face: all corners at x == 5.
		right := true
		for _, v := range q {
			if v.Position[0] != 5 {
				right = false
			}
		}
		if right && q[0].Shade == 7 {
			rightLight = q[0].Light
		}
	}
	if topLight != 200 {
		t.Fatalf("top face light = %d, want 200 (sampled above)", topLight)
	}
	if rightLight != 90 {
		t.Fatalf("right face light = %d, want 90 (sampled at +X cell)", rightLight)
	}
}

func TestCrossChunkLightSampling(t *testing.T) {
	store := world.NewChunkStore()
	c := store.GetChunk(world.ChunkCoord{}, true)
	right := store.GetChunk(world.ChunkCoord{X: 1}, true)
	c.SetBlock(world.ChunkSizeX-1, 7, 7, world.BlockTypeStone)
	right.SetLight(0, 7, 7, 123)

	m := BuildChunk(store, c)
	found := false
	for i := 0; i+4 <= len(m.Opaque); i += 4 {
		q := m.Opaque[i : i+4]
		onBorder := true
		for _, v := range q {
			if v.Position[0] != world.ChunkSizeX {
				onBorder = false
			}
		}
		if onBorder {
			found = true
			if q[0].Light != 123 {
				t.Fatalf("border face light = %d, want 123 from neighbor grid", q[0].Light)
			}
		}
	}
	if !found {
		t.Fatal("border +X face not emitted")
	}
}

func TestModelBlock(t *testing.T) {
	c := world.NewChunk(world.ChunkCoord{})
	c.SetBlock(6, 6, 6, world.BlockTypeFlower)
	c.SetLight(6, 6, 6, 180)

	m := Build(solo(c))
	want := len(registry.GetModel(world.BlockTypeFlower))
	if len(m.Opaque) != 0 || len(m.Transparent) != 0 {
		t.Fatalf("model block leaked into face streams: %d/%d", len(m.Opaque), len(m.Transparent))
	}
	if len(m.Model) != want {
		t.Fatalf("model stream: got %d vertices, want %d", len(m.Model), want)
	}
	for i, v := range m.Model {
		if v.Light != 180 {
			t.Fatalf("model vertex %d: light %d, want 180 (voxel's own cell)", i, v.Light)
		}
		if v.Shade != 10 {
			t.Fatalf("model vertex %d: shade %d, want 10 (no shadow)", i, v.Shade)
		}
	}
}

func TestModelBlockShadowed(t *testing.T) {
	c := world.NewChunk(world.ChunkCoord{})
	c.SetBlock(6, 6, 6, world.BlockTypeDeadBush)
	c.SetBlock(6, 10, 6, world.BlockTypeOakLeaves) // caster within range

	m := Build(solo(c))
	if len(m.Model) == 0 {
		t.Fatal("model stream empty")
	}
	for i, v := range m.Model {
		if v.Shade != 8 {
			t.Fatalf("shadowed model vertex %d: shade %d, want 8", i, v.Shade)
		}
	}
}

func TestFaceStreamCountsAreQuadMultiples(t *testing.T) {
	store := world.NewChunkStore()
	c := store.GetChunk(world.ChunkCoord{}, true)
	g := world.NewGenerator(42)
	g.Generate(c)

	m := BuildChunk(store, c)
	if len(m.Opaque)%4 != 0 || len(m.Transparent)%4 != 0 || len(m.Model)%4 != 0 {
		t.Fatalf("stream sizes not multiples of 4: %d/%d/%d",
			len(m.Opaque), len(m.Transparent), len(m.Model))
	}
}

func TestRebuildIsDeterministic(t *testing.T) {
	store := world.NewChunkStore()
	c := store.GetChunk(world.ChunkCoord{}, true)
	for _, d := range [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
		nb := store.GetChunk(world.ChunkCoord{X: d[0], Z: d[1]}, true)
		world.NewGenerator(7).Generate(nb)
	}
	world.NewGenerator(7).Generate(c)

	a := BuildChunk(store, c)
	b := BuildChunk(store, c)

	if !sameQuads(a.Opaque, b.Opaque) {
		t.Fatal("opaque quad multiset changed between identical builds")
	}
	if !sameQuads(a.Transparent, b.Transparent) {
		t.Fatal("transparent quad multiset changed between identical builds")
	}
	if !sameQuads(a.Model, b.Model) {
		t.Fatal("model quad multiset changed between identical builds")
	}
}

func TestTilePartitionInvariance(t *testing.T) {
	store := world.NewChunkStore()
	gen := world.NewGenerator(2024)
	for dx := -1; dx <= 1; dx++ {
		for dz := -1; dz <= 1; dz++ {
			gen.Generate(store.GetChunk(world.ChunkCoord{X: dx, Z: dz}, true))
		}
	}
	c := store.GetChunk(world.ChunkCoord{}, false)
	n := ResolveNeighborhood(store, c)

	// Trivial partition: one serial pass over the whole volume, same
	// classifier and emitter, no tiling. The tiled parallel build must
	// emit the same quads; any difference means a tile seam double-visits
	// or skips voxels.
	var serial meshBuffers
	for x := 0; x < world.ChunkSizeX; x++ {
		for y := 0; y < world.ChunkSizeY; y++ {
			for z := 0; z < world.ChunkSizeZ; z++ {
				block := n.Center.Blocks[x][y][z]
				if block == world.BlockTypeAir {
					continue
				}
				if block.IsModel() {
					serial.addModel(&n, x, y, z, block)
					continue
				}
				for face := world.BlockFace(0); face < world.FaceCount; face++ {
					d := faceDeltas[face]
					nx, ny, nz := x+d[0], y+d[1], z+d[2]
					if !faceVisible(block, n.blockAt(nx, ny, nz)) {
						continue
					}
					serial.addFace(&n, x, y, z, block, face, n.lightAt(nx, ny, nz))
				}
			}
		}
	}

	parallel := Build(n)
	if len(serial.opaque) == 0 {
		t.Fatal("generated terrain emitted no opaque geometry")
	}
	if !sameQuads(serial.opaque, parallel.Opaque) {
		t.Fatal("opaque quads differ between serial and tiled traversal")
	}
	if !sameQuads(serial.transparent, parallel.Transparent) {
		t.Fatal("transparent quads differ between serial and tiled traversal")
	}
	if !sameQuads(serial.model, parallel.Model) {
		t.Fatal("model quads differ between serial and tiled traversal")
	}
}

// recordingSink captures sink invocations for upload-contract checks.
type recordingSink struct {
	calls map[Stream]int
	sizes map[Stream]int
}

func newRecordingSink() *recordingSink {
	return &recordingSink{calls: map[Stream]int{}, sizes: map[Stream]int{}}
}

func (r *recordingSink) Upload(stream Stream, verts []Vertex) {
	r.calls[stream]++
	r.sizes[stream] = len(verts)
}

func TestUploadSkipsEmptyStreams(t *testing.T) {
	c := world.NewChunk(world.ChunkCoord{})
	c.SetBlock(0, 0, 0, world.BlockTypeStone)

	m := Build(solo(c))
	sink := newRecordingSink()
	m.Upload(sink)

	if sink.calls[StreamOpaque] != 1 {
		t.Fatalf("opaque uploads = %d, want exactly 1", sink.calls[StreamOpaque])
	}
	if sink.calls[StreamTransparent] != 0 || sink.calls[StreamModel] != 0 {
		t.Fatal("sink invoked for an empty stream")
	}
	if sink.sizes[StreamOpaque] != m.VertexCount(StreamOpaque) {
		t.Fatalf("uploaded %d vertices, recorded count %d",
			sink.sizes[StreamOpaque], m.VertexCount(StreamOpaque))
	}
}
