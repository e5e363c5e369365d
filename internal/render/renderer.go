package render

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"voxcraft/internal/meshing"
	"voxcraft/internal/profiling"
	"voxcraft/internal/registry"
	"voxcraft/internal/world"
)

const vertexShaderSrc = `#version 410 core
layout (location = 0) in ivec3 aPos;
layout (location = 1) in ivec2 aUV;
layout (location = 2) in int aLight;
layout (location = 3) in int aShade;

uniform mat4 uView;
uniform mat4 uProjection;
uniform vec3 uChunkOrigin;
uniform float uAtlasSize;

out vec2 vUV;
out float vBrightness;

void main() {
	vec3 worldPos = uChunkOrigin + vec3(aPos);
	gl_Position = uProjection * uView * vec4(worldPos, 1.0);
	vUV = vec2(aUV) / uAtlasSize;
	float light = max(float(aLight) / 255.0, 0.15);
	// Shade is the 0..10 directional constant; water vertices carry a
	// fixed 85 that deliberately saturates to full face brightness here,
	// since water's look comes from alpha blending, not from darkening.
	float shade = clamp(float(aShade) / 10.0, 0.0, 1.0);
	vBrightness = light * shade;
}
`

const fragmentShaderSrc = `#version 410 core
in vec2 vUV;
in float vBrightness;

uniform sampler2D uAtlas;

out vec4 fragColor;

void main() {
	vec4 tex = texture(uAtlas, vUV);
	if (tex.a < 0.1) {
		discard;
	}
	fragColor = vec4(tex.rgb * vBrightness, tex.a);
}
`

// chunkMesh is what the renderer needs from a per-chunk GPU mesh.
// Satisfied by ChunkMeshGL; a variable factory so tests can substitute
// a GL-free implementation.
type chunkMesh interface {
	meshing.Sink
	ResetCounts()
	DrawStream(stream meshing.Stream)
	Delete()
}

var newChunkMesh = func() chunkMesh { return NewChunkMeshGL() }

// Renderer draws chunk meshes. All methods must run on the GL thread.
type Renderer struct {
	shader  *Shader
	atlas   uint32
	meshes  map[world.ChunkCoord]chunkMesh
	results chan meshing.Result
}

// NewRenderer initializes the shared index buffer, shader program and
// block atlas. The returned results channel is where mesh workers
// deliver finished builds; call ApplyResults each frame to upload them.
func NewRenderer(atlasPath string) (*Renderer, error) {
	InitSharedIndexBuffer()

	shader, err := NewShader(vertexShaderSrc, fragmentShaderSrc)
	if err != nil {
		return nil, err
	}
	atlas, err := InitBlockAtlas(atlasPath)
	if err != nil {
		return nil, err
	}
	return &Renderer{
		shader:  shader,
		atlas:   atlas,
		meshes:  make(map[world.ChunkCoord]chunkMesh),
		results: make(chan meshing.Result, 128),
	}, nil
}

// Results returns the channel mesh jobs should deliver into.
func (r *Renderer) Results() chan meshing.Result {
	return r.results
}

// ApplyResults drains finished mesh builds and uploads them to the GPU.
// Call once per frame from the render thread.
func (r *Renderer) ApplyResults() {
	for {
		select {
		case result := <-r.results:
			r.applyResult(result)
		default:
			return
		}
	}
}

func (r *Renderer) applyResult(result meshing.Result) {
	mesh := r.meshes[result.Coord]
	if result.Data.Empty() {
		// A chunk that meshed to nothing keeps no GPU buffers around.
		if mesh != nil {
			mesh.Delete()
			delete(r.meshes, result.Coord)
		}
		return
	}
	if mesh == nil {
		mesh = newChunkMesh()
		r.meshes[result.Coord] = mesh
	}
	mesh.ResetCounts()
	result.Data.Upload(mesh)
}

// Draw renders all chunk meshes: opaque first, then models (both sides
// visible), then transparent with blending, back to front not required
// for this simple pass.
func (r *Renderer) Draw(cam *Camera) {
	defer profiling.Track("render.Draw")()

	view := cam.GetViewMatrix()
	proj := cam.GetProjectionMatrix()

	r.shader.Use()
	r.shader.SetMatrix4("uView", &view[0])
	r.shader.SetMatrix4("uProjection", &proj[0])
	r.shader.SetInt("uAtlas", 0)
	gl.Uniform1f(gl.GetUniformLocation(r.shader.ID, gl.Str("uAtlasSize\x00")), float32(registry.AtlasSizePx))

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, r.atlas)

	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.CULL_FACE)

	r.drawStream(meshing.StreamOpaque)

	gl.Disable(gl.CULL_FACE)
	r.drawStream(meshing.StreamModel)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	r.drawStream(meshing.StreamTransparent)
	gl.Disable(gl.BLEND)
}

func (r *Renderer) drawStream(stream meshing.Stream) {
	for coord, mesh := range r.meshes {
		origin := mgl32.Vec3{
			float32(coord.X * world.ChunkSizeX),
			0,
			float32(coord.Z * world.ChunkSizeZ),
		}
		r.shader.SetVector3("uChunkOrigin", origin.X(), origin.Y(), origin.Z())
		mesh.DrawStream(stream)
	}
}

// Prune frees GPU meshes for chunks no longer loaded.
func (r *Renderer) Prune(store *world.ChunkStore) int {
	freed := 0
	for coord, mesh := range r.meshes {
		if !store.HasChunk(coord) {
			mesh.Delete()
			delete(r.meshes, coord)
			freed++
		}
	}
	return freed
}

// Delete frees all GPU resources owned by the renderer.
func (r *Renderer) Delete() {
	for _, mesh := range r.meshes {
		mesh.Delete()
	}
	r.meshes = map[world.ChunkCoord]chunkMesh{}
	r.shader.Delete()
	gl.DeleteTextures(1, &r.atlas)
}
