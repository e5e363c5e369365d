package main

import (
	"log"
	"runtime"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/xlab/closer"

	"voxcraft/internal/config"
	"voxcraft/internal/meshing"
	"voxcraft/internal/profiling"
	"voxcraft/internal/render"
	"voxcraft/internal/world"
)

func init() { runtime.LockOSThread() }

const (
	winW = 1280
	winH = 720
)

func main() {
	defer closer.Close()

	if err := config.Load("voxcraft.yaml"); err != nil {
		log.Fatalf("config: %v", err)
	}

	if err := glfw.Init(); err != nil {
		log.Fatalf("glfw init: %v", err)
	}
	closer.Bind(glfw.Terminate)

	window, err := setupWindow()
	if err != nil {
		log.Fatalf("window: %v", err)
	}

	if err := gl.Init(); err != nil {
		log.Fatalf("gl init: %v", err)
	}

	renderer, err := render.NewRenderer("assets/textures/atlas.png")
	if err != nil {
		log.Fatalf("renderer: %v", err)
	}
	closer.Bind(renderer.Delete)

	store := world.NewChunkStore()
	generator := world.NewGenerator(config.GetWorldSeed())

	pool := meshing.NewWorkerPool(config.GetMeshWorkers(), config.GetMeshQueueSize())
	closer.Bind(pool.Shutdown)

	cam := render.NewCamera(winW, winH)
	input := newInputState(window, cam)

	gl.ClearColor(0.53, 0.73, 0.95, 1.0)

	lastTime := time.Now()
	for !window.ShouldClose() {
		profiling.ResetFrame()
		frameStart := time.Now()
		dt := frameStart.Sub(lastTime).Seconds()
		lastTime = frameStart

		glfw.PollEvents()
		input.update(dt)

		streamChunks(store, generator, pool, renderer, cam)
		renderer.ApplyResults()

		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
		renderer.Draw(cam)
		window.SwapBuffers()

		if d := time.Since(frameStart); d > 16*time.Millisecond {
			log.Printf("Slow frame: %v. Top tasks: %s", d, profiling.TopN(5))
		}
	}
}

func setupWindow() (*glfw.Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(winW, winH, "voxcraft", nil, nil)
	if err != nil {
		return nil, err
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1)
	return window, nil
}

// streamChunks generates missing chunks around the camera, submits mesh
// jobs for dirty ones, and evicts chunks far outside the view radius.
func streamChunks(store *world.ChunkStore, generator *world.Generator, pool *meshing.WorkerPool, renderer *render.Renderer, cam *render.Camera) {
	defer profiling.Track("world.StreamChunks")()

	radius := config.GetRenderDistance()
	center := world.BlockToChunk(int(cam.Position.X()), int(cam.Position.Z()))

	for dx := -radius; dx <= radius; dx++ {
		for dz := -radius; dz <= radius; dz++ {
			if dx*dx+dz*dz > radius*radius {
				continue
			}
			coord := world.ChunkCoord{X: center.X + dx, Z: center.Z + dz}
			chunk := store.GetChunk(coord, false)
			if chunk == nil {
				chunk = world.NewChunk(coord)
				generator.Generate(chunk)
				store.AddChunk(chunk)
			}
			if !chunk.IsDirty() {
				continue
			}
			job := meshing.Job{Store: store, Chunk: chunk, ResultChan: renderer.Results()}
			if pool.Submit(job) {
				// Prevent duplicate submissions while the job runs.
				chunk.SetClean()
			}
		}
	}

	if store.EvictFarChunks(center, radius*2) > 0 {
		renderer.Prune(store)
	}
}
