// Package chunks draws meshed chunks, indicator overlays included.
package chunks

import (
	"context"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"container-indicator/assets"
	"container-indicator/internal/graphics"
	"container-indicator/internal/graphics/renderer"
	"container-indicator/internal/logger"
	"container-indicator/internal/meshing"
	"container-indicator/internal/overlay"
	"container-indicator/internal/profiling"
	"container-indicator/internal/world"
)

const (
	vertShader = "shaders/chunk.vert"
	fragShader = "shaders/chunk.frag"

	// atlas cell size in pixels
	cellSize = 16
)

type chunkMesh struct {
	vao         uint32
	vbo         uint32
	vertexCount int32
}

// Config wires the renderable to the world and the mesher.
type Config struct {
	Store  *world.ChunkStore
	Pool   *meshing.WorkerPool
	Atlas  *overlay.Atlas
	Logger *zap.Logger
}

// Chunks implements chunk rendering.
type Chunks struct {
	store *world.ChunkStore
	pool  *meshing.WorkerPool
	atlas *overlay.Atlas
	log   *zap.Logger

	shader  *graphics.Shader
	texture uint32
	meshes  map[world.ChunkCoord]*chunkMesh
}

var _ renderer.Renderable = (*Chunks)(nil)

func New(cfg Config) *Chunks {
	if cfg.Store == nil || cfg.Pool == nil || cfg.Atlas == nil {
		panic("chunks: store, pool and atlas are required")
	}
	return &Chunks{
		store:  cfg.Store,
		pool:   cfg.Pool,
		atlas:  cfg.Atlas,
		log:    logger.OrNop(cfg.Logger),
		meshes: make(map[world.ChunkCoord]*chunkMesh),
	}
}

// Init compiles the shader and uploads the atlas.
func (c *Chunks) Init() error {
	var err error
	c.shader, err = graphics.NewShader(assets.FS, vertShader, fragShader)
	if err != nil {
		return err
	}
	c.texture = graphics.UploadTexture(c.atlas.Image(cellSize))
	c.shader.Use()
	c.shader.SetInt("atlas", 0)
	c.log.Info("chunk renderer ready", zap.Stringer("atlas", c.atlas))
	return nil
}

// Render remeshes dirty chunks and draws those inside the view frustum.
func (c *Chunks) Render(ctx renderer.RenderContext) {
	c.sync()

	defer profiling.Track("renderer.renderChunks")()
	c.shader.Use()
	c.shader.SetMat4("proj", ctx.Proj)
	c.shader.SetMat4("view", ctx.View)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, c.texture)

	view := newFrustum(ctx.Proj.Mul4(ctx.View))
	for coord, m := range c.meshes {
		if m.vertexCount == 0 || !view.containsChunk(coord) {
			continue
		}
		gl.BindVertexArray(m.vao)
		gl.DrawArrays(gl.TRIANGLES, 0, m.vertexCount)
	}
	gl.BindVertexArray(0)
}

// sync uploads fresh meshes and frees those of unloaded chunks.
func (c *Chunks) sync() {
	defer profiling.Track("renderer.syncChunks")()

	meshes, err := c.pool.RebuildDirty(context.Background(), c.store)
	if err != nil {
		c.log.Warn("chunk remesh interrupted", zap.Error(err))
	}
	for _, m := range meshes {
		c.upload(m)
	}
	for coord, m := range c.meshes {
		if !c.store.HasChunk(coord) {
			deleteMesh(m)
			delete(c.meshes, coord)
		}
	}
}

func (c *Chunks) upload(mesh meshing.Mesh) {
	existing := c.meshes[mesh.Coord]
	if existing == nil {
		existing = &chunkMesh{}
		gl.GenVertexArrays(1, &existing.vao)
		gl.GenBuffers(1, &existing.vbo)
		// Setup VAO attribute layout (pos.xyz, uv.st, color.rgb)
		stride := int32(meshing.FloatsPerVertex * 4)
		gl.BindVertexArray(existing.vao)
		gl.BindBuffer(gl.ARRAY_BUFFER, existing.vbo)
		gl.EnableVertexAttribArray(0)
		gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
		gl.EnableVertexAttribArray(1)
		gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, stride, 3*4)
		gl.EnableVertexAttribArray(2)
		gl.VertexAttribPointerWithOffset(2, 3, gl.FLOAT, false, stride, 5*4)
		c.meshes[mesh.Coord] = existing
	} else {
		gl.BindVertexArray(existing.vao)
		gl.BindBuffer(gl.ARRAY_BUFFER, existing.vbo)
	}

	if len(mesh.Vertices) > 0 {
		gl.BufferData(gl.ARRAY_BUFFER, len(mesh.Vertices)*4, gl.Ptr(mesh.Vertices), gl.DYNAMIC_DRAW)
	} else {
		// Still upload zero to keep state valid
		gl.BufferData(gl.ARRAY_BUFFER, 0, nil, gl.DYNAMIC_DRAW)
	}
	existing.vertexCount = int32(mesh.VertexCount())
	c.log.Debug("chunk uploaded",
		zap.Int("x", mesh.Coord.X), zap.Int("z", mesh.Coord.Z),
		zap.Int("quads", mesh.Quads), zap.Int("overlayQuads", mesh.OverlayQuads))
}

func deleteMesh(m *chunkMesh) {
	if m.vao != 0 {
		gl.DeleteVertexArrays(1, &m.vao)
	}
	if m.vbo != 0 {
		gl.DeleteBuffers(1, &m.vbo)
	}
}

// Dispose cleans up OpenGL resources
func (c *Chunks) Dispose() {
	for coord, m := range c.meshes {
		deleteMesh(m)
		delete(c.meshes, coord)
	}
	if c.texture != 0 {
		gl.DeleteTextures(1, &c.texture)
		c.texture = 0
	}
	if c.shader != nil {
		c.shader.Delete()
	}
}

func (c *Chunks) SetViewport(width, height int) {}
