package game

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"container-indicator/assets"
	"container-indicator/internal/config"
	"container-indicator/internal/container"
	"container-indicator/internal/logger"
	"container-indicator/internal/meshing"
	"container-indicator/internal/overlay"
	"container-indicator/internal/profiling"
	"container-indicator/internal/registry"
	"container-indicator/internal/storage"
	"container-indicator/internal/world"
	"container-indicator/pkg/blockmodel"
)

// TicksPerSecond is the simulation rate.
const TicksPerSecond = 20

// slowTick is how long a tick may take before it is logged with its top costs.
const slowTick = 50 * time.Millisecond

var (
	modelsOnce sync.Once
	modelsErr  error
)

// loadBlockModels attaches the embedded block models to the registry once per process.
func loadBlockModels() error {
	modelsOnce.Do(func() {
		modelsErr = registry.LoadModels(blockmodel.NewLoader(assets.FS))
	})
	return modelsErr
}

// Options configures a Session.
type Options struct {
	// ConfigPath is the YAML settings file. Empty means defaults that are never saved.
	ConfigPath string
	// Config, when set, is used instead of reading ConfigPath. Updates are still saved
	// to ConfigPath.
	Config *config.Config
	// DataDir is the block database directory. Empty keeps the database in memory.
	DataDir string
	// Workers is the number of mesh workers; zero picks one per spare CPU.
	Workers int
	Logger  *zap.Logger
}

// Session owns one authoritative world together with the engine that keeps its
// indicator flags current and the model and mesh pipeline that draws them.
type Session struct {
	ID        uuid.UUID
	Config    *config.Store
	World     *world.World
	Engine    *container.Engine
	Scheduler *container.RefreshScheduler
	Atlas     *overlay.Atlas
	Models    *overlay.ModelRegistry
	Mesher    *meshing.Mesher
	Pool      *meshing.WorkerPool
	Storage   *storage.Provider

	log   *zap.Logger
	ticks uint64

	refresh   atomic.Bool
	batchSize atomic.Int64
}

func NewSession(opts Options) (*Session, error) {
	id := uuid.New()
	log := logger.OrNop(opts.Logger).With(zap.Stringer("session", id))

	if err := loadBlockModels(); err != nil {
		log.Warn("some block models failed to load", zap.Error(err))
	}

	cfg := opts.Config
	switch {
	case cfg != nil:
	case opts.ConfigPath != "":
		var err error
		cfg, err = config.Load(opts.ConfigPath)
		if err != nil {
			log.Warn("could not write config", zap.String("path", opts.ConfigPath), zap.Error(err))
		}
	default:
		cfg = config.Default()
	}
	settings := config.NewStore(cfg, opts.ConfigPath)

	var (
		db  *storage.Provider
		err error
	)
	if opts.DataDir != "" {
		db, err = storage.Open(opts.DataDir, log.Named("storage"))
	} else {
		db, err = storage.OpenMemory(log.Named("storage"))
	}
	if err != nil {
		return nil, err
	}

	w := world.New(true, registry.InventorySize)
	engine := container.NewEngine(container.EngineConfig{
		Store:    w,
		Settings: settings,
		Logger:   log.Named("container"),
	})
	w.SetInventoryHook(engine.Refresh)

	scheduler := container.NewRefreshScheduler(container.SchedulerConfig{
		Source:    w,
		Refresher: engine,
		BatchSize: cfg.Refresh.BatchSize,
		Logger:    log.Named("refresh"),
	})

	atlas := overlay.NewAtlas(append(overlay.BlockTextures(), overlay.IndicatorSprite)...)
	models := overlay.NewModelRegistry(atlas, log.Named("overlay"))
	mesher := meshing.NewMesher(w, models, settings)

	workers := opts.Workers
	if workers <= 0 {
		workers = max(1, runtime.NumCPU()-1)
	}

	s := &Session{
		ID:        id,
		Config:    settings,
		World:     w,
		Engine:    engine,
		Scheduler: scheduler,
		Atlas:     atlas,
		Models:    models,
		Mesher:    mesher,
		Pool:      meshing.NewWorkerPool(mesher, workers, 64),
		Storage:   db,
		log:       log,
	}
	s.batchSize.Store(int64(cfg.Refresh.BatchSize))
	settings.OnChange(s.configChanged)

	log.Info("session started",
		zap.String("config", opts.ConfigPath),
		zap.String("data", opts.DataDir),
		zap.Int("workers", workers),
		zap.Bool("enabled", cfg.Enabled))
	return s, nil
}

// configChanged may run on any goroutine. The sweep itself is started by the next Tick.
func (s *Session) configChanged(cfg config.Config) {
	s.Models.Invalidate()
	for _, cc := range s.World.Chunks().GetAllChunks() {
		cc.Chunk.MarkDirty()
	}
	s.batchSize.Store(int64(cfg.Refresh.BatchSize))
	s.refresh.Store(true)
	s.log.Info("configuration changed",
		zap.Bool("enabled", cfg.Enabled),
		zap.Stringer("indicator_color", cfg.IndicatorColor),
		zap.Stringer("fuel_color", cfg.FuelColor))
}

// RequestRefresh schedules a sweep over every loaded container starting with the next
// Tick. It is safe to call from any goroutine.
func (s *Session) RequestRefresh() {
	s.refresh.Store(true)
}

// Tick advances the simulation by one step and returns how many containers the refresh
// sweep evaluated.
func (s *Session) Tick() int {
	profiling.ResetFrame()
	start := time.Now()

	if s.refresh.Swap(false) {
		s.Scheduler.SetBatchSize(int(s.batchSize.Load()))
		s.Scheduler.Trigger()
	}
	n := s.Scheduler.Tick()
	s.ticks++

	if d := time.Since(start); d > slowTick {
		s.log.Warn("slow tick",
			zap.Uint64("tick", s.ticks),
			zap.Duration("took", d),
			zap.String("top", profiling.TopN(5)))
	}
	return n
}

// Ticks returns how many ticks have run.
func (s *Session) Ticks() uint64 {
	return s.ticks
}

// Settle runs ticks until no refresh is pending, up to limit ticks. It returns the
// number of ticks it ran.
func (s *Session) Settle(limit int) int {
	n := 0
	for n < limit {
		s.Tick()
		n++
		if s.Scheduler.Pending() == 0 && !s.refresh.Load() {
			break
		}
	}
	return n
}

// Meshes rebuilds every chunk whose contents changed since it was last meshed.
func (s *Session) Meshes(ctx context.Context) ([]meshing.Mesh, error) {
	return s.Pool.RebuildDirty(ctx, s.World.Chunks())
}

// Load restores the stored blocks into the world and schedules a full refresh.
func (s *Session) Load() (int, error) {
	n, err := s.Storage.Load(s.World)
	s.log.Info("world loaded", zap.Int("blocks", n), zap.Error(err))
	s.RequestRefresh()
	return n, err
}

// Save writes every loaded container to the database.
func (s *Session) Save() (int, error) {
	n, err := s.Storage.Save(s.World)
	if err != nil {
		s.log.Error("save failed", zap.Error(err))
		return n, err
	}
	s.log.Info("world saved", zap.Int("blocks", n))
	return n, nil
}

// Close saves the world, stops the mesh workers and closes the database.
func (s *Session) Close() error {
	_, saveErr := s.Save()
	s.Pool.Shutdown()
	err := multierr.Combine(saveErr, s.Storage.Close())
	s.log.Info("session closed", zap.Uint64("ticks", s.ticks), zap.Error(err))
	return err
}
