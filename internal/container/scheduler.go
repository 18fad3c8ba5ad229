package container

import (
	"go.uber.org/zap"

	"container-indicator/internal/logger"
	"container-indicator/internal/profiling"
	"container-indicator/internal/world"
)

// DefaultBatchSize is how many containers one Tick re-evaluates.
const DefaultBatchSize = 10

// Source lists the positions of every loaded container block entity.
type Source interface {
	LoadedBlockEntities() []world.Pos
}

// Refresher re-evaluates one container.
type Refresher interface {
	Refresh(p world.Pos)
}

// SchedulerConfig configures a RefreshScheduler.
type SchedulerConfig struct {
	Source    Source
	Refresher Refresher
	BatchSize int
	Logger    *zap.Logger
}

// RefreshScheduler spreads a re-evaluation of every loaded container over several
// ticks. It is driven from the simulation goroutine and is not safe for concurrent use.
type RefreshScheduler struct {
	source    Source
	refresher Refresher
	batchSize int
	log       *zap.Logger

	queue []world.Pos
}

func NewRefreshScheduler(cfg SchedulerConfig) *RefreshScheduler {
	if cfg.Source == nil || cfg.Refresher == nil {
		panic("container: scheduler requires a source and a refresher")
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = DefaultBatchSize
	}
	return &RefreshScheduler{
		source:    cfg.Source,
		refresher: cfg.Refresher,
		batchSize: cfg.BatchSize,
		log:       logger.OrNop(cfg.Logger),
	}
}

// Trigger snapshots all loaded containers into the queue, replacing any sweep still in
// progress. Containers loaded later are not picked up by this sweep.
func (s *RefreshScheduler) Trigger() {
	s.queue = s.source.LoadedBlockEntities()
	s.log.Info("Refreshing containers", zap.Int("count", len(s.queue)))
}

// SetBatchSize changes the batch size for following ticks.
func (s *RefreshScheduler) SetBatchSize(n int) {
	if n <= 0 {
		n = DefaultBatchSize
	}
	s.batchSize = n
}

// Tick refreshes up to one batch of queued containers and returns how many it
// processed.
func (s *RefreshScheduler) Tick() int {
	if len(s.queue) == 0 {
		return 0
	}
	defer profiling.Track("container.RefreshScheduler.Tick")()

	n := min(s.batchSize, len(s.queue))
	for _, p := range s.queue[:n] {
		s.refresher.Refresh(p)
	}
	s.queue = s.queue[n:]
	if len(s.queue) == 0 {
		s.queue = nil
		s.log.Debug("container refresh finished")
	}
	return n
}

// Pending returns how many containers are still queued.
func (s *RefreshScheduler) Pending() int {
	return len(s.queue)
}
