package uid

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// State — состояние генератора.
type State int

const (
	// StateReady — генератор выдаёт идентификаторы.
	StateReady State = iota
	// StateExhausted — биты времени исчерпаны, нужна новая эпоха или более широкое поле времени.
	StateExhausted
)

func (s State) String() string {
	switch s {
	case StateReady:
		return "ready"
	case StateExhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}

// waitInterval — пауза между опросами часов, пока секунда не сменится.
const waitInterval = time.Millisecond

// Generator — генератор 64-битных идентификаторов.
// NextID безопасен для конкурентного вызова.
type Generator struct {
	allocator    *Allocator
	epochSeconds int64
	workerID     int64
	randLimit    int64

	clock  Clock
	rand   RandSource
	logger *slog.Logger

	mu         sync.Mutex
	lastSecond int64
	sequence   int64
	exhausted  bool
}

// Option настраивает Generator.
type Option func(*Generator)

// WithClock подменяет источник времени.
func WithClock(c Clock) Option {
	return func(g *Generator) { g.clock = c }
}

// WithRand подменяет источник случайных чисел.
func WithRand(r RandSource) Option {
	return func(g *Generator) { g.rand = r }
}

// WithLogger задаёт логгер. По умолчанию slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(g *Generator) { g.logger = l }
}

// New проверяет конфигурацию, получает worker id и возвращает готовый генератор.
// При любой ошибке генератор не создаётся.
func New(ctx context.Context, cfg Config, assigner WorkerIDAssigner, opts ...Option) (*Generator, error) {
	allocator, err := NewAllocator(cfg.TimeBits, cfg.WorkerBits, cfg.SeqBits)
	if err != nil {
		return nil, err
	}

	epochSeconds, err := cfg.EpochSeconds()
	if err != nil {
		return nil, err
	}

	if cfg.RandomSequenceLimit < 0 || cfg.RandomSequenceLimit > allocator.MaxSequence() {
		return nil, fmt.Errorf("%w: randomSequenceLimit %d вне диапазона [0, %d]",
			ErrInvalidConfig, cfg.RandomSequenceLimit, allocator.MaxSequence())
	}

	if assigner == nil {
		return nil, fmt.Errorf("%w: не задан WorkerIDAssigner", ErrInvalidConfig)
	}

	g := &Generator{
		allocator:    allocator,
		epochSeconds: epochSeconds,
		randLimit:    cfg.RandomSequenceLimit,
		clock:        SystemClock,
		rand:         globalRand{},
		logger:       slog.Default(),
		lastSecond:   -1,
	}
	for _, opt := range opts {
		opt(g)
	}

	workerID, err := assigner.AssignWorkerID(ctx)
	if err != nil {
		return nil, fmt.Errorf("uid: получение worker id: %w", err)
	}
	if workerID < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidWorkerID, workerID)
	}
	if workerID > allocator.MaxWorkerID() {
		return nil, fmt.Errorf("%w: %d > %d", ErrWorkerIDExceedsMax, workerID, allocator.MaxWorkerID())
	}
	g.workerID = workerID

	g.logger.Info("генератор uid инициализирован",
		"bits", fmt.Sprintf("(1, %d, %d, %d)", cfg.TimeBits, cfg.WorkerBits, cfg.SeqBits),
		"worker_id", workerID,
		"epoch_seconds", epochSeconds,
		"random_sequence_limit", cfg.RandomSequenceLimit,
	)

	return g, nil
}

// NextID возвращает новый идентификатор.
// Любая ошибка оборачивается в ErrGenerate вместе с причиной.
// ctx прерывает только ожидание следующей секунды при исчерпании sequence.
func (g *Generator) NextID(ctx context.Context) (int64, error) {
	id, err := g.nextID(ctx)
	if err != nil {
		g.logger.Error("ошибка генерации uid", "worker_id", g.workerID, "error", err)
		return 0, fmt.Errorf("%w: %w", ErrGenerate, err)
	}
	return id, nil
}

func (g *Generator) nextID(ctx context.Context) (int64, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.exhausted {
		return 0, ErrTimestampExhausted
	}

	current, err := g.currentSecond()
	if err != nil {
		return 0, err
	}

	if current < g.lastSecond {
		return 0, &ClockMovedBackwardError{RefusedSeconds: g.lastSecond - current}
	}

	var sequence int64
	if current == g.lastSecond {
		sequence = (g.sequence + 1) & g.allocator.MaxSequence()
		if sequence == 0 {
			current, err = g.waitNextSecond(ctx, g.lastSecond)
			if err != nil {
				return 0, err
			}
		}
	} else if g.randLimit > 1 {
		// Без случайного старта в редкой нагрузке все id получаются чётными.
		sequence = g.rand.Int64N(g.randLimit)
	}

	g.lastSecond = current
	g.sequence = sequence

	return g.allocator.Allocate(current, g.workerID, sequence), nil
}

// waitNextSecond опрашивает часы, пока секунда не станет больше last.
func (g *Generator) waitNextSecond(ctx context.Context, last int64) (int64, error) {
	for {
		current, err := g.currentSecond()
		if err != nil {
			return 0, err
		}
		if current > last {
			return current, nil
		}

		select {
		case <-ctx.Done():
			return 0, ctx.Err()
		case <-time.After(waitInterval):
		}
	}
}

// currentSecond возвращает секунды от эпохи. Вызывается под mu.
func (g *Generator) currentSecond() (int64, error) {
	now := g.clock.Now().Unix()
	delta := now - g.epochSeconds
	if delta > g.allocator.MaxDeltaSeconds() {
		g.exhausted = true
		return 0, fmt.Errorf("%w: сейчас %d", ErrTimestampExhausted, now)
	}
	if delta < 0 {
		return 0, fmt.Errorf("%w: сейчас %d, эпоха %d", ErrBeforeEpoch, now, g.epochSeconds)
	}
	return delta, nil
}

// ParseUID разбирает идентификатор, выданный этим генератором.
func (g *Generator) ParseUID(id int64) Info {
	return Parse(g.allocator, g.epochSeconds, id)
}

// WorkerID — worker id, полученный при создании.
func (g *Generator) WorkerID() int64 { return g.workerID }

// Allocator — раскладка битов генератора.
func (g *Generator) Allocator() *Allocator { return g.allocator }

// EpochSeconds — эпоха в секундах Unix.
func (g *Generator) EpochSeconds() int64 { return g.epochSeconds }

// State возвращает текущее состояние генератора.
func (g *Generator) State() State {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.exhausted {
		return StateExhausted
	}
	return StateReady
}
