package ingester

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-analyzer/internal/model"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// State describes what the pipeline is doing right now.
type State string

var (
	// StateIdle means nothing is queued and nothing is processing.
	StateIdle State = "idle"
	// StateQueued means blocks are waiting while the slot is free.
	StateQueued State = "queued"
	// StateProcessing means one block is being processed and nothing is waiting.
	StateProcessing State = "processing"
	// StateDraining means one block is being processed and more are waiting.
	StateDraining State = "draining"
)

// Config tunes block processing.
type Config struct {
	Thresholds model.Thresholds
	// ReceiptWorkers bounds concurrent receipt fetches; 1 fetches sequentially.
	ReceiptWorkers int
	// BlockTimeout bounds the processing of one block; 0 disables it.
	BlockTimeout time.Duration
}

// DefaultConfig returns default thresholds, sequential receipts and a two minute block deadline.
func DefaultConfig() Config {
	return Config{
		Thresholds:     model.DefaultThresholds(),
		ReceiptWorkers: defaultReceiptWorkers,
		BlockTimeout:   defaultBlockTimeout,
	}
}

// Pipeline processes announced block numbers one at a time in arrival order.
//
// Numbers are appended to an unbounded FIFO queue by Enqueue; a single worker
// started by Run owns the processing slot and drains the queue. A failed block
// is logged and skipped, it never stops the worker.
type Pipeline struct {
	logger         *zap.Logger
	metrics        PipelineMetrics
	blockProcessor BlockProcessor
	blockTimeout   time.Duration

	mu    sync.Mutex
	queue []uint64
	busy  bool
	wake  chan struct{}
}

// NewPipeline builds a Pipeline that analyzes blocks read from gateway and writes them to sink.
func NewPipeline(
	gateway Gateway,
	sink Sink,
	metrics PipelineMetrics,
	cfg Config,
	logger *zap.Logger,
) (*Pipeline, error) {
	if gateway == nil {
		return nil, errors.New("ledger gateway is required")
	}
	if sink == nil {
		return nil, errors.New("persistence sink is required")
	}
	if metrics == nil {
		return nil, errors.New("pipeline metrics is required")
	}
	if err := cfg.Thresholds.Validate(); err != nil {
		return nil, fmt.Errorf("invalid thresholds: %w", err)
	}
	if cfg.ReceiptWorkers <= 0 {
		cfg.ReceiptWorkers = defaultReceiptWorkers
	}
	if cfg.BlockTimeout < 0 {
		return nil, fmt.Errorf("block timeout %s must not be negative", cfg.BlockTimeout)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return newPipeline(&blockProcessor{
		gateway:        gateway,
		sink:           sink,
		metrics:        metrics,
		thresholds:     cfg.Thresholds,
		receiptWorkers: cfg.ReceiptWorkers,
		now:            time.Now,
		newID:          uuid.NewString,
		logger:         logger.Named("blockProcessor"),
	}, metrics, cfg.BlockTimeout, logger), nil
}

func newPipeline(processor BlockProcessor, metrics PipelineMetrics, blockTimeout time.Duration, logger *zap.Logger) *Pipeline {
	return &Pipeline{
		logger:         logger,
		metrics:        metrics,
		blockProcessor: processor,
		blockTimeout:   blockTimeout,
		wake:           make(chan struct{}, 1),
	}
}

// Enqueue appends a block number to the tail of the queue. It never blocks on
// processing and accepts duplicates.
func (p *Pipeline) Enqueue(number uint64) {
	p.mu.Lock()
	p.queue = append(p.queue, number)
	length := len(p.queue)
	p.mu.Unlock()

	p.metrics.ObserveQueueLength(length)
	select {
	case p.wake <- struct{}{}:
	default:
	}
}

// IsBusy reports whether a block is being processed.
func (p *Pipeline) IsBusy() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.busy
}

// QueueLen returns the number of blocks waiting for the slot.
func (p *Pipeline) QueueLen() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.queue)
}

// State returns the current pipeline state.
func (p *Pipeline) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()

	switch {
	case p.busy && len(p.queue) > 0:
		return StateDraining
	case p.busy:
		return StateProcessing
	case len(p.queue) > 0:
		return StateQueued
	default:
		return StateIdle
	}
}

// Run forwards notifications into the queue and processes queued blocks until
// ctx is canceled. A block already being processed when ctx is canceled runs to
// completion or to its deadline. notifications may be nil when blocks are only
// added with Enqueue.
func (p *Pipeline) Run(ctx context.Context, notifications <-chan uint64) error {
	if notifications != nil {
		go p.forward(ctx, notifications)
	}

	for {
		number, remaining, ok := p.next()
		if !ok {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-p.wake:
				continue
			}
		}
		p.metrics.ObserveQueueLength(remaining)

		p.process(ctx, number)
		if err := ctx.Err(); err != nil {
			p.release()
			return err
		}
	}
}

func (p *Pipeline) forward(ctx context.Context, notifications <-chan uint64) {
	for {
		select {
		case <-ctx.Done():
			return
		case number, ok := <-notifications:
			if !ok {
				p.logger.Info("notification stream closed")
				return
			}
			p.Enqueue(number)
		}
	}
}

// next pops the queue head and claims the slot in one critical section. With an
// empty queue it frees the slot instead. remaining is the queue length after the pop.
func (p *Pipeline) next() (number uint64, remaining int, ok bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if len(p.queue) == 0 {
		p.busy = false
		return 0, 0, false
	}
	number = p.queue[0]
	p.queue = p.queue[1:]
	p.busy = true
	return number, len(p.queue), true
}

func (p *Pipeline) release() {
	p.mu.Lock()
	p.busy = false
	p.mu.Unlock()
}

func (p *Pipeline) process(ctx context.Context, number uint64) {
	ctx = context.WithoutCancel(ctx)
	if p.blockTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.blockTimeout)
		defer cancel()
	}

	logger := p.logger.With(zap.Uint64("block", number))
	logger.Debug("processing block", zap.Int("queued", p.QueueLen()))

	started := time.Now()
	err := p.processSafely(ctx, number)
	p.metrics.ObserveProcessBlock(err, number, started)
	if err != nil {
		logger.Error("block processing failed; skipping", zap.Error(err))
		return
	}
	logger.Info("block processed", zap.Duration("elapsed", time.Since(started)))
}

func (p *Pipeline) processSafely(ctx context.Context, number uint64) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic while processing block %d: %v", number, r)
		}
	}()
	return p.blockProcessor.Process(ctx, number)
}
