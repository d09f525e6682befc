// Package workers contains the background dispatch pool for the media domain
package workers

import (
	"context"
	"sync"

	"github.com/go-telegram/bot/models"
	"github.com/rs/zerolog"
)

// UpdateHandler processes one update to completion
type UpdateHandler interface {
	HandleUpdate(ctx context.Context, update *models.Update)
}

// Pool is the bounded hand-off between the webhook endpoint and update
// processing: the endpoint enqueues and returns immediately, workers drain
// the queue concurrently. Updates across the pool carry no ordering
// guarantee; each dispatched update runs to completion, uncancelled.
type Pool struct {
	queue   chan *models.Update
	handler UpdateHandler
	workers int
	logger  zerolog.Logger

	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{}
	wg     sync.WaitGroup
}

// NewPool creates a new dispatch pool
func NewPool(workers int, queueSize int, handler UpdateHandler, logger zerolog.Logger) *Pool {
	ctx, cancel := context.WithCancel(context.Background())

	return &Pool{
		queue:   make(chan *models.Update, queueSize),
		handler: handler,
		workers: workers,
		logger:  logger,
		ctx:     ctx,
		cancel:  cancel,
		done:    make(chan struct{}),
	}
}

// Start launches the worker goroutines
func (p *Pool) Start() {
	p.logger.Info().Int("workers", p.workers).Int("queue_size", cap(p.queue)).Msg("Starting dispatch pool")

	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.run()
	}
}

// run drains the queue until the pool is stopped. An update picked up
// before shutdown is still processed to completion.
func (p *Pool) run() {
	defer p.wg.Done()

	for {
		select {
		case <-p.done:
			return
		case update := <-p.queue:
			p.handler.HandleUpdate(p.ctx, update)
		}
	}
}

// Enqueue hands an update to the pool without blocking. It returns false
// when the queue is full; the caller decides what the dropped dispatch
// means (the webhook endpoint logs and still answers 200).
func (p *Pool) Enqueue(update *models.Update) bool {
	select {
	case p.queue <- update:
		return true
	default:
		return false
	}
}

// Stop shuts the pool down and waits for in-flight updates to finish
func (p *Pool) Stop() error {
	p.logger.Info().Msg("Stopping dispatch pool")

	close(p.done)
	p.wg.Wait()
	p.cancel()
	return nil
}
