package queue

import (
	"context"
	"hash/fnv"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/eadirect/ea-catalog/internal/core/domain"
	"github.com/eadirect/ea-catalog/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
	writeTimeout   = 5 * time.Second
)

type job struct {
	ctx   context.Context
	entry domain.Activity
}

// Dispatcher moves activity writes off the request path. Entries are sharded
// by record, so the entries of a single record are written in the order they
// were recorded.
type Dispatcher struct {
	workers []chan job
	next    ports.ActivityLog
	log     zerolog.Logger

	mu     sync.RWMutex
	closed bool
	wg     sync.WaitGroup
}

// NewDispatcher wraps next with numWorkers sharded writers and starts them.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, next ports.ActivityLog, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan job, numWorkers),
		next:    next,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan job, channelBuffer)
		d.wg.Add(1)
		go d.runWorker(i, d.workers[i])
	}
	return d
}

// Record queues entry for its shard. When the shard is full, or the
// dispatcher is closed, the entry is written inline instead.
func (d *Dispatcher) Record(ctx context.Context, entry domain.Activity) error {
	j := job{ctx: context.WithoutCancel(ctx), entry: entry}

	d.mu.RLock()
	if !d.closed {
		select {
		case d.workers[d.shardIndex(entry)] <- j:
			d.mu.RUnlock()
			return nil
		default:
		}
	}
	d.mu.RUnlock()

	return d.write(j)
}

func (d *Dispatcher) Recent(ctx context.Context, limit int) ([]domain.Activity, error) {
	return d.next.Recent(ctx, limit)
}

// Close stops accepting queued entries and waits until every worker has
// drained its shard or ctx is done.
func (d *Dispatcher) Close(ctx context.Context) error {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		for _, ch := range d.workers {
			close(ch)
		}
	}
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// shardIndex maps a record deterministically to a worker index.
func (d *Dispatcher) shardIndex(entry domain.Activity) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(entry.Kind))
	_, _ = h.Write([]byte{0})
	_, _ = h.Write([]byte(entry.ExternalID))
	return int(h.Sum32() % uint32(len(d.workers)))
}

func (d *Dispatcher) runWorker(id int, ch <-chan job) {
	defer d.wg.Done()
	for j := range ch {
		if err := d.write(j); err != nil {
			d.log.Error().Err(err).
				Str("kind", string(j.entry.Kind)).
				Str("id", j.entry.ExternalID).
				Int("worker_id", id).
				Msg("activity write failed")
		}
	}
}

func (d *Dispatcher) write(j job) error {
	ctx, cancel := context.WithTimeout(j.ctx, writeTimeout)
	defer cancel()
	return d.next.Record(ctx, j.entry)
}
