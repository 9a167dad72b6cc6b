package queue

import (
	"context"
	"hash/fnv"

	"github.com/rs/zerolog"

	"github.com/offmarket/listing-api/internal/api/metrics"
	"github.com/offmarket/listing-api/internal/core/domain"
)

const (
	defaultWorkers = 4
	channelBuffer  = 64
)

// Matcher evaluates a newly created listing against the saved alerts and
// returns the number of alerts it satisfied.
type Matcher interface {
	Match(ctx context.Context, p domain.Property) (int, error)
}

// Dispatcher routes newly created listings to a fixed set of workers using
// consistent hashing on the property id, so matching for the same listing is
// never processed concurrently.
type Dispatcher struct {
	workers []chan domain.Property
	matcher Matcher
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, matcher Matcher, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan domain.Property, numWorkers),
		matcher: matcher,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan domain.Property, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue hands a listing to the worker responsible for its id. The call is
// non-blocking up to channelBuffer capacity.
func (d *Dispatcher) Enqueue(p domain.Property) {
	metrics.AlertQueueDepth.Inc()
	d.workers[d.shardIndex(p.ID)] <- p
}

// shardIndex maps a property id deterministically to a worker index.
func (d *Dispatcher) shardIndex(id string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(id))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan domain.Property) {
	for {
		select {
		case <-ctx.Done():
			return
		case p, ok := <-ch:
			if !ok {
				return
			}
			matched, err := d.matcher.Match(ctx, p)
			metrics.AlertQueueDepth.Dec()
			if err != nil {
				d.log.Error().Err(err).
					Str("property_id", p.ID).
					Int("worker_id", id).
					Msg("alert matching failed")
				continue
			}
			if matched > 0 {
				metrics.AlertMatchesTotal.Add(float64(matched))
				d.log.Info().
					Str("property_id", p.ID).
					Int("matched", matched).
					Msg("listing matched alerts")
			}
		}
	}
}
