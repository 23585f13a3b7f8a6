package eventlog

import (
	"context"
	"errors"

	"github.com/jonboulle/clockwork"
	"github.com/serroba/clickledger/internal/messaging"
	"go.uber.org/zap"
)

// TopicEvents is the in-process topic events travel on between the
// dispatcher and the sink consumer.
const TopicEvents = "eventlog.events"

// DefaultBacklog is the number of events that may await delivery at once.
const DefaultBacklog = 1024

// ErrBacklogFull is returned by Dispatcher.Log when the event was dropped
// because too many events are still awaiting delivery.
var ErrBacklogFull = errors.New("eventlog: delivery backlog full")

// Counter is satisfied by prometheus counters.
type Counter interface {
	Inc()
}

// Backlog bounds the events published but not yet handed to the sink.
// The dispatcher takes a slot, the delivery handler gives it back.
type Backlog struct {
	slots chan struct{}
}

// NewBacklog creates a backlog holding at most size events.
func NewBacklog(size int) *Backlog {
	if size <= 0 {
		size = DefaultBacklog
	}

	return &Backlog{slots: make(chan struct{}, size)}
}

func (b *Backlog) acquire() bool {
	select {
	case b.slots <- struct{}{}:
		return true
	default:
		return false
	}
}

func (b *Backlog) release() {
	select {
	case <-b.slots:
	default:
	}
}

// Dispatcher is a fire-and-forget Logger: it validates and timestamps the
// event, hands it to the pub/sub and returns without waiting for the sink.
// Once the backlog is full new events are dropped and counted.
type Dispatcher struct {
	publish messaging.Publish[Event]
	clock   clockwork.Clock
	backlog *Backlog
	dropped Counter
}

// NewDispatcher creates a dispatcher publishing through publish. dropped may be nil.
func NewDispatcher(publish messaging.Publish[Event], c clockwork.Clock, backlog *Backlog, dropped Counter) *Dispatcher {
	return &Dispatcher{publish: publish, clock: c, backlog: backlog, dropped: dropped}
}

func (d *Dispatcher) Log(_ context.Context, event Event) error {
	if err := event.Validate(); err != nil {
		return err
	}

	if !d.backlog.acquire() {
		if d.dropped != nil {
			d.dropped.Inc()
		}

		return ErrBacklogFull
	}

	event = stamp(event, d.clock.Now)

	if err := d.publish(&event); err != nil {
		d.backlog.release()

		return err
	}

	return nil
}

// NewDeliveryHandler returns the consumer side of the dispatcher: it writes
// each event to sink and frees its backlog slot. Sink failures are logged,
// counted and dropped so a broken sink never causes endless redelivery.
func NewDeliveryHandler(sink Logger, backlog *Backlog, logger *zap.Logger, dropped Counter) messaging.Handler[Event] {
	return func(ctx context.Context, event *Event) error {
		defer backlog.release()

		if err := sink.Log(ctx, *event); err != nil {
			logger.Warn("event log sink rejected event",
				zap.String("level", string(event.Level)),
				zap.String("package", string(event.Package)),
				zap.Error(err),
			)

			if dropped != nil {
				dropped.Inc()
			}
		}

		return nil
	}
}
