// Package stream fans an arena's thinking messages out to live subscribers.
// Every publish is persisted append-only through the message store and then
// delivered to each subscriber's bounded queue, FIFO per arena. All SSE
// emission goes through here; no component writes to HTTP directly.
package stream

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Yourdaylight/stock-datasource-sub001/pkg/models"
	"github.com/Yourdaylight/stock-datasource-sub001/pkg/store"
)

// ErrStreamClosed is returned when publishing to or subscribing on an arena
// whose stream has terminated.
var ErrStreamClosed = errors.New("arena stream closed")

// defaultPublishWait bounds how long a publish blocks on one slow subscriber
// before that subscriber is dropped.
const defaultPublishWait = 200 * time.Millisecond

// Processor is the arena pub/sub hub. One instance serves the whole process.
type Processor struct {
	messages    store.MessageStore
	queueSize   int
	publishWait time.Duration
	nowFn       func() time.Time
	logger      *slog.Logger

	mu     sync.Mutex
	arenas map[string]*arenaStream
}

// arenaStream is the per-arena fan-out state. Its mutex is held across
// sequence assignment, persistence and delivery, which is what makes the
// per-arena FIFO property hold for every subscriber.
type arenaStream struct {
	mu          sync.Mutex
	seq         int64
	seqLoaded   bool
	closed      bool
	subscribers map[string]*Subscription
}

// Subscription is one live subscriber. Receive from C; the channel closes
// when the arena stream terminates or the subscriber is dropped.
type Subscription struct {
	C <-chan *models.ThinkingMessage

	id      string
	arenaID string
	ch      chan *models.ThinkingMessage
	p       *Processor
}

// ID returns the subscriber's identifier.
func (s *Subscription) ID() string { return s.id }

// Close unsubscribes. Safe to call more than once and safe to race with a
// processor-side drop.
func (s *Subscription) Close() { s.p.unsubscribe(s) }

// Option configures a Processor.
type Option func(*Processor)

// WithClock replaces the wall clock, for tests.
func WithClock(now func() time.Time) Option {
	return func(p *Processor) { p.nowFn = now }
}

// WithPublishWait replaces the slow-subscriber grace period, for tests.
func WithPublishWait(d time.Duration) Option {
	return func(p *Processor) { p.publishWait = d }
}

// New creates a Processor. queueSize is the per-subscriber buffer; a
// subscriber that stays full past the publish wait is dropped.
func New(messages store.MessageStore, queueSize int, opts ...Option) *Processor {
	if queueSize <= 0 {
		queueSize = 256
	}
	p := &Processor{
		messages:    messages,
		queueSize:   queueSize,
		publishWait: defaultPublishWait,
		nowFn:       time.Now,
		logger:      slog.With("component", "stream"),
		arenas:      make(map[string]*arenaStream),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Processor) getStream(arenaID string) *arenaStream {
	p.mu.Lock()
	defer p.mu.Unlock()
	as, ok := p.arenas[arenaID]
	if !ok {
		as = &arenaStream{subscribers: make(map[string]*Subscription)}
		p.arenas[arenaID] = as
	}
	return as
}

// ensureSeqLocked loads the sequence high-water mark from the store the
// first time an arena's stream is touched, so sequences stay strictly
// increasing across process restarts. Caller holds as.mu.
func (p *Processor) ensureSeqLocked(ctx context.Context, as *arenaStream, arenaID string) error {
	if as.seqLoaded {
		return nil
	}
	last, err := p.messages.LastSequence(ctx, arenaID)
	if err != nil {
		return err
	}
	as.seq = last
	as.seqLoaded = true
	return nil
}

// Publish assigns the next sequence, persists the message and delivers it to
// every subscriber of its arena. The caller's ID and Timestamp are filled in
// when empty. Publishing blocks up to the publish wait per slow subscriber;
// a subscriber still full after that is dropped and a system message records
// the drop.
func (p *Processor) Publish(ctx context.Context, msg *models.ThinkingMessage) error {
	if msg == nil || msg.ArenaID == "" {
		return errors.New("publish: message without arena id")
	}

	as := p.getStream(msg.ArenaID)
	as.mu.Lock()
	defer as.mu.Unlock()

	if as.closed {
		return ErrStreamClosed
	}
	if err := p.ensureSeqLocked(ctx, as, msg.ArenaID); err != nil {
		return err
	}

	as.seq++
	msg.Sequence = as.seq
	if msg.ID == "" {
		msg.ID = uuid.New().String()
	}
	if msg.Timestamp.IsZero() {
		msg.Timestamp = p.nowFn().UTC()
	}

	if err := p.messages.Append(ctx, msg); err != nil {
		as.seq--
		return err
	}

	var dropped []*Subscription
	for _, sub := range as.subscribers {
		ok, err := p.deliver(ctx, sub, msg)
		if err != nil {
			// Publisher shutting down; leave subscribers alone.
			return err
		}
		if !ok {
			dropped = append(dropped, sub)
		}
	}
	for _, sub := range dropped {
		p.dropLocked(ctx, as, sub)
	}
	return nil
}

// deliver sends msg to one subscriber, waiting up to the publish wait when
// its queue is full. ok=false means the subscriber stayed full and should be
// dropped.
func (p *Processor) deliver(ctx context.Context, sub *Subscription, msg *models.ThinkingMessage) (ok bool, err error) {
	select {
	case sub.ch <- msg:
		return true, nil
	default:
	}

	timer := time.NewTimer(p.publishWait)
	defer timer.Stop()
	select {
	case sub.ch <- msg:
		return true, nil
	case <-timer.C:
		return false, nil
	case <-ctx.Done():
		return false, ctx.Err()
	}
}

// dropLocked removes a slow subscriber, closes its channel and records a
// system message visible to the remaining subscribers and in history. The
// notice itself is delivered best-effort only, so one drop cannot cascade
// into further drops. Caller holds as.mu.
func (p *Processor) dropLocked(ctx context.Context, as *arenaStream, sub *Subscription) {
	if _, ok := as.subscribers[sub.id]; !ok {
		return
	}
	delete(as.subscribers, sub.id)
	close(sub.ch)
	p.logger.Warn("Dropping slow stream subscriber",
		"arena_id", sub.arenaID, "subscriber_id", sub.id, "queue_size", p.queueSize)

	as.seq++
	notice := &models.ThinkingMessage{
		ID:        uuid.New().String(),
		ArenaID:   sub.arenaID,
		Type:      models.MessageTypeSystem,
		Content:   "subscriber dropped after queue overflow",
		Metadata:  map[string]any{"subscriber_id": sub.id},
		Sequence:  as.seq,
		Timestamp: p.nowFn().UTC(),
	}
	if err := p.messages.Append(ctx, notice); err != nil {
		p.logger.Warn("Failed to persist subscriber-drop notice",
			"arena_id", sub.arenaID, "error", err)
	}
	for _, other := range as.subscribers {
		select {
		case other.ch <- notice:
		default:
		}
	}
}

// Subscribe registers a live subscriber on an arena. Delivery starts at the
// current stream position; there is no historical replay.
func (p *Processor) Subscribe(arenaID string) (*Subscription, error) {
	as := p.getStream(arenaID)
	as.mu.Lock()
	defer as.mu.Unlock()

	if as.closed {
		return nil, ErrStreamClosed
	}
	sub := &Subscription{
		id:      uuid.New().String(),
		arenaID: arenaID,
		ch:      make(chan *models.ThinkingMessage, p.queueSize),
		p:       p,
	}
	sub.C = sub.ch
	as.subscribers[sub.id] = sub
	return sub, nil
}

func (p *Processor) unsubscribe(sub *Subscription) {
	p.mu.Lock()
	as, ok := p.arenas[sub.arenaID]
	p.mu.Unlock()
	if !ok {
		return
	}

	as.mu.Lock()
	defer as.mu.Unlock()
	if _, ok := as.subscribers[sub.id]; !ok {
		return
	}
	delete(as.subscribers, sub.id)
	close(sub.ch)
}

// CloseArena terminates an arena's stream: every subscriber channel closes,
// and later publishes or subscribes fail with ErrStreamClosed. The sequence
// counter is retained so a deleted-and-recreated entry can never reuse one.
func (p *Processor) CloseArena(arenaID string) {
	p.mu.Lock()
	as, ok := p.arenas[arenaID]
	p.mu.Unlock()
	if !ok {
		return
	}

	as.mu.Lock()
	defer as.mu.Unlock()
	if as.closed {
		return
	}
	as.closed = true
	for id, sub := range as.subscribers {
		delete(as.subscribers, id)
		close(sub.ch)
	}
}

// Forget closes an arena's stream and discards its registry entry. Used when
// the arena itself is deleted.
func (p *Processor) Forget(arenaID string) {
	p.CloseArena(arenaID)
	p.mu.Lock()
	delete(p.arenas, arenaID)
	p.mu.Unlock()
}

// SubscriberCount reports the live subscribers on an arena.
func (p *Processor) SubscriberCount(arenaID string) int {
	p.mu.Lock()
	as, ok := p.arenas[arenaID]
	p.mu.Unlock()
	if !ok {
		return 0
	}
	as.mu.Lock()
	defer as.mu.Unlock()
	return len(as.subscribers)
}
