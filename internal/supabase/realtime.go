package supabase

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/lib/pq"
)

const (
	minReconnectInterval = time.Second
	maxReconnectInterval = time.Minute
	keepaliveInterval    = 90 * time.Second
)

// InsertListener is the push channel for one order collection. It rides on
// PostgreSQL LISTEN/NOTIFY: an insert trigger on the table raises a NOTIFY
// with the new row as JSON, and every subscriber callback gets the payload in
// arrival order. Missed events during a disconnect are not replayed.
type InsertListener struct {
	channel string
	pl      *pq.Listener

	mu        sync.Mutex
	onStatus  func(live bool)
	live      bool
	liveKnown bool
	subs      map[int]func(json.RawMessage)
	nextID    int

	closed chan struct{}
	once   sync.Once
}

func NewInsertListener(dbURL, channel string) *InsertListener {
	l := &InsertListener{
		channel: channel,
		subs:    make(map[int]func(json.RawMessage)),
		closed:  make(chan struct{}),
	}
	l.pl = pq.NewListener(dbURL, minReconnectInterval, maxReconnectInterval, l.handleEvent)
	return l
}

// OnStatusChange registers a connectivity callback: true when the channel is
// live, false when it is reconnecting. The connection goroutine runs from
// construction, so the last known state is replayed on registration and no
// transition raised before wiring is lost.
func (l *InsertListener) OnStatusChange(fn func(live bool)) {
	l.mu.Lock()
	l.onStatus = fn
	known, live := l.liveKnown, l.live
	l.mu.Unlock()
	if known {
		fn(live)
	}
}

func (l *InsertListener) Start() error {
	if err := l.pl.Listen(l.channel); err != nil {
		return fmt.Errorf("failed to listen on %s: %w", l.channel, err)
	}
	go l.run()
	return nil
}

func (l *InsertListener) handleEvent(event pq.ListenerEventType, err error) {
	switch event {
	case pq.ListenerEventConnected, pq.ListenerEventReconnected:
		l.setLive(true)
	case pq.ListenerEventDisconnected, pq.ListenerEventConnectionAttemptFailed:
		if err != nil {
			log.Printf("realtime channel %s degraded: %v", l.channel, err)
		}
		l.setLive(false)
	}
}

func (l *InsertListener) setLive(live bool) {
	l.mu.Lock()
	l.live = live
	l.liveKnown = true
	fn := l.onStatus
	l.mu.Unlock()
	if fn != nil {
		fn(live)
	}
}

func (l *InsertListener) run() {
	keepalive := time.NewTicker(keepaliveInterval)
	defer keepalive.Stop()

	for {
		select {
		case n, ok := <-l.pl.Notify:
			if !ok {
				return
			}
			// A nil notification marks a reconnect; events in between
			// are lost, which the contract allows.
			if n == nil {
				continue
			}
			l.fanOut(json.RawMessage(n.Extra))
		case <-keepalive.C:
			go func() {
				if err := l.pl.Ping(); err != nil {
					log.Printf("realtime channel %s ping failed: %v", l.channel, err)
				}
			}()
		case <-l.closed:
			return
		}
	}
}

func (l *InsertListener) fanOut(payload json.RawMessage) {
	l.mu.Lock()
	callbacks := make([]func(json.RawMessage), 0, len(l.subs))
	for _, cb := range l.subs {
		callbacks = append(callbacks, cb)
	}
	l.mu.Unlock()

	for _, cb := range callbacks {
		cb(payload)
	}
}

// Subscribe registers a callback for every inserted row. The returned handle
// is released with Unsubscribe, once.
func (l *InsertListener) Subscribe(cb func(json.RawMessage)) *Subscription {
	l.mu.Lock()
	defer l.mu.Unlock()
	id := l.nextID
	l.nextID++
	l.subs[id] = cb
	return &Subscription{listener: l, id: id}
}

func (l *InsertListener) unsubscribe(id int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.subs, id)
}

func (l *InsertListener) Close() error {
	l.once.Do(func() { close(l.closed) })
	return l.pl.Close()
}

// Subscription is an opaque handle for one registered callback.
type Subscription struct {
	listener *InsertListener
	id       int
}

func (s *Subscription) Unsubscribe() {
	s.listener.unsubscribe(s.id)
}
