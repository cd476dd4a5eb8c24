package supabase

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

// newTestListener builds a listener without a database connection; the status
// bookkeeping and fan-out paths never touch pq.Listener.
func newTestListener() *InsertListener {
	return &InsertListener{
		channel: "cv_orders_inserts",
		subs:    make(map[int]func(json.RawMessage)),
		closed:  make(chan struct{}),
	}
}

func TestInsertListener_StatusReplayOnRegistration(t *testing.T) {
	l := newTestListener()

	// Connection established before anyone wired the callback.
	l.handleEvent(pq.ListenerEventConnected, nil)

	var got []bool
	l.OnStatusChange(func(live bool) { got = append(got, live) })
	assert.Equal(t, []bool{true}, got)

	l.handleEvent(pq.ListenerEventDisconnected, errors.New("connection reset"))
	assert.Equal(t, []bool{true, false}, got)

	l.handleEvent(pq.ListenerEventReconnected, nil)
	assert.Equal(t, []bool{true, false, true}, got)
}

func TestInsertListener_DegradedBeforeRegistration(t *testing.T) {
	l := newTestListener()
	l.handleEvent(pq.ListenerEventConnectionAttemptFailed, errors.New("connection refused"))

	var got []bool
	l.OnStatusChange(func(live bool) { got = append(got, live) })
	assert.Equal(t, []bool{false}, got)
}

func TestInsertListener_NoReplayWithoutTransitions(t *testing.T) {
	l := newTestListener()

	called := false
	l.OnStatusChange(func(bool) { called = true })
	assert.False(t, called)
}

func TestInsertListener_SubscribeFanOut(t *testing.T) {
	l := newTestListener()

	var payloads []string
	sub := l.Subscribe(func(p json.RawMessage) { payloads = append(payloads, string(p)) })

	l.fanOut(json.RawMessage(`{"order_ref":"CV-1"}`))
	assert.Equal(t, []string{`{"order_ref":"CV-1"}`}, payloads)

	sub.Unsubscribe()
	l.fanOut(json.RawMessage(`{"order_ref":"CV-2"}`))
	assert.Len(t, payloads, 1)
}
