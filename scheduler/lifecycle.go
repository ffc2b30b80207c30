package scheduler

import "sync"

// AppState mirrors the host application's visibility state.
type AppState int32

const (
	StateBackground AppState = iota
	StateInactive
	StateActive
)

func (s AppState) String() string {
	switch s {
	case StateActive:
		return "active"
	case StateInactive:
		return "inactive"
	default:
		return "background"
	}
}

// Lifecycle publishes application foreground/background transitions to any
// number of subscribers. The embedding application (or the daemon entrypoint)
// drives it via SetState.
type Lifecycle struct {
	mu        sync.Mutex
	state     AppState
	subs      map[int]chan AppState
	nextSubID int
}

func NewLifecycle(initial AppState) *Lifecycle {
	return &Lifecycle{
		state: initial,
		subs:  make(map[int]chan AppState),
	}
}

// State returns the current application state.
func (l *Lifecycle) State() AppState {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

// SetState records a transition and notifies subscribers. Setting the current
// state again is a no-op.
func (l *Lifecycle) SetState(s AppState) {
	l.mu.Lock()
	if l.state == s {
		l.mu.Unlock()
		return
	}
	l.state = s
	var notify []chan AppState
	for _, ch := range l.subs {
		notify = append(notify, ch)
	}
	l.mu.Unlock()

	for _, ch := range notify {
		select {
		case ch <- s:
		default:
		}
	}
}

// Subscribe returns a channel receiving state transitions and a cancel func
// that releases the subscription.
func (l *Lifecycle) Subscribe() (<-chan AppState, func()) {
	l.mu.Lock()
	defer l.mu.Unlock()
	id := l.nextSubID
	l.nextSubID++
	ch := make(chan AppState, 4)
	l.subs[id] = ch
	return ch, func() {
		l.mu.Lock()
		defer l.mu.Unlock()
		delete(l.subs, id)
	}
}
