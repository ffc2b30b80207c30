// Package errorlog collapses repeated identical request failures into
// throttled log events so a sustained outage produces one line every few
// seconds instead of one per attempt.
package errorlog

import (
	"sort"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"
)

const (
	// DefaultThrottle is the minimum gap between two log emissions for the
	// same key.
	DefaultThrottle = 5 * time.Second
	// DefaultCapacity bounds the number of distinct failure keys tracked.
	DefaultCapacity = 50
)

var (
	errorsObserved = promauto.NewCounter(prometheus.CounterOpts{
		Name: "admin_client_request_errors_total",
		Help: "Total number of request failures observed",
	})
	errorsLogged = promauto.NewCounter(prometheus.CounterOpts{
		Name: "admin_client_request_errors_logged_total",
		Help: "Request failures that passed dedup throttling and were logged",
	})
	errorsSuppressed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "admin_client_request_errors_suppressed_total",
		Help: "Request failures suppressed by dedup throttling",
	})
)

// Key identifies a class of failure. Transport failures sharing a method, URL
// and network classifier are duplicates; HTTP failures are duplicates when
// method, URL and status match.
type Key struct {
	Method     string
	Classifier string
	URL        string
}

type entry struct {
	count        int
	firstSeen    time.Time
	lastLoggedAt time.Time
}

// Cache decides whether a failure observation is worth surfacing. It performs
// no network action and knows nothing about retries. Construct one instance
// at process start and share it across call sites.
type Cache struct {
	mu       sync.Mutex
	entries  map[Key]*entry
	throttle time.Duration
	capacity int
	now      func() time.Time

	log *zap.SugaredLogger
}

// Option customises a Cache.
type Option func(*Cache)

// WithThrottle overrides the throttle window.
func WithThrottle(d time.Duration) Option {
	return func(c *Cache) { c.throttle = d }
}

// WithCapacity overrides the entry ceiling.
func WithCapacity(n int) Option {
	return func(c *Cache) { c.capacity = n }
}

// WithClock injects a time source, used by tests.
func WithClock(now func() time.Time) Option {
	return func(c *Cache) { c.now = now }
}

func New(log *zap.SugaredLogger, opts ...Option) *Cache {
	c := &Cache{
		entries:  make(map[Key]*entry),
		throttle: DefaultThrottle,
		capacity: DefaultCapacity,
		now:      time.Now,
		log:      log,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Observe records one failure occurrence for key and reports whether it
// should be logged. The returned count is the total number of occurrences
// seen so far, including suppressed ones.
func (c *Cache) Observe(key Key) (logIt bool, count int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	errorsObserved.Inc()
	now := c.now()

	e, ok := c.entries[key]
	if !ok {
		c.entries[key] = &entry{count: 1, firstSeen: now, lastLoggedAt: now}
		c.evictLocked()
		errorsLogged.Inc()
		return true, 1
	}

	e.count++
	if now.Sub(e.lastLoggedAt) >= c.throttle {
		e.lastLoggedAt = now
		errorsLogged.Inc()
		return true, e.count
	}
	errorsSuppressed.Inc()
	return false, e.count
}

// evictLocked drops the oldest-by-last-logged entries until the cache is back
// at its capacity. Not a strict LRU: the eviction key is last-logged time,
// not last-seen time.
func (c *Cache) evictLocked() {
	if len(c.entries) <= c.capacity {
		return
	}
	type keyed struct {
		key Key
		at  time.Time
	}
	all := make([]keyed, 0, len(c.entries))
	for k, e := range c.entries {
		all = append(all, keyed{key: k, at: e.lastLoggedAt})
	}
	sort.Slice(all, func(i, j int) bool { return all[i].at.Before(all[j].at) })
	for _, k := range all[:len(all)-c.capacity] {
		delete(c.entries, k.key)
	}
}

// LogRequestError routes a failure through the cache and, when it passes
// throttling, emits a single structured line carrying the accumulated
// occurrence count so suppressed volume stays visible.
func (c *Cache) LogRequestError(method, classifier, url string, err error) {
	logIt, count := c.Observe(Key{Method: method, Classifier: classifier, URL: url})
	if !logIt {
		return
	}
	c.log.Errorw("api request failed",
		"method", method,
		"classifier", classifier,
		"url", url,
		"occurrences", count,
		"error", err,
	)
}

// Stats returns the occurrence count per tracked key. Useful for debugging.
func (c *Cache) Stats() map[Key]int {
	c.mu.Lock()
	defer c.mu.Unlock()
	stats := make(map[Key]int, len(c.entries))
	for k, e := range c.entries {
		stats[k] = e.count
	}
	return stats
}

// Len returns the number of tracked keys.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Reset drops all tracked entries.
func (c *Cache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[Key]*entry)
}
