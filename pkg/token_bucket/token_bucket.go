package token_bucket

import (
	"sync"
	"time"
)

/*
алгоритм простой: Allow возвращает true/false,
то есть мы либо принимаем запрос, либо отклоняем.
токены копятся дробно, поэтому даже медленная скорость пополнения в итоге дает целый токен.
*/

type Clock func() time.Time

type options struct {
	now Clock
}

type Option func(*options)

// WithClock подменяет источник времени, нужен для детерминированных тестов.
func WithClock(now Clock) Option {
	return func(o *options) {
		o.now = now
	}
}

func buildOptions(opts []Option) options {
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

type TokenBucket struct {
	capacity   float64
	tokens     float64
	refillRate float64
	lastRefill time.Time
	now        Clock
	mu         sync.Mutex
}

func NewTokenBucket(capacity int, refillRate float64, opts ...Option) *TokenBucket {
	o := buildOptions(opts)
	return newBucket(float64(capacity), refillRate, o.now)
}

func newBucket(capacity, refillRate float64, now Clock) *TokenBucket {
	return &TokenBucket{
		capacity:   capacity,
		tokens:     capacity,
		refillRate: refillRate,
		lastRefill: now(),
		now:        now,
	}
}

func (t *TokenBucket) Allow() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.refill()

	if t.tokens >= 1 {
		t.tokens--
		return true
	}
	return false
}

func (t *TokenBucket) refill() {
	now := t.now()
	elapsed := now.Sub(t.lastRefill).Seconds()
	if elapsed <= 0 {
		return
	}

	t.tokens += elapsed * t.refillRate
	if t.tokens > t.capacity {
		t.tokens = t.capacity
	}
	t.lastRefill = now
}

// Keyed держит отдельное ведро на каждый ключ (пользователь, ip).
// Ведра, к которым не обращались дольше idleTTL, удаляются при очередном Allow.
type Keyed struct {
	capacity   float64
	refillRate float64
	idleTTL    time.Duration
	now        Clock

	mu        sync.Mutex
	buckets   map[string]*keyedEntry
	lastSweep time.Time
}

type keyedEntry struct {
	bucket   *TokenBucket
	lastSeen time.Time
}

func NewKeyed(capacity int, refillRate float64, idleTTL time.Duration, opts ...Option) *Keyed {
	o := buildOptions(opts)
	return &Keyed{
		capacity:   float64(capacity),
		refillRate: refillRate,
		idleTTL:    idleTTL,
		now:        o.now,
		buckets:    make(map[string]*keyedEntry),
		lastSweep:  o.now(),
	}
}

func (k *Keyed) Allow(key string) bool {
	k.mu.Lock()
	now := k.now()
	k.sweep(now)

	entry, ok := k.buckets[key]
	if !ok {
		entry = &keyedEntry{bucket: newBucket(k.capacity, k.refillRate, k.now)}
		k.buckets[key] = entry
	}
	entry.lastSeen = now
	k.mu.Unlock()

	return entry.bucket.Allow()
}

// Len число живых ведер.
func (k *Keyed) Len() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return len(k.buckets)
}

func (k *Keyed) sweep(now time.Time) {
	if k.idleTTL <= 0 || now.Sub(k.lastSweep) < k.idleTTL {
		return
	}
	for key, entry := range k.buckets {
		if now.Sub(entry.lastSeen) >= k.idleTTL {
			delete(k.buckets, key)
		}
	}
	k.lastSweep = now
}
