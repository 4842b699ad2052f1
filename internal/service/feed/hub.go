package feed

import (
	"context"
	"slices"
	"sync"
	"sync/atomic"

	"courierdesk/internal/entities"
)

// Filter выборка подписчика. Пустой CourierIDs значит все курьеры, Archived=nil оба вида.
type Filter struct {
	CourierIDs []int64
	Archived   *bool
}

// Matches событие затрагивает выборку, если совпал хотя бы один курьер
// и вид архива до или после изменения.
func (f Filter) Matches(event entities.OrderEvent) bool {
	if f.Archived != nil && *f.Archived != event.Archived && *f.Archived != event.WasArchived {
		return false
	}
	if len(f.CourierIDs) == 0 {
		return true
	}
	for _, id := range event.CourierIDs {
		if slices.Contains(f.CourierIDs, id) {
			return true
		}
	}
	return false
}

// Refetch команда перечитать выборку целиком. Seq растет монотонно,
// ответ на команду с меньшим Seq устарел.
type Refetch struct {
	Seq   uint64
	Event entities.OrderEvent
}

type Hub struct {
	mu     sync.RWMutex
	subs   map[uint64]*Subscription
	nextID uint64
	seq    atomic.Uint64
}

func NewHub() *Hub {
	return &Hub{
		subs: make(map[uint64]*Subscription),
	}
}

func (h *Hub) Subscribe(filter Filter) *Subscription {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.nextID++
	sub := &Subscription{
		id:     h.nextID,
		filter: filter,
		ch:     make(chan Refetch, 1),
		hub:    h,
	}
	h.subs[sub.id] = sub
	FeedSubscriptions.Inc()
	return sub
}

// Publish не блокируется: у подписчика хранится только последняя команда,
// непрочитанная заменяется новой.
func (h *Hub) Publish(_ context.Context, event entities.OrderEvent) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, sub := range h.subs {
		if !sub.filter.Matches(event) {
			continue
		}
		cmd := Refetch{Seq: h.seq.Add(1), Event: event}
		if sub.offer(cmd) {
			FeedDispatchTotal.WithLabelValues("sent").Inc()
		} else {
			FeedDispatchTotal.WithLabelValues("coalesced").Inc()
		}
	}
}

// Seq последний выданный номер.
func (h *Hub) Seq() uint64 {
	return h.seq.Load()
}

func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}

func (h *Hub) remove(id uint64) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	sub, ok := h.subs[id]
	if !ok {
		return false
	}
	delete(h.subs, id)
	close(sub.ch)
	FeedSubscriptions.Dec()
	return true
}

type Subscription struct {
	id     uint64
	filter Filter
	ch     chan Refetch
	hub    *Hub
	mu     sync.Mutex
}

func (s *Subscription) C() <-chan Refetch {
	return s.ch
}

func (s *Subscription) Filter() Filter {
	return s.filter
}

// Close канал закрывается, повторный вызов безопасен.
func (s *Subscription) Close() {
	s.hub.remove(s.id)
}

// offer false, если пришлось выбросить непрочитанную команду.
func (s *Subscription) offer(cmd Refetch) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	select {
	case s.ch <- cmd:
		return true
	default:
	}

	select {
	case <-s.ch:
	default:
	}
	select {
	case s.ch <- cmd:
	default:
	}
	return false
}
