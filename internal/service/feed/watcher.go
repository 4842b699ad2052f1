package feed

import "sync"

// Watcher держит одну текущую подписку. Смена фильтра закрывает старую подписку
// до открытия новой, так события старой выборки не попадают в новую.
type Watcher struct {
	hub subscriber
	mu  sync.Mutex
	sub *Subscription
}

type subscriber interface {
	Subscribe(filter Filter) *Subscription
}

func NewWatcher(hub subscriber) *Watcher {
	return &Watcher{hub: hub}
}

func (w *Watcher) SetFilter(filter Filter) *Subscription {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.sub != nil {
		w.sub.Close()
	}
	w.sub = w.hub.Subscribe(filter)
	return w.sub
}

func (w *Watcher) Current() *Subscription {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.sub
}

func (w *Watcher) Close() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.sub != nil {
		w.sub.Close()
		w.sub = nil
	}
}
