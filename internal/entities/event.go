package entities

import "time"

type OrderEventType string

const (
	OrderEventCreated OrderEventType = "order.created"
	OrderEventUpdated OrderEventType = "order.updated"
	OrderEventDeleted OrderEventType = "order.deleted"
)

func (t OrderEventType) String() string {
	return string(t)
}

func (t OrderEventType) IsValid() bool {
	switch t {
	case OrderEventCreated, OrderEventUpdated, OrderEventDeleted:
		return true
	default:
		return false
	}
}

// OrderEvent запись ленты изменений. CourierIDs и флаги архива охватывают
// состояние до и после изменения, чтобы обе затронутые выборки получили refetch.
type OrderEvent struct {
	Type        OrderEventType
	OrderID     int64
	CourierIDs  []int64
	Archived    bool
	WasArchived bool
	At          time.Time
}

// NewOrderEvent собирает событие по состояниям заказа до и после изменения. before может быть nil.
func NewOrderEvent(eventType OrderEventType, before, after *Order, at time.Time) OrderEvent {
	event := OrderEvent{
		Type: eventType,
		At:   at,
	}

	seen := make(map[int64]struct{}, 4)
	add := func(o *Order) {
		for _, id := range o.CourierIDs() {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			event.CourierIDs = append(event.CourierIDs, id)
		}
	}

	if before != nil {
		event.OrderID = before.ID
		event.WasArchived = before.Archived
		event.Archived = before.Archived
		add(before)
	}
	if after != nil {
		event.OrderID = after.ID
		event.Archived = after.Archived
		if before == nil {
			event.WasArchived = after.Archived
		}
		add(after)
	}
	return event
}
