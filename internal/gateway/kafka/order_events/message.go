package order_events

import (
	"time"

	"courierdesk/internal/entities"
)

// Message формат события в топике. Читается обработчиком order_changed.
type Message struct {
	Type        string    `json:"type"`
	OrderID     int64     `json:"order_id"`
	CourierIDs  []int64   `json:"courier_ids"`
	Archived    bool      `json:"archived"`
	WasArchived bool      `json:"was_archived"`
	At          time.Time `json:"at"`
}

func toMessage(event entities.OrderEvent) Message {
	courierIDs := event.CourierIDs
	if courierIDs == nil {
		courierIDs = []int64{}
	}
	return Message{
		Type:        event.Type.String(),
		OrderID:     event.OrderID,
		CourierIDs:  courierIDs,
		Archived:    event.Archived,
		WasArchived: event.WasArchived,
		At:          event.At.UTC(),
	}
}

func (m Message) ToEntity() entities.OrderEvent {
	return entities.OrderEvent{
		Type:        entities.OrderEventType(m.Type),
		OrderID:     m.OrderID,
		CourierIDs:  m.CourierIDs,
		Archived:    m.Archived,
		WasArchived: m.WasArchived,
		At:          m.At,
	}
}
