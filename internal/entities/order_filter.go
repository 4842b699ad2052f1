package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderFilter struct {
	IDs []int64
	// CourierIDs совпадение по текущему, а при его отсутствии по исходному курьеру.
	CourierIDs []int64
	// AssignedTo строго текущий курьер, так ограничивается видимость для курьера.
	AssignedTo  *int64
	Archived    *bool
	Statuses    []OrderStatusType
	CreatedFrom *time.Time
	CreatedTo   *time.Time
	UpdatedFrom *time.Time
	UpdatedTo   *time.Time
	// Search подстрока без учета регистра по номеру, клиенту, адресу, городу и телефону.
	Search string
	Limit  uint64
	Offset uint64
}

// OrderView заказ вместе с вычисленными суммами.
type OrderView struct {
	Order
	CourierOrderAmount decimal.Decimal
	TotalCourierAmount decimal.Decimal
	ProofCount         int
}
