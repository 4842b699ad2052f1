package report_cache

import (
	"time"

	"github.com/shopspring/decimal"
)

type SummaryCache struct {
	From        *time.Time       `json:"from,omitempty"`
	To          *time.Time       `json:"to,omitempty"`
	Metrics     []MetricCache    `json:"metrics"`
	KPIs        KPIsCache        `json:"kpis"`
	ByCourier   []BreakdownCache `json:"by_courier"`
	ByStatus    []BreakdownCache `json:"by_status"`
	ByPayment   []BreakdownCache `json:"by_payment"`
	GeneratedAt time.Time        `json:"generated_at"`
}

type MetricCache struct {
	Name   string          `json:"name"`
	Count  int             `json:"count"`
	Amount decimal.Decimal `json:"amount"`
}

type KPIsCache struct {
	TotalRevenue      decimal.Decimal `json:"total_revenue"`
	CompletionRate    decimal.Decimal `json:"completion_rate"`
	SuccessRate       decimal.Decimal `json:"success_rate"`
	AverageOrderValue decimal.Decimal `json:"average_order_value"`
}

type BreakdownCache struct {
	Key    string          `json:"key"`
	Label  string          `json:"label"`
	Count  int             `json:"count"`
	Amount decimal.Decimal `json:"amount"`
}

// filterKey поля фильтра, от которых зависит сводка. Пагинация в отчет не входит.
type filterKey struct {
	IDs         []int64    `json:"ids,omitempty"`
	CourierIDs  []int64    `json:"courier_ids,omitempty"`
	AssignedTo  *int64     `json:"assigned_to,omitempty"`
	Archived    *bool      `json:"archived,omitempty"`
	Statuses    []string   `json:"statuses,omitempty"`
	CreatedFrom *time.Time `json:"created_from,omitempty"`
	CreatedTo   *time.Time `json:"created_to,omitempty"`
	UpdatedFrom *time.Time `json:"updated_from,omitempty"`
	UpdatedTo   *time.Time `json:"updated_to,omitempty"`
	Search      string     `json:"search,omitempty"`
}
