package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type MetricName string

const (
	MetricTotalOrders          MetricName = "total_orders"
	MetricDelivered            MetricName = "delivered"
	MetricPartial              MetricName = "partial"
	MetricHandToHand           MetricName = "hand_to_hand"
	MetricReturn               MetricName = "return"
	MetricCanceled             MetricName = "canceled"
	MetricAssigned             MetricName = "assigned"
	MetricReceivingPart        MetricName = "receiving_part"
	MetricPaymobCollected      MetricName = "paymob_collected"
	MetricValuCollected        MetricName = "valu_collected"
	MetricOnHand               MetricName = "on_hand"
	MetricInstapay             MetricName = "instapay"
	MetricWallet               MetricName = "wallet"
	MetricVisaMachine          MetricName = "visa_machine"
	MetricTotalCOD             MetricName = "total_cod"
	MetricTotalCashOnHand      MetricName = "total_cash_on_hand"
	MetricTotalPaymobCollected MetricName = "total_paymob_collected"
	MetricTotalValuCollected   MetricName = "total_valu_collected"
	MetricDeliveryFees         MetricName = "delivery_fees_collected"
	MetricTotalCollected       MetricName = "total_collected"
)

func (n MetricName) String() string {
	return string(n)
}

type MetricResult struct {
	Name   MetricName
	Count  int
	Amount decimal.Decimal
}

type KPIs struct {
	TotalRevenue      decimal.Decimal
	CompletionRate    decimal.Decimal
	SuccessRate       decimal.Decimal
	AverageOrderValue decimal.Decimal
}

// Breakdown группа отчета: курьер, статус или способ оплаты.
type Breakdown struct {
	Key    string
	Label  string
	Count  int
	Amount decimal.Decimal
}

type ReportSummary struct {
	From        *time.Time
	To          *time.Time
	Metrics     []MetricResult
	KPIs        KPIs
	ByCourier   []Breakdown
	ByStatus    []Breakdown
	ByPayment   []Breakdown
	GeneratedAt time.Time
}

// Metric ищет метрику по имени.
func (s *ReportSummary) Metric(name MetricName) (MetricResult, bool) {
	for _, m := range s.Metrics {
		if m.Name == name {
			return m, true
		}
	}
	return MetricResult{}, false
}

type RollupPeriod string

const (
	RollupDay   RollupPeriod = "day"
	RollupWeek  RollupPeriod = "week"
	RollupMonth RollupPeriod = "month"
)

func (p RollupPeriod) String() string {
	return string(p)
}

func (p RollupPeriod) IsValid() bool {
	return p == RollupDay || p == RollupWeek || p == RollupMonth
}

type RollupBucket struct {
	PeriodStart    time.Time
	Count          int
	TotalOrderFees decimal.Decimal
}

type ExportFormat string

const (
	ExportCSV  ExportFormat = "csv"
	ExportJSON ExportFormat = "json"
)

func (f ExportFormat) String() string {
	return string(f)
}

func (f ExportFormat) IsValid() bool {
	return f == ExportCSV || f == ExportJSON
}
