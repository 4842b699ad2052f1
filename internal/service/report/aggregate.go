package report

import (
	"courierdesk/internal/entities"
	"courierdesk/internal/pkg/reconcile"

	"github.com/shopspring/decimal"
)

// Metric именованная метрика: какие заказы попадают и как считается сумма по ним.
type Metric struct {
	Name      entities.MetricName
	Predicate func(order *entities.Order) bool
	Amount    func(orders []*entities.Order) decimal.Decimal
}

// Aggregate применяет метрику к набору заказов.
func Aggregate(orders []entities.Order, metric Metric) entities.MetricResult {
	filtered := make([]*entities.Order, 0, len(orders))
	for i := range orders {
		if metric.Predicate(&orders[i]) {
			filtered = append(filtered, &orders[i])
		}
	}
	return entities.MetricResult{
		Name:   metric.Name,
		Count:  len(filtered),
		Amount: metric.Amount(filtered),
	}
}

func sumTotal(orders []*entities.Order) decimal.Decimal {
	sum := decimal.Zero
	for _, o := range orders {
		sum = sum.Add(reconcile.TotalCourierAmount(o))
	}
	return sum
}

func sumDeliveryFee(orders []*entities.Order) decimal.Decimal {
	sum := decimal.Zero
	for _, o := range orders {
		sum = sum.Add(reconcile.DeliveryFee(o))
	}
	return sum
}

func all(*entities.Order) bool { return true }

func byStatus(status entities.OrderStatusType) func(*entities.Order) bool {
	return func(o *entities.Order) bool {
		return o.Status == status
	}
}

func byCollector(collector entities.CollectedByType) func(*entities.Order) bool {
	return func(o *entities.Order) bool {
		return o.CollectedBy != nil && *o.CollectedBy == collector
	}
}

func bySubType(subTypes ...entities.PaymentSubType) func(*entities.Order) bool {
	return func(o *entities.Order) bool {
		if o.PaymentSubType == nil {
			return false
		}
		for _, st := range subTypes {
			if *o.PaymentSubType == st {
				return true
			}
		}
		return false
	}
}

func byAttribution(attribution entities.PaymentAttribution) func(*entities.Order) bool {
	return func(o *entities.Order) bool {
		return reconcile.AttributePayment(o) == attribution
	}
}

// Metrics полный набор метрик сводки.
// total_cod объединяет четыре подтипа, поэтому его сумма равна сумме их сумм.
var Metrics = []Metric{
	{Name: entities.MetricTotalOrders, Predicate: all, Amount: sumTotal},
	{Name: entities.MetricDelivered, Predicate: byStatus(entities.OrderDelivered), Amount: sumTotal},
	{Name: entities.MetricPartial, Predicate: byStatus(entities.OrderPartial), Amount: sumTotal},
	{Name: entities.MetricHandToHand, Predicate: byStatus(entities.OrderHandToHand), Amount: sumTotal},
	{Name: entities.MetricReturn, Predicate: byStatus(entities.OrderReturn), Amount: sumTotal},
	{Name: entities.MetricCanceled, Predicate: byStatus(entities.OrderCanceled), Amount: sumTotal},
	{Name: entities.MetricAssigned, Predicate: byStatus(entities.OrderAssigned), Amount: sumTotal},
	{Name: entities.MetricReceivingPart, Predicate: byStatus(entities.OrderReceivingPart), Amount: sumTotal},
	{Name: entities.MetricPaymobCollected, Predicate: byCollector(entities.CollectedByPaymob), Amount: sumTotal},
	{Name: entities.MetricValuCollected, Predicate: byCollector(entities.CollectedByValu), Amount: sumTotal},
	{Name: entities.MetricOnHand, Predicate: bySubType(entities.PaymentOnHand), Amount: sumTotal},
	{Name: entities.MetricInstapay, Predicate: bySubType(entities.PaymentInstapay), Amount: sumTotal},
	{Name: entities.MetricWallet, Predicate: bySubType(entities.PaymentWallet), Amount: sumTotal},
	{Name: entities.MetricVisaMachine, Predicate: bySubType(entities.PaymentVisaMachine), Amount: sumTotal},
	{Name: entities.MetricTotalCOD, Predicate: bySubType(entities.PaymentSubTypes...), Amount: sumTotal},
	{Name: entities.MetricTotalCashOnHand, Predicate: reconcile.IsCourierHeld, Amount: sumTotal},
	{
		Name:      entities.MetricTotalPaymobCollected,
		Predicate: byAttribution(entities.PaymentAttribution(entities.PaymentBucketPaymob)),
		Amount:    sumTotal,
	},
	{
		Name:      entities.MetricTotalValuCollected,
		Predicate: byAttribution(entities.PaymentAttribution(entities.PaymentBucketValu)),
		Amount:    sumTotal,
	},
	{
		Name: entities.MetricDeliveryFees,
		Predicate: func(o *entities.Order) bool {
			return reconcile.DeliveryFee(o).IsPositive()
		},
		Amount: sumDeliveryFee,
	},
	{
		Name: entities.MetricTotalCollected,
		Predicate: func(o *entities.Order) bool {
			return reconcile.TotalCourierAmount(o).IsPositive()
		},
		Amount: sumTotal,
	},
}

var hundred = decimal.NewFromInt(100)

// ComputeKPIs процент завершения при пустом наборе равен нулю.
func ComputeKPIs(total, delivered entities.MetricResult, collected entities.MetricResult) entities.KPIs {
	kpis := entities.KPIs{
		TotalRevenue:      collected.Amount,
		CompletionRate:    decimal.Zero,
		SuccessRate:       decimal.Zero,
		AverageOrderValue: decimal.Zero,
	}
	if total.Count == 0 {
		return kpis
	}

	count := decimal.NewFromInt(int64(total.Count))
	rate := decimal.NewFromInt(int64(delivered.Count)).Div(count).Mul(hundred).Round(2)
	kpis.CompletionRate = rate
	kpis.SuccessRate = rate
	kpis.AverageOrderValue = collected.Amount.Div(count).Round(2)
	return kpis
}
