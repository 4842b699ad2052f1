package restutil

import (
	"net/http"

	"courierdesk/internal/entities"
	"courierdesk/internal/generated/dto"

	"github.com/shopspring/decimal"
)

func OrderToDTO(view entities.OrderView) dto.Order {
	o := view.Order
	out := dto.Order{
		Address:            o.Address,
		Archived:           o.Archived,
		ArchivedAt:         o.ArchivedAt,
		AssignedCourierId:  o.AssignedCourierID,
		BillingCity:        o.BillingCity,
		CourierOrderAmount: view.CourierOrderAmount.StringFixed(2),
		CreatedAt:          o.CreatedAt,
		CustomerName:       o.CustomerName,
		DeliveryFee:        moneyPtr(o.DeliveryFee),
		Id:                 o.ID,
		InternalComment:    o.InternalComment,
		MobileNumber:       o.MobileNumber,
		Notes:              o.Notes,
		OrderNumber:        o.OrderNumber,
		OriginalCourierId:  o.OriginalCourierID,
		PartialPaidAmount:  moneyPtr(o.PartialPaidAmount),
		PaymentMethod:      o.PaymentMethod,
		ProofCount:         view.ProofCount,
		Proofs:             make([]dto.OrderProof, 0, len(o.Proofs)),
		Status:             o.Status.String(),
		TotalCourierAmount: view.TotalCourierAmount.StringFixed(2),
		TotalOrderFees:     o.TotalOrderFees.StringFixed(2),
		UpdatedAt:          o.UpdatedAt,
	}
	if o.CollectedBy != nil {
		v := o.CollectedBy.String()
		out.CollectedBy = &v
	}
	if o.PaymentSubType != nil {
		v := o.PaymentSubType.String()
		out.PaymentSubType = &v
	}
	for _, p := range o.Proofs {
		out.Proofs = append(out.Proofs, ProofToDTO(p))
	}
	return out
}

func OrdersToDTO(views []entities.OrderView) []dto.Order {
	out := make([]dto.Order, 0, len(views))
	for _, v := range views {
		out = append(out, OrderToDTO(v))
	}
	return out
}

func ProofToDTO(p entities.OrderProof) dto.OrderProof {
	return dto.OrderProof{
		CreatedAt: p.CreatedAt,
		Id:        p.ID,
		Url:       p.URL,
	}
}

func CourierToDTO(c entities.Courier) dto.Courier {
	return dto.Courier{
		CreatedAt: c.CreatedAt,
		Email:     c.Email,
		Id:        c.ID,
		Name:      c.Name,
		Role:      c.Role.String(),
		UpdatedAt: c.UpdatedAt,
	}
}

func BatchToDTO(result *entities.BatchResult) dto.BatchResponse {
	items := make([]dto.BatchItem, 0, len(result.Items))
	for _, item := range result.Items {
		dtoItem := dto.BatchItem{
			OrderId: item.OrderID,
			Status:  item.Status.String(),
		}
		if item.Err != nil {
			msg := BatchItemMessage(item.Err)
			dtoItem.Error = &msg
		}
		items = append(items, dtoItem)
	}
	return dto.BatchResponse{
		Atomic:    result.Atomic,
		Failed:    result.Failed(),
		Items:     items,
		Operation: result.Operation.String(),
		Succeeded: result.Succeeded(),
	}
}

// BatchStatus 200 если все заказы в целевом состоянии, иначе 207 с разбивкой по элементам.
func BatchStatus(result *entities.BatchResult) int {
	if result.Complete() {
		return http.StatusOK
	}
	return http.StatusMultiStatus
}

func SummaryToDTO(s *entities.ReportSummary) dto.ReportSummary {
	metrics := make([]dto.Metric, 0, len(s.Metrics))
	for _, m := range s.Metrics {
		metrics = append(metrics, dto.Metric{
			Amount: m.Amount.StringFixed(2),
			Count:  m.Count,
			Name:   m.Name.String(),
		})
	}
	return dto.ReportSummary{
		ByCourier:   breakdownsToDTO(s.ByCourier),
		ByPayment:   breakdownsToDTO(s.ByPayment),
		ByStatus:    breakdownsToDTO(s.ByStatus),
		From:        s.From,
		GeneratedAt: s.GeneratedAt,
		Kpis: dto.Kpis{
			AverageOrderValue: s.KPIs.AverageOrderValue.StringFixed(2),
			CompletionRate:    s.KPIs.CompletionRate.StringFixed(2),
			SuccessRate:       s.KPIs.SuccessRate.StringFixed(2),
			TotalRevenue:      s.KPIs.TotalRevenue.StringFixed(2),
		},
		Metrics: metrics,
		To:      s.To,
	}
}

func RollupToDTO(period entities.RollupPeriod, buckets []entities.RollupBucket) dto.RollupResponse {
	out := make([]dto.RollupBucket, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, dto.RollupBucket{
			Count:          b.Count,
			PeriodStart:    b.PeriodStart,
			TotalOrderFees: b.TotalOrderFees.StringFixed(2),
		})
	}
	return dto.RollupResponse{
		Buckets: out,
		Period:  period.String(),
	}
}

func breakdownsToDTO(items []entities.Breakdown) []dto.Breakdown {
	out := make([]dto.Breakdown, 0, len(items))
	for _, b := range items {
		out = append(out, dto.Breakdown{
			Amount: b.Amount.StringFixed(2),
			Count:  b.Count,
			Key:    b.Key,
			Label:  b.Label,
		})
	}
	return out
}

func moneyPtr(v *decimal.Decimal) *string {
	if v == nil {
		return nil
	}
	s := v.StringFixed(2)
	return &s
}
