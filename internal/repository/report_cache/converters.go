package report_cache

import (
	"time"

	"courierdesk/internal/entities"
)

func FromDomain(summary *entities.ReportSummary) SummaryCache {
	metrics := make([]MetricCache, 0, len(summary.Metrics))
	for _, m := range summary.Metrics {
		metrics = append(metrics, MetricCache{
			Name:   m.Name.String(),
			Count:  m.Count,
			Amount: m.Amount,
		})
	}

	return SummaryCache{
		From:    summary.From,
		To:      summary.To,
		Metrics: metrics,
		KPIs: KPIsCache{
			TotalRevenue:      summary.KPIs.TotalRevenue,
			CompletionRate:    summary.KPIs.CompletionRate,
			SuccessRate:       summary.KPIs.SuccessRate,
			AverageOrderValue: summary.KPIs.AverageOrderValue,
		},
		ByCourier:   fromDomainBreakdowns(summary.ByCourier),
		ByStatus:    fromDomainBreakdowns(summary.ByStatus),
		ByPayment:   fromDomainBreakdowns(summary.ByPayment),
		GeneratedAt: summary.GeneratedAt,
	}
}

func ToDomain(model *SummaryCache) *entities.ReportSummary {
	metrics := make([]entities.MetricResult, 0, len(model.Metrics))
	for _, m := range model.Metrics {
		metrics = append(metrics, entities.MetricResult{
			Name:   entities.MetricName(m.Name),
			Count:  m.Count,
			Amount: m.Amount,
		})
	}

	return &entities.ReportSummary{
		From:    model.From,
		To:      model.To,
		Metrics: metrics,
		KPIs: entities.KPIs{
			TotalRevenue:      model.KPIs.TotalRevenue,
			CompletionRate:    model.KPIs.CompletionRate,
			SuccessRate:       model.KPIs.SuccessRate,
			AverageOrderValue: model.KPIs.AverageOrderValue,
		},
		ByCourier:   toDomainBreakdowns(model.ByCourier),
		ByStatus:    toDomainBreakdowns(model.ByStatus),
		ByPayment:   toDomainBreakdowns(model.ByPayment),
		GeneratedAt: model.GeneratedAt,
	}
}

func fromDomainBreakdowns(items []entities.Breakdown) []BreakdownCache {
	result := make([]BreakdownCache, 0, len(items))
	for _, b := range items {
		result = append(result, BreakdownCache(b))
	}
	return result
}

func toDomainBreakdowns(items []BreakdownCache) []entities.Breakdown {
	result := make([]entities.Breakdown, 0, len(items))
	for _, b := range items {
		result = append(result, entities.Breakdown(b))
	}
	return result
}

func toFilterKey(filter entities.OrderFilter) filterKey {
	var statuses []string
	for _, s := range filter.Statuses {
		statuses = append(statuses, s.String())
	}

	return filterKey{
		IDs:         filter.IDs,
		CourierIDs:  filter.CourierIDs,
		AssignedTo:  filter.AssignedTo,
		Archived:    filter.Archived,
		Statuses:    statuses,
		CreatedFrom: utc(filter.CreatedFrom),
		CreatedTo:   utc(filter.CreatedTo),
		UpdatedFrom: utc(filter.UpdatedFrom),
		UpdatedTo:   utc(filter.UpdatedTo),
		Search:      filter.Search,
	}
}

func utc(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
