package report

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"courierdesk/internal/entities"
	"courierdesk/internal/pkg/reconcile"
	"courierdesk/pkg/logger"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

const unassignedKey = "unassigned"

type Service struct {
	repository        Repository
	courierRepository CourierRepository
	cache             Cache
	txManager         TxManager
	periods           PeriodFactory
	log               serviceLogger
}

func New(
	repository Repository,
	courierRepository CourierRepository,
	cache Cache,
	txManager TxManager,
	periods PeriodFactory,
	log logger.Logger,
) *Service {
	return &Service{
		repository:        repository,
		courierRepository: courierRepository,
		cache:             cache,
		txManager:         txManager,
		periods:           periods,
		log:               log.With(logger.NewField("service", "report")),
	}
}

// Summary сводка по отфильтрованным заказам. Ошибки кэша не мешают построить отчет.
func (s *Service) Summary(ctx context.Context, filter entities.OrderFilter) (*entities.ReportSummary, error) {
	if err := validateRange(filter); err != nil {
		return nil, err
	}
	filter = reportFilter(filter)

	cached, err := s.cache.GetSummary(ctx, filter)
	switch {
	case err == nil:
		ReportCacheRequestsTotal.WithLabelValues("hit").Inc()
		return cached, nil
	case errors.Is(err, ErrCacheMiss):
		ReportCacheRequestsTotal.WithLabelValues("miss").Inc()
	default:
		ReportCacheRequestsTotal.WithLabelValues("error").Inc()
		s.log.Warn("report cache read failed", logger.NewField("error", err))
	}

	timer := prometheus.NewTimer(ReportBuildDuration.WithLabelValues("summary"))
	defer timer.ObserveDuration()

	var (
		orders   []entities.Order
		couriers []entities.Courier
	)
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		orders, err = s.loadOrders(gCtx, filter)
		return err
	})
	g.Go(func() error {
		var err error
		couriers, err = s.courierRepository.GetAll(gCtx, nil)
		if err != nil {
			return fmt.Errorf("load couriers: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	summary := BuildSummary(orders, couriers, time.Now().UTC())
	summary.From = filter.CreatedFrom
	summary.To = filter.CreatedTo

	if err := s.cache.SetSummary(ctx, filter, summary); err != nil {
		s.log.Warn("report cache write failed", logger.NewField("error", err))
	}
	return summary, nil
}

// Rollup группирует по дате создания в локальном поясе и суммирует total_order_fees,
// а не сумму курьера, как и аналитика на дашборде.
func (s *Service) Rollup(
	ctx context.Context,
	filter entities.OrderFilter,
	period entities.RollupPeriod,
) ([]entities.RollupBucket, error) {
	if !period.IsValid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidPeriod, period)
	}
	if err := validateRange(filter); err != nil {
		return nil, err
	}

	timer := prometheus.NewTimer(ReportBuildDuration.WithLabelValues("rollup"))
	defer timer.ObserveDuration()

	orders, err := s.loadOrders(ctx, reportFilter(filter))
	if err != nil {
		return nil, err
	}
	return BuildRollup(orders, period, s.periods), nil
}

func (s *Service) loadOrders(ctx context.Context, filter entities.OrderFilter) ([]entities.Order, error) {
	var orders []entities.Order
	err := s.txManager.DoReadOnly(ctx, func(ctx context.Context) error {
		var err error
		orders, err = s.repository.List(ctx, filter)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("load orders: %w", err)
	}
	return orders, nil
}

// reportFilter отчеты строятся по всему набору, постраничность игнорируется.
func reportFilter(filter entities.OrderFilter) entities.OrderFilter {
	filter.Limit = 0
	filter.Offset = 0
	return filter
}

func BuildSummary(orders []entities.Order, couriers []entities.Courier, now time.Time) *entities.ReportSummary {
	summary := &entities.ReportSummary{
		Metrics:     make([]entities.MetricResult, 0, len(Metrics)),
		GeneratedAt: now,
	}
	for _, metric := range Metrics {
		summary.Metrics = append(summary.Metrics, Aggregate(orders, metric))
	}

	total, _ := summary.Metric(entities.MetricTotalOrders)
	delivered, _ := summary.Metric(entities.MetricDelivered)
	collected, _ := summary.Metric(entities.MetricTotalCollected)
	summary.KPIs = ComputeKPIs(total, delivered, collected)

	names := make(map[string]string, len(couriers))
	for _, c := range couriers {
		names[strconv.FormatInt(c.ID, 10)] = c.Name
	}

	summary.ByCourier = breakdown(orders, courierKey, func(key string) string {
		if name, ok := names[key]; ok {
			return name
		}
		return key
	})
	summary.ByStatus = breakdown(orders, func(o *entities.Order) string {
		return o.Status.String()
	}, identity)
	summary.ByPayment = breakdown(orders, func(o *entities.Order) string {
		return reconcile.AttributePayment(o).String()
	}, identity)

	return summary
}

// courierKey архивный заказ учитывается за исходным курьером.
func courierKey(o *entities.Order) string {
	switch {
	case o.AssignedCourierID != nil:
		return strconv.FormatInt(*o.AssignedCourierID, 10)
	case o.OriginalCourierID != nil:
		return strconv.FormatInt(*o.OriginalCourierID, 10)
	default:
		return unassignedKey
	}
}

func identity(key string) string { return key }

func breakdown(
	orders []entities.Order,
	keyFn func(*entities.Order) string,
	labelFn func(string) string,
) []entities.Breakdown {
	index := make(map[string]int)
	result := make([]entities.Breakdown, 0)

	for i := range orders {
		key := keyFn(&orders[i])
		pos, ok := index[key]
		if !ok {
			pos = len(result)
			index[key] = pos
			result = append(result, entities.Breakdown{Key: key, Label: labelFn(key), Amount: decimal.Zero})
		}
		result[pos].Count++
		result[pos].Amount = result[pos].Amount.Add(reconcile.TotalCourierAmount(&orders[i]))
	}

	slices.SortFunc(result, func(a, b entities.Breakdown) int {
		if a.Count != b.Count {
			return b.Count - a.Count
		}
		return strings.Compare(a.Key, b.Key)
	})
	return result
}

func BuildRollup(orders []entities.Order, period entities.RollupPeriod, periods PeriodFactory) []entities.RollupBucket {
	index := make(map[time.Time]int)
	buckets := make([]entities.RollupBucket, 0)

	for _, o := range orders {
		start := periods.PeriodStart(period, o.CreatedAt)
		pos, ok := index[start]
		if !ok {
			pos = len(buckets)
			index[start] = pos
			buckets = append(buckets, entities.RollupBucket{PeriodStart: start, TotalOrderFees: decimal.Zero})
		}
		buckets[pos].Count++
		buckets[pos].TotalOrderFees = buckets[pos].TotalOrderFees.Add(o.TotalOrderFees)
	}

	slices.SortFunc(buckets, func(a, b entities.RollupBucket) int {
		return a.PeriodStart.Compare(b.PeriodStart)
	})
	return buckets
}
