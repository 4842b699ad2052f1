package restutil

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"courierdesk/internal/entities"

	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

// OrderFilter разбирает query списка заказов и отчетов.
// Списки принимаются как повтором параметра, так и через запятую.
func OrderFilter(q url.Values, loc *time.Location) (entities.OrderFilter, error) {
	var (
		filter entities.OrderFilter
		err    error
	)

	if filter.IDs, err = int64List(q, "id"); err != nil {
		return filter, err
	}
	if filter.CourierIDs, err = int64List(q, "courier_id"); err != nil {
		return filter, err
	}
	if filter.Archived, err = optionalBool(q, "archived"); err != nil {
		return filter, err
	}
	for _, raw := range stringList(q, "status") {
		filter.Statuses = append(filter.Statuses, entities.OrderStatusType(raw))
	}

	if filter.CreatedFrom, err = optionalTime(q, "created_from", loc, false); err != nil {
		return filter, err
	}
	if filter.CreatedTo, err = optionalTime(q, "created_to", loc, true); err != nil {
		return filter, err
	}
	if filter.UpdatedFrom, err = optionalTime(q, "updated_from", loc, false); err != nil {
		return filter, err
	}
	if filter.UpdatedTo, err = optionalTime(q, "updated_to", loc, true); err != nil {
		return filter, err
	}

	filter.Search = strings.TrimSpace(q.Get("q"))

	if filter.Limit, err = optionalUint(q, "limit"); err != nil {
		return filter, err
	}
	if filter.Offset, err = optionalUint(q, "offset"); err != nil {
		return filter, err
	}
	return filter, nil
}

func stringList(q url.Values, key string) []string {
	var out []string
	for _, raw := range q[key] {
		for _, part := range strings.Split(raw, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

func int64List(q url.Values, key string) ([]int64, error) {
	parts := stringList(q, key)
	if len(parts) == 0 {
		return nil, nil
	}
	out := make([]int64, 0, len(parts))
	for _, part := range parts {
		v, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %s=%q", ErrInvalidQuery, key, part)
		}
		out = append(out, v)
	}
	return out, nil
}

func optionalBool(q url.Values, key string) (*bool, error) {
	raw := q.Get(key)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s=%q", ErrInvalidQuery, key, raw)
	}
	return &v, nil
}

func optionalUint(q url.Values, key string) (uint64, error) {
	raw := q.Get(key)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q", ErrInvalidQuery, key, raw)
	}
	return v, nil
}

// optionalTime RFC3339 или дата. Дата в правой границе означает конец дня.
func optionalTime(q url.Values, key string, loc *time.Location, endOfDay bool) (*time.Time, error) {
	raw := q.Get(key)
	if raw == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t, nil
	}

	day, err := time.ParseInLocation(dateLayout, raw, loc)
	if err != nil {
		return nil, fmt.Errorf("%w: %s=%q", ErrInvalidQuery, key, raw)
	}
	if endOfDay {
		day = day.AddDate(0, 0, 1).Add(-time.Nanosecond)
	}
	return &day, nil
}

// Money nil остается nil, пустая строка и мусор считаются ошибкой.
func Money(raw *string) (*decimal.Decimal, error) {
	if raw == nil {
		return nil, nil
	}
	v, err := decimal.NewFromString(strings.TrimSpace(*raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidMoney, *raw)
	}
	return &v, nil
}
