package report

import "courierdesk/internal/entities"

func validateRange(filter entities.OrderFilter) error {
	if filter.CreatedFrom != nil && filter.CreatedTo != nil && filter.CreatedTo.Before(*filter.CreatedFrom) {
		return ErrInvalidDateRange
	}
	if filter.UpdatedFrom != nil && filter.UpdatedTo != nil && filter.UpdatedTo.Before(*filter.UpdatedFrom) {
		return ErrInvalidDateRange
	}
	return nil
}
