package dispatch

const maxSelection = 500

// normalizeSelection убирает повторы, сохраняя порядок выбора.
func normalizeSelection(ids []int64) ([]int64, error) {
	if len(ids) == 0 {
		return nil, ErrEmptySelection
	}
	if len(ids) > maxSelection {
		return nil, ErrSelectionTooBig
	}

	seen := make(map[int64]struct{}, len(ids))
	result := make([]int64, 0, len(ids))
	for _, id := range ids {
		if id <= 0 {
			return nil, ErrInvalidOrderID
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		result = append(result, id)
	}
	return result, nil
}

func isValidCourierID(id int64) bool {
	return id > 0
}
