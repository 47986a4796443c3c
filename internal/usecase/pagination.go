package usecase

// paginate возвращает срез [offset, offset+limit) для списка длины total.
// nil-параметр означает отсутствие ограничения: offset по умолчанию 0,
// конец среза — остаток списка. Выход за границы обрезается.
func paginate[T any](items []T, limit, offset *int) []T {
	if limit == nil && offset == nil {
		return items
	}

	start := 0
	if offset != nil && *offset > 0 {
		start = *offset
	}
	if start > len(items) {
		start = len(items)
	}

	// конец среза — start+limit; отрицательный limit даёт пустой срез
	end := len(items)
	if limit != nil {
		end = start + *limit
		if end < start {
			end = start
		}
		if end > len(items) {
			end = len(items)
		}
	}

	return items[start:end]
}
