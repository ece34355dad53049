package domain

// OccupancyLevel уровень занятости стола на конкретную дату
type OccupancyLevel string

const (
	OccupancyAvailable OccupancyLevel = "available"
	OccupancyPartial   OccupancyLevel = "partial"
	OccupancyOccupied  OccupancyLevel = "occupied"
)

// ClassifyOccupancy классифицирует занятость стола по суммарной
// длительности активных бронирований за день:
//   - нет бронирований → available
//   - суммарно до 4 часов включительно → partial (бронировать ещё можно)
//   - больше 4 часов → occupied
//
// Это грубая эвристика: запрашиваемое пользователем окно времени
// не учитывается, только накопленные часы за день.
func ClassifyOccupancy(activeBookings int, bookedMinutes int) OccupancyLevel {
	if activeBookings == 0 {
		return OccupancyAvailable
	}
	if bookedMinutes <= PartialOccupancyMaxMinutes {
		return OccupancyPartial
	}
	return OccupancyOccupied
}

// IsBookableAt возвращает true, если уровень занятости допускает новое бронирование
func (l OccupancyLevel) IsBookableAt() bool {
	return l == OccupancyAvailable || l == OccupancyPartial
}
