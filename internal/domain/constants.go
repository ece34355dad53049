package domain

// Формат даты и времени в API
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
	TimeFormat = "15:04"      // HH:MM
)

// Пороги занятости стола
const (
	// PartialOccupancyMaxMinutes суммарная забронированная длительность,
	// до которой (включительно) стол считается частично занятым и всё ещё
	// доступным для бронирования. Свыше - стол полностью занят.
	PartialOccupancyMaxMinutes = 4 * 60
)

// DaysPerWeek количество дней в недельном представлении бронирований
const DaysPerWeek = 7

// Значения по умолчанию для новых пользователей
const (
	DefaultRole       = "EMPLOYEE"
	DefaultDepartment = "General"
)
