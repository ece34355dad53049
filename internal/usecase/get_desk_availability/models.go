package get_desk_availability

import "time"

// Request запрос доступности столов. Nil Date означает сегодня.
type Request struct {
	Date *time.Time
}

// BookedSlot занятый слот времени стола
type BookedSlot struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// DeskAvailability стол с оценкой занятости на дату
type DeskAvailability struct {
	ID              int64        `json:"id"`
	DeskNumber      string       `json:"deskNumber"`
	Floor           int          `json:"floor"`
	Zone            string       `json:"zone"`
	X               float64      `json:"x"`
	Y               float64      `json:"y"`
	HasMonitor      bool         `json:"hasMonitor"`
	HasStandingDesk bool         `json:"hasStandingDesk"`
	IsShared        bool         `json:"isShared"`
	Occupancy       string       `json:"occupancy"`
	IsAvailable     bool         `json:"isAvailable"`
	BookedMinutes   int          `json:"bookedMinutes"`
	BookedSlots     []BookedSlot `json:"bookedSlots"`
}

// Response доступность всех активных столов на дату
type Response struct {
	Date  string             `json:"date"`
	Desks []DeskAvailability `json:"desks"`
}
