package get_desks

import (
	"context"

	getDeskAvailability "github.com/inalogystics/DeskBookingService/internal/usecase/get_desk_availability"
)

type GetDeskAvailabilityUseCase interface {
	Execute(ctx context.Context, req *getDeskAvailability.Request) (*getDeskAvailability.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
