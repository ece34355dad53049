package create_booking

import (
	"fmt"

	"github.com/inalogystics/DeskBookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.Email == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidInput)
	}

	if req.DeskNumber == "" {
		return fmt.Errorf("%w: deskId is required", ErrInvalidInput)
	}

	if len(req.Dates) == 0 {
		return fmt.Errorf("%w: at least one date is required", ErrInvalidInput)
	}

	seen := make(map[string]struct{}, len(req.Dates))
	for _, date := range req.Dates {
		key := domain.FormatDate(date)
		if _, dup := seen[key]; dup {
			return fmt.Errorf("%w: duplicate date %s", ErrInvalidInput, key)
		}
		seen[key] = struct{}{}
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime: %v", ErrInvalidInput, err)
	}
	if err := req.EndTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid endTime: %v", ErrInvalidInput, err)
	}

	if !req.StartTime.IsBefore(req.EndTime) {
		return fmt.Errorf("%w: startTime must be before endTime", ErrInvalidInput)
	}

	return nil
}
