package create_booking

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inalogystics/DeskBookingService/internal/api/middleware"
	createBooking "github.com/inalogystics/DeskBookingService/internal/usecase/create_booking"
)

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

type stubUseCase struct {
	resp    *createBooking.Response
	err     error
	gotReq  *createBooking.Request
	invoked bool
}

func (s *stubUseCase) Execute(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	s.invoked = true
	s.gotReq = req
	return s.resp, s.err
}

func doRequest(t *testing.T, uc *stubUseCase, email string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", bytes.NewReader(raw))
	if email != "" {
		req = req.WithContext(middleware.WithEmail(req.Context(), email))
	}
	rec := httptest.NewRecorder()

	NewHandler(uc, noopLogger{}).Handle(rec, req)
	return rec
}

func validBody() CreateBookingRequest {
	return CreateBookingRequest{
		DeskID:    "D05",
		Dates:     []string{"2026-09-01", "2026-09-02"},
		StartTime: "09:00",
		EndTime:   "17:00",
	}
}

func TestHandle_Created(t *testing.T) {
	uc := &stubUseCase{resp: &createBooking.Response{
		Success: true,
		Bookings: []createBooking.CreatedBooking{
			{BookingID: 1, Date: "2026-09-01", DeskNumber: "D05"},
			{BookingID: 2, Date: "2026-09-02", DeskNumber: "D05"},
		},
		Failed: []createBooking.FailedDate{},
	}}

	rec := doRequest(t, uc, "ivan@inalogystics.com", validBody())

	assert.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, uc.gotReq)
	assert.Equal(t, "ivan@inalogystics.com", uc.gotReq.Email)
	assert.Equal(t, "D05", uc.gotReq.DeskNumber)
	require.Len(t, uc.gotReq.Dates, 2)

	var resp createBooking.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Len(t, resp.Bookings, 2)
}

func TestHandle_AllDatesFailed(t *testing.T) {
	uc := &stubUseCase{resp: &createBooking.Response{
		Success:  false,
		Bookings: []createBooking.CreatedBooking{},
		Failed: []createBooking.FailedDate{
			{Date: "2026-09-01", Reason: "Desk is already booked for this date"},
		},
	}}

	rec := doRequest(t, uc, "ivan@inalogystics.com", validBody())

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp createBooking.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	require.Len(t, resp.Failed, 1)
	assert.Equal(t, "Desk is already booked for this date", resp.Failed[0].Reason)
}

func TestHandle_NoSession(t *testing.T) {
	uc := &stubUseCase{}
	rec := doRequest(t, uc, "", validBody())

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, uc.invoked)
}

func TestHandle_BadDateFormat(t *testing.T) {
	uc := &stubUseCase{}
	body := validBody()
	body.Dates = []string{"01.09.2026"}

	rec := doRequest(t, uc, "ivan@inalogystics.com", body)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, uc.invoked)
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"user not found", createBooking.ErrUserNotFound, http.StatusNotFound},
		{"desk not found", createBooking.ErrDeskNotFound, http.StatusNotFound},
		{"desk not bookable", createBooking.ErrDeskNotBookable, http.StatusBadRequest},
		{"invalid input", createBooking.ErrInvalidInput, http.StatusBadRequest},
		{"internal error", createBooking.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, &stubUseCase{err: tt.err}, "ivan@inalogystics.com", validBody())
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
