package notifications

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inalogystics/DeskBookingService/internal/domain"
	notificationRepo "github.com/inalogystics/DeskBookingService/internal/infra/storage/notification"
	userRepo "github.com/inalogystics/DeskBookingService/internal/infra/storage/user"
)

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

type stubNotificationRepo struct {
	notifications []*domain.Notification
	markReadErr   error
	markedID      int64
	markedUserID  int64
	allReadCount  int64
}

func (s *stubNotificationRepo) ListByUser(ctx context.Context, userID int64) ([]*domain.Notification, error) {
	return s.notifications, nil
}

func (s *stubNotificationRepo) MarkRead(ctx context.Context, id, userID int64) error {
	if s.markReadErr != nil {
		return s.markReadErr
	}
	s.markedID = id
	s.markedUserID = userID
	return nil
}

func (s *stubNotificationRepo) MarkAllRead(ctx context.Context, userID int64) (int64, error) {
	return s.allReadCount, nil
}

type stubUserRepo struct {
	user *domain.User
	err  error
}

func (s *stubUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.user, nil
}

func newTestService() (*Service, *stubNotificationRepo, *stubUserRepo) {
	notifications := &stubNotificationRepo{}
	users := &stubUserRepo{user: &domain.User{ID: 7, Email: "ivan@inalogystics.com"}}
	return NewService(notifications, users, noopLogger{}), notifications, users
}

func TestListForUser(t *testing.T) {
	svc, repo, _ := newTestService()
	now := time.Now()
	repo.notifications = []*domain.Notification{
		{ID: 2, Type: domain.NotificationBookingConfirmed, Title: "Booking confirmed", CreatedAt: now},
		{ID: 1, Type: domain.NotificationWelcome, Title: "Welcome!", IsRead: true, ReadAt: &now, CreatedAt: now},
	}

	resp, err := svc.ListForUser(context.Background(), "ivan@inalogystics.com")
	require.NoError(t, err)

	require.Len(t, resp.Notifications, 2)
	assert.Equal(t, 1, resp.UnreadCount)
	assert.Equal(t, "BOOKING_CONFIRMED", resp.Notifications[0].Type)
	assert.Nil(t, resp.Notifications[0].ReadAt)
	require.NotNil(t, resp.Notifications[1].ReadAt)
}

func TestListForUser_UnknownUser(t *testing.T) {
	svc, _, users := newTestService()
	users.err = userRepo.ErrUserNotFound

	_, err := svc.ListForUser(context.Background(), "nobody@inalogystics.com")
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestMarkRead(t *testing.T) {
	svc, repo, _ := newTestService()

	err := svc.MarkRead(context.Background(), "ivan@inalogystics.com", 42)
	require.NoError(t, err)

	assert.Equal(t, int64(42), repo.markedID)
	assert.Equal(t, int64(7), repo.markedUserID)
}

func TestMarkRead_NotFound(t *testing.T) {
	svc, repo, _ := newTestService()
	repo.markReadErr = notificationRepo.ErrNotificationNotFound

	err := svc.MarkRead(context.Background(), "ivan@inalogystics.com", 42)
	require.ErrorIs(t, err, ErrNotificationNotFound)
}

func TestMarkAllRead(t *testing.T) {
	svc, repo, _ := newTestService()
	repo.allReadCount = 3

	resp, err := svc.MarkAllRead(context.Background(), "ivan@inalogystics.com")
	require.NoError(t, err)
	assert.Equal(t, int64(3), resp.Updated)
}
