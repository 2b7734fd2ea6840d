package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/go-fintech-services/internal/domain"
)

type mockNotificationService struct {
	mock.Mock
}

func (m *mockNotificationService) Create(ctx context.Context, req domain.CreateNotificationRequest) (*domain.Notification, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Notification), args.Error(1)
}

func (m *mockNotificationService) ListByUser(ctx context.Context, userID, status string, limit, offset int) ([]domain.Notification, error) {
	args := m.Called(ctx, userID, status, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Notification), args.Error(1)
}

func (m *mockNotificationService) ListUnread(ctx context.Context, userID string) ([]domain.Notification, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Notification), args.Error(1)
}

func (m *mockNotificationService) MarkAsRead(ctx context.Context, notificationID string) (*domain.Notification, error) {
	args := m.Called(ctx, notificationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Notification), args.Error(1)
}

func TestNotificationHandlerCreate(t *testing.T) {
	svc := new(mockNotificationService)
	h := NewNotificationHandler(svc)

	created := &domain.Notification{NotificationID: "NOT1", UserID: "user-1", Title: "New Transaction"}
	svc.On("Create", mock.Anything, mock.AnythingOfType("domain.CreateNotificationRequest")).Return(created, nil)

	body := `{"user_id":"user-1","type":"general","title":"New Transaction","message":"hi"}`
	req := httptest.NewRequest(http.MethodPost, "/notify", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var got domain.Notification
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "NOT1", got.NotificationID)
	svc.AssertExpectations(t)
}

func TestNotificationHandlerCreateInvalidBody(t *testing.T) {
	svc := new(mockNotificationService)
	h := NewNotificationHandler(svc)

	req := httptest.NewRequest(http.MethodPost, "/notify", strings.NewReader("not json"))
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNotCalled(t, "Create")
}

func TestNotificationHandlerListByUser(t *testing.T) {
	svc := new(mockNotificationService)
	h := NewNotificationHandler(svc)

	svc.On("ListByUser", mock.Anything, "user-1", "unread", 100, 0).
		Return([]domain.Notification{{NotificationID: "NOT1"}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/notifications/user-1?status=unread", nil)
	req = withURLParam(req, "userID", "user-1")
	rec := httptest.NewRecorder()

	h.ListByUser(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got []domain.Notification
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "NOT1", got[0].NotificationID)
	svc.AssertExpectations(t)
}

func TestNotificationHandlerListByUserEmpty(t *testing.T) {
	svc := new(mockNotificationService)
	h := NewNotificationHandler(svc)

	svc.On("ListByUser", mock.Anything, "user-1", "", 100, 0).
		Return([]domain.Notification(nil), nil)

	req := httptest.NewRequest(http.MethodGet, "/notifications/user-1", nil)
	req = withURLParam(req, "userID", "user-1")
	rec := httptest.NewRecorder()

	h.ListByUser(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestNotificationHandlerListUnread(t *testing.T) {
	svc := new(mockNotificationService)
	h := NewNotificationHandler(svc)

	svc.On("ListUnread", mock.Anything, "user-1").
		Return([]domain.Notification{{NotificationID: "NOT1", Status: domain.NotificationStatusUnread}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/notifications/user-1/unread", nil)
	req = withURLParam(req, "userID", "user-1")
	rec := httptest.NewRecorder()

	h.ListUnread(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got []domain.Notification
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, domain.NotificationStatusUnread, got[0].Status)
}

func TestNotificationHandlerMarkAsRead(t *testing.T) {
	svc := new(mockNotificationService)
	h := NewNotificationHandler(svc)

	readAt := time.Now().UTC()
	updated := &domain.Notification{NotificationID: "NOT1", Status: domain.NotificationStatusRead, ReadAt: &readAt}
	svc.On("MarkAsRead", mock.Anything, "NOT1").Return(updated, nil)

	req := httptest.NewRequest(http.MethodPut, "/notifications/NOT1/read", nil)
	req = withURLParam(req, "notificationID", "NOT1")
	rec := httptest.NewRecorder()

	h.MarkAsRead(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got domain.Notification
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, domain.NotificationStatusRead, got.Status)
	require.NotNil(t, got.ReadAt)
}

func TestNotificationHandlerMarkAsReadNotFound(t *testing.T) {
	svc := new(mockNotificationService)
	h := NewNotificationHandler(svc)

	svc.On("MarkAsRead", mock.Anything, "NOT404").Return(nil, domain.ErrNotFound)

	req := httptest.NewRequest(http.MethodPut, "/notifications/NOT404/read", nil)
	req = withURLParam(req, "notificationID", "NOT404")
	rec := httptest.NewRecorder()

	h.MarkAsRead(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
}
