package get_user_bookings

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VenueBooking/internal/api/middleware"
	"github.com/m04kA/SMC-VenueBooking/internal/service/bookings"
	"github.com/m04kA/SMC-VenueBooking/internal/service/bookings/models"
	"github.com/m04kA/SMC-VenueBooking/pkg/logger"
)

type mockLister struct {
	mock.Mock
}

func (m *mockLister) GetUserBookings(ctx context.Context, req *models.GetUserBookingsRequest) (*models.BookingListResponse, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*models.BookingListResponse)
	return resp, args.Error(1)
}

func serve(service UserBookingsLister, path string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.Use(middleware.Auth)
	r.HandleFunc("/api/v1/users/{userId}/bookings", NewHandler(service, logger.Nop()).Handle).
		Methods(http.MethodGet)

	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Header.Set(middleware.UserIDHeader, "10")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandler_Handle(t *testing.T) {
	service := &mockLister{}
	service.On("GetUserBookings", mock.Anything, mock.MatchedBy(func(req *models.GetUserBookingsRequest) bool {
		return req.UserID == 10 && req.RequesterID == 10 && req.Status != nil && *req.Status == "booked"
	})).Return(&models.BookingListResponse{Bookings: []models.BookingResponse{
		{ID: 5, UserID: 10, RoomID: "#005"},
		{ID: 6, UserID: 10, RoomID: "#009"},
	}}, nil)

	rec := serve(service, "/api/v1/users/10/bookings?status=booked")
	require.Equal(t, http.StatusOK, rec.Code)

	var body []models.BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body, 2)
	assert.Equal(t, "#009", body[1].RoomID)
	service.AssertExpectations(t)
}

func TestHandler_Handle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		serviceErr error
		wantStatus int
	}{
		{name: "bad user id", path: "/api/v1/users/abc/bookings", wantStatus: http.StatusBadRequest},
		{name: "foreign", path: "/api/v1/users/20/bookings", serviceErr: bookings.ErrAccessDenied, wantStatus: http.StatusForbidden},
		{name: "bad status", path: "/api/v1/users/10/bookings?status=lost", serviceErr: bookings.ErrInvalidInput, wantStatus: http.StatusBadRequest},
		{name: "internal", path: "/api/v1/users/10/bookings", serviceErr: bookings.ErrInternal, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := &mockLister{}
			service.On("GetUserBookings", mock.Anything, mock.Anything).Return(nil, tt.serviceErr)

			rec := serve(service, tt.path)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
