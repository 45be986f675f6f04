package cancel_booking

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-VenueBooking/internal/api/middleware"
	"github.com/m04kA/SMC-VenueBooking/internal/service/bookings"
	"github.com/m04kA/SMC-VenueBooking/internal/service/bookings/models"
	"github.com/m04kA/SMC-VenueBooking/pkg/logger"
)

type mockCanceller struct {
	mock.Mock
}

func (m *mockCanceller) Cancel(ctx context.Context, bookingID int64, req *models.CancelBookingRequest) error {
	return m.Called(ctx, bookingID, req).Error(0)
}

func newRouter(service BookingCanceller) *mux.Router {
	r := mux.NewRouter()
	r.Use(middleware.Auth)
	r.HandleFunc("/api/v1/bookings/{bookingId}/cancel", NewHandler(service, logger.Nop()).Handle).
		Methods(http.MethodPatch)
	return r
}

func TestHandler_Handle(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		serviceErr error
		wantStatus int
	}{
		{name: "cancelled", path: "/api/v1/bookings/5/cancel", wantStatus: http.StatusOK},
		{name: "bad id", path: "/api/v1/bookings/abc/cancel", wantStatus: http.StatusBadRequest},
		{name: "not found", path: "/api/v1/bookings/5/cancel", serviceErr: bookings.ErrBookingNotFound, wantStatus: http.StatusNotFound},
		{name: "foreign", path: "/api/v1/bookings/5/cancel", serviceErr: bookings.ErrAccessDenied, wantStatus: http.StatusForbidden},
		{name: "already completed", path: "/api/v1/bookings/5/cancel", serviceErr: bookings.ErrCannotCancel, wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := &mockCanceller{}
			service.On("Cancel", mock.Anything, int64(5), &models.CancelBookingRequest{UserID: 10}).Return(tt.serviceErr)

			req := httptest.NewRequest(http.MethodPatch, tt.path, nil)
			req.Header.Set(middleware.UserIDHeader, "10")
			rec := httptest.NewRecorder()

			newRouter(service).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
