package get_available_slots

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	getAvailableSlots "github.com/glowtress/booking-service/internal/usecase/get_available_slots"
	"github.com/glowtress/booking-service/pkg/types"
)

type fakeUseCase struct {
	resp *getAvailableSlots.Response
	err  error
}

func (f *fakeUseCase) Execute(_ context.Context, _ *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
	return f.resp, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestHandle_Success(t *testing.T) {
	resp := &getAvailableSlots.Response{
		Date:            time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		ServiceID:       1,
		ServiceName:     "Knotless Braids",
		DurationMinutes: 60,
		Slots: []getAvailableSlots.Slot{
			{StartTime: types.TimeString("09:00"), EndTime: types.TimeString("10:00")},
			{StartTime: types.TimeString("09:30"), EndTime: types.TimeString("10:30")},
		},
	}
	handler := NewHandler(&fakeUseCase{resp: resp}, nopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/availability?serviceId=1&date=2026-09-15", nil)
	rec := httptest.NewRecorder()

	handler.Handle(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body AvailableSlotsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "2026-09-15", body.Date)
	assert.Equal(t, "Knotless Braids", body.ServiceName)
	require.Len(t, body.Slots, 2)
	assert.Equal(t, AvailableSlot{StartTime: "09:00", EndTime: "10:00"}, body.Slots[0])
}

func TestHandle_MissingParams(t *testing.T) {
	handler := NewHandler(&fakeUseCase{}, nopLogger{})

	cases := []struct {
		name   string
		target string
	}{
		{"missing service id", "/api/v1/availability?date=2026-09-15"},
		{"invalid service id", "/api/v1/availability?serviceId=abc&date=2026-09-15"},
		{"missing date", "/api/v1/availability?serviceId=1"},
		{"invalid date", "/api/v1/availability?serviceId=1&date=15.09.2026"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tc.target, nil)
			rec := httptest.NewRecorder()

			handler.Handle(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestHandle_UseCaseErrors(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"service not found", getAvailableSlots.ErrServiceNotFound, http.StatusNotFound},
		{"service not bookable", getAvailableSlots.ErrServiceNotBookable, http.StatusBadRequest},
		{"past date", getAvailableSlots.ErrInvalidDate, http.StatusBadRequest},
		{"internal failure", getAvailableSlots.ErrInternal, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			handler := NewHandler(&fakeUseCase{err: tc.err}, nopLogger{})

			req := httptest.NewRequest(http.MethodGet, "/api/v1/availability?serviceId=1&date=2026-09-15", nil)
			rec := httptest.NewRecorder()

			handler.Handle(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
		})
	}
}
