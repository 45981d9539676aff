package confirm_booking

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rentora/RIA-SchedulingService/internal/api/handlers"
	"github.com/rentora/RIA-SchedulingService/internal/domain"
	redeemBooking "github.com/rentora/RIA-SchedulingService/internal/usecase/redeem_booking"
)

type fakeUseCase struct {
	resp   *redeemBooking.Response
	err    error
	secret string
}

func (f *fakeUseCase) Execute(_ context.Context, secret string) (*redeemBooking.Response, error) {
	f.secret = secret
	return f.resp, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func doRequest(t *testing.T, uc *fakeUseCase) *httptest.ResponseRecorder {
	t.Helper()

	r := mux.NewRouter()
	r.HandleFunc("/public/booking/{secret}/confirm", NewHandler(uc, nopLogger{}).Handle).Methods(http.MethodPost)

	req := httptest.NewRequest(http.MethodPost, "/public/booking/abc123/confirm", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandle_Success(t *testing.T) {
	uc := &fakeUseCase{resp: &redeemBooking.Response{
		AppointmentID: 555,
		Kind:          domain.KindVideoCall,
		ScheduledAt:   time.Date(2025, time.June, 11, 10, 0, 0, 0, time.UTC),
	}}

	rec := doRequest(t, uc)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "abc123", uc.secret)

	var resp ConfirmBookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, int64(555), resp.AppointmentID)
	assert.Equal(t, "video_call", resp.Kind)
}

func TestHandle_TokenErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode string
	}{
		{name: "not found", err: redeemBooking.ErrTokenNotFound, wantCode: "not_found"},
		{name: "wrong kind", err: redeemBooking.ErrNotBookingToken, wantCode: "not_found"},
		{name: "used", err: redeemBooking.ErrTokenUsed, wantCode: "used"},
		{name: "expired", err: redeemBooking.ErrTokenExpired, wantCode: "expired"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, &fakeUseCase{err: tt.err})

			assert.Equal(t, http.StatusBadRequest, rec.Code)

			var resp handlers.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantCode, resp.Code)
		})
	}
}

func TestHandle_SchedulingConflict(t *testing.T) {
	rec := doRequest(t, &fakeUseCase{err: redeemBooking.ErrSchedulingConflict})
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestHandle_InternalError(t *testing.T) {
	rec := doRequest(t, &fakeUseCase{err: errors.New("boom")})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
