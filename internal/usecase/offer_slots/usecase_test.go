package offer_slots

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rentora/RIA-SchedulingService/internal/domain"
)

type fakeSlotGenerator struct {
	// слоты по дате (ключ YYYY-MM-DD)
	slotsByDate map[string][]domain.CandidateSlot
	err         error
}

func (f *fakeSlotGenerator) GenerateSlots(_ context.Context, _ int64, _ domain.AppointmentKind, date time.Time, _ int) ([]domain.CandidateSlot, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.slotsByDate[date.Format(domain.DateFormat)], nil
}

type fakeConflictGuard struct {
	// занятые старты (ключ RFC 3339)
	taken map[string]bool
	err   error
}

func (f *fakeConflictGuard) IsBookable(_ context.Context, _ int64, start time.Time, _ int) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	return !f.taken[start.Format(time.RFC3339)], nil
}

type fakeTokenIssuer struct {
	issued []domain.SlotBinding
	// expiresAt переопределяет срок жизни выпускаемых токенов;
	// нулевое значение - testNow + ttlDays
	expiresAt time.Time
	err       error
}

func (f *fakeTokenIssuer) IssueBooking(_ context.Context, inquiryID int64, binding domain.SlotBinding, ttlDays int) (*domain.Token, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.issued = append(f.issued, binding)

	expiresAt := f.expiresAt
	if expiresAt.IsZero() {
		expiresAt = testNow.AddDate(0, 0, ttlDays)
	}

	return &domain.Token{
		ID:        int64(len(f.issued)),
		Secret:    fmt.Sprintf("secret-%d", len(f.issued)),
		Kind:      domain.TokenKindBooking,
		InquiryID: inquiryID,
		Booking:   &binding,
		ExpiresAt: expiresAt,
	}, nil
}

type fakeTimeProvider struct {
	now time.Time
}

func (f *fakeTimeProvider) Now() time.Time {
	return f.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var testNow = time.Date(2025, time.June, 9, 8, 0, 0, 0, time.UTC)

func slotAt(day time.Time, hour int) domain.CandidateSlot {
	start := day.Truncate(24 * time.Hour).Add(time.Duration(hour) * time.Hour)
	return domain.CandidateSlot{StartAt: start, EndAt: start.Add(30 * time.Minute)}
}

func newTestUseCase(gen SlotGenerator, guard ConflictGuard, issuer TokenIssuer) *UseCase {
	uc := NewUseCase(gen, guard, issuer, Defaults{}, nopLogger{})
	uc.timeProvider = &fakeTimeProvider{now: testNow}
	return uc
}

func validTestRequest() *Request {
	return &Request{
		InquiryID:       42,
		ManagerID:       7,
		Kind:            domain.KindVideoCall,
		DaysAhead:       3,
		MinSlotsToOffer: 2,
	}
}

func TestExecute_OffersBookableSlots(t *testing.T) {
	day := testNow
	gen := &fakeSlotGenerator{slotsByDate: map[string][]domain.CandidateSlot{
		day.Format(domain.DateFormat): {slotAt(day, 10), slotAt(day, 11), slotAt(day, 12)},
	}}
	issuer := &fakeTokenIssuer{}
	uc := newTestUseCase(gen, &fakeConflictGuard{}, issuer)

	resp, err := uc.Execute(context.Background(), validTestRequest())
	require.NoError(t, err)

	require.Len(t, resp.Slots, 3)
	assert.Len(t, issuer.issued, 3)
	assert.Equal(t, "secret-1", resp.Slots[0].RedeemSecret)
	assert.Equal(t, domain.KindVideoCall, issuer.issued[0].Kind)
	assert.Equal(t, int64(7), issuer.issued[0].ManagerID)
}

func TestExecute_SkipsPastSlotsToday(t *testing.T) {
	day := testNow
	gen := &fakeSlotGenerator{slotsByDate: map[string][]domain.CandidateSlot{
		// 07:00 уже прошёл относительно testNow (08:00)
		day.Format(domain.DateFormat): {slotAt(day, 7), slotAt(day, 10)},
	}}
	uc := newTestUseCase(gen, &fakeConflictGuard{}, &fakeTokenIssuer{})

	resp, err := uc.Execute(context.Background(), validTestRequest())
	require.NoError(t, err)

	require.Len(t, resp.Slots, 1)
	assert.Equal(t, slotAt(day, 10).StartAt, resp.Slots[0].StartAt)
}

func TestExecute_FiltersConflictingSlots(t *testing.T) {
	day := testNow
	gen := &fakeSlotGenerator{slotsByDate: map[string][]domain.CandidateSlot{
		day.Format(domain.DateFormat): {slotAt(day, 10), slotAt(day, 11)},
	}}
	guard := &fakeConflictGuard{taken: map[string]bool{
		slotAt(day, 10).StartAt.Format(time.RFC3339): true,
	}}
	uc := newTestUseCase(gen, guard, &fakeTokenIssuer{})

	resp, err := uc.Execute(context.Background(), validTestRequest())
	require.NoError(t, err)

	require.Len(t, resp.Slots, 1)
	assert.Equal(t, slotAt(day, 11).StartAt, resp.Slots[0].StartAt)
}

func TestExecute_CollectsAcrossDaysUpToLimit(t *testing.T) {
	day1 := testNow
	day2 := testNow.AddDate(0, 0, 1)
	day3 := testNow.AddDate(0, 0, 2)

	gen := &fakeSlotGenerator{slotsByDate: map[string][]domain.CandidateSlot{
		day1.Format(domain.DateFormat): {slotAt(day1, 10)},
		day2.Format(domain.DateFormat): {slotAt(day2, 10), slotAt(day2, 11), slotAt(day2, 12)},
		day3.Format(domain.DateFormat): {slotAt(day3, 10)},
	}}
	uc := newTestUseCase(gen, &fakeConflictGuard{}, &fakeTokenIssuer{})

	req := validTestRequest()
	req.MinSlotsToOffer = 2 // лимит сбора = 2 * OfferOverCollectFactor = 4

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	// Собраны 4 слота: день3 уже не понадобился
	require.Len(t, resp.Slots, 4)
	assert.Equal(t, slotAt(day2, 12).StartAt, resp.Slots[3].StartAt)
}

func TestExecute_NoAvailability(t *testing.T) {
	uc := newTestUseCase(&fakeSlotGenerator{}, &fakeConflictGuard{}, &fakeTokenIssuer{})

	_, err := uc.Execute(context.Background(), validTestRequest())
	assert.ErrorIs(t, err, ErrNoAvailability)
}

func TestExecute_LinkExpiresAtMatchesTTL(t *testing.T) {
	day := testNow
	gen := &fakeSlotGenerator{slotsByDate: map[string][]domain.CandidateSlot{
		day.Format(domain.DateFormat): {slotAt(day, 10)},
	}}
	uc := newTestUseCase(gen, &fakeConflictGuard{}, &fakeTokenIssuer{})

	req := validTestRequest()
	req.LinkTTLDays = 3

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, testNow.AddDate(0, 0, 3), resp.LinkExpiresAt)
}

func TestExecute_LinkExpiresAtComesFromIssuedTokens(t *testing.T) {
	day := testNow
	gen := &fakeSlotGenerator{slotsByDate: map[string][]domain.CandidateSlot{
		day.Format(domain.DateFormat): {slotAt(day, 10)},
	}}

	// Часы сервиса токенов ушли вперед относительно часов usecase
	tokenExpiry := testNow.Add(time.Minute).AddDate(0, 0, 3)
	issuer := &fakeTokenIssuer{expiresAt: tokenExpiry}
	uc := newTestUseCase(gen, &fakeConflictGuard{}, issuer)

	req := validTestRequest()
	req.LinkTTLDays = 3

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	// В ответе срок жизни фактически выпущенных токенов, а не повторное
	// чтение часов usecase
	assert.Equal(t, tokenExpiry, resp.LinkExpiresAt)
}

func TestExecute_ValidationErrors(t *testing.T) {
	uc := newTestUseCase(&fakeSlotGenerator{}, &fakeConflictGuard{}, &fakeTokenIssuer{})

	tests := []struct {
		name    string
		mutate  func(*Request)
		wantErr error
	}{
		{name: "zero inquiry", mutate: func(r *Request) { r.InquiryID = 0 }, wantErr: ErrInvalidInput},
		{name: "zero manager", mutate: func(r *Request) { r.ManagerID = 0 }, wantErr: ErrInvalidInput},
		{name: "bad kind", mutate: func(r *Request) { r.Kind = "phone" }, wantErr: ErrInvalidKind},
		{name: "days ahead too big", mutate: func(r *Request) { r.DaysAhead = 1000 }, wantErr: ErrInvalidInput},
		{name: "ttl too big", mutate: func(r *Request) { r.LinkTTLDays = 365 }, wantErr: ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validTestRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestExecute_AppliesDeploymentDefaults(t *testing.T) {
	day := testNow
	gen := &fakeSlotGenerator{slotsByDate: map[string][]domain.CandidateSlot{
		day.Format(domain.DateFormat): {slotAt(day, 10)},
	}}
	uc := NewUseCase(gen, &fakeConflictGuard{}, &fakeTokenIssuer{}, Defaults{
		DaysAhead:           5,
		MinSlotsToOffer:     1,
		SlotDurationMinutes: 45,
		LinkTTLDays:         2,
	}, nopLogger{})
	uc.timeProvider = &fakeTimeProvider{now: testNow}

	req := &Request{InquiryID: 42, ManagerID: 7, Kind: domain.KindTour}
	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, 5, req.DaysAhead)
	assert.Equal(t, 45, req.SlotDurationMinutes)
	assert.Equal(t, testNow.AddDate(0, 0, 2), resp.LinkExpiresAt)
}

func TestExecute_GeneratorFailure(t *testing.T) {
	uc := newTestUseCase(&fakeSlotGenerator{err: errors.New("db down")}, &fakeConflictGuard{}, &fakeTokenIssuer{})

	_, err := uc.Execute(context.Background(), validTestRequest())
	assert.ErrorIs(t, err, ErrInternal)
}

func TestExecute_IssuerFailure(t *testing.T) {
	day := testNow
	gen := &fakeSlotGenerator{slotsByDate: map[string][]domain.CandidateSlot{
		day.Format(domain.DateFormat): {slotAt(day, 10)},
	}}
	uc := newTestUseCase(gen, &fakeConflictGuard{}, &fakeTokenIssuer{err: errors.New("db down")})

	_, err := uc.Execute(context.Background(), validTestRequest())
	assert.ErrorIs(t, err, ErrInternal)
}
