package tokens

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rentora/RIA-SchedulingService/internal/domain"
	tokenRepo "github.com/rentora/RIA-SchedulingService/internal/infra/storage/token"
)

type fakeTokenRepo struct {
	tokens map[string]*domain.Token
	nextID int64
}

func newFakeTokenRepo() *fakeTokenRepo {
	return &fakeTokenRepo{tokens: make(map[string]*domain.Token)}
}

func (f *fakeTokenRepo) Create(_ context.Context, tok *domain.Token) (*domain.Token, error) {
	if _, exists := f.tokens[tok.Secret]; exists {
		return nil, tokenRepo.ErrDuplicateSecret
	}
	f.nextID++
	tok.ID = f.nextID
	f.tokens[tok.Secret] = tok
	return tok, nil
}

func (f *fakeTokenRepo) GetBySecret(_ context.Context, secret string) (*domain.Token, error) {
	tok, ok := f.tokens[secret]
	if !ok {
		return nil, tokenRepo.ErrTokenNotFound
	}
	copied := *tok
	return &copied, nil
}

func (f *fakeTokenRepo) MarkUsed(_ context.Context, secret string, usedAt time.Time) error {
	tok, ok := f.tokens[secret]
	if !ok || tok.IsUsed {
		return tokenRepo.ErrTokenAlreadyUsed
	}
	tok.IsUsed = true
	tok.UsedAt = &usedAt
	return nil
}

func (f *fakeTokenRepo) DeleteExpired(_ context.Context, now time.Time) (int64, error) {
	var count int64
	for secret, tok := range f.tokens {
		if now.After(tok.ExpiresAt) {
			delete(f.tokens, secret)
			count++
		}
	}
	return count, nil
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

var testNow = time.Date(2025, time.June, 9, 12, 0, 0, 0, time.UTC)

func newTestService(repo TokenRepository) *Service {
	svc := NewService(repo, nopLogger{})
	svc.timeProvider = &fakeTimeProvider{now: testNow}
	return svc
}

func testBinding() domain.SlotBinding {
	return domain.SlotBinding{
		ManagerID:       7,
		Kind:            domain.KindVideoCall,
		StartAt:         testNow.Add(48 * time.Hour),
		DurationMinutes: 30,
	}
}

func TestIssueBooking(t *testing.T) {
	repo := newFakeTokenRepo()
	svc := newTestService(repo)

	tok, err := svc.IssueBooking(context.Background(), 42, testBinding(), 7)
	require.NoError(t, err)

	assert.Equal(t, domain.TokenKindBooking, tok.Kind)
	assert.Equal(t, int64(42), tok.InquiryID)
	require.NotNil(t, tok.Booking)
	assert.Equal(t, int64(7), tok.Booking.ManagerID)
	assert.Equal(t, testNow.AddDate(0, 0, 7), tok.ExpiresAt)
	// 32 байта в base64url без паддинга
	assert.Len(t, tok.Secret, 43)
}

func TestIssueBooking_SecretsAreUnique(t *testing.T) {
	repo := newFakeTokenRepo()
	svc := newTestService(repo)

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		tok, err := svc.IssueBooking(context.Background(), 42, testBinding(), 7)
		require.NoError(t, err)
		assert.False(t, seen[tok.Secret])
		seen[tok.Secret] = true
	}
}

func TestIssueQuestionnaire_NoBinding(t *testing.T) {
	svc := newTestService(newFakeTokenRepo())

	tok, err := svc.IssueQuestionnaire(context.Background(), 42, 7)
	require.NoError(t, err)

	assert.Equal(t, domain.TokenKindQuestionnaire, tok.Kind)
	assert.Nil(t, tok.Booking)
}

func TestIssue_InvalidTTL(t *testing.T) {
	svc := newTestService(newFakeTokenRepo())

	_, err := svc.IssueBooking(context.Background(), 42, testBinding(), 0)
	assert.ErrorIs(t, err, ErrInvalidTTL)

	_, err = svc.IssueBooking(context.Background(), 42, testBinding(), 365)
	assert.ErrorIs(t, err, ErrInvalidTTL)
}

func TestValidate(t *testing.T) {
	repo := newFakeTokenRepo()
	svc := newTestService(repo)

	issued, err := svc.IssueBooking(context.Background(), 42, testBinding(), 7)
	require.NoError(t, err)

	tok, err := svc.Validate(context.Background(), issued.Secret)
	require.NoError(t, err)
	assert.Equal(t, issued.ID, tok.ID)
}

func TestValidate_NotFound(t *testing.T) {
	svc := newTestService(newFakeTokenRepo())

	_, err := svc.Validate(context.Background(), "no-such-secret")
	assert.ErrorIs(t, err, ErrTokenNotFound)
}

func TestValidate_Used(t *testing.T) {
	repo := newFakeTokenRepo()
	svc := newTestService(repo)

	issued, err := svc.IssueBooking(context.Background(), 42, testBinding(), 7)
	require.NoError(t, err)
	require.NoError(t, svc.Consume(context.Background(), issued.Secret))

	_, err = svc.Validate(context.Background(), issued.Secret)
	assert.ErrorIs(t, err, ErrTokenUsed)
}

func TestValidate_ExpiredByWallClock(t *testing.T) {
	repo := newFakeTokenRepo()
	svc := newTestService(repo)

	issued, err := svc.IssueBooking(context.Background(), 42, testBinding(), 1)
	require.NoError(t, err)

	svc.timeProvider = &fakeTimeProvider{now: testNow.AddDate(0, 0, 2)}

	_, err = svc.Validate(context.Background(), issued.Secret)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestValidate_ExpiredBySlotStart(t *testing.T) {
	repo := newFakeTokenRepo()
	svc := newTestService(repo)

	binding := testBinding()
	issued, err := svc.IssueBooking(context.Background(), 42, binding, 7)
	require.NoError(t, err)

	// TTL ещё не вышел, но слот уже начался
	svc.timeProvider = &fakeTimeProvider{now: binding.StartAt}

	_, err = svc.Validate(context.Background(), issued.Secret)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestConsume_ExactlyOnce(t *testing.T) {
	repo := newFakeTokenRepo()
	svc := newTestService(repo)

	issued, err := svc.IssueBooking(context.Background(), 42, testBinding(), 7)
	require.NoError(t, err)

	require.NoError(t, svc.Consume(context.Background(), issued.Secret))

	err = svc.Consume(context.Background(), issued.Secret)
	assert.ErrorIs(t, err, ErrTokenUsed)
}

func TestSweepExpired(t *testing.T) {
	repo := newFakeTokenRepo()
	svc := newTestService(repo)

	expired, err := svc.IssueQuestionnaire(context.Background(), 1, 1)
	require.NoError(t, err)
	alive, err := svc.IssueQuestionnaire(context.Background(), 2, 14)
	require.NoError(t, err)

	svc.timeProvider = &fakeTimeProvider{now: testNow.AddDate(0, 0, 3)}

	count, err := svc.SweepExpired(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	_, err = svc.Validate(context.Background(), expired.Secret)
	assert.ErrorIs(t, err, ErrTokenNotFound)

	_, err = svc.Validate(context.Background(), alive.Secret)
	assert.NoError(t, err)
}
