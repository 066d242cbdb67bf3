package otp

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const ttl = 10 * time.Minute

func newStore(t *testing.T) (*Store, redismock.ClientMock) {
	rdb, mock := redismock.NewClientMock()
	t.Cleanup(func() { rdb.Close() })
	s := NewStore(rdb, ttl, 5)
	s.generate = func() (string, error) { return "042917", nil }
	return s, mock
}

func TestGenerate(t *testing.T) {
	for range 50 {
		code, err := Generate()
		require.NoError(t, err)
		assert.Regexp(t, `^\d{6}$`, code)
	}
}

func TestIssue(t *testing.T) {
	s, mock := newStore(t)
	mock.ExpectTxPipeline()
	mock.ExpectSetEx("otp:asha@example.com", "042917", ttl).SetVal("OK")
	mock.ExpectDel("otp:asha@example.com:attempts").SetVal(0)
	mock.ExpectTxPipelineExec()

	code, err := s.Issue(context.Background(), " Asha@Example.com")
	assert.NoError(t, err)
	assert.Equal(t, "042917", code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVerifySuccess(t *testing.T) {
	s, mock := newStore(t)
	mock.ExpectGet("otp:asha@example.com").SetVal("042917")
	mock.ExpectDel("otp:asha@example.com", "otp:asha@example.com:attempts").SetVal(1)

	assert.NoError(t, s.Verify(context.Background(), "asha@example.com", "042917"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVerifyExpired(t *testing.T) {
	s, mock := newStore(t)
	mock.ExpectGet("otp:asha@example.com").RedisNil()

	assert.ErrorIs(t, s.Verify(context.Background(), "asha@example.com", "042917"), ErrExpired)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVerifyMismatchCountsAttempts(t *testing.T) {
	s, mock := newStore(t)
	mock.ExpectGet("otp:asha@example.com").SetVal("042917")
	mock.ExpectIncr("otp:asha@example.com:attempts").SetVal(1)
	mock.ExpectExpire("otp:asha@example.com:attempts", ttl).SetVal(true)

	assert.ErrorIs(t, s.Verify(context.Background(), "asha@example.com", "000000"), ErrMismatch)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVerifyInvalidatesAfterMaxAttempts(t *testing.T) {
	s, mock := newStore(t)
	mock.ExpectGet("otp:asha@example.com").SetVal("042917")
	mock.ExpectIncr("otp:asha@example.com:attempts").SetVal(5)
	mock.ExpectDel("otp:asha@example.com", "otp:asha@example.com:attempts").SetVal(2)

	assert.ErrorIs(t, s.Verify(context.Background(), "asha@example.com", "111111"), ErrTooManyAttempts)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVerifyStoreDown(t *testing.T) {
	s, mock := newStore(t)
	mock.ExpectGet("otp:asha@example.com").SetErr(errors.New("dial tcp: connection refused"))

	assert.ErrorIs(t, s.Verify(context.Background(), "asha@example.com", "042917"), ErrStoreUnavailable)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNilClient(t *testing.T) {
	s := NewStore(nil, ttl, 5)
	_, err := s.Issue(context.Background(), "a@example.com")
	assert.ErrorIs(t, err, ErrStoreUnavailable)
}
