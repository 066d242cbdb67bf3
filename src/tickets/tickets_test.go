package tickets

import (
	"bytes"
	"context"
	"testing"
	"time"

	"travelbook/src/fare"
	"travelbook/src/models"
	"travelbook/src/types"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleBooking() models.Booking {
	return models.Booking{
		ID: "b1", TicketCode: "482913", Kind: types.KIND_FLIGHT, Class: types.CLASS_ECONOMY,
		Carrier: "IndiGo", ServiceNumber: "6E-201", Origin: "DEL", Destination: "BOM",
		Date: "2026-03-20", DepartureTime: "08:00", Status: types.BOOKING_ACTIVE,
		Passengers: types.PassengerSeats{{Passenger: types.Passenger{Name: "Asha"}, Seat: "10A"}},
		Fare:       fare.Breakdown{Base: 5000, GSTRate: 5, GST: 250, Total: 5250},
	}
}

func TestResolveCode(t *testing.T) {
	g := NewGenerator("qr-secret")
	payload, err := g.QRPayload("482913")
	require.NoError(t, err)

	code, err := g.ResolveCode(payload)
	assert.NoError(t, err)
	assert.Equal(t, "482913", code)

	code, err = g.ResolveCode(" 482913 ")
	assert.NoError(t, err)
	assert.Equal(t, "482913", code)

	_, err = NewGenerator("other").ResolveCode(payload)
	assert.ErrorIs(t, err, ErrInvalidPayload)

	_, err = g.ResolveCode("not-a-code")
	assert.ErrorIs(t, err, ErrInvalidPayload)
}

func TestPDF(t *testing.T) {
	data, err := NewGenerator("qr-secret").PDF(sampleBooking())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))

	a, err := NewGenerator("qr-secret").Attachment(sampleBooking())
	require.NoError(t, err)
	assert.Equal(t, "eticket-482913.pdf", a.Name)
}

func TestShareLinkCached(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	uploads := 0
	s := NewSharer(rdb, "tickets-bucket", time.Hour, func(_ context.Context, bucket, key, contentType string, _ []byte, _ time.Duration) (string, error) {
		uploads++
		assert.Equal(t, "tickets-bucket", bucket)
		assert.Equal(t, "tickets/b1/eticket-482913.pdf", key)
		assert.Equal(t, "application/pdf", contentType)
		return "https://s3.example/signed", nil
	})
	b := sampleBooking()
	pdf := func() ([]byte, error) { return []byte("%PDF-1.3"), nil }

	mock.ExpectGet("ticket:b1:active:url").RedisNil()
	mock.ExpectSetEx("ticket:b1:active:url", "https://s3.example/signed", 59*time.Minute).SetVal("OK")
	url, err := s.Link(context.Background(), b, pdf)
	require.NoError(t, err)
	assert.Equal(t, "https://s3.example/signed", url)

	mock.ExpectGet("ticket:b1:active:url").SetVal("https://s3.example/signed")
	url, err = s.Link(context.Background(), b, pdf)
	require.NoError(t, err)
	assert.Equal(t, "https://s3.example/signed", url)

	assert.Equal(t, 1, uploads)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestShareDisabled(t *testing.T) {
	s := NewSharer(nil, "", time.Hour, nil)
	_, err := s.Link(context.Background(), sampleBooking(), nil)
	assert.ErrorIs(t, err, ErrSharingDisabled)
}
