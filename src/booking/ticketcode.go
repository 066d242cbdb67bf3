package booking

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
)

const maxTicketCodeAttempts = 20

var ticketCodeSpace = big.NewInt(1_000_000)

func randomTicketCode() (string, error) {
	n, err := rand.Int(rand.Reader, ticketCodeSpace)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

// newTicketCode draws codes until one is unused. The unique index on ticket_code still
// guards the window between this check and the insert.
func (s *Service) newTicketCode(ctx context.Context) (string, error) {
	for range maxTicketCodeAttempts {
		code, err := s.codes()
		if err != nil {
			return "", err
		}
		exists, err := s.repo.TicketCodeExists(ctx, code)
		if err != nil {
			return "", err
		}
		if !exists {
			return code, nil
		}
	}
	return "", ErrTicketCodeExhausted
}
