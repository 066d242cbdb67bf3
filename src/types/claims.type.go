package types

import "github.com/golang-jwt/jwt/v5"

const ROLE_ADMIN = "admin"

type Claims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

func (c Claims) IsAdmin() bool {
	return c.Role == ROLE_ADMIN
}
