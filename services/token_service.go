// services/token_service.go
package services

import (
	"github.com/notenest/notenest_backend/middleware"
)

// JWTIssuer issues signed JWTs through the middleware's signing setup, so
// tokens issued here verify against the same secret the routes check.
type JWTIssuer struct{}

// NewJWTIssuer creates a new JWT issuer
func NewJWTIssuer() *JWTIssuer {
	return &JWTIssuer{}
}

// Issue produces a signed token bound to the user
func (j *JWTIssuer) Issue(userID, email string) (string, error) {
	return middleware.GenerateJWT(userID, email)
}
