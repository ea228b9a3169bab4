package usecase

import (
	"library-admin/internal/domain/user"
	"library-admin/internal/pkg/errs"
	"library-admin/internal/pkg/jwt"

	"github.com/google/uuid"
)

var ErrMissingSubject = errs.New("token has no subject")

// Principal is the administrator identity carried by a bearer token.
type Principal struct {
	ID   uuid.UUID
	Role user.Role
}

type TokenValidator interface {
	ValidateToken(tokenString string) (Principal, error)
}

type jwtTokenValidator struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &jwtTokenValidator{jwtService: jwtService}
}

// ValidateToken checks signature, issuer and expiry, then the role claim.
// Authorization on the role is left to the caller.
func (v *jwtTokenValidator) ValidateToken(tokenString string) (Principal, error) {
	claims, err := v.jwtService.ValidateToken(tokenString)
	if err != nil {
		return Principal{}, err
	}
	if claims.UserID == uuid.Nil {
		return Principal{}, ErrMissingSubject
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return Principal{}, errs.Wrap(err, "token role")
	}
	return Principal{ID: claims.UserID, Role: role}, nil
}
