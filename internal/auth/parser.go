package auth

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/nurpe/staffdesk/internal/model"
)

// Parser verifies access tokens issued by the identity service and extracts
// the caller's principal.
type Parser struct {
	secret []byte
}

func NewParser(secret string) *Parser {
	return &Parser{secret: []byte(secret)}
}

type accessClaims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

func (p *Parser) Parse(tokenString string) (model.Principal, error) {
	claims := &accessClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return p.secret, nil
	})
	if err != nil {
		return model.Principal{}, err
	}
	if !token.Valid {
		return model.Principal{}, fmt.Errorf("invalid token")
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return model.Principal{}, fmt.Errorf("invalid subject: %w", err)
	}

	role := model.Role(claims.Role)
	switch role {
	case model.RoleAdmin, model.RoleManager, model.RoleViewer:
	default:
		return model.Principal{}, fmt.Errorf("unknown role %q", claims.Role)
	}

	return model.Principal{
		UserID: userID,
		Email:  claims.Email,
		Role:   role,
	}, nil
}
