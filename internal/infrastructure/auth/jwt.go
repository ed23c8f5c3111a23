package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"campusvoice/internal/shared/authorization"
)

// Claims carries the actor identity inside an access token.
type Claims struct {
	Name string                 `json:"name"`
	Role authorization.UserRole `json:"role"`
	jwt.RegisteredClaims
}

type Token struct {
	AccessToken string
	ExpiresIn   int64
}

type JWTService struct {
	secret           []byte
	issuer           string
	accessExpMinutes int
	now              func() time.Time
}

func NewJWTService(secret, issuer string, accessExpMinutes int, now func() time.Time) *JWTService {
	return &JWTService{
		secret:           []byte(secret),
		issuer:           issuer,
		accessExpMinutes: accessExpMinutes,
		now:              now,
	}
}

// Generate signs an access token for actor.
func (s *JWTService) Generate(actor authorization.Actor) (*Token, error) {
	if actor.ID == "" {
		return nil, fmt.Errorf("actor ID is required")
	}
	if !actor.Role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", actor.Role)
	}

	now := s.now()
	claims := &Claims{
		Name: actor.Name,
		Role: actor.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   actor.ID,
			Issuer:    s.issuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(s.accessExpMinutes) * time.Minute)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return nil, fmt.Errorf("failed to sign access token: %w", err)
	}

	return &Token{
		AccessToken: signed,
		ExpiresIn:   int64(s.accessExpMinutes * 60),
	}, nil
}

// Verify parses a token and returns the actor it was issued to.
func (s *JWTService) Verify(tokenString string) (authorization.Actor, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	},
		jwt.WithIssuer(s.issuer),
		jwt.WithTimeFunc(s.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return authorization.Actor{}, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return authorization.Actor{}, fmt.Errorf("invalid token")
	}
	if claims.Subject == "" || !claims.Role.IsValid() {
		return authorization.Actor{}, fmt.Errorf("token carries no valid identity")
	}

	return authorization.Actor{ID: claims.Subject, Role: claims.Role, Name: claims.Name}, nil
}

// AccessExpMinutes returns the access token lifetime in minutes.
func (s *JWTService) AccessExpMinutes() int {
	return s.accessExpMinutes
}
