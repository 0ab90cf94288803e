package services

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/cherilynwood/dog-enrichment-backend/internal/logger"
	"github.com/cherilynwood/dog-enrichment-backend/internal/types"
)

const SessionCookieName = "enrichment_session"

// SessionService keeps the dog profile between visits as a signed
// cookie, so the form comes back pre-filled. A missing or tampered
// cookie just means an empty profile.
type SessionService interface {
	EncodeProfile(profile types.DogProfile) (string, error)
	DecodeProfile(token string) (types.DogProfile, error)
	CookieMaxAge() int
}

type sessionService struct {
	log    *logger.Logger
	secret []byte
	ttl    time.Duration
}

type sessionClaims struct {
	Profile types.DogProfile `json:"dog_profile"`
	jwt.RegisteredClaims
}

func NewSessionService(log *logger.Logger, secret string, ttl time.Duration) SessionService {
	return &sessionService{
		log:    log.With("service", "SessionService"),
		secret: []byte(secret),
		ttl:    ttl,
	}
}

func (ss *sessionService) EncodeProfile(profile types.DogProfile) (string, error) {
	now := time.Now()
	claims := sessionClaims{
		Profile: profile,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ss.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(ss.secret)
}

func (ss *sessionService) DecodeProfile(tokenString string) (types.DogProfile, error) {
	var claims sessionClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return ss.secret, nil
	})
	if err != nil {
		return types.DogProfile{}, err
	}
	if !token.Valid {
		return types.DogProfile{}, fmt.Errorf("invalid session token")
	}
	return claims.Profile, nil
}

func (ss *sessionService) CookieMaxAge() int {
	return int(ss.ttl.Seconds())
}
