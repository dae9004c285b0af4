package service

import (
	"fmt"
	"time"

	"exam-prep/internal/config"
	"exam-prep/internal/domain"
	"exam-prep/internal/dto"
	"exam-prep/internal/util"

	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims are the JWT claims carried by an anonymous session token
type SessionClaims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

// SessionService issues and validates anonymous session tokens. There is no
// user directory; a session exists from the moment its token is issued, and
// quizzes and results are scoped to it.
type SessionService interface {
	IssueSession() (*dto.SessionResponse, error)
	ValidateToken(tokenString string) (string, error)
}

type sessionService struct {
	secret []byte
	ttl    time.Duration
}

// NewSessionService creates a new instance of sessionService
func NewSessionService(cfg config.SessionConfig) (SessionService, error) {
	if cfg.Secret == "" {
		return nil, fmt.Errorf("session secret is not configured")
	}
	ttl := cfg.TokenTTL
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}
	return &sessionService{secret: []byte(cfg.Secret), ttl: ttl}, nil
}

// IssueSession implements SessionService
func (s *sessionService) IssueSession() (*dto.SessionResponse, error) {
	sessionID := util.NewULID()
	now := time.Now()

	claims := SessionClaims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			Subject:   sessionID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return nil, domain.NewInternalError("Failed to sign session token", err)
	}

	return &dto.SessionResponse{
		SessionID: sessionID,
		Token:     signed,
		ExpiresIn: int(s.ttl.Seconds()),
	}, nil
}

// ValidateToken implements SessionService
func (s *sessionService) ValidateToken(tokenString string) (string, error) {
	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return "", domain.NewError(domain.ErrUnauthorized, "Invalid session token", err)
	}
	if !token.Valid || claims.SessionID == "" {
		return "", domain.NewError(domain.ErrUnauthorized, "Invalid session token", nil)
	}
	return claims.SessionID, nil
}
