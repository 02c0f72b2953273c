package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims is what the session cookie carries.
type TokenClaims struct {
	SessionID string
	UserID    int64
	ExpiresAt time.Time
}

// TokenSigner signs and verifies the HS256 session cookie.
type TokenSigner struct {
	secret []byte
	now    func() time.Time
}

func NewTokenSigner(secret string) *TokenSigner {
	return &TokenSigner{secret: []byte(secret), now: time.Now}
}

func (s *TokenSigner) Sign(sessionID string, userID int64, ttl time.Duration) (string, error) {
	now := s.now()
	claims := jwt.MapClaims{
		"sid":     sessionID,
		"user_id": userID,
		"exp":     now.Add(ttl).Unix(),
		"iat":     now.Unix(),
		"nbf":     now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *TokenSigner) Parse(tokenString string) (TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !token.Valid {
		return TokenClaims{}, errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return TokenClaims{}, errors.New("invalid claims")
	}

	sid, ok := claims["sid"].(string)
	if !ok || sid == "" {
		return TokenClaims{}, errors.New("sid not found")
	}
	userID, ok := claims["user_id"].(float64)
	if !ok {
		return TokenClaims{}, errors.New("user_id not found")
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return TokenClaims{}, errors.New("exp not found")
	}

	return TokenClaims{SessionID: sid, UserID: int64(userID), ExpiresAt: exp.Time}, nil
}
