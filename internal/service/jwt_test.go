package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestTokenSigner_RoundTrip(t *testing.T) {
	s := NewTokenSigner("secret")
	token, err := s.Sign("sid-1", 42, time.Hour)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	claims, err := s.Parse(token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.SessionID != "sid-1" || claims.UserID != 42 {
		t.Fatalf("unexpected claims: %+v", claims)
	}
	if claims.ExpiresAt.Before(time.Now()) {
		t.Fatalf("expiry in the past: %v", claims.ExpiresAt)
	}
}

func TestTokenSigner_RejectsForgedSignature(t *testing.T) {
	token, err := NewTokenSigner("other-secret").Sign("sid-1", 42, time.Hour)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := NewTokenSigner("secret").Parse(token); err == nil {
		t.Fatal("expected forged token to be rejected")
	}
}

func TestTokenSigner_RejectsExpired(t *testing.T) {
	s := NewTokenSigner("secret")
	s.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	token, err := s.Sign("sid-1", 42, time.Hour)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	s.now = time.Now
	if _, err := s.Parse(token); err == nil {
		t.Fatal("expected expired token to be rejected")
	}
}

func TestTokenSigner_RejectsOtherAlgorithms(t *testing.T) {
	claims := jwt.MapClaims{"sid": "x", "user_id": 1, "exp": time.Now().Add(time.Hour).Unix()}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := NewTokenSigner("secret").Parse(token); err == nil {
		t.Fatal("expected HS512 token to be rejected")
	}

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign none: %v", err)
	}
	if _, err := NewTokenSigner("secret").Parse(none); err == nil {
		t.Fatal("expected unsigned token to be rejected")
	}
}

func TestTokenSigner_RequiresSessionID(t *testing.T) {
	claims := jwt.MapClaims{"user_id": 1, "exp": time.Now().Add(time.Hour).Unix()}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := NewTokenSigner("secret").Parse(token); err == nil {
		t.Fatal("expected token without sid to be rejected")
	}
}
