package auth

import (
	"errors"
	"testing"
	"time"
)

func TestSessionTokenRoundTrip(t *testing.T) {
	svc := NewSessionTokenService(TokenConfig{SecretKey: "test-secret", TTL: time.Hour, TokenIssuer: "alumnet"})

	token, err := svc.Sign("b5a4c2f0-1111-4e7c-9a55-2f2d1f0c0a01")
	if err != nil {
		t.Fatalf("sign error: %v", err)
	}
	sid, err := svc.Parse(token)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if sid != "b5a4c2f0-1111-4e7c-9a55-2f2d1f0c0a01" {
		t.Fatalf("unexpected session id %q", sid)
	}
}

func TestSessionTokenRejectsForeignSecret(t *testing.T) {
	issuer := NewSessionTokenService(TokenConfig{SecretKey: "one", TTL: time.Hour, TokenIssuer: "alumnet"})
	verifier := NewSessionTokenService(TokenConfig{SecretKey: "two", TTL: time.Hour, TokenIssuer: "alumnet"})

	token, _ := issuer.Sign("sid")
	if _, err := verifier.Parse(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected invalid token, got %v", err)
	}
}

func TestSessionTokenExpires(t *testing.T) {
	svc := NewSessionTokenService(TokenConfig{SecretKey: "s", TTL: -time.Minute, TokenIssuer: "alumnet"})

	token, _ := svc.Sign("sid")
	if _, err := svc.Parse(token); !errors.Is(err, ErrExpiredToken) {
		t.Fatalf("expected expired token, got %v", err)
	}
}

func TestSessionTokenRejectsGarbage(t *testing.T) {
	svc := NewSessionTokenService(TokenConfig{SecretKey: "s", TTL: time.Hour})
	if _, err := svc.Parse(""); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected invalid token for empty input")
	}
	if _, err := svc.Parse("not.a.token"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected invalid token for garbage")
	}
}
