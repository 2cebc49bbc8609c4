package utils

import (
	"testing"
	"time"
)

func TestSessionRoundTrip(t *testing.T) {
	s, err := NewSession("topsecret", 42, "marco", 168)
	if err != nil {
		t.Fatalf("NewSession failed: %v", err)
	}
	if s.ID == "" {
		t.Fatal("session jti should not be empty")
	}
	if s.Exp.Before(time.Now().UTC().Add(167 * time.Hour)) {
		t.Errorf("session expiry %v is sooner than requested TTL", s.Exp)
	}

	uid, name, jti, err := ParseSession("topsecret", s.Token)
	if err != nil {
		t.Fatalf("ParseSession failed: %v", err)
	}
	if uid != 42 || name != "marco" || jti != s.ID {
		t.Errorf("ParseSession = (%d, %q, %q), want (42, marco, %q)", uid, name, jti, s.ID)
	}
}

func TestParseSessionRejectsWrongSecret(t *testing.T) {
	s, err := NewSession("topsecret", 7, "ana", 24)
	if err != nil {
		t.Fatalf("NewSession failed: %v", err)
	}
	if _, _, _, err := ParseSession("othersecret", s.Token); err != ErrInvalidSession {
		t.Errorf("ParseSession with wrong secret = %v, want ErrInvalidSession", err)
	}
}

func TestParseSessionRejectsGarbage(t *testing.T) {
	if _, _, _, err := ParseSession("topsecret", "not.a.jwt"); err != ErrInvalidSession {
		t.Errorf("ParseSession(garbage) = %v, want ErrInvalidSession", err)
	}
}

func TestHashSessionIDStable(t *testing.T) {
	a := HashSessionID("abc")
	b := HashSessionID("abc")
	if a != b {
		t.Error("HashSessionID is not deterministic")
	}
	if len(a) != 64 {
		t.Errorf("HashSessionID length = %d, want 64 hex chars", len(a))
	}
	if a == HashSessionID("abd") {
		t.Error("distinct inputs should not collide trivially")
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("hunter2", 4)
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	if !VerifyPassword(hash, "hunter2") {
		t.Error("VerifyPassword rejected the correct password")
	}
	if VerifyPassword(hash, "hunter3") {
		t.Error("VerifyPassword accepted a wrong password")
	}
}
