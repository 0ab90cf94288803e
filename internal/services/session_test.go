package services

import (
	"testing"
	"time"

	"github.com/cherilynwood/dog-enrichment-backend/internal/types"
)

func TestSessionRoundTrip(t *testing.T) {
	log := testLogger(t)
	ss := NewSessionService(log, "test-secret", time.Hour)

	profile := types.DogProfile{
		Breed:          "Giant breed (over 90 lbs)",
		Age:            "Puppy (under 1 year)",
		EnergyLevel:    "High energy",
		Weather:        "Nice weather - outdoor activities",
		EnrichmentType: "Physical enrichment - exercise",
	}

	token, err := ss.EncodeProfile(profile)
	if err != nil {
		t.Fatalf("EncodeProfile: %v", err)
	}

	decoded, err := ss.DecodeProfile(token)
	if err != nil {
		t.Fatalf("DecodeProfile: %v", err)
	}
	if decoded != profile {
		t.Errorf("decoded %+v, want %+v", decoded, profile)
	}
}

func TestSessionRejectsTamperedToken(t *testing.T) {
	log := testLogger(t)
	ss := NewSessionService(log, "test-secret", time.Hour)

	token, err := ss.EncodeProfile(types.DogProfile{Breed: "Small breed (under 25 lbs)"})
	if err != nil {
		t.Fatalf("EncodeProfile: %v", err)
	}

	if _, err := ss.DecodeProfile(token + "x"); err == nil {
		t.Error("tampered token should not decode")
	}
}

func TestSessionRejectsWrongSecret(t *testing.T) {
	log := testLogger(t)
	encoder := NewSessionService(log, "secret-a", time.Hour)
	decoder := NewSessionService(log, "secret-b", time.Hour)

	token, err := encoder.EncodeProfile(types.DogProfile{Breed: "Small breed (under 25 lbs)"})
	if err != nil {
		t.Fatalf("EncodeProfile: %v", err)
	}

	if _, err := decoder.DecodeProfile(token); err == nil {
		t.Error("token signed with another secret should not decode")
	}
}

func TestSessionRejectsExpiredToken(t *testing.T) {
	log := testLogger(t)
	ss := NewSessionService(log, "test-secret", -time.Minute)

	token, err := ss.EncodeProfile(types.DogProfile{Breed: "Small breed (under 25 lbs)"})
	if err != nil {
		t.Fatalf("EncodeProfile: %v", err)
	}

	if _, err := ss.DecodeProfile(token); err == nil {
		t.Error("expired token should not decode")
	}
}

func TestCookieMaxAge(t *testing.T) {
	log := testLogger(t)
	ss := NewSessionService(log, "test-secret", 48*time.Hour)
	if got := ss.CookieMaxAge(); got != 48*3600 {
		t.Errorf("CookieMaxAge() = %d, want %d", got, 48*3600)
	}
}
