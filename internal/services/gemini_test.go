package services

import (
	"context"
	"errors"
	"testing"
)

func TestGeminiServiceDisabledWithoutKey(t *testing.T) {
	svc, err := NewGeminiService("", "gemini-1.5-flash", 5)
	if err != nil {
		t.Fatalf("missing key must not be a construction error: %v", err)
	}
	defer svc.Close()

	if svc.Enabled() {
		t.Error("service should report disabled without a key")
	}

	_, err = svc.Generate(context.Background(), "hello")
	if !errors.Is(err, ErrNotConfigured) {
		t.Errorf("expected ErrNotConfigured, got %v", err)
	}
}
