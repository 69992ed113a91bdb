package logger

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"
)

func TestSanitizePayloadMasksPasswords(t *testing.T) {
	payload := map[string]any{
		"name":     "Ada",
		"password": "Passw0rd",
		"nested": map[string]any{
			"passwordHash": "$2a$10$abc",
			"city":         "London",
		},
	}

	got, ok := SanitizePayload(payload).(map[string]any)
	if !ok {
		t.Fatalf("expected map payload, got %T", SanitizePayload(payload))
	}
	if got["password"] != "******" {
		t.Fatalf("expected password to be masked, got %v", got["password"])
	}
	nested := got["nested"].(map[string]any)
	if nested["passwordHash"] != "******" {
		t.Fatalf("expected passwordHash to be masked, got %v", nested["passwordHash"])
	}
	if nested["city"] != "London" {
		t.Fatalf("expected city untouched, got %v", nested["city"])
	}
}

func TestErrorWritesLevelAndError(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)

	Error("account repository create failed", errors.New("boom"), Fields{"accountNumber": "1234567890"})

	line := buf.String()
	if !strings.Contains(line, "ERROR account repository create failed") {
		t.Fatalf("missing level and message in %q", line)
	}
	if !strings.Contains(line, `"error":"boom"`) || !strings.Contains(line, `"accountNumber":"1234567890"`) {
		t.Fatalf("missing fields in %q", line)
	}
}

func TestSanitizePayloadMasksPersonalData(t *testing.T) {
	got := SanitizePayload(map[string]any{
		"contactNumber": "0123456789",
		"email":         "ada@example.com",
		"accountNumber": "1234567890",
		"customer":      map[string]any{"contact_number": "987"},
	}).(map[string]any)

	if got["contactNumber"] != "******6789" {
		t.Fatalf("expected contact number to keep its last 4 digits, got %v", got["contactNumber"])
	}
	if got["email"] != "***********.com" {
		t.Fatalf("expected email to keep its last 4 characters, got %v", got["email"])
	}
	if got["accountNumber"] != "1234567890" {
		t.Fatalf("expected account number untouched, got %v", got["accountNumber"])
	}
	if nested := got["customer"].(map[string]any); nested["contact_number"] != "***" {
		t.Fatalf("expected short value masked whole, got %v", nested["contact_number"])
	}
}

func TestInfoMasksRequestPayload(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)

	Info("http request", Fields{"payload": map[string]any{"password": "Passw0rd", "contactNumber": "0123456789"}})

	line := buf.String()
	if strings.Contains(line, "Passw0rd") || strings.Contains(line, "0123456789") {
		t.Fatalf("expected secrets and personal data masked in %q", line)
	}
	if !strings.Contains(line, "6789") {
		t.Fatalf("expected contact suffix kept in %q", line)
	}
}
