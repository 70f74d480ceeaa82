package util

import (
	"strings"
	"testing"
	"time"
)

func TestRandomCode(t *testing.T) {
	t.Parallel()

	code, err := RandomCode(8, CodeAlphabet)
	if err != nil {
		t.Fatalf("RandomCode returned error: %v", err)
	}
	if len(code) != 8 {
		t.Fatalf("RandomCode length = %d, want 8", len(code))
	}
	for _, r := range code {
		if !strings.ContainsRune(CodeAlphabet, r) {
			t.Fatalf("RandomCode produced %q outside the alphabet", r)
		}
	}

	if _, err := RandomCode(0, CodeAlphabet); err == nil {
		t.Fatal("RandomCode accepted a zero length")
	}
}

func TestRandomHex(t *testing.T) {
	t.Parallel()

	token, err := RandomHex(32)
	if err != nil {
		t.Fatalf("RandomHex returned error: %v", err)
	}
	if len(token) != 64 {
		t.Fatalf("RandomHex length = %d, want 64", len(token))
	}
}

func TestReplacePlaceholders(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		text     string
		values   map[string]string
		expected string
	}{
		{name: "both placeholders", text: "Hi {firstName}, order {orderId}", values: map[string]string{"firstName": "Anna", "orderId": "AB12CD34"}, expected: "Hi Anna, order AB12CD34"},
		{name: "repeated placeholder", text: "{orderId}/{orderId}", values: map[string]string{"orderId": "X"}, expected: "X/X"},
		{name: "unknown placeholder kept", text: "Hello {name}", values: map[string]string{"firstName": "Anna"}, expected: "Hello {name}"},
		{name: "no values", text: "plain", values: nil, expected: "plain"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := ReplacePlaceholders(tt.text, tt.values); got != tt.expected {
				t.Fatalf("ReplacePlaceholders() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestFormatDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		duration time.Duration
		expected string
	}{
		{name: "under one minute", duration: 45 * time.Second, expected: "45s"},
		{name: "rounded second to minute", duration: 59*time.Second + 500*time.Millisecond, expected: "1m0s"},
		{name: "minutes and seconds", duration: 2*time.Minute + 30*time.Second, expected: "2m30s"},
		{name: "hours and minutes", duration: time.Hour + 30*time.Minute, expected: "1h30m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FormatDuration(tt.duration); got != tt.expected {
				t.Fatalf("FormatDuration(%s) = %s, want %s", tt.duration, got, tt.expected)
			}
		})
	}
}
