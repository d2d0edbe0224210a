package utils

import (
	"encoding/base64"
	"testing"
)

func TestGenerateULIDStringIsUnique(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id := GenerateULIDString()
		if len(id) != 26 {
			t.Fatalf("ulid length = %d, want 26", len(id))
		}
		if seen[id] {
			t.Fatalf("duplicate ulid generated: %s", id)
		}
		seen[id] = true
	}
}

func TestGenerateSessionID(t *testing.T) {
	a := GenerateSessionID()
	b := GenerateSessionID()
	if a == b {
		t.Error("session ids must be unique")
	}
	if len(a) != 36 {
		t.Errorf("session id length = %d, want 36", len(a))
	}
}

func TestDecodeBase64Image(t *testing.T) {
	payload := []byte{0xFF, 0xD8, 0xFF, 0xE0}
	encoded := base64.StdEncoding.EncodeToString(payload)

	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"plain base64", encoded, false},
		{"data url prefix", "data:image/jpeg;base64," + encoded, false},
		{"invalid payload", "not-base64!!!", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decoded, err := DecodeBase64Image(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && string(decoded) != string(payload) {
				t.Errorf("decoded bytes mismatch")
			}
		})
	}
}

func TestHasItemString(t *testing.T) {
	arr := []string{"log", "email", "slack"}
	if !HasItemString(&arr, "email") {
		t.Error("expected to find existing item")
	}
	if HasItemString(&arr, "sms") {
		t.Error("did not expect to find missing item")
	}
}
