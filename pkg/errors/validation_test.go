package errors

import (
	"testing"
)

func TestValidateSlotName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid simple", "composition_v1", false},
		{"valid with dash", "my-slot", false},
		{"valid with dot", "slot.v2", false},

		{"empty", "", true},
		{"too long", string(make([]byte, 200)), true},
		{"path separator", "foo/bar", true},
		{"backslash", "foo\\bar", true},
		{"path traversal", "foo..bar", true},
		{"control char", "foo\x01bar", true},
		{"newline", "foo\nbar", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSlotName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateSlotName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateOutputFilename(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid simple", "composition.png", false},
		{"valid with dir", "out/composition.png", false},

		{"empty", "", true},
		{"traversal", "../composition.png", true},
		{"null byte", "out\x00.png", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputFilename(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateOutputFilename(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
