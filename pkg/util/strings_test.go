package util

import (
	"strings"
	"testing"
)

func TestIsNumeric(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"1234567890", true},
		{"0", true},
		{"", false},
		{"123a", false},
		{"12 34", false},
		{"-123", false},
	}
	for _, tt := range tests {
		if got := IsNumeric(tt.input); got != tt.want {
			t.Errorf("IsNumeric(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestMask(t *testing.T) {
	secret := "1//0abcdefghijklmnopqrstuvwxyz"
	got := Mask(secret)
	if !strings.HasSuffix(got, "...") {
		t.Errorf("Mask() = %q, want trailing ellipsis", got)
	}
	if strings.Contains(got, secret[10:]) {
		t.Errorf("Mask() leaked the secret tail: %q", got)
	}

	if got := Mask("short"); got != "..." {
		t.Errorf("Mask(short) = %q, short values must be fully hidden", got)
	}
	if got := Mask(""); got != "" {
		t.Errorf("Mask(empty) = %q", got)
	}
}
