package androidutil

import "testing"

func TestIsRTL(t *testing.T) {
	for _, tt := range []struct {
		name string
		text string
		want bool
	}{
		{"empty", "", false},
		{"latin", "abc", false},
		{"hebrew aleph first", "\u05D0bc", true},
		{"arabic alef last", "ab\u0627", true},
		{"below range", "\u058F", false},
		{"above range", "\u0700", false},
		{"lower bound", "x\u0590", true},
		{"upper bound", "\u06FFx", true},
		{"presentation form not detected", "\uFB50", false},
		{"syriac not detected", "\u0710", false},
		{"japanese", "こんにちは", false},
	} {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsRTL(tt.text); got != tt.want {
				t.Errorf("IsRTL(%q) = %v, want %v", tt.text, got, tt.want)
			}
			if got := IsRTLBytes([]byte(tt.text)); got != tt.want {
				t.Errorf("IsRTLBytes(%q) = %v, want %v", tt.text, got, tt.want)
			}
			if got := IsRTLRunes([]rune(tt.text)); got != tt.want {
				t.Errorf("IsRTLRunes(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestIsRTLAbsent(t *testing.T) {
	if IsRTLBytes(nil) {
		t.Error("IsRTLBytes(nil) should be false")
	}
	if IsRTLRunes(nil) {
		t.Error("IsRTLRunes(nil) should be false")
	}
}

func TestIsRTLInvalidUTF8(t *testing.T) {
	if IsRTL("\xff\xfe") {
		t.Error("invalid utf8 should not be rtl")
	}
	if !IsRTL("\xff\u05D0") {
		t.Error("rtl rune after invalid byte should be found")
	}
}
