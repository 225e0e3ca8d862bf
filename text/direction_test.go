package text

import (
	"sync"
	"testing"
)

func TestDirection(t *testing.T) {
	for _, tt := range []struct {
		name string
		text string
		want Dir
	}{
		{"empty", "", Neutral},
		{"digits and spaces", "123 456", Neutral},
		{"latin", "hello", LTR},
		{"hebrew", "\u05E9\u05DC\u05D5\u05DD", RTL},
		{"arabic after digits", "12 \u0645\u0631\u062D\u0628\u0627", RTL},
		{"latin before arabic", "a\u0627", LTR},
		{"syriac", "\u0710", RTL},
		{"arabic presentation form", "\uFB50", RTL},
		{"japanese", "\u3042", LTR},
	} {
		t.Run(tt.name, func(t *testing.T) {
			if got := Direction(tt.text); got != tt.want {
				t.Errorf("Direction(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestDirectionCache(t *testing.T) {
	c := NewDirectionCache(2)
	if got := c.Direction("abc"); got != LTR {
		t.Errorf("Direction(abc) = %v", got)
	}
	c.Direction("abc")
	if c.Len() != 1 {
		t.Errorf("same text should be cached once, Len() = %v", c.Len())
	}
	c.Direction("\u05D0")
	c.Direction("123")
	if c.Len() != 2 {
		t.Errorf("cache should be bounded by 2, Len() = %v", c.Len())
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if c.Direction("\u0627") != RTL {
				t.Error("arabic should be RTL")
			}
		}()
	}
	wg.Wait()
}
