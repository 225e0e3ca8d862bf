package log

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
)

func TestLogger(t *testing.T) {
	buf := new(bytes.Buffer)
	logger := New(buf, "", LstdFlags)

	logger.Debug("debug text")
	if bs := buf.Bytes(); len(bs) != 0 {
		t.Error("On InfoLevel, Debug outputs some text")
	}
	if err := logger.Err(); !errors.Is(err, ErrOutputDiscardedByLevel) {
		t.Errorf("On InfoLevel, Debug should record discarded error, got %v", err)
	}

	buf.Reset()
	logger.Info("info text")
	if bs := buf.Bytes(); len(bs) == 0 {
		t.Error("On InfoLevel, Info outputs nothing")
	}
	if err := logger.Err(); err != nil {
		t.Errorf("Info should succeed, got %v", err)
	}

	logger.SetLevel(DebugLevel)

	buf.Reset()
	logger.Debug("debug text")
	if s := buf.String(); !strings.Contains(s, DebugPrefix+"debug text") {
		t.Errorf("On DebugLevel, Debug outputs %q", s)
	}
}

func TestParseLevel(t *testing.T) {
	for _, tt := range []struct {
		name    string
		want    Level
		wantErr bool
	}{
		{"info", InfoLevel, false},
		{"DEBUG", DebugLevel, false},
		{"trace", InfoLevel, true},
	} {
		got, err := ParseLevel(tt.name)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLevel(%q) error = %v, wantErr %v", tt.name, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestLimitWriter(t *testing.T) {
	buf := new(bytes.Buffer)
	w := LimitWriter(buf, 5)
	if n, err := w.Write([]byte("abcdefg")); n != 5 || err != nil {
		t.Fatalf("first write = (%v, %v), want (5, nil)", n, err)
	}
	if _, err := w.Write([]byte("h")); err != io.EOF {
		t.Fatalf("write after limit should be EOF, got %v", err)
	}
	if got := buf.String(); got != "abcde" {
		t.Errorf("written = %q", got)
	}
}
