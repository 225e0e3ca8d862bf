package errutil

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

type failWriter struct{ n int }

var errFail = errors.New("fail")

func (fw *failWriter) Write(p []byte) (int, error) {
	fw.n++
	return 0, errFail
}

func TestWriter(t *testing.T) {
	fw := &failWriter{}
	w := NewErrWriter(fw)
	w.Write([]byte("a"))
	w.Write([]byte("b"))
	if fw.n != 1 {
		t.Errorf("write after error should be skipped, called %d times", fw.n)
	}
	if !errors.Is(w.Err(), errFail) {
		t.Errorf("Err() = %v", w.Err())
	}

	buf := new(bytes.Buffer)
	w = NewErrWriter(buf)
	w.Write([]byte("ok"))
	if w.Err() != nil || buf.String() != "ok" {
		t.Errorf("got (%q, %v)", buf.String(), w.Err())
	}
}

func TestMultiError(t *testing.T) {
	var me MultiError
	if me.Err() != nil {
		t.Fatal("empty MultiError should be nil")
	}
	me.Add(nil)
	if me.Len() != 0 {
		t.Fatal("nil error should be ignored")
	}

	errA := errors.New("a")
	errB := errors.New("b")
	me.Add(errA)
	if me.Err() != errA {
		t.Errorf("single error should be returned as is")
	}
	me.Add(errB)
	err := me.Err()
	if !errors.Is(err, errA) || !errors.Is(err, errB) {
		t.Errorf("joined error should match both, got %v", err)
	}
	if !strings.HasPrefix(err.Error(), "multiple errors:") {
		t.Errorf("unexpected message %q", err.Error())
	}
}
