package ioutil_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/ghettovoice/urisplit/internal/ioutil"
)

type failWriter struct {
	limit int
	err   error
}

func (w *failWriter) Write(p []byte) (int, error) {
	if len(p) > w.limit {
		n := w.limit
		w.limit = 0
		return n, w.err
	}
	w.limit -= len(p)
	return len(p), nil
}

func TestCountingWriter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	cw := ioutil.GetCountingWriter(&buf)
	defer ioutil.FreeCountingWriter(cw)

	cw.WriteString("http:")
	cw.Fprintf("//%s:%d", "example.com", 80)

	num, err := cw.Result()
	if err != nil {
		t.Fatalf("cw.Result() error = %v, want nil", err)
	}
	if want := "http://example.com:80"; buf.String() != want || num != len(want) {
		t.Errorf("cw.Result() = %d, buffer %q, want %d, %q", num, buf.String(), len(want), want)
	}
}

func TestCountingWriter_Error(t *testing.T) {
	t.Parallel()

	wantErr := errors.New("disk full")
	cw := ioutil.GetCountingWriter(&failWriter{limit: 3, err: wantErr})
	defer ioutil.FreeCountingWriter(cw)

	cw.WriteString("ab")
	cw.WriteString("cd")
	cw.Fprintf("%s", "ef")

	num, err := cw.Result()
	if !errors.Is(err, wantErr) {
		t.Errorf("cw.Result() error = %v, want %v", err, wantErr)
	}
	if num != 3 {
		t.Errorf("cw.Result() num = %d, want 3", num)
	}
}

func TestFreeCountingWriter(t *testing.T) {
	t.Parallel()

	cw := ioutil.GetCountingWriter(&failWriter{err: errors.New("boom")})
	cw.WriteString("x")
	ioutil.FreeCountingWriter(cw)

	var buf bytes.Buffer
	cw = ioutil.GetCountingWriter(&buf)
	defer ioutil.FreeCountingWriter(cw)
	cw.WriteString("y")
	if num, err := cw.Result(); num != 1 || err != nil {
		t.Errorf("reused cw.Result() = (%d, %v), want (1, nil)", num, err)
	}
}
