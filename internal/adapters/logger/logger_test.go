package logger_test

import (
	"bytes"
	"testing"

	"github.com/mityas/tk-core/internal/adapters/logger"
	"go.trai.ch/zerr"
)

func TestLogger_Output(t *testing.T) {
	l := logger.New()
	var buf bytes.Buffer
	l.SetOutput(&buf)

	l.Info("cache refreshed")
	l.Warn("falling back to old convention")
	l.Error(zerr.New("cache unreadable"))

	out := buf.String()
	for _, want := range []string{"cache refreshed", "falling back to old convention", "cache unreadable"} {
		if !bytes.Contains([]byte(out), []byte(want)) {
			t.Errorf("expected output to contain %q, got %q", want, out)
		}
	}
}
