package utils

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/maksimkurb/warninglists/src/internal/log"
)

type closer struct {
	err    error
	closed bool
}

func (c *closer) Close() error {
	c.closed = true
	return c.err
}

func TestCloseOrWarn_LogsError(t *testing.T) {
	var out, errOut bytes.Buffer
	log.SetOutput(&out, &errOut)
	t.Cleanup(func() { log.SetOutput(os.Stdout, os.Stderr) })

	c := &closer{err: errors.New("boom")}
	CloseOrWarn(c)

	if !c.closed {
		t.Error("Expected Close to be called")
	}
	if !strings.Contains(out.String()+errOut.String(), "boom") {
		t.Errorf("Expected warning to mention the close error, got %q", out.String())
	}
}

func TestCloseOrPanic(t *testing.T) {
	CloseOrPanic(&closer{})

	defer func() {
		if recover() == nil {
			t.Error("Expected panic on close error")
		}
	}()
	CloseOrPanic(&closer{err: errors.New("boom")})
}
