package pkg

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestVersionEmbedded(t *testing.T) {
	if strings.TrimSpace(Version) == "" {
		t.Error("Version is empty")
	}
}

func TestErrorChainMessage(t *testing.T) {
	err := ErrLoadSource.Wrapf("file %q", "vars.lua")

	want := `failed to load source: file "vars.lua"`
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestErrorsIs(t *testing.T) {
	cause := errors.New("disk full")
	err := ErrWriteSession.Wrap(cause)

	if !errors.Is(err, cause) {
		t.Error("errors.Is failed to find the wrapped cause")
	}
}

func TestMakeErrorFlattens(t *testing.T) {
	inner := errors.New("inner")
	wrapped := fmt.Errorf("outer: %w", inner)

	e := MakeError(wrapped)
	if len(e) != 2 {
		t.Fatalf("MakeError() chain length = %d, want 2", len(e))
	}

	if e[0] != inner {
		t.Errorf("chain[0] = %v, want innermost error", e[0])
	}
}

func TestMakeErrorNil(t *testing.T) {
	if e := MakeError(nil, nil); e != nil {
		t.Errorf("MakeError(nil, nil) = %v, want nil", e)
	}
}
