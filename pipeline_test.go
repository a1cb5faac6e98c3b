package ppmfx

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func TestRun_InvertAllWhite(t *testing.T) {
	text := "P3\n3 3\n255\n" + strings.Repeat("255 255 255\n", 9)

	out, err := Run(text, "invert")
	if err != nil {
		t.Fatalf("Run() = %v", err)
	}

	want := "P3\n3 3\n255\n" + strings.Repeat("0 0 0\n", 9)
	if out != want {
		t.Errorf("Run() = %q, want %q", out, want)
	}
}

func TestRun_UnknownFilter(t *testing.T) {
	// Filter validation happens before decode: even valid image text
	// must produce no output for an unknown name.
	out, err := Run("P3 1 1 255 0 0 0", "sepia")
	if !errors.Is(err, ErrUnknownFilter) {
		t.Fatalf("Run() = %v, want ErrUnknownFilter", err)
	}
	if out != "" {
		t.Errorf("Run() produced output %q alongside an error", out)
	}
}

func TestRun_UnknownFilterBeforeDecode(t *testing.T) {
	// Garbage input with an unknown filter reports the filter error,
	// proving the name is validated at the boundary first.
	_, err := Run("not an image", "sepia")
	if !errors.Is(err, ErrUnknownFilter) {
		t.Fatalf("Run() = %v, want ErrUnknownFilter", err)
	}
}

func TestRun_DecodeErrorPropagates(t *testing.T) {
	out, err := Run("P2 1 1 255 0 0 0", "invert")
	if !errors.Is(err, ErrBadMagic) {
		t.Fatalf("Run() = %v, want ErrBadMagic", err)
	}
	if out != "" {
		t.Errorf("Run() produced output %q alongside an error", out)
	}
}

func TestRun_Roundtrip(t *testing.T) {
	text := "P3\n2 2\n255\n1 2 3\n4 5 6\n7 8 9\n10 11 12\n"

	// invert twice restores the original
	once, err := Run(text, "invert")
	if err != nil {
		t.Fatalf("Run() = %v", err)
	}
	twice, err := Run(once, "invert")
	if err != nil {
		t.Fatalf("Run() = %v", err)
	}
	if twice != text {
		t.Errorf("double invert = %q, want %q", twice, text)
	}
}

func TestRun_LogsAppliedFilter(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))

	if _, err := Run("P3 2 1 255 0 0 0 255 255 255", "grayscale"); err != nil {
		t.Fatalf("Run() = %v", err)
	}

	logged := buf.String()
	for _, want := range []string{"filter applied", "grayscale", "width=2", "height=1"} {
		if !strings.Contains(logged, want) {
			t.Errorf("log output %q does not contain %q", logged, want)
		}
	}
}
