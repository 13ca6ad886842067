package errors

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    string
		wantMsg string
		wantCat Category
	}{
		{"config error", "E102", "Invalid duration", CategoryConfig},
		{"runtime error", "E201", "Toast not found", CategoryRuntime},
		{"protocol error", "E300", "Invalid request payload", CategoryProtocol},
		{"unknown error code", "E999", "Unknown error", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.code)
			if err.Message != tt.wantMsg {
				t.Errorf("Message = %q, want %q", err.Message, tt.wantMsg)
			}
			if err.Category != tt.wantCat {
				t.Errorf("Category = %q, want %q", err.Category, tt.wantCat)
			}
			if err.Code != tt.code {
				t.Errorf("Code = %q, want %q", err.Code, tt.code)
			}
		})
	}
}

func TestError(t *testing.T) {
	if got := New("E103").Error(); got != "E103: Invalid port" {
		t.Errorf("Error() = %q", got)
	}

	cause := fmt.Errorf("boom")
	err := New("E100").Wrap(cause)
	if got := err.Error(); got != "E100: Config file unreadable: boom" {
		t.Errorf("Error() = %q", got)
	}
	if !stderrors.Is(err, cause) {
		t.Error("errors.Is should see the wrapped cause")
	}

	if got := Newf(CategoryCLI, "bad %s", "flag").Error(); got != "bad flag" {
		t.Errorf("Newf Error() = %q", got)
	}
}

func TestFromErrorAndHasCode(t *testing.T) {
	if FromError(nil, "E100") != nil {
		t.Error("FromError(nil) should be nil")
	}

	orig := New("E201")
	wrapped := fmt.Errorf("closing: %w", orig)
	if FromError(wrapped, "E300") != orig {
		t.Error("FromError should return the existing ToastError")
	}
	if !HasCode(wrapped, "E201") {
		t.Error("HasCode should find the code through wrapping")
	}
	if HasCode(fmt.Errorf("plain"), "E201") {
		t.Error("HasCode on a plain error should be false")
	}

	plain := FromError(fmt.Errorf("x"), "E300")
	if plain.Code != "E300" || plain.Wrapped == nil {
		t.Errorf("FromError(plain) = %+v", plain)
	}
}

func TestFormat(t *testing.T) {
	DisableColors()
	defer EnableColors()

	err := New("E102").
		WithFile("toastkit.json").
		WithSuggestion(`Use Go duration syntax, e.g. "5s"`).
		Wrap(fmt.Errorf(`time: invalid duration "five"`))

	out := err.Format()
	for _, want := range []string{
		"ERROR E102: Invalid duration",
		"toastkit.json",
		"A duration field could not be parsed",
		`Cause: time: invalid duration "five"`,
		`Hint: Use Go duration syntax, e.g. "5s"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Format() missing %q:\n%s", want, out)
		}
	}

	if got := err.FormatCompact(); !strings.HasPrefix(got, "toastkit.json: E102: Invalid duration") {
		t.Errorf("FormatCompact() = %q", got)
	}
}

func TestFprint(t *testing.T) {
	DisableColors()
	defer EnableColors()

	var buf bytes.Buffer
	Fprint(&buf, fmt.Errorf("plain failure"))
	if !strings.Contains(buf.String(), "ERROR: plain failure") {
		t.Errorf("got %q", buf.String())
	}
}

func TestWrapText(t *testing.T) {
	lines := wrapText(strings.Repeat("word ", 30), 20)
	for _, l := range lines {
		if len(l) > 20 {
			t.Errorf("line too long: %q", l)
		}
	}
	if wrapText("", 10) != nil {
		t.Error("empty text should wrap to nil")
	}
}
