package errors

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"log/slog"
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
		{
			name:    "missing head",
			code:    CodeMissingHead,
			wantMsg: "Item is missing its head element",
			wantCat: CategoryMarkup,
		},
		{
			name:    "config read",
			code:    CodeConfigRead,
			wantMsg: "Failed to read configuration",
			wantCat: CategoryConfig,
		},
		{
			name:    "live message",
			code:    CodeLiveMessage,
			wantMsg: "Invalid live message",
			wantCat: CategoryProtocol,
		},
		{
			name:    "unknown error code",
			code:    "Z999",
			wantMsg: "Unknown error",
			wantCat: "",
		},
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
			if err.Item != -1 {
				t.Errorf("Item = %d, want -1", err.Item)
			}
		})
	}
}

func TestErrorString(t *testing.T) {
	err := New(CodeMissingContent).WithClass("content-marker")
	want := "A004: Item is missing its content element (.content-marker)"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	wrapped := New(CodeConfigRead).Wrap(fmt.Errorf("boom"))
	if got := wrapped.Error(); got != "C001: Failed to read configuration: boom" {
		t.Errorf("Error() = %q", got)
	}
}

func TestUnwrapAndHasCode(t *testing.T) {
	cause := stderrors.New("eof")
	err := fmt.Errorf("load: %w", New(CodeConfigRead).Wrap(cause))

	if !stderrors.Is(err, cause) {
		t.Error("errors.Is should reach the cause")
	}
	if !HasCode(err, CodeConfigRead) {
		t.Error("HasCode should find C001")
	}
	if HasCode(err, CodeConfigInvalid) {
		t.Error("HasCode should not match C002")
	}
}

func TestFromError(t *testing.T) {
	if FromError(nil, CodeConfigRead) != nil {
		t.Error("FromError(nil) should be nil")
	}

	orig := New(CodeNoItems)
	if got := FromError(orig, CodeConfigRead); got != orig {
		t.Error("FromError should return existing *Error unchanged")
	}

	got := FromError(stderrors.New("x"), CodeConfigRead)
	if got.Code != CodeConfigRead || got.Wrapped == nil {
		t.Errorf("FromError = %+v", got)
	}
}

func TestFormat(t *testing.T) {
	DisableColors()
	defer EnableColors()

	out := New(CodeMissingHead).WithItem(2).WithClass("head-marker").Format()

	for _, want := range []string{
		"ERROR A002: Item is missing its head element",
		"item #3 .head-marker",
		"Hint: Add an element with the head class inside the item.",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Format() missing %q in:\n%s", want, out)
		}
	}
}

func TestFormatCompact(t *testing.T) {
	got := New(CodeMissingControl).WithItem(0).FormatCompact()
	if !strings.HasPrefix(got, "item #1: A003:") {
		t.Errorf("FormatCompact() = %q", got)
	}
}

func TestReport(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	Report(logger, New(CodeMissingContent).WithItem(1))

	out := buf.String()
	for _, want := range []string{"level=ERROR", "diagnostic.code=A004", "diagnostic.item=1"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q: %s", want, out)
		}
	}
}

func TestWrapText(t *testing.T) {
	lines := wrapText("aaa bbb ccc", 7)
	if len(lines) != 2 || lines[0] != "aaa bbb" || lines[1] != "ccc" {
		t.Errorf("wrapText = %q", lines)
	}
	if wrapText("", 10) != nil {
		t.Error("empty text should wrap to nil")
	}
}

func TestPrint(t *testing.T) {
	DisableColors()
	defer EnableColors()

	var buf bytes.Buffer
	Print(&buf, stderrors.New("plain"))
	if !strings.Contains(buf.String(), "ERROR: plain") {
		t.Errorf("Print(plain) = %q", buf.String())
	}
}
