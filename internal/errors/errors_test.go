package errors

import (
	"errors"
	"testing"
)

func TestTranslationError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *TranslationError
		expected string
	}{
		{
			name:     "message only",
			err:      &TranslationError{Message: "something failed"},
			expected: "something failed",
		},
		{
			name:     "with node",
			err:      &TranslationError{Node: "Tests.Calculator.Adds", Message: "missing reason message"},
			expected: "[Tests.Calculator.Adds] missing reason message",
		},
		{
			name:     "with cause",
			err:      &TranslationError{Message: "decode fixture", Cause: errors.New("unexpected EOF")},
			expected: "decode fixture: unexpected EOF",
		},
		{
			name: "with node and cause",
			err: &TranslationError{
				Node:    "Tests.Calculator.Adds",
				Message: "decode fixture",
				Cause:   errors.New("unexpected EOF"),
			},
			expected: "[Tests.Calculator.Adds] decode fixture: unexpected EOF",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name string
		err  *TranslationError
		kind ErrorKind
	}{
		{"Contract", Contract("x"), KindContract},
		{"Contractf", Contractf("x %d", 1), KindContract},
		{"NodeContract", NodeContract("Tests.A", "x"), KindContract},
		{"Fixturef", Fixturef("x %s", "y"), KindFixture},
		{"FixtureWrap", FixtureWrap(errors.New("io"), "x"), KindFixture},
		{"SchemaWrap", SchemaWrap(errors.New("bad"), "x"), KindSchema},
		{"NotFound", NotFound("fixture", "simple"), KindNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Kind != tt.kind {
				t.Errorf("Kind = %v, want %v", tt.err.Kind, tt.kind)
			}
		})
	}
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("underlying")
	err := FixtureWrap(cause, "read fixture")

	if !errors.Is(err, cause) {
		t.Error("expected errors.Is to find the cause")
	}
}

func TestKindOf(t *testing.T) {
	if kind, ok := KindOf(Contract("x")); !ok || kind != KindContract {
		t.Errorf("KindOf(Contract) = (%v, %v)", kind, ok)
	}

	wrapped := FixtureWrap(Contract("inner"), "outer")
	// KindOf reports the outermost TranslationError.
	if kind, ok := KindOf(wrapped); !ok || kind != KindFixture {
		t.Errorf("KindOf(wrapped) = (%v, %v)", kind, ok)
	}

	if _, ok := KindOf(errors.New("plain")); ok {
		t.Error("KindOf(plain error) should report false")
	}

	if _, ok := KindOf(nil); ok {
		t.Error("KindOf(nil) should report false")
	}
}
