package nunit3

import (
	"strings"
	"testing"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// TestDurationLocaleIndependent verifies the duration format never
// follows a locale that uses ',' as the decimal separator. The Go
// runtime itself is locale-agnostic, so the comma-locale rendering is
// demonstrated with an explicit localized printer.
func TestDurationLocaleIndependent(t *testing.T) {
	t.Parallel()

	p := message.NewPrinter(language.German)
	localized := p.Sprintf("%.6f", 1.5)
	if !strings.Contains(localized, ",") {
		t.Fatalf("expected German formatting to use a decimal comma, got %q", localized)
	}

	if got := formatDuration(1.5); got != "1.500000" {
		t.Errorf("formatDuration(1.5) = %q, want %q", got, "1.500000")
	}
	if got := formatDuration(0); got != "0.000000" {
		t.Errorf("formatDuration(0) = %q, want %q", got, "0.000000")
	}
}
