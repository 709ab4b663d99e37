package htmlsanitize_test

import (
	"strings"
	"testing"

	"okrstudio/internal/app/system/htmlsanitize"
)

func TestSanitize_Empty(t *testing.T) {
	if got := htmlsanitize.Sanitize(""); got != "" {
		t.Errorf("expected empty string, got %q", got)
	}
}

func TestSanitize_PlainNarrative(t *testing.T) {
	in := "Shipped the new onboarding flow; churn down 1.2%."
	if got := htmlsanitize.Sanitize(in); got != in {
		t.Errorf("expected plain text unchanged, got %q", got)
	}
}

func TestSanitize_SafeFormattingPreserved(t *testing.T) {
	in := "<p><strong>Wins:</strong> launched <em>two</em> experiments</p>"
	if got := htmlsanitize.Sanitize(in); got != in {
		t.Errorf("expected safe HTML preserved, got %q", got)
	}
}

func TestSanitize_RemovesScript(t *testing.T) {
	in := "<p>Update</p><script>alert('x')</script>"
	if got := htmlsanitize.Sanitize(in); got != "<p>Update</p>" {
		t.Errorf("expected script removed, got %q", got)
	}
}

func TestSanitize_RemovesEventHandlers(t *testing.T) {
	in := `<p onclick="steal()">Challenges</p>`
	if got := htmlsanitize.Sanitize(in); strings.Contains(got, "onclick") {
		t.Errorf("expected onclick stripped, got %q", got)
	}
}

func TestSanitize_RemovesJavascriptHref(t *testing.T) {
	in := `<a href="javascript:alert('x')">plan</a>`
	if got := htmlsanitize.Sanitize(in); strings.Contains(got, "javascript:") {
		t.Errorf("expected javascript: href stripped, got %q", got)
	}
}

func TestSanitize_AllowsLists(t *testing.T) {
	in := "<ul><li>Hire two engineers</li><li>Close Q4 deals</li></ul>"
	if got := htmlsanitize.Sanitize(in); got != in {
		t.Errorf("expected list preserved, got %q", got)
	}
}
