package normalize

import "testing"

func TestNameLowercasesAndTrims(t *testing.T) {
	got := Name("  ACME  Corp  ", nil)
	if got != "acme corp" {
		t.Errorf("expected %q, got %q", "acme corp", got)
	}
}

func TestNameEmptyInput(t *testing.T) {
	if got := Name("", nil); got != "" {
		t.Errorf("expected empty string, got %q", got)
	}
}

func TestNameAppliesPatternsInOrder(t *testing.T) {
	patterns := []Pattern{
		MustCompile(`\bcorporation\b`, "corp"),
		MustCompile(`\bcorp\b`, ""),
	}

	got := Name("Acme Corporation", patterns)
	if got != "acme" {
		t.Errorf("expected %q, got %q", "acme", got)
	}
}

func TestNameStripsCorporateSuffix(t *testing.T) {
	suffix := MustCompile(`\s*,?\s*(inc|incorporated|llc|ltd|limited|corp|corporation|co)\.?$`, "")

	tests := []struct {
		raw  string
		want string
	}{
		{"Acme Corporation", "acme"},
		{"Acme, Inc.", "acme"},
		{"Acme LLC", "acme"},
		{"Acme", "acme"},
	}

	for _, tt := range tests {
		if got := Name(tt.raw, []Pattern{suffix}); got != tt.want {
			t.Errorf("Name(%q): expected %q, got %q", tt.raw, tt.want, got)
		}
	}
}

func TestNameCollapsesWhitespaceAfterSubstitution(t *testing.T) {
	patterns := []Pattern{MustCompile(`-`, " ")}

	got := Name("acme-srv-01", patterns)
	if got != "acme srv 01" {
		t.Errorf("expected %q, got %q", "acme srv 01", got)
	}
}

func TestCompileRejectsInvalidPattern(t *testing.T) {
	if _, err := Compile(`[unclosed`, ""); err == nil {
		t.Error("expected error for invalid pattern")
	}
}

func TestNormalizerZeroValue(t *testing.T) {
	var n Normalizer
	if got := n.Name("Hello World"); got != "hello world" {
		t.Errorf("expected %q, got %q", "hello world", got)
	}
}
