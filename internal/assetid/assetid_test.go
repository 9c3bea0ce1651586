package assetid

import "testing"

func TestCode(t *testing.T) {
	cases := map[string]string{
		"Baseball":   "BSB",
		"Basketball": "BKB",
		"Football":   "FTB",
		"Pokemon":    "PKM",
		"Soccer":     "SOC",
	}
	for category, want := range cases {
		code, ok := Code(category)
		if !ok {
			t.Errorf("expected %s to be a known category", category)
		}
		if code != want {
			t.Errorf("expected code %s for %s, got %s", want, category, code)
		}
	}

	if _, ok := Code("Hockey"); ok {
		t.Error("expected Hockey to be unknown")
	}
}

func TestIsValidCategory(t *testing.T) {
	for _, category := range Categories {
		if !IsValidCategory(category) {
			t.Errorf("expected %s to be valid", category)
		}
	}
	if IsValidCategory("") {
		t.Error("expected empty category to be invalid")
	}
	if IsValidCategory("baseball") {
		t.Error("category matching is case-sensitive")
	}
}

func TestFormat(t *testing.T) {
	if got := Format("BSB", 1); got != "BSB-00000001" {
		t.Errorf("expected BSB-00000001, got %s", got)
	}
	if got := Format("PKM", 42); got != "PKM-00000042" {
		t.Errorf("expected PKM-00000042, got %s", got)
	}
	if got := Format("SOC", 123456789); got != "SOC-123456789" {
		t.Errorf("sequence numbers beyond 8 digits are not truncated, got %s", got)
	}
}
