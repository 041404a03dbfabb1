package catalog

import "testing"

func TestLanguageDisplayNameKnown(t *testing.T) {
	cases := map[string]string{
		"en-US":  "English (US)",
		"en-GB":  "English (UK)",
		"cmn-CN": "Mandarin Chinese (China)",
		"ar-XA":  "Arabic",
		"yue-HK": "Chinese (Hong Kong)",
	}
	for code, want := range cases {
		if got := LanguageDisplayName(code); got != want {
			t.Errorf("LanguageDisplayName(%q) = %q, want %q", code, got, want)
		}
	}
}

func TestLanguageDisplayNameUnknownPassesThrough(t *testing.T) {
	for _, code := range []string{"zz-ZZ", "", "not a code", "en_US"} {
		if got := LanguageDisplayName(code); got != code {
			t.Errorf("LanguageDisplayName(%q) = %q, want the input unchanged", code, got)
		}
	}
}

func TestLanguageDisplayNameIdempotent(t *testing.T) {
	first := LanguageDisplayName("ja-JP")
	second := LanguageDisplayName("ja-JP")
	if first != second {
		t.Errorf("resolving twice gave %q then %q", first, second)
	}
}
