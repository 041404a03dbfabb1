package catalog

import (
	"strings"

	"github.com/sclip/sclip-voice/internal/speech/engine"
)

// Voice is a display-ready catalog entry derived from one raw provider
// voice. The JSON field names are the wire format the desktop UI consumes.
type Voice struct {
	Name          string        `json:"name"`
	DisplayName   string        `json:"display_name"`
	LanguageCodes []string      `json:"language_codes"`
	LanguageName  string        `json:"language_name"`
	Gender        engine.Gender `json:"gender"`
	Technology    string        `json:"technology"`
	PreviewPath   string        `json:"preview_path"`
}

// technologyTiers are the identifier substrings a voice must carry (case-
// insensitively) to be shown to users. This is display curation, not
// validation: everything else is silently dropped.
var technologyTiers = []string{"neural2", "wavenet", "polyglot", "standard"}

// PreviewResolver turns a voice name into a local preview clip path.
type PreviewResolver interface {
	PathFor(voiceName string) (string, error)
}

// Mapper curates raw provider voices into catalog entries.
type Mapper struct {
	// Previews resolves best-effort preview paths; may be nil, in which
	// case every entry gets an empty preview path.
	Previews PreviewResolver
}

// Build filters and maps the raw voice list, preserving provider order among
// the retained entries. It never fails: cosmetic fields degrade to defaults
// rather than dropping or erroring an entry.
func (m *Mapper) Build(raw []engine.Voice) []Voice {
	out := make([]Voice, 0, len(raw))
	for _, v := range raw {
		if !retained(v.Name) {
			continue
		}
		out = append(out, m.mapVoice(v))
	}
	return out
}

func retained(name string) bool {
	lower := strings.ToLower(name)
	for _, tier := range technologyTiers {
		if strings.Contains(lower, tier) {
			return true
		}
	}
	return false
}

func (m *Mapper) mapVoice(v engine.Voice) Voice {
	parts := strings.Split(v.Name, "-")

	// The technology tier sits in the third dash-delimited segment of the
	// identifier, e.g. en-US-Neural2-C.
	technology := "Standard"
	if len(parts) > 2 {
		technology = parts[2]
	}

	languageCode := ""
	if len(v.LanguageCodes) > 0 {
		languageCode = v.LanguageCodes[0]
	}
	languageName := LanguageDisplayName(languageCode)

	// "English (US)" + "en-US-Wavenet-D" -> "English D".
	base, _, _ := strings.Cut(languageName, "(")
	displayName := strings.TrimSpace(base) + " " + parts[len(parts)-1]

	previewPath := ""
	if m.Previews != nil {
		if p, err := m.Previews.PathFor(v.Name); err == nil {
			previewPath = p
		}
	}

	gender := v.Gender
	if gender == "" {
		gender = engine.GenderNeutral
	}

	return Voice{
		Name:          v.Name,
		DisplayName:   displayName,
		LanguageCodes: v.LanguageCodes,
		LanguageName:  languageName,
		Gender:        gender,
		Technology:    technology,
		PreviewPath:   previewPath,
	}
}
