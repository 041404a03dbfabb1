package engine

import "context"

// Gender is the closed set of voice gender labels surfaced to the UI.
type Gender string

const (
	GenderUnspecified Gender = "Unspecified"
	GenderMale        Gender = "Male"
	GenderFemale      Gender = "Female"
	GenderNeutral     Gender = "Neutral"
)

// DecodeGender maps a provider gender enum value onto the closed label set.
// Values outside the provider's published enum degrade to Neutral; gender is
// a cosmetic field and decode failure must never block a catalog entry.
func DecodeGender(v int32) Gender {
	switch v {
	case 0:
		return GenderUnspecified
	case 1:
		return GenderMale
	case 2:
		return GenderFemale
	case 3:
		return GenderNeutral
	default:
		return GenderNeutral
	}
}

// Voice is a raw provider voice, before any catalog curation.
type Voice struct {
	Name          string
	LanguageCodes []string
	Gender        Gender
}

// SynthesisRequest carries the inputs for one synthesis call. No local
// validation happens here; the provider is the authority on rejecting empty
// text or unknown voice names.
type SynthesisRequest struct {
	VoiceName    string
	LanguageCode string
	Text         string
}

// TTSEngine enumerates and synthesizes voices from one provider.
type TTSEngine interface {
	// ListVoices returns the provider's raw voice list in provider order.
	ListVoices(ctx context.Context) ([]Voice, error)
	// Synthesize returns the complete encoded audio for the request,
	// byte-for-byte as the provider produced it.
	Synthesize(ctx context.Context, req SynthesisRequest) ([]byte, error)
	Close() error
}
