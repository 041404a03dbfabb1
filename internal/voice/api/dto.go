package api

// SynthesizeRequest is the request body for a synthesis call. All three
// fields are forwarded to the provider untouched; the provider is the
// authority on rejecting empty text or unknown voice names.
type SynthesizeRequest struct {
	VoiceName    string `json:"voice_name"`
	LanguageCode string `json:"language_code"`
	Text         string `json:"text"`
}

// PreviewListResponse enumerates the voices with a cached preview clip.
type PreviewListResponse struct {
	Voices []string `json:"voices"`
}

// ErrorResponse is the standard error body.
type ErrorResponse struct {
	Error string `json:"error"`
}
