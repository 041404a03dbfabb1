package registry

import "github.com/sclip/sclip-voice/internal/speech/engine"

// TTS is the global TTS engine registry.
var TTS = New[engine.TTSEngine]()
