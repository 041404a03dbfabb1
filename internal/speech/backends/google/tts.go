package google

import (
	"context"
	"fmt"
	"sync"

	texttospeech "cloud.google.com/go/texttospeech/apiv1"
	"cloud.google.com/go/texttospeech/apiv1/texttospeechpb"
	"google.golang.org/api/option"

	"github.com/sclip/sclip-voice/internal/speech/engine"
	"github.com/sclip/sclip-voice/internal/speech/registry"
)

func init() {
	registry.TTS.Register("google", func(config map[string]string) (engine.TTSEngine, error) {
		return &GoogleTTS{credentialsFile: config["credentials_file"]}, nil
	})
}

// Authenticated channels to the provider are expensive to set up, so one
// client is built lazily on first use and shared for the process lifetime.
// It is safe for concurrent use and is never explicitly torn down. The
// credentials of the first caller win; every engine instance in a process
// is configured from the same service config, so this is not observable.
var (
	clientOnce sync.Once
	client     *texttospeech.Client
	clientErr  error
)

func sharedClient(credentialsFile string) (*texttospeech.Client, error) {
	clientOnce.Do(func() {
		var opts []option.ClientOption
		if credentialsFile != "" {
			opts = append(opts, option.WithCredentialsFile(credentialsFile))
		}
		// Background context: the connection handle outlives any single call.
		client, clientErr = texttospeech.NewClient(context.Background(), opts...)
	})
	if clientErr != nil {
		return nil, fmt.Errorf("google TTS client: %w", clientErr)
	}
	return client, nil
}

// GoogleTTS implements engine.TTSEngine against the Google Cloud
// Text-to-Speech v1 API. Credentials are resolved through ambient
// application-default credentials unless a credentials file is configured.
type GoogleTTS struct {
	credentialsFile string
}

func (g *GoogleTTS) ListVoices(ctx context.Context) ([]engine.Voice, error) {
	c, err := sharedClient(g.credentialsFile)
	if err != nil {
		return nil, err
	}

	resp, err := c.ListVoices(ctx, &texttospeechpb.ListVoicesRequest{})
	if err != nil {
		return nil, fmt.Errorf("google TTS list voices: %w", err)
	}

	voices := make([]engine.Voice, 0, len(resp.Voices))
	for _, v := range resp.Voices {
		voices = append(voices, engine.Voice{
			Name:          v.Name,
			LanguageCodes: v.LanguageCodes,
			Gender:        engine.DecodeGender(int32(v.SsmlGender)),
		})
	}
	return voices, nil
}

// Synthesize renders the complete utterance as MP3 with the provider's
// default prosody: speaking rate 1.0, pitch 0, volume gain 0 dB, default
// sample rate, no effects profile. The server picks the gender from the
// voice name.
func (g *GoogleTTS) Synthesize(ctx context.Context, req engine.SynthesisRequest) ([]byte, error) {
	c, err := sharedClient(g.credentialsFile)
	if err != nil {
		return nil, err
	}

	resp, err := c.SynthesizeSpeech(ctx, &texttospeechpb.SynthesizeSpeechRequest{
		Input: &texttospeechpb.SynthesisInput{
			InputSource: &texttospeechpb.SynthesisInput_Text{Text: req.Text},
		},
		Voice: &texttospeechpb.VoiceSelectionParams{
			LanguageCode: req.LanguageCode,
			Name:         req.VoiceName,
			SsmlGender:   texttospeechpb.SsmlVoiceGender_SSML_VOICE_GENDER_UNSPECIFIED,
		},
		AudioConfig: &texttospeechpb.AudioConfig{
			AudioEncoding: texttospeechpb.AudioEncoding_MP3,
			SpeakingRate:  1.0,
			Pitch:         0,
			VolumeGainDb:  0,
			// 0 signals "use the voice's default sample rate".
			SampleRateHertz:  0,
			EffectsProfileId: nil,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("google TTS synthesize: %w", err)
	}

	return resp.AudioContent, nil
}

// Close is a no-op: the underlying client is shared process-wide.
func (g *GoogleTTS) Close() error {
	return nil
}
