package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sclip/sclip-voice/internal/catalog"
	"github.com/sclip/sclip-voice/internal/preview"
	"github.com/sclip/sclip-voice/internal/speech/engine"
	"github.com/sclip/sclip-voice/internal/speech/registry"
)

type fakeEngine struct {
	voices  []engine.Voice
	audio   []byte
	err     error
	lastReq engine.SynthesisRequest
	closed  bool
}

func (f *fakeEngine) ListVoices(context.Context) ([]engine.Voice, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.voices, nil
}

func (f *fakeEngine) Synthesize(_ context.Context, req engine.SynthesisRequest) ([]byte, error) {
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.audio, nil
}

func (f *fakeEngine) Close() error {
	f.closed = true
	return nil
}

func setupTestServer(t *testing.T, eng *fakeEngine, previewDir string) (*httptest.Server, *preview.Cache) {
	t.Helper()

	registry.TTS.Register("fake", func(map[string]string) (engine.TTSEngine, error) {
		return eng, nil
	})

	previews := preview.NewCache(previewDir)
	if err := previews.Scan(); err != nil {
		t.Fatalf("scanning preview dir: %v", err)
	}

	handler := NewHandler("fake", nil, previews, nil, nil)
	mux := http.NewServeMux()
	handler.RegisterRoutes(mux)

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server, previews
}

func TestListVoices(t *testing.T) {
	eng := &fakeEngine{
		voices: []engine.Voice{
			{Name: "en-US-Wavenet-D", LanguageCodes: []string{"en-US"}, Gender: engine.GenderMale},
			{Name: "en-US-Experimental-A", LanguageCodes: []string{"en-US"}, Gender: engine.GenderFemale},
		},
	}
	server, _ := setupTestServer(t, eng, t.TempDir())

	resp, err := http.Get(server.URL + "/api/v1/voices")
	if err != nil {
		t.Fatalf("GET voices: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var voices []catalog.Voice
	if err := json.NewDecoder(resp.Body).Decode(&voices); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if len(voices) != 1 {
		t.Fatalf("got %d voices, want 1 (experimental tier must be curated out)", len(voices))
	}
	v := voices[0]
	if v.Name != "en-US-Wavenet-D" || v.Technology != "Wavenet" || v.LanguageName != "English (US)" {
		t.Errorf("unexpected catalog entry: %+v", v)
	}
	if v.Gender != engine.GenderMale {
		t.Errorf("gender = %q, want Male", v.Gender)
	}
}

func TestListVoicesRemoteFailure(t *testing.T) {
	eng := &fakeEngine{err: errors.New("rpc error: unavailable")}
	server, _ := setupTestServer(t, eng, t.TempDir())

	resp, err := http.Get(server.URL + "/api/v1/voices")
	if err != nil {
		t.Fatalf("GET voices: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502", resp.StatusCode)
	}

	var body ErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	if !strings.Contains(body.Error, "unavailable") {
		t.Errorf("error body %q does not carry the remote error", body.Error)
	}
}

func TestSynthesizePassesAudioThrough(t *testing.T) {
	audio := []byte{0xFF, 0xFB, 0x90, 0x00, 0x01, 0x02}
	eng := &fakeEngine{audio: audio}
	server, _ := setupTestServer(t, eng, t.TempDir())

	text := "Hello, world. This text must reach the provider unchanged."
	reqBody, _ := json.Marshal(SynthesizeRequest{
		VoiceName:    "en-US-Wavenet-D",
		LanguageCode: "en-US",
		Text:         text,
	})

	resp, err := http.Post(server.URL+"/api/v1/synthesize", "application/json", bytes.NewReader(reqBody))
	if err != nil {
		t.Fatalf("POST synthesize: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "audio/mpeg" {
		t.Errorf("content type = %q, want audio/mpeg", ct)
	}

	var got bytes.Buffer
	if _, err := got.ReadFrom(resp.Body); err != nil {
		t.Fatalf("read body: %v", err)
	}
	if !bytes.Equal(got.Bytes(), audio) {
		t.Errorf("audio bytes differ from what the provider returned")
	}

	if eng.lastReq.Text != text {
		t.Errorf("text reached provider as %q, want it unmutated", eng.lastReq.Text)
	}
	if eng.lastReq.VoiceName != "en-US-Wavenet-D" || eng.lastReq.LanguageCode != "en-US" {
		t.Errorf("request fields mangled: %+v", eng.lastReq)
	}
	if !eng.closed {
		t.Error("engine was not closed after the request")
	}
}

func TestSynthesizeInvalidBody(t *testing.T) {
	server, _ := setupTestServer(t, &fakeEngine{}, t.TempDir())

	resp, err := http.Post(server.URL+"/api/v1/synthesize", "application/json", strings.NewReader("{not json"))
	if err != nil {
		t.Fatalf("POST synthesize: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
}

func TestGetPreview(t *testing.T) {
	dir := t.TempDir()
	clip := []byte("preview-mp3")
	if err := os.WriteFile(filepath.Join(dir, "voice_en-US-Wavenet-D.mp3"), clip, 0o644); err != nil {
		t.Fatal(err)
	}
	server, _ := setupTestServer(t, &fakeEngine{}, dir)

	resp, err := http.Get(server.URL + "/api/v1/voices/en-US-Wavenet-D/preview")
	if err != nil {
		t.Fatalf("GET preview: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var got bytes.Buffer
	if _, err := got.ReadFrom(resp.Body); err != nil {
		t.Fatalf("read body: %v", err)
	}
	if !bytes.Equal(got.Bytes(), clip) {
		t.Errorf("preview bytes differ from the cached clip")
	}
}

func TestGetPreviewNotFound(t *testing.T) {
	server, _ := setupTestServer(t, &fakeEngine{}, t.TempDir())

	resp, err := http.Get(server.URL + "/api/v1/voices/en-US-Wavenet-Z/preview")
	if err != nil {
		t.Fatalf("GET preview: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}

	var body ErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	if !strings.Contains(body.Error, "voice_en-US-Wavenet-Z.mp3") {
		t.Errorf("error %q does not name the expected file", body.Error)
	}
}

func TestListPreviews(t *testing.T) {
	dir := t.TempDir()
	for _, f := range []string{"voice_en-US-Wavenet-D.mp3", "voice_en-GB-Neural2-A.mp3"} {
		if err := os.WriteFile(filepath.Join(dir, f), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	server, _ := setupTestServer(t, &fakeEngine{}, dir)

	resp, err := http.Get(server.URL + "/api/v1/previews")
	if err != nil {
		t.Fatalf("GET previews: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var body PreviewListResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	want := []string{"en-GB-Neural2-A", "en-US-Wavenet-D"}
	if len(body.Voices) != len(want) {
		t.Fatalf("previews = %v, want %v", body.Voices, want)
	}
	for i := range want {
		if body.Voices[i] != want[i] {
			t.Errorf("previews[%d] = %q, want %q", i, body.Voices[i], want[i])
		}
	}
}
