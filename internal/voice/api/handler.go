package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"os"

	"github.com/pitabwire/frame/workerpool"
	"github.com/pitabwire/util"

	"github.com/sclip/sclip-voice/internal/catalog"
	"github.com/sclip/sclip-voice/internal/preview"
	"github.com/sclip/sclip-voice/internal/speech/engine"
	"github.com/sclip/sclip-voice/internal/speech/registry"
	"github.com/sclip/sclip-voice/pkg/events"
)

const maxRequestBodySize = 1 << 20 // 1 MiB

// Handler provides the REST entry points the desktop UI invokes: voice
// catalog listing, speech synthesis, and preview clip retrieval.
type Handler struct {
	defaultBackend string
	serviceConfig  map[string]string
	previews       *preview.Cache
	mapper         catalog.Mapper
	pub            *events.Publisher
	pool           workerpool.WorkerPool
}

// NewHandler creates a new voice API handler. pub and pool may be nil; event
// emission is then skipped or runs inline.
func NewHandler(defaultBackend string, serviceConfig map[string]string, previews *preview.Cache, pub *events.Publisher, pool workerpool.WorkerPool) *Handler {
	if defaultBackend == "" {
		defaultBackend = "google"
	}
	if serviceConfig == nil {
		serviceConfig = map[string]string{}
	}
	return &Handler{
		defaultBackend: defaultBackend,
		serviceConfig:  serviceConfig,
		previews:       previews,
		mapper:         catalog.Mapper{Previews: previews},
		pub:            pub,
		pool:           pool,
	}
}

// RegisterRoutes registers all voice API routes on the given mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/v1/voices", h.ListVoices)
	mux.HandleFunc("POST /api/v1/synthesize", h.Synthesize)
	mux.HandleFunc("GET /api/v1/voices/{name}/preview", h.GetPreview)
	mux.HandleFunc("GET /api/v1/previews", h.ListPreviews)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}

func writeAudio(w http.ResponseWriter, audio []byte) {
	w.Header().Set("Content-Type", "audio/mpeg")
	w.WriteHeader(http.StatusOK)
	w.Write(audio)
}

func (h *Handler) engine() (engine.TTSEngine, error) {
	return registry.TTS.Create(h.defaultBackend, h.serviceConfig)
}

// emit publishes an event through the worker pool so entry points never
// block on the event bus.
func (h *Handler) emit(ctx context.Context, eventType events.EventType, voice string, data any) {
	if h.pub == nil {
		return
	}
	publish := func() {
		if err := h.pub.Emit(ctx, eventType, voice, data); err != nil {
			util.Log(ctx).WithError(err).Warn("voice api: emit event")
		}
	}
	if h.pool != nil {
		if err := h.pool.Submit(ctx, publish); err != nil {
			publish()
		}
		return
	}
	publish()
}

// ListVoices handles GET /api/v1/voices
func (h *Handler) ListVoices(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	eng, err := h.engine()
	if err != nil {
		util.Log(ctx).WithError(err).Error("voice api: create TTS backend")
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	defer eng.Close()

	raw, err := eng.ListVoices(ctx)
	if err != nil {
		util.Log(ctx).WithError(err).Error("voice api: list voices")
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}

	voices := h.mapper.Build(raw)
	h.emit(ctx, events.VoicesListed, "", events.VoicesListedData{
		RawCount:      len(raw),
		RetainedCount: len(voices),
	})
	writeJSON(w, http.StatusOK, voices)
}

// Synthesize handles POST /api/v1/synthesize
func (h *Handler) Synthesize(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	var req SynthesizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	eng, err := h.engine()
	if err != nil {
		util.Log(ctx).WithError(err).Error("voice api: create TTS backend")
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	defer eng.Close()

	audio, err := eng.Synthesize(ctx, engine.SynthesisRequest{
		VoiceName:    req.VoiceName,
		LanguageCode: req.LanguageCode,
		Text:         req.Text,
	})
	if err != nil {
		util.Log(ctx).WithError(err).Error("voice api: synthesize")
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}

	h.emit(ctx, events.VoiceSynthesized, req.VoiceName, events.VoiceSynthesizedData{
		LanguageCode: req.LanguageCode,
		TextChars:    len(req.Text),
		AudioBytes:   len(audio),
	})
	writeAudio(w, audio)
}

// GetPreview handles GET /api/v1/voices/{name}/preview
func (h *Handler) GetPreview(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	name := r.PathValue("name")

	audio, err := h.previews.Read(name)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		util.Log(ctx).WithError(err).Error("voice api: read preview")
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.emit(ctx, events.PreviewServed, name, events.PreviewServedData{
		FileName:   preview.FileName(name),
		AudioBytes: len(audio),
	})
	writeAudio(w, audio)
}

// ListPreviews handles GET /api/v1/previews
func (h *Handler) ListPreviews(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, PreviewListResponse{Voices: h.previews.Cached()})
}
