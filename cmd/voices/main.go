// Command voices prints the curated voice catalog to stdout as YAML.
// Useful for checking what the desktop UI will see without starting the
// service. Requires the same ambient provider credentials as the service.
package main

import (
	"context"
	"log"
	"os"

	"github.com/pitabwire/frame/config"
	"gopkg.in/yaml.v3"

	svconfig "github.com/sclip/sclip-voice/config"
	"github.com/sclip/sclip-voice/internal/catalog"
	"github.com/sclip/sclip-voice/internal/preview"
	"github.com/sclip/sclip-voice/internal/speech/registry"

	_ "github.com/sclip/sclip-voice/internal/speech/backends/google"
)

func main() {
	ctx := context.Background()

	cfg, err := config.LoadWithOIDC[svconfig.VoiceConfig](ctx)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	eng, err := registry.TTS.Create(cfg.DefaultTTSBackend, map[string]string{
		"credentials_file": cfg.GoogleCredentialsFile,
	})
	if err != nil {
		log.Fatalf("creating TTS backend: %v", err)
	}
	defer eng.Close()

	raw, err := eng.ListVoices(ctx)
	if err != nil {
		log.Fatalf("listing voices: %v", err)
	}

	mapper := catalog.Mapper{Previews: preview.NewCache(cfg.PreviewCacheDir())}
	voices := mapper.Build(raw)

	if err := yaml.NewEncoder(os.Stdout).Encode(voices); err != nil {
		log.Fatalf("encoding catalog: %v", err)
	}
}
