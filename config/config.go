package config

import (
	"path/filepath"

	"github.com/pitabwire/frame/config"
)

// PreviewCacheDirName is the directory under the resource root holding
// pre-rendered voice preview clips. The voice_<name>.mp3 naming inside it
// is the join key between catalog entries and cached audio; do not change
// either without regenerating the cache.
const PreviewCacheDirName = "preview_cache"

// VoiceConfig holds configuration for the voice service.
type VoiceConfig struct {
	config.ConfigurationDefault
	ResourceRoot          string `envDefault:"./resources" env:"RESOURCE_ROOT"`
	DefaultTTSBackend     string `envDefault:"google"      env:"TTS_BACKEND"`
	GoogleCredentialsFile string `envDefault:""            env:"GOOGLE_CREDENTIALS_FILE"`
	WatchPreviewCache     bool   `envDefault:"true"        env:"WATCH_PREVIEW_CACHE"`
}

// PreviewCacheDir returns the path of the preview cache directory under the
// configured resource root.
func (c *VoiceConfig) PreviewCacheDir() string {
	return filepath.Join(c.ResourceRoot, PreviewCacheDirName)
}
