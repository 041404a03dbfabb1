package main

import (
	"context"
	"log"
	"net/http"

	"github.com/pitabwire/frame"
	"github.com/pitabwire/frame/config"
	"github.com/pitabwire/frame/workerpool"

	svconfig "github.com/sclip/sclip-voice/config"
	"github.com/sclip/sclip-voice/internal/httputil"
	"github.com/sclip/sclip-voice/internal/preview"
	voiceapi "github.com/sclip/sclip-voice/internal/voice/api"
	"github.com/sclip/sclip-voice/pkg/events"

	// Register speech backends via init().
	_ "github.com/sclip/sclip-voice/internal/speech/backends/google"
)

func main() {
	ctx := context.Background()

	cfg, err := config.LoadWithOIDC[svconfig.VoiceConfig](ctx)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	eventRef := cfg.GetEventsQueueName()
	eventURL := cfg.GetEventsQueueURL()

	ctx, srv := frame.NewService(
		frame.WithConfig(&cfg),
		frame.WithName("sclip-voice"),
		frame.WithRegisterPublisher(eventRef, eventURL),
		frame.WithWorkerPoolOptions(
			workerpool.WithPoolCount(cfg.WorkerPoolCount),
			workerpool.WithSinglePoolCapacity(cfg.WorkerPoolCapacity),
		),
	)
	defer srv.Stop(ctx)

	pool, err := srv.WorkManager().GetPool()
	if err != nil {
		log.Fatalf("getting worker pool: %v", err)
	}

	pub := events.NewPublisher(srv.QueueManager(), "voice", eventRef)

	previews := preview.NewCache(cfg.PreviewCacheDir())
	if err := previews.Scan(); err != nil {
		log.Printf("warning: scanning preview cache: %v", err)
	}
	if cfg.WatchPreviewCache {
		watch := func() {
			if err := previews.Watch(ctx.Done()); err != nil {
				log.Printf("warning: preview cache watcher stopped: %v", err)
			}
		}
		if err := pool.Submit(ctx, watch); err != nil {
			go watch()
		}
	}

	serviceConfig := map[string]string{
		"credentials_file": cfg.GoogleCredentialsFile,
	}
	handler := voiceapi.NewHandler(cfg.DefaultTTSBackend, serviceConfig, previews, pub, pool)

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux)

	srv.Init(ctx, frame.WithHTTPHandler(httputil.H2CHandler(mux)))

	if err := srv.Run(ctx, ""); err != nil {
		log.Fatalf("service exited: %v", err)
	}
}
