// Command asset-sync uploads the front-end images (burger layers, category
// covers, side meal photo) to the R2 bucket the API resolves asset URLs
// against.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"burgerhouse/internal/config"
	"burgerhouse/internal/logging"
	"burgerhouse/internal/storage"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	dir := flag.String("dir", "./public", "directory of assets to upload")
	flag.Parse()

	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	logger, err := logging.New(os.Getenv("APP_ENV") == "production")
	if err != nil {
		log.Fatalf("❌ logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	r2cfg, err := config.LoadR2()
	if err != nil {
		logger.Fatal("config", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, err := storage.NewR2Client(ctx, r2cfg)
	if err != nil {
		logger.Fatal("R2 init failed", zap.Error(err))
	}

	logger.Info("🧠 uploading assets", zap.String("dir", *dir), zap.String("bucket", r2cfg.Bucket))

	keys, err := storage.SyncDir(ctx, client, os.DirFS(*dir))
	if err != nil {
		logger.Fatal("sync failed", zap.Error(err))
	}

	for _, k := range keys {
		logger.Info("uploaded", zap.String("url", client.PublicURL(k)))
	}
	logger.Info("✅ assets synced", zap.Int("count", len(keys)))
}
