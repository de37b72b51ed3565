package config

import (
	"testing"
	"time"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	if cfg.Mongo.Database != "estudos" {
		t.Fatalf("expected database 'estudos', got %q", cfg.Mongo.Database)
	}
	if cfg.Upload.PublicPath != "/imagens" {
		t.Fatalf("expected public path '/imagens', got %q", cfg.Upload.PublicPath)
	}
	if cfg.Upload.MaxSize != 2048*1024 {
		t.Fatalf("expected 2MB upload limit, got %d", cfg.Upload.MaxSize)
	}
	if cfg.RabbitMQ.ExchangeConfigs[0].Name != "exchange.product" {
		t.Fatalf("expected product exchange, got %q", cfg.RabbitMQ.ExchangeConfigs[0].Name)
	}
	if cfg.Outbox.MaxAttempts != 10 || cfg.Outbox.BatchSize != 100 {
		t.Fatalf("unexpected outbox defaults %+v", cfg.Outbox)
	}
}

func TestNewConfig_FromEnv(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("PRODUCT_CACHE_TTL", "60")
	t.Setenv("UPLOAD_ALLOWED_EXTENSIONS", " .PNG, ,.jpg ")
	t.Setenv("IS_PRODUCTION", "true")
	t.Setenv("MONGO_TIMEOUT", "not-a-number")
	t.Setenv("OUTBOX_MAX_ATTEMPTS", "0")

	cfg := NewConfig()

	if cfg.HTTP.Port != "9090" {
		t.Fatalf("expected port 9090, got %q", cfg.HTTP.Port)
	}
	if cfg.Cache.ProductTTL != time.Minute {
		t.Fatalf("expected 1m ttl, got %v", cfg.Cache.ProductTTL)
	}
	if len(cfg.Upload.AllowedExtensions) != 2 || cfg.Upload.AllowedExtensions[0] != ".png" {
		t.Fatalf("unexpected extensions %v", cfg.Upload.AllowedExtensions)
	}
	if !cfg.Logger.IsProduction {
		t.Fatal("expected production logger")
	}
	if cfg.Mongo.Timeout != 10*time.Second {
		t.Fatalf("expected default timeout on bad value, got %v", cfg.Mongo.Timeout)
	}
	if cfg.Outbox.MaxAttempts != 0 {
		t.Fatalf("expected unlimited outbox attempts, got %d", cfg.Outbox.MaxAttempts)
	}
}

func TestUploadConfig_AllowsExtension(t *testing.T) {
	cfg := UploadConfig{AllowedExtensions: []string{".png", ".jpg"}}

	if !cfg.AllowsExtension(".PNG") {
		t.Fatal("expected .PNG to be allowed")
	}
	if cfg.AllowsExtension(".exe") {
		t.Fatal("expected .exe to be rejected")
	}
}
