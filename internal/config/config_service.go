package config

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/getsentry/sentry-go"
	"tours.stagebridge.org/internal/report"
	"tours.stagebridge.org/internal/utils"
)

// remoteMaxRetries bounds each remote fetch so a refresh cycle cannot hang.
const remoteMaxRetries = 3

// ConfigService holds dependencies and provides config operations.
type ConfigService struct {
	Logger   *slog.Logger
	Client   *http.Client
	Config   *Config
	Backoffs *BackoffStore
}

// NewConfigService creates a new ConfigService instance with the provided logger and HTTP client.
func NewConfigService(logger *slog.Logger, client *http.Client, config *Config) *ConfigService {
	return &ConfigService{
		Logger:   logger,
		Client:   client,
		Config:   config,
		Backoffs: NewBackoffStore(),
	}
}

// RefreshConfig blocks, refreshing the tuning from url every interval until
// ctx is canceled.
func (cs *ConfigService) RefreshConfig(ctx context.Context, url, authUser, authPass string, interval time.Duration) {
	refreshConfig(ctx, cs.Client, url, authUser, authPass, cs.Config, cs.Backoffs, cs.Logger, interval, remoteMaxRetries)
}

// LoadConfigFromFile reads the configuration document at filePath.
func LoadConfigFromFile(filePath string) (Document, error) {
	doc, err := loadConfigFromFile(filePath)
	if err != nil {
		err := fmt.Errorf("failed to load config from file %s: %w", filePath, err)
		report.ReportErrorWithSentryOptions(err, report.SentryReportOptions{
			Tags:  utils.MakeMap("file_path", filePath),
			Level: sentry.LevelError,
		})
		return Document{}, err
	}
	return doc, nil
}

// LoadConfigFromURL fetches the configuration document at url.
func LoadConfigFromURL(ctx context.Context, client *http.Client, url, authUser, authPass string) (Document, error) {
	doc, err := loadConfigFromURL(ctx, client, url, authUser, authPass, remoteMaxRetries)
	if err != nil {
		err := fmt.Errorf("failed to load config from URL %s: %w", url, err)
		report.ReportErrorWithSentryOptions(err, report.SentryReportOptions{
			Tags:  utils.MakeMap("config_url", url),
			Level: sentry.LevelError,
		})
		return Document{}, err
	}
	return doc, nil
}
