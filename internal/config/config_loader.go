package config

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"os"
	"time"

	"github.com/getsentry/sentry-go"
	"tours.stagebridge.org/internal/report"
	"tours.stagebridge.org/internal/utils"
)

// ValidateConfigFlags ensures that at most one configuration source is
// specified: either a config file "--config-file" or a remote config URL
// "--config-url". Neither means the built-in defaults are used.
//
// Returns an error if more than one input method is specified.
func ValidateConfigFlags(configFile, configURL *string) error {
	if (*configFile != "" && *configURL != "") || len(flag.Args()) > 0 {
		return fmt.Errorf("only one of --config-file or --config-url can be specified")
	}
	return nil
}

// retryBaseDelay is the wait before the first retry in DoWithBackoff.
var retryBaseDelay = 500 * time.Millisecond

// DoWithBackoff sends req, retrying transport errors and 5xx responses with
// exponential backoff and jitter capped at MAX_BACKOFF. A maxRetries of zero or
// less retries until ctx is done.
func DoWithBackoff(ctx context.Context, client *http.Client, req *http.Request, maxRetries int) (*http.Response, error) {
	req = req.WithContext(ctx)
	delay := retryBaseDelay

	for attempt := 0; ; attempt++ {
		resp, err := client.Do(req)
		if err == nil && resp.StatusCode < http.StatusInternalServerError {
			return resp, nil
		}
		if err == nil {
			resp.Body.Close()
			err = fmt.Errorf("server returned status %d", resp.StatusCode)
		}

		if maxRetries > 0 && attempt >= maxRetries {
			return nil, fmt.Errorf("max retries exceeded: %w", err)
		}

		wait := delay + time.Duration(rand.Float64()*float64(delay)*JITTER_FACTOR)
		if wait > MAX_BACKOFF {
			wait = MAX_BACKOFF
		}
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("giving up after %d attempts: %w", attempt+1, ctx.Err())
		case <-time.After(wait):
		}
		delay = calculateNewBackoffDelay(delay)
	}
}

// refreshConfig periodically fetches configuration from a remote URL and
// replaces the tuning of cfg.
//
// Failed fetches are logged and reported to Sentry, and the next attempt is
// pushed back according to backoffs. The routine stops when ctx is canceled.
func refreshConfig(ctx context.Context, client *http.Client, configURL, configAuthUser, configAuthPass string, cfg *Config, backoffs *BackoffStore, logger *slog.Logger, interval time.Duration, maxRetries int) {
	for {
		if next, ok := backoffs.NextRetryAt(configURL); !ok || !time.Now().Before(next) {
			doc, err := loadConfigFromURL(ctx, client, configURL, configAuthUser, configAuthPass, maxRetries)
			if err != nil {
				backoffs.UpdateBackoff(configURL)
				report.ReportErrorWithSentryOptions(err, report.SentryReportOptions{
					Tags:  utils.MakeMap("config_url", configURL),
					Level: sentry.LevelError,
				})
				logger.Error("failed to refresh remote config", "error", err)
			} else {
				backoffs.ResetBackoff(configURL)
				cfg.UpdateTuning(doc.Tuning)
				logger.Info("refreshed tuning from remote config")
			}
		}

		select {
		case <-ctx.Done():
			logger.Info("stopping config refresh routine")
			return
		case <-time.After(interval):
		}
	}
}

// loadConfigFromFile reads a JSON configuration document from disk.
// Values missing from the file keep their defaults.
func loadConfigFromFile(filePath string) (Document, error) {
	// #nosec G304 -- path comes from the --config-file flag
	data, err := os.ReadFile(filePath)
	if err != nil {
		return Document{}, fmt.Errorf("failed to read config file: %w", err)
	}
	return parseDocument(data)
}

// loadConfigFromURL fetches a JSON configuration document from a remote
// HTTP(S) endpoint, using the provided client and optional basic
// authentication.
func loadConfigFromURL(ctx context.Context, client *http.Client, url, authUser, authPass string, maxRetries int) (Document, error) {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return Document{}, fmt.Errorf("failed to create request: %w", err)
	}

	if authUser != "" && authPass != "" {
		req.SetBasicAuth(authUser, authPass)
	}

	resp, err := DoWithBackoff(ctx, client, req, maxRetries)
	if err != nil {
		return Document{}, fmt.Errorf("failed to fetch remote config: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Document{}, fmt.Errorf("remote config returned status: %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return Document{}, fmt.Errorf("failed to read remote config: %w", err)
	}
	return parseDocument(data)
}

func parseDocument(data []byte) (Document, error) {
	doc := Document{Tuning: DefaultTuning()}
	if err := json.Unmarshal(data, &doc); err != nil {
		return Document{}, fmt.Errorf("failed to unmarshal JSON: %w", err)
	}
	doc.Tuning = doc.Tuning.withDefaults()
	return doc, nil
}
