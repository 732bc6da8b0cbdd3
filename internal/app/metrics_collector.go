package app

import (
	"context"
	"time"

	"github.com/getsentry/sentry-go"

	"tours.stagebridge.org/internal/report"
)

// StartMetricsCollection exports store statistics every interval until ctx
// is canceled. It collects once immediately so the gauges are set before
// the first scrape.
func (app *Application) StartMetricsCollection(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	app.collectStoreStats(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			app.collectStoreStats(ctx)
		}
	}
}

func (app *Application) collectStoreStats(ctx context.Context) {
	if err := app.MetricsService.CollectStoreStats(ctx); err != nil {
		if ctx.Err() != nil {
			return
		}
		app.Logger.Error("failed to collect store statistics", "error", err)
		report.ReportErrorWithSentryOptions(err, report.SentryReportOptions{
			Tags:  map[string]string{"collector": "store_stats"},
			Level: sentry.LevelWarning,
		})
	}
}
