package app

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"tours.stagebridge.org/internal/metrics"
)

func TestStartMetricsCollection(t *testing.T) {
	app := newTestApplication(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// A canceled context still gets the initial collection.
	app.StartMetricsCollection(ctx, time.Hour)

	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.StoreUp))
	assert.Equal(t, 4.0, testutil.ToFloat64(metrics.StoreRecords.WithLabelValues("pending_bookings")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.StoreRecords.WithLabelValues("open_tours")))
	assert.Equal(t, 6.0, testutil.ToFloat64(metrics.StoreRecords.WithLabelValues("located_communities")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.StoreRecords.WithLabelValues("unlocated_communities")))
}

func TestStartMetricsCollectionStoreDown(t *testing.T) {
	app := newTestApplicationWithStore(t, downStore{})
	done := make(chan struct{})
	ctx, cancel := context.WithCancel(context.Background())

	go func() {
		app.StartMetricsCollection(ctx, time.Hour)
		close(done)
	}()

	assert.Eventually(t, func() bool { return testutil.ToFloat64(metrics.StoreUp) == 0 }, time.Second, 10*time.Millisecond)
	cancel()
	<-done
}
