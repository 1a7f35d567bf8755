package debug

// Heap pressure logger. Started only when config.Debug is true.
// Every frame redraw allocates fresh RGBA buffers for the overlay and the
// encoded photo, so the interesting numbers are heap churn and goroutine
// count, sampled at a fixed interval.

import (
	"log/slog"
	"runtime"
	"runtime/metrics"
	"time"
)

// StartHeapLogger launches a ticker that logs goroutine count and heap usage.
// It is lightweight; disable by running without the debug flag.
func StartHeapLogger(interval time.Duration, logger *slog.Logger) {
	if interval <= 0 {
		interval = time.Second
	}

	go func() {
		t := time.NewTicker(interval)
		defer t.Stop()
		samples := []metrics.Sample{{Name: "/sched/goroutines:goroutines"}}
		for range t.C {
			metrics.Read(samples)
			goroutines := samples[0].Value.Uint64()
			var ms runtime.MemStats
			runtime.ReadMemStats(&ms)
			logger.Info("heap-pressure",
				slog.Uint64("goroutines", goroutines),
				slog.Uint64("heap_alloc", uint64(ms.HeapAlloc)),
				slog.Uint64("heap_inuse", uint64(ms.HeapInuse)),
				slog.Uint64("total_alloc", uint64(ms.TotalAlloc)),
				slog.Uint64("num_gc", uint64(ms.NumGC)),
			)
		}
	}()
}
