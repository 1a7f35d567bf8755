//go:build !windows

package debug

import (
	"log/slog"
	"time"
)

// StartMemLogger is a no-op on platforms without a working-set query.
// Heap stats are still available through StartHeapLogger.
func StartMemLogger(interval time.Duration, logger *slog.Logger) {}
