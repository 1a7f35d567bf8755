// Package displayscale supplies the page-scale correction injected into the
// pointer mapper. Raw event coordinates arrive in page pixels; dividing by
// the display scale factor yields the logical pixels the selection math runs
// in. The factor comes from an explicit config override or, on Windows, the
// system DPI; elsewhere it defaults to 1.0.
package displayscale

import (
	"log/slog"

	"github.com/quizforge/crop-tool-go/domain/crop"
)

// Correction builds the coordinate correction function. override > 0 wins
// over the detected system factor.
func Correction(override float64, logger *slog.Logger) crop.ScaleFunc {
	f := override
	if f <= 0 {
		f = systemFactor(logger)
	}
	if f <= 0 {
		f = 1
	}
	if logger != nil {
		logger.Debug("display scale factor", "factor", f)
	}
	if f == 1 {
		return func(v float64) float64 { return v }
	}
	return func(v float64) float64 { return v / f }
}
