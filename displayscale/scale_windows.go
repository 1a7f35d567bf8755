//go:build windows

package displayscale

import (
	"log/slog"

	"golang.org/x/sys/windows"
)

const baseDPI = 96.0

var (
	modUser32           = windows.NewLazySystemDLL("user32.dll")
	procGetDpiForSystem = modUser32.NewProc("GetDpiForSystem")
)

// systemFactor queries the system DPI and converts it to a scale factor
// (96 DPI = 1.0). Best-effort: on older systems without GetDpiForSystem it
// falls back to 1.0.
func systemFactor(logger *slog.Logger) float64 {
	if err := procGetDpiForSystem.Find(); err != nil {
		if logger != nil {
			logger.Warn("GetDpiForSystem unavailable", "error", err)
		}
		return 1
	}
	dpi, _, _ := procGetDpiForSystem.Call()
	if dpi == 0 {
		return 1
	}
	return float64(dpi) / baseDPI
}
