//go:build !windows

package displayscale

import "log/slog"

// systemFactor has no portable DPI query outside Windows; X11 and Wayland
// report scaling through the toolkit instead, so the identity factor is used.
func systemFactor(_ *slog.Logger) float64 { return 1 }
