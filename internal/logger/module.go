package logger

import "go.uber.org/fx"

// Module provides the JSON *slog.Logger at the configured level.
var Module = fx.Provide(New)
