package config

import "go.uber.org/fx"

// Module provides *Config loaded from flags and the environment.
var Module = fx.Provide(Load)
