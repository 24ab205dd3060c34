package config

// Settings is permly's own configuration
type Settings struct {
	Logging LoggingSettings `koanf:"logging"`
	Output  OutputSettings  `koanf:"output"`
}

// LoggingSettings controls the zerolog setup
type LoggingSettings struct {
	Level string `koanf:"level" validate:"omitempty,oneof=trace debug info warn error"`
	File  string `koanf:"file"`
}

// Color modes for OutputSettings.Color
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// OutputSettings controls terminal styling of previews and errors
type OutputSettings struct {
	Color string `koanf:"color" validate:"required,oneof=auto always never"`
}
