package config

const (
	defaultDataDir   = "~/.local/share/slate"
	defaultLogDir    = "~/.local/share/slate/logs"
	defaultLogLevel  = "info"
	defaultLogFormat = "console"
	defaultFPS       = 30
	defaultWidth     = 1920
	defaultHeight    = 1080
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir: defaultDataDir,
			LogDir:  defaultLogDir,
		},
		Logging: Logging{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
		Project: Project{
			FPS:    defaultFPS,
			Width:  defaultWidth,
			Height: defaultHeight,
		},
	}
}
