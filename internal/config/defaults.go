package config

const (
	defaultRadius             = 5
	defaultMaxGapSeconds      = 5
	defaultMinDurationSeconds = 10
	defaultWindowSeconds      = 300
	defaultSampleWidth        = 18
	defaultSampleHeight       = 16
	defaultFFmpegBinary       = "ffmpeg"
	defaultFFprobeBinary      = "ffprobe"
	defaultLogLevel           = "info"
	defaultLogFormat          = "console"

	// FallbackFPS applies when fps is configured as auto and ffprobe cannot
	// report a rate for the file.
	FallbackFPS = 24
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Analysis: Analysis{
			Radius:             defaultRadius,
			MaxGapSeconds:      defaultMaxGapSeconds,
			MinDurationSeconds: defaultMinDurationSeconds,
			FPS:                0,
			WindowSeconds:      defaultWindowSeconds,
			SampleWidth:        defaultSampleWidth,
			SampleHeight:       defaultSampleHeight,
		},
		Tools: Tools{
			FFmpeg:  defaultFFmpegBinary,
			FFprobe: defaultFFprobeBinary,
		},
		Logging: Logging{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
	}
}
