package config

const (
	defaultCacheDir            = "~/.cache/subclip"
	defaultOutputDir           = "~/.local/share/subclip/clips"
	defaultLeadPaddingSeconds  = 1.0
	defaultTrailPaddingSeconds = 1.0
	defaultFFmpegBinary        = "ffmpeg"
	defaultFFprobeBinary       = "ffprobe"
	defaultProfile             = "av1"
	defaultLogLevel            = "info"
	defaultLogFormat           = "console"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			CacheDir:  defaultCacheDir,
			OutputDir: defaultOutputDir,
		},
		Find: Find{
			LeadPaddingSeconds:  defaultLeadPaddingSeconds,
			TrailPaddingSeconds: defaultTrailPaddingSeconds,
		},
		FFmpeg: FFmpeg{
			FFmpegBinary:  defaultFFmpegBinary,
			FFprobeBinary: defaultFFprobeBinary,
			Profile:       defaultProfile,
		},
		Logging: Logging{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
	}
}
