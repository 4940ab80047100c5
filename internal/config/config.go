package config

import (
	"os"
	"strconv"
	"time"

	"github.com/harunaka/kodomo-diary/internal/remote"
)

const (
	defaultDiaryFile = "diary-data/diary.json"
	defaultImageDir  = "diary-data/images"
	defaultAudioDir  = "diary-data/audio"
)

// Config is resolved once from the environment at startup and never
// mutated afterwards.
type Config struct {
	DiaryFile string
	ImageDir  string
	AudioDir  string

	DeepgramKey string
	OpenAIKey   string

	MaxRetries   int
	InitialDelay time.Duration
	Timeout      time.Duration

	MaxVariants int

	Debug bool
}

// FromEnv reads the environment and applies defaults.
func FromEnv() Config {
	cfg := Config{
		DiaryFile:    defaultDiaryFile,
		ImageDir:     defaultImageDir,
		AudioDir:     defaultAudioDir,
		DeepgramKey:  os.Getenv("DEEPGRAM_API_KEY"),
		OpenAIKey:    os.Getenv("OPENAI_API_KEY"),
		MaxRetries:   remote.DefaultMaxRetries,
		InitialDelay: remote.DefaultInitialDelay,
		Timeout:      remote.DefaultTimeout,
		Debug:        os.Getenv("KODOMO_DEBUG") != "",
	}

	if v := os.Getenv("KODOMO_DIARY_FILE"); v != "" {
		cfg.DiaryFile = v
	}
	if v := os.Getenv("KODOMO_IMAGE_DIR"); v != "" {
		cfg.ImageDir = v
	}
	if v := os.Getenv("KODOMO_AUDIO_DIR"); v != "" {
		cfg.AudioDir = v
	}
	if n, err := strconv.Atoi(os.Getenv("KODOMO_MAX_RETRIES")); err == nil && n > 0 {
		cfg.MaxRetries = n
	}
	if n, err := strconv.Atoi(os.Getenv("KODOMO_MAX_VARIANTS")); err == nil && n > 0 {
		cfg.MaxVariants = n
	}
	return cfg
}
