package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"

	"ttrpg-pi/core/browser"
	"ttrpg-pi/core/logger"
	"ttrpg-pi/core/player"
	"ttrpg-pi/core/server"
	"ttrpg-pi/core/storage"
	"ttrpg-pi/feature/buttons"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// DefaultFile is the config document read when no --config flag is given.
const DefaultFile = "config.json"

// ErrNotFound is returned when the config document does not exist.
var ErrNotFound = errors.New("config file not found")

// Config holds all configuration for the application.
// The first three fields are the kiosk document proper; the nested sections
// are optional overrides.
type Config struct {
	// WebsiteURL is opened in the kiosk browser.
	WebsiteURL string `mapstructure:"website_url" default:"https://owlbear.rodeo"`
	// Port is the API listen port.
	Port int `mapstructure:"port" default:"5000"`
	// AudioFiles maps button numbers ("1".."8") to MP3 paths, relative to the config file.
	AudioFiles map[string]string `mapstructure:"audio_files"`

	// Server holds the HTTP server settings.
	Server server.Config `mapstructure:"server"`
	// Browser holds the kiosk browser settings.
	Browser browser.Config `mapstructure:"browser"`
	// Player holds the audio player settings.
	Player player.Config `mapstructure:"player"`
	// Listener holds the button listener settings.
	Listener buttons.Config `mapstructure:"listener"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Storage holds configuration for the bucket the audio pack syncs from.
	Storage storage.Config `mapstructure:"storage"`

	// BaseDir is the absolute directory of the loaded file.
	BaseDir string `mapstructure:"-"`

	document map[string]any
}

// DefaultAudioFiles is the fixed-name layout under audio/.
func DefaultAudioFiles() map[string]string {
	files := make(map[string]string, 8)
	for i := 1; i <= 8; i++ {
		files[strconv.Itoa(i)] = fmt.Sprintf("audio/sound%d.mp3", i)
	}
	return files
}

// LoadConfig reads the JSON document at file, then applies defaults, an
// optional .env next to it and environment variables (PORT, LOG_LEVEL,
// BROWSER_ENABLED, ...).
func LoadConfig(file string) (*Config, error) {
	dir := filepath.Dir(file)

	// Ignore error if file doesn't exist (e.g. production)
	_ = godotenv.Overload(filepath.Join(dir, ".env"))

	data, err := os.ReadFile(file)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, file)
		}
		return nil, fmt.Errorf("failed to read config %s: %w", file, err)
	}

	// Viper lower-cases keys and merges defaults, so keep the document as written
	document, err := decodeDocument(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", file, err)
	}

	v := viper.New()

	// Recursively parse struct tags to set default values
	bindValues(v, Config{}, "")
	v.SetDefault("audio_files", DefaultAudioFiles())
	v.SetDefault("listener.pins", buttons.DefaultPins())

	v.SetConfigType("json")
	if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("failed to load config %s: %w", file, err)
	}

	// Map environment variables to nested keys (e.g. LOG_LEVEL -> log.level)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config %s: %w", file, err)
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve config directory: %w", err)
	}
	cfg.BaseDir = abs
	cfg.document = document

	return &cfg, nil
}

// Document returns the config file as it was decoded, before defaults or
// environment overrides. It backs GET /config.
func (c *Config) Document() map[string]any {
	return c.document
}

// SoundFiles resolves AudioFiles to absolute paths keyed by button number.
// Entries whose key is not a number or whose path is empty are dropped.
func (c *Config) SoundFiles() map[int]string {
	files := make(map[int]string, len(c.AudioFiles))
	for key, path := range c.AudioFiles {
		n, err := strconv.Atoi(key)
		if err != nil || path == "" {
			continue
		}
		if !filepath.IsAbs(path) {
			path = filepath.Join(c.BaseDir, path)
		}
		files[n] = path
	}
	return files
}

// ListenerURL returns the play endpoint the button listener calls.
func (c *Config) ListenerURL() string {
	if c.Listener.APIURL != "" {
		return strings.TrimRight(c.Listener.APIURL, "/")
	}
	return fmt.Sprintf("http://localhost:%d/play", c.Port)
}

// decodeDocument decodes a single JSON object. Numbers stay json.Number so
// integers of any size are echoed back unchanged.
func decodeDocument(data []byte) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var document map[string]any
	if err := dec.Decode(&document); err != nil {
		return nil, err
	}
	if document == nil {
		return nil, errors.New("document must be a JSON object")
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("unexpected data after the JSON object")
	}
	return document, nil
}

// bindValues uses reflection to iterate over the struct and set default values in Viper
// based on the 'default' and 'mapstructure' tags. Map fields get programmatic defaults.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	// If it's a pointer, get the element
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")

		if tag == "" || tag == "-" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		switch field.Type.Kind() {
		case reflect.Struct:
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		case reflect.Map:
			continue
		}

		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, field.Tag.Get("default"))
	}
}
