package config

import (
	"os"
	"path/filepath"
	"time"
)

// Storage backends
const (
	BackendSQLite = "sqlite"
	BackendPrefs  = "prefs"
)

// StorageConfig selects where the item list is persisted
type StorageConfig struct {
	Backend string `yaml:"backend"` // sqlite | prefs
	Path    string `yaml:"path"`    // database file or prefs directory
}

// FetchConfig controls image downloads
type FetchConfig struct {
	PlaceholderBase string        `yaml:"placeholder_base"`
	Timeout         time.Duration `yaml:"timeout"`
}

// PaletteConfig selects the color extraction algorithm
type PaletteConfig struct {
	Algorithm string `yaml:"algorithm"` // target | kmeans
}

// LabelingConfig selects and configures the image labeler
type LabelingConfig struct {
	Backend   string    `yaml:"backend"` // colors | gemini | dnn
	MaxLabels int       `yaml:"max_labels"`
	Gemini    GeminiCfg `yaml:"gemini"`
	DNN       DNNCfg    `yaml:"dnn"`
}

// GeminiCfg configures the cloud labeler. The API key is read from GEMINI_API_KEY.
type GeminiCfg struct {
	Model string `yaml:"model"`
}

// DNNCfg points at an image classification network and its class names
type DNNCfg struct {
	Model  string `yaml:"model"`
	Config string `yaml:"config"`
	Labels string `yaml:"labels"`
	Size   int    `yaml:"size"`
}

// ServerConfig configures the HTTP API
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// ShareConfig configures rendered share cards
type ShareConfig struct {
	Dir   string `yaml:"dir"`
	Width int    `yaml:"width"`
}

// DataDir returns ~/.gallery, falling back to a relative .gallery directory
func DataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".gallery"
	}
	return filepath.Join(home, ".gallery")
}

func (s *StorageConfig) applyDefaults() {
	if s.Backend == "" {
		s.Backend = BackendSQLite
	}
	if s.Path == "" {
		switch s.Backend {
		case BackendPrefs:
			s.Path = filepath.Join(DataDir(), "prefs")
		default:
			s.Path = filepath.Join(DataDir(), "gallery.db")
		}
	}
}

func (f *FetchConfig) applyDefaults() {
	if f.PlaceholderBase == "" {
		f.PlaceholderBase = "https://picsum.photos"
	}
	if f.Timeout <= 0 {
		f.Timeout = 30 * time.Second
	}
}

func (p *PaletteConfig) applyDefaults() {
	if p.Algorithm == "" {
		p.Algorithm = "target"
	}
}

func (l *LabelingConfig) applyDefaults() {
	if l.Backend == "" {
		l.Backend = "colors"
	}
	if l.MaxLabels <= 0 {
		l.MaxLabels = 5
	}
	if l.Gemini.Model == "" {
		l.Gemini.Model = "gemini-2.5-flash"
	}
	if l.DNN.Size <= 0 {
		l.DNN.Size = 224
	}
}

func (s *ServerConfig) applyDefaults() {
	if s.Addr == "" {
		s.Addr = "127.0.0.1:8080"
	}
}

func (s *ShareConfig) applyDefaults() {
	if s.Dir == "" {
		s.Dir = filepath.Join(DataDir(), "shared")
	}
	if s.Width <= 0 {
		s.Width = 480
	}
}
