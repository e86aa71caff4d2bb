package business

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// ErrNotFound is returned when a calendar name has no backing configuration.
var ErrNotFound = errors.New("calendar not found")

// Source resolves a calendar name to its raw configuration.
type Source interface {
	Resolve(name string) (*Config, error)
}

// Load resolves name through src and builds a Calendar from the result.
// There is no fallback calendar: a resolution failure is fatal.
func Load(name string, src Source) (*Calendar, error) {
	cfg, err := src.Resolve(name)
	if err != nil {
		return nil, err
	}
	return New(*cfg)
}

// FileSource resolves calendar names to YAML files named <name>.yml (or any
// other extension viper reads) searched across a list of directories.
type FileSource struct {
	paths  []string
	logger *zap.Logger
}

// NewFileSource creates a FileSource searching the given directories in order.
func NewFileSource(logger *zap.Logger, paths ...string) *FileSource {
	return &FileSource{
		paths:  paths,
		logger: logger,
	}
}

// Resolve reads and unmarshals the configuration file for name. A missing
// file reports ErrNotFound.
func (s *FileSource) Resolve(name string) (*Config, error) {
	v := viper.New()
	v.SetConfigName(name)
	v.SetConfigType("yaml")
	for _, path := range s.paths {
		v.AddConfigPath(path)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil, fmt.Errorf("calendar %q: %w", name, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to read calendar %q: %w", name, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal calendar %q: %w", name, err)
	}

	s.logger.Info("Calendar configuration loaded",
		zap.String("name", name),
		zap.String("file", v.ConfigFileUsed()))

	return &cfg, nil
}

// MapSource resolves calendar names from an in-memory table. It satisfies
// Source for embedded calendar sets and for tests.
type MapSource map[string]Config

// Resolve looks up name in the table.
func (s MapSource) Resolve(name string) (*Config, error) {
	cfg, ok := s[name]
	if !ok {
		return nil, fmt.Errorf("calendar %q: %w", name, ErrNotFound)
	}
	return &cfg, nil
}
