package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/teemow/drivecopy/internal/replicate"
)

// DefaultDestinationFolder is used when the config does not name one
const DefaultDestinationFolder = "Copied Folders"

// Batch is one named group of source folders to copy together
type Batch struct {
	// Name is the destination folder the batch is copied into
	Name string `mapstructure:"name"`

	// Items are the names of source folders to copy, in order
	Items []string `mapstructure:"items"`
}

// Config describes one replication run
type Config struct {
	// RootFolderID is the Drive folder that holds both the source and the
	// destination subfolders
	RootFolderID string `mapstructure:"root_folder_id"`

	// SourceFolder is the name of the subfolder the requested items live in
	SourceFolder string `mapstructure:"source_folder"`

	// DestinationFolder is the name of the subfolder batches are copied into
	DestinationFolder string `mapstructure:"destination_folder"`

	// Batches are processed in order
	Batches []Batch `mapstructure:"batches"`
}

// Load reads and validates the configuration. An empty path falls back to
// config.{yaml,json} in ~/.config/drivecopy.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetDefault("destination_folder", DefaultDestinationFolder)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(defaultConfigDir())
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", v.ConfigFileUsed(), err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", v.ConfigFileUsed(), err)
	}

	return &cfg, nil
}

// Validate checks that all required fields are present and that no batch
// requests the reserved metadata folder name.
func (c *Config) Validate() error {
	if c.RootFolderID == "" {
		return fmt.Errorf("root_folder_id is required")
	}
	if c.SourceFolder == "" {
		return fmt.Errorf("source_folder is required")
	}
	if c.DestinationFolder == "" {
		return fmt.Errorf("destination_folder is required")
	}
	if len(c.Batches) == 0 {
		return fmt.Errorf("at least one batch is required")
	}

	for i, b := range c.Batches {
		if b.Name == "" {
			return fmt.Errorf("batch %d: name is required", i)
		}
		if len(b.Items) == 0 {
			return fmt.Errorf("batch %q: at least one item is required", b.Name)
		}
		for _, item := range b.Items {
			if item == "" {
				return fmt.Errorf("batch %q: item names must not be empty", b.Name)
			}
			if item == replicate.MetaFolderName {
				return fmt.Errorf("batch %q: %q is reserved for replication metadata", b.Name, item)
			}
		}
	}

	return nil
}

// Replication converts the batches into the engine's request type
func (c *Config) Replication() replicate.Request {
	req := replicate.Request{
		RootFolderID:      c.RootFolderID,
		SourceFolder:      c.SourceFolder,
		DestinationFolder: c.DestinationFolder,
	}
	for _, b := range c.Batches {
		req.Batches = append(req.Batches, replicate.Batch{
			Name:  b.Name,
			Items: b.Items,
		})
	}
	return req
}

func defaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".config", "drivecopy")
}
