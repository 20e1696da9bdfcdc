// Package config loads and validates the drivecopy run configuration.
//
// A config file names the shared root folder, the source and destination
// subfolders beneath it, and the batches of source folders to copy. Files
// are read with viper, so YAML and JSON both work; the default location is
// ~/.config/drivecopy/config.yaml.
package config
