package ignore

import (
	"os"

	"github.com/BurntSushi/toml"
)

const (
	// IgnoreFileName is the default name of the ignore file
	IgnoreFileName = ".pgdslignore"
)

// TomlConfig represents the TOML structure of the .pgdslignore file
type TomlConfig struct {
	Tables  PatternConfig `toml:"tables,omitempty"`
	Indexes PatternConfig `toml:"indexes,omitempty"`
}

// PatternConfig holds the patterns of one statement kind
type PatternConfig struct {
	Patterns []string `toml:"patterns,omitempty"`
}

// LoadIgnoreFile loads the .pgdslignore file from the current directory
// Returns nil if the file doesn't exist (ignore functionality is optional)
func LoadIgnoreFile() (*Config, error) {
	return LoadIgnoreFileFromPath(IgnoreFileName)
}

// LoadIgnoreFileFromPath loads an ignore file from the specified path
// Returns nil if the file doesn't exist (ignore functionality is optional)
func LoadIgnoreFileFromPath(filePath string) (*Config, error) {
	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}

	var tomlConfig TomlConfig
	if _, err := toml.DecodeFile(filePath, &tomlConfig); err != nil {
		return nil, err
	}

	return &Config{
		Tables:  tomlConfig.Tables.Patterns,
		Indexes: tomlConfig.Indexes.Patterns,
	}, nil
}
