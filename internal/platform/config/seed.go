package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// CurrencySeed is one user-defined currency listed in the seed file.
// Dates use the YYYY-MM-DD layout.
type CurrencySeed struct {
	Code          string `mapstructure:"code"`
	Namespace     string `mapstructure:"namespace"`
	EnglishName   string `mapstructure:"english_name"`
	Symbol        string `mapstructure:"symbol"`
	NumericCode   string `mapstructure:"numeric_code"`
	DecimalDigits *int   `mapstructure:"decimal_digits"`
	FiveBased     bool   `mapstructure:"five_based"`
	ValidFrom     string `mapstructure:"valid_from"`
	ValidTo       string `mapstructure:"valid_to"`
	// Replace swaps out an existing entry with the same code and namespace,
	// keeping every field the seed leaves empty.
	Replace bool `mapstructure:"replace"`
}

type seedFile struct {
	Currencies []CurrencySeed `mapstructure:"currencies"`
}

// LoadCurrencySeeds reads the seed file at path. The format (YAML, JSON, TOML)
// is taken from the file extension. An empty path yields no seeds.
func LoadCurrencySeeds(path string) ([]CurrencySeed, error) {
	if path == "" {
		return nil, nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read currency seed file %s: %w", path, err)
	}

	var file seedFile
	if err := v.Unmarshal(&file); err != nil {
		return nil, fmt.Errorf("failed to decode currency seed file %s: %w", path, err)
	}
	return file.Currencies, nil
}
