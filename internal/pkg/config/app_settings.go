package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	rsaDomain "github.com/godzivan/ttcrypt/internal/domain/rsa"
	"github.com/godzivan/ttcrypt/internal/pkg/validators"
)

// KeyGenSettings holds the default key generation parameters for the CLI.
type KeyGenSettings struct {
	BitStrength int `mapstructure:"bit_strength" validate:"required,rsastrength"`
}

// AppSettings holds the CLI configuration: the digest used when no hash flag
// is given, default key generation parameters and the logger setup.
type AppSettings struct {
	DefaultHash string         `mapstructure:"default_hash" validate:"required"`
	KeyGen      KeyGenSettings `mapstructure:"keygen"`
	Logger      LoggerSettings `mapstructure:"logger"`
}

// LoadAppSettings reads the settings file at path via viper, falling back to
// built-in defaults for anything the file omits. An empty path skips file
// reading entirely and yields the defaults.
func LoadAppSettings(path string) (*AppSettings, error) {
	v := viper.New()
	v.SetDefault("default_hash", rsaDomain.DefaultHash)
	v.SetDefault("keygen.bit_strength", 2048)
	v.SetDefault("logger.log_level", LogLevelInfo)
	v.SetDefault("logger.log_type", LogTypeConsole)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read settings file: %w", err)
		}
	}

	settings := &AppSettings{}
	if err := v.Unmarshal(settings); err != nil {
		return nil, fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return settings, nil
}

// Validate checks that all fields in AppSettings are valid
func (s *AppSettings) Validate() error {
	validate := validator.New()
	if err := validate.RegisterValidation("rsastrength", validators.RSABitStrengthValidation); err != nil {
		return fmt.Errorf("failed to register validator: %w", err)
	}

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for AppSettings: %w", err)
	}
	return s.Logger.Validate()
}
