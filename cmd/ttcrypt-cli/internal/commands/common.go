package commands

import (
	"fmt"
	"os"

	"github.com/godzivan/ttcrypt/internal/pkg/config"
	"github.com/godzivan/ttcrypt/internal/pkg/logger"
)

// configPathEnv names the environment variable pointing at an optional
// settings file.
const configPathEnv = "TTCRYPT_CONFIG"

func setupApp() (*config.AppSettings, logger.Logger, error) {
	settings, err := config.LoadAppSettings(os.Getenv(configPathEnv))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load settings: %w", err)
	}

	if err := logger.InitLogger(&settings.Logger); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	loggerInstance, err := logger.GetLogger()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get logger instance: %w", err)
	}

	return settings, loggerInstance, nil
}
