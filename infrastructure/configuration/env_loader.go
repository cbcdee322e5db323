package configuration

import (
	"os"
	"strings"

	"content-pipeline/infrastructure/logger"

	"github.com/spf13/viper"
)

// LoadEnvFromFile loads KEY=VALUE pairs from one or more files (e.g., config.env, .env).
// Missing files are skipped. Existing env vars are not overridden.
func LoadEnvFromFile(paths ...string) {
	for _, p := range paths {
		if _, err := os.Stat(p); err != nil {
			logger.GetLogger().WithField("file", p).Debug("env file not found")
			continue
		}
		v := viper.New()
		v.SetConfigFile(p)
		v.SetConfigType("env")
		if err := v.ReadInConfig(); err != nil {
			logger.GetLogger().WithField("file", p).WithField("error", err).Warn("Error reading env file")
			continue
		}
		for _, k := range v.AllKeys() {
			key := strings.ToUpper(k)
			if _, exists := os.LookupEnv(key); !exists {
				_ = os.Setenv(key, v.GetString(k))
			}
		}
		logger.GetLogger().WithField("file", p).Info("Detected env file")
	}
}
