package conf

import (
	"errors"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// EnvLogLevel overrides log.level when set.
const EnvLogLevel = "PROXYCONF_LOG_LEVEL"

// LoadEnv loads env files into the process environment without overriding
// variables that are already set. With no paths it loads ./.env if present.
func LoadEnv(paths ...string) error {
	if len(paths) == 0 {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
		return nil
	}
	return godotenv.Load(paths...)
}

func (c *Conf) ApplyEnv() {
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Log.Level_ = v
	}
}
