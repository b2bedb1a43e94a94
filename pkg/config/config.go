// Package config loads the application configuration from data/conf.ini,
// an optional local .env file, and COURSEWAVE_* environment variables,
// in increasing order of precedence.
package config

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/go-ini/ini"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	KeyServerPort  = "System.Port"
	KeyServerDebug = "System.Debug"

	KeyDBType     = "Database.Type"
	KeyDBHost     = "Database.Host"
	KeyDBPort     = "Database.Port"
	KeyDBUser     = "Database.User"
	KeyDBPassword = "Database.Password"
	KeyDBName     = "Database.Name"
	KeyDBDebug    = "Database.Debug"

	KeyRedisAddr     = "Redis.Addr"
	KeyRedisPassword = "Redis.Password"
	KeyRedisDB       = "Redis.DB"

	KeyJWTSecret          = "Auth.JWTSecret"
	KeyAccessTokenTTLMin  = "Auth.AccessTokenTTLMinutes"
	KeyRefreshTokenTTLHrs = "Auth.RefreshTokenTTLHours"
	KeyRegisterCaptcha    = "Auth.RegisterCaptcha"

	KeySiteName = "Site.Name"
)

// allKeys lists every key the loader checks for an environment override.
var allKeys = []string{
	KeyServerPort, KeyServerDebug,
	KeyDBType, KeyDBHost, KeyDBPort, KeyDBUser, KeyDBPassword, KeyDBName, KeyDBDebug,
	KeyRedisAddr, KeyRedisPassword, KeyRedisDB,
	KeyJWTSecret, KeyAccessTokenTTLMin, KeyRefreshTokenTTLHrs, KeyRegisterCaptcha,
	KeySiteName,
}

type Config struct {
	vp *viper.Viper
}

// NewConfig loads defaults from data/conf.ini, then applies environment
// overrides of the form COURSEWAVE_<SECTION>_<KEY>.
func NewConfig() (*Config, error) {
	// A .env file is optional; it only populates the process environment.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("warning: failed to load .env: %v", err)
	}

	vp := viper.New()
	filePath := "data/conf.ini"

	iniCfg, err := ini.Load(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("config: %s not found, relying on environment variables and defaults", filePath)
		} else {
			return nil, fmt.Errorf("config: failed to parse %q: %w", filePath, err)
		}
	}

	if iniCfg != nil {
		for _, section := range iniCfg.Sections() {
			for _, key := range section.Keys() {
				viperKey := fmt.Sprintf("%s.%s", section.Name(), key.Name())
				if section.Name() == "DEFAULT" {
					viperKey = key.Name()
				}
				vp.Set(viperKey, key.Value())
			}
		}
		log.Println("config: loaded defaults from data/conf.ini")
	}

	envReplacer := strings.NewReplacer(".", "_")
	const envPrefix = "COURSEWAVE"

	for _, key := range allKeys {
		envVarName := fmt.Sprintf("%s_%s", envPrefix, envReplacer.Replace(strings.ToUpper(key)))
		if value, found := os.LookupEnv(envVarName); found {
			vp.Set(key, value)
			log.Printf("config: %s overridden by environment variable %s", key, envVarName)
		}
	}

	return &Config{vp: vp}, nil
}

// NewFromValues builds a config from explicit key/value pairs, bypassing
// file and environment loading. Intended for tests.
func NewFromValues(values map[string]string) *Config {
	vp := viper.New()
	for key, value := range values {
		vp.Set(key, value)
	}
	return &Config{vp: vp}
}

func (c *Config) GetString(key string) string {
	return c.vp.GetString(key)
}

func (c *Config) GetInt(key string) int {
	return c.vp.GetInt(key)
}

func (c *Config) GetBool(key string) bool {
	return c.vp.GetBool(key)
}
