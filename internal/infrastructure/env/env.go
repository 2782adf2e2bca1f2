package env

import (
	"errors"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"eyedropper/internal/application/port/output"

	"github.com/joho/godotenv"
)

const (
	KeyHeadless = "EYEDROPPER_HEADLESS"
	KeyDBPath   = "EYEDROPPER_DB_PATH"
	KeySettings = "EYEDROPPER_SETTINGS"
	KeyLogLevel = "LOG_LEVEL"
	KeyLogDir   = "LOG_DIR"
)

var _ output.ConfigPort = (*EnvService)(nil)

type EnvService struct{}

// NewEnvService loads .env and then .env.$APP_ENV over it from the working directory.
func NewEnvService() *EnvService {
	return NewEnvServiceIn(".")
}

// NewEnvServiceIn is NewEnvService for another directory. Missing files are
// skipped; unreadable ones are reported on stderr since logging is not set up yet.
func NewEnvServiceIn(dir string) *EnvService {
	appEnv := os.Getenv("APP_ENV")
	if appEnv == "" {
		appEnv = "dev"
	}

	loadFile(filepath.Join(dir, ".env"), godotenv.Load)
	loadFile(filepath.Join(dir, ".env."+appEnv), godotenv.Overload)

	return &EnvService{}
}

func loadFile(path string, load func(filenames ...string) error) {
	if err := load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("Warning: could not load %s: %v", path, err)
	}
}

func (e *EnvService) Get(key string) string {
	return os.Getenv(key)
}

func (e *EnvService) GetWithDefault(key string, defaultValue string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultValue
	}
	return val
}

func (e *EnvService) GetBool(key string, defaultValue bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(val)
	if err != nil {
		return defaultValue
	}
	return parsed
}

func (e *EnvService) GetInt(key string, defaultValue int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return defaultValue
	}
	return parsed
}
