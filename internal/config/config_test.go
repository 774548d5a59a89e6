package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"handreader/internal/util"
)

func TestInstance(t *testing.T) {
	defer util.SetEnv("HANDREADER_CONFIG_FILE", "testdata/config.yaml")()
	defer util.SetEnv("HANDREADER_MAX_BATCH_SIZE", "25")()
	config = Config{}

	a := assert.New(t)
	cfg := Instance()
	a.Equal(":8080", cfg.Addr)
	a.Equal("debug", cfg.Log.Level)
	a.Equal("json", cfg.Log.Format)
	a.False(cfg.Log.DisableAccessLogs)
	a.Equal([]string{"https://example.com"}, cfg.CORS.AllowedOrigins)
	a.Equal(25, cfg.MaxBatchSize)

	// ensure that it's only loaded once
	_ = os.Setenv("HANDREADER_MAX_BATCH_SIZE", "30")
	// ensure we aren't using a pointer
	cfg.MaxBatchSize = 1
	cfg = Instance()
	a.Equal(25, cfg.MaxBatchSize)
}

func TestLoad_missingFile(t *testing.T) {
	defer util.SetEnv("HANDREADER_CONFIG_FILE", "testdata/missing.yaml")()
	defer util.SetEnv("HANDREADER_LOG_LEVEL", "warn")()

	a := assert.New(t)
	a.NoError(Load())

	cfg := Instance()
	a.Equal(DefaultConfig().Addr, cfg.Addr)
	a.Equal("warn", cfg.Log.Level)
	a.Equal(100, cfg.MaxBatchSize)
}

func TestLoad_badEnvironment(t *testing.T) {
	defer util.SetEnv("HANDREADER_CONFIG_FILE", "testdata/missing.yaml")()
	defer util.SetEnv("HANDREADER_MAX_BATCH_SIZE", "lots")()

	assert.Error(t, Load())
}
