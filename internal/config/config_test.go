package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"katas-server/internal/util"
)

func TestInstance(t *testing.T) {
	clear1 := util.SetEnv("KATAS_CONFIG_FILE", "testdata/config.yaml")
	defer clear1()
	clear2 := util.SetEnv("KATAS_WRAP_DEFAULT_COLUMNS", "30")
	defer clear2()

	a := assert.New(t)
	a.NoError(Load())
	cfg := Instance()
	a.Equal(":6000", cfg.Addr)
	a.Equal("debug", cfg.Log.Level)
	a.Equal("json", cfg.Log.Format)
	a.Equal([]string{"https://katas.example.domain"}, cfg.CORS.AllowedOrigins)
	a.Equal(30, cfg.Wrap.DefaultColumns)

	// values missing from the file keep their defaults
	a.True(cfg.Metrics.Enabled)
	a.Equal("/metrics", cfg.Metrics.Path)
	a.Equal(64, cfg.ZigZag.MaxSize)

	// ensure that it's only loaded once
	_ = os.Setenv("KATAS_WRAP_DEFAULT_COLUMNS", "31")
	// ensure we aren't using a pointer
	cfg.Wrap.DefaultColumns = 1
	cfg = Instance()
	a.Equal(30, cfg.Wrap.DefaultColumns)
}

func TestDefaults(t *testing.T) {
	clear1 := util.SetEnv("KATAS_CONFIG_FILE", "testdata/missing.yaml")
	defer clear1()

	assert.NoError(t, Load())
	cfg := Instance()
	assert.Equal(t, DefaultConfig().Addr, cfg.Addr)
	assert.Equal(t, 80, cfg.Wrap.DefaultColumns)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
}

func TestLoad_badFile(t *testing.T) {
	clear1 := util.SetEnv("KATAS_CONFIG_FILE", "testdata")
	defer clear1()

	assert.Error(t, Load())
}

func TestLoad_badEnv(t *testing.T) {
	clear1 := util.SetEnv("KATAS_CONFIG_FILE", "testdata/missing.yaml")
	defer clear1()
	clear2 := util.SetEnv("KATAS_ZIGZAG_MAX_SIZE", "lots")
	defer clear2()

	assert.Error(t, Load())
}

func TestLoad_unprefixedEnvIgnored(t *testing.T) {
	clear1 := util.SetEnv("KATAS_CONFIG_FILE", "testdata/missing.yaml")
	defer clear1()

	for key, val := range map[string]string{
		"PATH":    "/usr/local/bin:/usr/bin:/bin",
		"LEVEL":   "panic",
		"ADDR":    ":9999",
		"FORMAT":  "json",
		"ENABLED": "false",
	} {
		restore := util.SetEnv(key, val)
		defer restore()
	}

	a := assert.New(t)
	a.NoError(Load())
	cfg := Instance()
	a.Equal("/metrics", cfg.Metrics.Path)
	a.True(cfg.Metrics.Enabled)
	a.Equal("info", cfg.Log.Level)
	a.Equal("text", cfg.Log.Format)
	a.Equal(":5000", cfg.Addr)
}

func TestLoad_prefixedEnv(t *testing.T) {
	clear1 := util.SetEnv("KATAS_CONFIG_FILE", "testdata/missing.yaml")
	defer clear1()
	clear2 := util.SetEnv("KATAS_METRICS_PATH", "/prom")
	defer clear2()
	clear3 := util.SetEnv("KATAS_LOG_DISABLE_ACCESS_LOGS", "true")
	defer clear3()
	clear4 := util.SetEnv("KATAS_CORS_ALLOWED_ORIGINS", "https://a.example,https://b.example")
	defer clear4()

	a := assert.New(t)
	a.NoError(Load())
	cfg := Instance()
	a.Equal("/prom", cfg.Metrics.Path)
	a.True(cfg.Log.DisableAccessLogs)
	a.Equal([]string{"https://a.example", "https://b.example"}, cfg.CORS.AllowedOrigins)
}
