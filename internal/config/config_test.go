package config

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jan-server/services/chat-insights/internal/domain/textnorm"
)

func TestLoadRejectsUnknownPolicy(t *testing.T) {
	t.Setenv("NORMALIZER_POLICY", "porter")
	cfg, err := Load()
	require.Error(t, err)
	assert.Nil(t, cfg)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("HTTP_PORT", "9000")
	t.Setenv("NORMALIZER_POLICY", " FULL ")
	t.Setenv("DATASET_PATH", "/data/chats.json")
	t.Setenv("WORKER_POOL_SIZE", "3")
	t.Setenv("WORKER_QUEUE_SIZE", "7")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":9000", cfg.Addr())
	assert.Equal(t, string(textnorm.PolicyFull), cfg.NormalizerPolicy)
	assert.Equal(t, "/data/chats.json", cfg.DatasetPath)
	assert.Equal(t, 3, cfg.WorkerPoolSize)
	assert.Equal(t, 7, cfg.WorkerQueueSize)
	assert.Equal(t, "chat-insights", cfg.ServiceName)
	assert.False(t, cfg.ReloadEnabled)
}

func TestLoadReloadOptIn(t *testing.T) {
	t.Setenv("DATASET_PATH", "/data/chats.json")
	t.Setenv("RELOAD_ENABLED", "true")

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.ReloadEnabled)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			DatasetPath:      "chats.json",
			NormalizerPolicy: string(textnorm.PolicyBasic),
			WorkerQueueSize:  1,
			SummaryCacheSize: 1,
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"unknown policy", func(c *Config) { c.NormalizerPolicy = "stemmer" }, true},
		{"empty policy", func(c *Config) { c.NormalizerPolicy = "" }, true},
		{"missing dataset", func(c *Config) { c.DatasetPath = " " }, true},
		{"negative queue", func(c *Config) { c.WorkerQueueSize = -1 }, true},
		{"zero cache", func(c *Config) { c.SummaryCacheSize = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestValidateDefaultsPoolSize(t *testing.T) {
	cfg := &Config{DatasetPath: "x.json", NormalizerPolicy: string(textnorm.PolicyBasic), SummaryCacheSize: 1}
	require.NoError(t, cfg.Validate())
	assert.Equal(t, runtime.GOMAXPROCS(0), cfg.WorkerPoolSize)
}

func TestValidateCanonicalizesPolicy(t *testing.T) {
	cfg := &Config{DatasetPath: "x.json", NormalizerPolicy: "\tFull ", SummaryCacheSize: 1}
	require.NoError(t, cfg.Validate())
	assert.Equal(t, string(textnorm.PolicyFull), cfg.NormalizerPolicy)

	cfg.NormalizerPolicy = "porter"
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "NORMALIZER_POLICY")
	assert.Contains(t, err.Error(), `unknown normalizer policy "porter"`)
}
