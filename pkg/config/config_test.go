package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViper_ValoresPorDefecto(t *testing.T) {
	cfg, err := fromViper(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "inventario-pos", cfg.App.Name)
	assert.Equal(t, "Local", cfg.App.Timezone)
	assert.Equal(t, "127.0.0.1:8080", cfg.HTTP.Addr())
	assert.Equal(t, "./data", cfg.Store.DataDir)
	assert.False(t, cfg.Ledger.EnforceUniqueOnRename)
	assert.Equal(t, 50, cfg.Ledger.SalesHistoryLimit)
}

func TestFromViper_SobrescribeDesdeEntorno(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("LEDGER_ENFORCE_UNIQUE_ON_RENAME", "true")
	t.Setenv("DATA_DIR", "/tmp/pos")
	v := viper.New()
	v.AutomaticEnv()

	cfg, err := fromViper(v)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.True(t, cfg.Ledger.EnforceUniqueOnRename)
	assert.Equal(t, "/tmp/pos", cfg.Store.DataDir)
}

func TestFromViper_PuertoInvalido(t *testing.T) {
	v := viper.New()
	v.Set("HTTP_PORT", 70000)

	_, err := fromViper(v)
	assert.Error(t, err)
}
