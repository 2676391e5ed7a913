package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 115200, cfg.Serial.BaudRate)
	assert.Equal(t, 8, cfg.Serial.DataBits)
	assert.Equal(t, "UTF-8", cfg.SendEncoding)
	assert.Equal(t, "UTF-8", cfg.ReceiveEncoding)
	assert.Equal(t, 1000, cfg.AutoSendInterval)
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", FileName)

	cfg := Default()
	cfg.Serial.Port = "/dev/ttyUSB1"
	cfg.ReceiveEncoding = "GBK"
	cfg.AutoSendInterval = 250
	require.NoError(t, cfg.SaveTo(path))

	loaded, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadKeepsDefaultsForMissingFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte(`{"log_level":"DEBUG"}`), 0644))

	cfg, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, "DEBUG", cfg.LogLevel)
	assert.Equal(t, 115200, cfg.Serial.BaudRate)
	assert.Equal(t, "UTF-8", cfg.SendEncoding)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadFrom(filepath.Join(dir, "missing.json"))
	assert.True(t, os.IsNotExist(err))

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{not json"), 0644))
	_, err = LoadFrom(bad)
	assert.Error(t, err)
}

func TestExeDirFile(t *testing.T) {
	assert.Equal(t, FileName, filepath.Base(Path()))
	assert.True(t, filepath.IsAbs(ExeDirFile("config.ini")))
}
