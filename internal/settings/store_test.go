package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultsWhenFileMissing(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), FileName))
	require.NoError(t, err)

	assert.Equal(t, DefaultPreferences(), LoadPreferences(s))
	assert.Equal(t, Preferences{Timestamp: true, LogMode: true}, LoadPreferences(s))
}

func TestSaveThenFreshLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	s, err := Open(path)
	require.NoError(t, err)

	saved := Preferences{Timestamp: false, LogMode: false, HexReceive: true, HexSend: true}
	require.NoError(t, SavePreferences(s, saved))

	fresh, err := Open(path)
	require.NoError(t, err)
	assert.Equal(t, saved, LoadPreferences(fresh))
}

func TestFileLayout(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, SavePreferences(s, DefaultPreferences()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(data)
	assert.Contains(t, content, "[General]")
	for _, line := range []string{"timestamp", "logMode", "hexReceive", "hexSend"} {
		assert.Contains(t, content, line)
	}
}

func TestReadsQSettingsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	content := "[General]\nhexReceive=true\nhexSend=false\nlogMode=false\ntimestamp=true\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	s, err := Open(path)
	require.NoError(t, err)
	assert.Equal(t, Preferences{Timestamp: true, LogMode: false, HexReceive: true}, LoadPreferences(s))
}

func TestUnparsableValueUsesDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("[General]\ntimestamp=maybe\n"), 0644))

	s, err := Open(path)
	require.NoError(t, err)
	assert.True(t, s.Bool(KeyTimestamp, true))
	assert.False(t, s.Bool(KeyTimestamp, false))
}

func TestSetBoolWithoutSyncIsNotPersisted(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	s, err := Open(path)
	require.NoError(t, err)

	s.SetBool(KeyHexSend, true)
	assert.True(t, s.Bool(KeyHexSend, false))

	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}
