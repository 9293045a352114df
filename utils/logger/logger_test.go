package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datazip-inc/olake-tableview/constants"
)

func TestSetOutput(t *testing.T) {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.InfoLevel) })

	var out bytes.Buffer
	SetOutput(&out)
	Warnf("skipping %d records", 3)
	Debug("tree built")

	assert.Contains(t, out.String(), `"level":"warn"`)
	assert.Contains(t, out.String(), "skipping 3 records")
	assert.Contains(t, out.String(), "tree built")
}

func TestInit_FileAndLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tableview.log")
	viper.Set(constants.LogLevel, "WARN")
	viper.Set(constants.LogFile, path)
	t.Cleanup(func() {
		viper.Set(constants.LogLevel, "")
		viper.Set(constants.LogFile, "")
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	})

	Init()
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())

	Info("not written")
	Warn("written to file")

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "written to file")
	assert.NotContains(t, string(raw), "not written")
}

func TestInit_UnknownLevelFallsBackToInfo(t *testing.T) {
	viper.Set(constants.LogLevel, "loud")
	t.Cleanup(func() { viper.Set(constants.LogLevel, "") })

	Init()
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
}
