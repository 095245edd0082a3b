package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"saloon-blackjack-server/internal/util"
)

func TestLoad(t *testing.T) {
	a := assert.New(t)

	restoreFile := util.SetEnv("SBJ_CONFIG_FILE", "testdata/config.yaml")
	defer restoreFile()
	restoreSeats := util.SetEnv("SBJ_GAME_MAX_SEATS", "4")
	defer restoreSeats()

	require.NoError(t, Load())
	c := Instance()

	a.Equal(":6000", c.Addr)
	a.Equal("debug", c.Log.Level)
	a.Equal(1, c.Game.TickInterval)

	// environment overrides the config file
	a.Equal(4, c.Game.MaxSeats)

	// keys absent from the file keep their defaults
	a.Equal(5, c.Game.TimeBetweenHands)
	a.Equal(10, c.Game.AmbientPeriod)
}

func TestLoad_missingFile(t *testing.T) {
	a := assert.New(t)

	restore := util.SetEnv("SBJ_CONFIG_FILE", "testdata/does-not-exist.yaml")
	defer restore()

	require.NoError(t, Load())
	a.Equal(DefaultConfig().Addr, Instance().Addr)
}

func TestConfig_GameOptions(t *testing.T) {
	a := assert.New(t)

	c := DefaultConfig()
	opts := c.GameOptions()
	a.Equal(time.Second*5, opts.TickInterval)
	a.Equal(time.Second*5, opts.TimeBetweenHands)
	a.Equal(time.Second*10, opts.AmbientPeriod)
	a.Equal(7, opts.MaxSeats)

	c.Game.TickInterval = 2
	c.Game.MaxSeats = 3
	opts = c.GameOptions()
	a.Equal(time.Second*2, opts.TickInterval)
	a.Equal(3, opts.MaxSeats)
}
