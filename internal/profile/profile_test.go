package profile

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEmbedded(t *testing.T) {
	all, err := Load()
	require.NoError(t, err)
	require.Contains(t, all, Game)
	require.Contains(t, all, Start)

	game := all[Game]
	assert.Equal(t, Game, game.Name)
	assert.Equal(t, BannerFramed, game.Banner)
	assert.Equal(t, "Meow Mi Game Server", game.Title)
	assert.Equal(t, "🎮", game.Icon)
	assert.False(t, game.OpenBrowser)
	assert.Equal(t, "\n\nServer stopped.", game.StopMessage)

	start := all[Start]
	assert.Equal(t, BannerPlain, start.Banner)
	assert.True(t, start.OpenBrowser)
	assert.Equal(t, time.Second, start.OpenDelay)
	assert.Equal(t, "\nServer stopped.", start.StopMessage)
}

func TestGetUnknown(t *testing.T) {
	_, err := Get("nope")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownProfile))
	assert.Contains(t, err.Error(), `"nope"`)
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr string
	}{
		{
			name: "Valid plain",
			data: "[profiles.x]\nbanner = \"plain\"\n",
		},
		{
			name:    "Bad banner",
			data:    "[profiles.x]\nbanner = \"boxed\"\n",
			wantErr: "banner must be",
		},
		{
			name:    "Browser without delay",
			data:    "[profiles.x]\nbanner = \"plain\"\nopen_browser = true\n",
			wantErr: "open_delay must be positive",
		},
		{
			name:    "Unknown key",
			data:    "[profiles.x]\nbanner = \"plain\"\nport = 9000\n",
			wantErr: "unknown keys",
		},
		{
			name:    "Broken TOML",
			data:    "[profiles.x\n",
			wantErr: "decode profiles",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parse(tt.data)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "x", got["x"].Name)
		})
	}
}
