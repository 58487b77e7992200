package service

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/adimStrong/Juan365-Socmed-Mainpage/pkg/config"
	"github.com/adimStrong/Juan365-Socmed-Mainpage/pkg/credentials"
)

func TestAuthService_Status(t *testing.T) {
	require.NoError(t, config.Init(filepath.Join(t.TempDir(), "config.toml")))
	require.NoError(t, credentials.Save(&credentials.Credentials{
		PageID:      "580104038511364",
		AccessToken: "EAATestTokenWithSomeLength",
		SavedAt:     time.Date(2025, 1, 20, 10, 0, 0, 0, time.UTC),
	}))

	// Record output in every format
	for _, format := range []string{"text", "json", "table"} {
		config.Set("output.format", format)
		require.NoError(t, NewAuthService().Status())
	}
}

func TestAuthService_StatusWithoutCredentials(t *testing.T) {
	require.NoError(t, config.Init(filepath.Join(t.TempDir(), "config.toml")))
	require.NoError(t, NewAuthService().Status())
}

func TestMaskToken(t *testing.T) {
	if got := maskToken("short"); got != "****" {
		t.Errorf("maskToken(short): got %q", got)
	}
	if got := maskToken("EAATestTokenWithSomeLength"); got != "EAAT…ngth" {
		t.Errorf("maskToken: got %q", got)
	}
}
