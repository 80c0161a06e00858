package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	mock_server "github.com/at-ishikawa/memorizer/internal/mocks/server"
	"github.com/at-ishikawa/memorizer/internal/server"
)

func TestRun_missingJWTSecret(t *testing.T) {
	t.Setenv("MEMORIZER_JWT_SECRET", "")
	cfgPath := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("server:\n  port: 18080\n"), 0644))
	old := configFile
	configFile = cfgPath
	t.Cleanup(func() { configFile = old })

	err := run(context.Background(), zap.NewNop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "jwt secret is empty")
}

func TestNewMux(t *testing.T) {
	auth, err := server.NewAuthenticator("secret", "memorizer")
	require.NoError(t, err)
	core := mock_server.NewMockCore(gomock.NewController(t))

	srv := httptest.NewServer(newMux(auth, core, zap.NewNop()))
	t.Cleanup(srv.Close)

	resp, err := srv.Client().Post(srv.URL+server.QuestionsDueProcedure, "application/json", strings.NewReader("{}"))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
