package verify

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brentdalling/gcenv/internal/api"
	"github.com/brentdalling/gcenv/internal/credentials"
	"github.com/brentdalling/gcenv/internal/regions"
	"github.com/brentdalling/gcenv/internal/script"
)

func writeScript(t *testing.T, set credentials.Set) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "env.sh")
	require.NoError(t, script.Emit(path, script.Render(set, script.Options{})))
	return path
}

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	loginURL = ""
	var out bytes.Buffer
	VerifyCmd.SetOut(&out)
	VerifyCmd.SetErr(&bytes.Buffer{})
	VerifyCmd.SetArgs(args)
	err := VerifyCmd.Execute()
	return out.String(), err
}

func TestVerify_Accepted(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, secret, _ := r.BasicAuth()
		w.Header().Set("Content-Type", "application/json")
		if id != "abc" || secret != "xyz" {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"error": "invalid_client"})
			return
		}
		json.NewEncoder(w).Encode(map[string]any{
			"access_token": "t",
			"token_type":   "bearer",
			"expires_in":   3600,
		})
	}))
	defer srv.Close()

	path := writeScript(t, credentials.Set{ClientID: "abc", ClientSecret: "xyz", Region: "us-east-1"})

	out, err := runCmd(t, path, "--login-url", srv.URL)
	require.NoError(t, err)
	assert.Contains(t, out, "✓ Credentials accepted by "+srv.URL)
	assert.Contains(t, out, "Token type: bearer")
}

func TestVerify_Rejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"error": "invalid_client"})
	}))
	defer srv.Close()

	path := writeScript(t, credentials.Set{ClientID: "abc", ClientSecret: "bad", Region: "us-east-1"})

	_, err := runCmd(t, path, "--login-url", srv.URL)
	require.Error(t, err)
	assert.True(t, errors.Is(err, api.ErrUnauthorized))
}

func TestVerify_UnknownRegion(t *testing.T) {
	path := writeScript(t, credentials.Set{ClientID: "abc", ClientSecret: "xyz", Region: "mars-north-1"})

	_, err := runCmd(t, path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, regions.ErrUnknownRegion))
}
