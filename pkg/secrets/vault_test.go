package secrets

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func vaultServer(t *testing.T, wantPath, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != wantPath || r.Header.Get("X-Vault-Token") != "root" {
			http.Error(w, `{"errors":["permission denied"]}`, http.StatusForbidden)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestApply_KVv2(t *testing.T) {
	srv := vaultServer(t, "/v1/secret/data/benchmap/test",
		`{"data":{"data":{"AUTH_JWT_SECRET":"s3cret","DB_PORT":5433,"CACHE_ENABLED":true}}}`)

	t.Setenv("AUTH_JWT_SECRET", "")
	t.Setenv("DB_PORT", "")
	t.Setenv("CACHE_ENABLED", "false")

	res, err := Apply(context.Background(), VaultConfig{
		Enabled: true, Addr: srv.URL, Token: "root", Mount: "secret", Path: "benchmap/test", KVVersion: 2,
	})
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"AUTH_JWT_SECRET", "DB_PORT"}, res.Loaded)
	assert.Equal(t, []string{"CACHE_ENABLED"}, res.Skipped)
	assert.Equal(t, "s3cret", os.Getenv("AUTH_JWT_SECRET"))
	assert.Equal(t, "5433", os.Getenv("DB_PORT"))
	assert.Equal(t, "false", os.Getenv("CACHE_ENABLED"))
}

func TestApply_KVv1Overwrite(t *testing.T) {
	srv := vaultServer(t, "/v1/kv/benchmap", `{"data":{"REDIS_PASSWORD":"pw"}}`)
	t.Setenv("REDIS_PASSWORD", "old")

	res, err := Apply(context.Background(), VaultConfig{
		Enabled: true, Addr: srv.URL + "/", Token: "root", Mount: "/kv/", Path: "benchmap", KVVersion: 1, Overwrite: true,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"REDIS_PASSWORD"}, res.Loaded)
	assert.Equal(t, "pw", os.Getenv("REDIS_PASSWORD"))
}

func TestApply_Errors(t *testing.T) {
	res, err := Apply(context.Background(), VaultConfig{})
	require.NoError(t, err)
	assert.Empty(t, res.Loaded)

	_, err = Apply(context.Background(), VaultConfig{Enabled: true, Addr: "http://vault"})
	assert.ErrorContains(t, err, "VAULT_TOKEN")

	srv := vaultServer(t, "/v1/secret/data/benchmap/test", `{}`)
	_, err = Apply(context.Background(), VaultConfig{
		Enabled: true, Addr: srv.URL, Token: "wrong", Mount: "secret", Path: "benchmap/test", KVVersion: 2,
	})
	assert.ErrorContains(t, err, "403")

	srv = vaultServer(t, "/v1/secret/data/benchmap/test", `{"data":{}}`)
	_, err = Apply(context.Background(), VaultConfig{
		Enabled: true, Addr: srv.URL, Token: "root", Mount: "secret", Path: "benchmap/test", KVVersion: 2,
	})
	assert.ErrorContains(t, err, "data.data")
}

func TestConfigFromEnv_DefaultPath(t *testing.T) {
	t.Setenv("VAULT_PATH", "")
	t.Setenv("APP_ENV", "staging")
	t.Setenv("VAULT_KV_VERSION", "1")

	cfg := ConfigFromEnv()
	assert.Equal(t, "benchmap/staging", cfg.Path)
	assert.Equal(t, "secret", cfg.Mount)
	assert.Equal(t, 1, cfg.KVVersion)
}
