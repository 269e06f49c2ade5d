package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_MatchesYAMLKeys(t *testing.T) {
	existing := map[string]any{
		"search": map[string]any{
			"resultLimit": 20,
			"scanWindow":  1000,
		},
		"store": map[string]any{
			"driver":             "postgres",
			"slowQueryThreshold": "200ms",
		},
		"breaker": map[string]any{
			"failureThreshold": 5,
		},
		"postgres": map[string]any{
			"sslMode": "disable",
		},
		"firebase": map[string]any{
			"credentialsPath": "",
		},
	}

	tests := map[string]string{
		"SEARCH_SCANWINDOW":           "search.scanWindow",
		"SEARCH_RESULT_LIMIT":         "search.resultLimit",
		"STORE_SLOW_QUERY_THRESHOLD":  "store.slowQueryThreshold",
		"STORE_SLOWQUERYTHRESHOLD":    "store.slowQueryThreshold",
		"BREAKER_FAILURETHRESHOLD":    "breaker.failureThreshold",
		"POSTGRES_SSLMODE":            "postgres.sslMode",
		"FIREBASE_CREDENTIALSPATH":    "firebase.credentialsPath",
		"STORE__DRIVER":               "store.driver",
		"UNKNOWN_SECTION_FOLLOWLIMIT": "unknown.section.followlimit",
	}

	for envKey, want := range tests {
		t.Run(envKey, func(t *testing.T) {
			assert.Equal(t, want, canonicalizeEnvKey(envKey, existing))
		})
	}
}

func TestNormalizeToken(t *testing.T) {
	assert.Equal(t, "scanwindow", normalizeToken("scan-Window"))
	assert.Equal(t, "v2", normalizeToken("V_2"))
	assert.Empty(t, normalizeToken("__"))
}

func TestReplicasFromEnv(t *testing.T) {
	env := map[string]string{
		"POSTGRES_REPLICAS_0_HOST":     "replica-a",
		"POSTGRES_REPLICAS_0_PORT":     "5432",
		"POSTGRES_REPLICAS_0_USERNAME": "reader",
		"POSTGRES_REPLICAS_1_HOST":     "replica-b",
		"POSTGRES_REPLICAS_1_PORT":     "5433",
		"POSTGRES_REPLICAS_3_HOST":     "unreachable-gap",
		"POSTGRES_REPLICAS_3_PORT":     "5434",
	}
	lookup := func(key string) (string, bool) {
		v, ok := env[key]

		return v, ok
	}

	replicas := replicasFromEnv(lookup)

	require.Len(t, replicas, 2)
	assert.Equal(t, "replica-a", replicas[0].Host)
	assert.Equal(t, "reader", replicas[0].UserName)
	assert.Equal(t, "5433", replicas[1].Port)
}

func TestLoad_FileThenEnv(t *testing.T) {
	dir := t.TempDir()
	yamlDoc := "search:\n  resultLimit: 20\n  scanWindow: 1000\nstore:\n  driver: memory\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.yaml"), []byte(yamlDoc), 0o600))
	t.Setenv("SEARCH_SCAN_WINDOW", "300")

	cfg, err := Load[Config]("app", filepath.Join(dir, "missing"), dir)
	require.NoError(t, err)

	assert.Equal(t, 20, cfg.Search.ResultLimit)
	assert.Equal(t, 300, cfg.Search.ScanWindow)
	assert.Equal(t, StoreDriverMemory, cfg.Store.Driver)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load[Config]("absent", t.TempDir())

	assert.ErrorContains(t, err, "absent.yaml not found")
}
