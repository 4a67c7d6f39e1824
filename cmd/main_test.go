package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// resetFlags resets the global flag.CommandLine to avoid "flag redefined" panic
func resetFlags() {
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
}

// resetEnv clears env vars used by parseConfig
func resetEnv() {
	os.Clearenv()
}

func TestParseFlags_Default(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd"}
	assert.Equal(t, "config.env", parseFlags())
}

func TestParseFlags_Custom(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd", "-c", "myconfig.env"}
	assert.Equal(t, "myconfig.env", parseFlags())
}

func TestPrintBuildInfo_Output(t *testing.T) {
	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	buildVersion = "v1.0.0"
	buildCommit = "abcd1234"
	buildDate = "2025-09-26"

	printBuildInfo()

	w.Close()
	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)
	os.Stdout = oldStdout

	assert.Equal(t, "Starting service version v1.0.0, commit abcd1234, build 2025-09-26\n", buf.String())
}

func TestParseConfig_Defaults(t *testing.T) {
	resetEnv()

	cfg, err := parseConfig("nonexistent.env")
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.AppHost)
	assert.Equal(t, "8080", cfg.AppPort)
	assert.Equal(t, "info", cfg.LogLevel)

	assert.Empty(t, cfg.SanityProjectID)
	assert.Empty(t, cfg.SanityBaseURL)
	assert.Equal(t, "production", cfg.SanityDataset)
	assert.Equal(t, "2024-03-11", cfg.SanityAPIVersion)
	assert.False(t, cfg.SanityUseCDN)

	assert.Empty(t, cfg.OpenExchangeAppID)
	assert.Equal(t, "https://openexchangerates.org/api/latest.json", cfg.OpenExchangeURL)
	assert.Equal(t, 10*time.Second, cfg.UpstreamTimeout)

	assert.Empty(t, cfg.RedisHost)
	assert.Equal(t, 6379, cfg.RedisPort)
	assert.Equal(t, 0, cfg.RedisDB)
	assert.Empty(t, cfg.RedisPassword)
	assert.Equal(t, 10, cfg.RedisPoolSize)
	assert.Equal(t, 2, cfg.RedisMinIdleConns)
	assert.Equal(t, time.Minute, cfg.RedisExp)
}

func TestParseConfig_CustomEnv(t *testing.T) {
	resetEnv()
	os.Setenv("APP_HOST", "127.0.0.1")
	os.Setenv("APP_PORT", "9090")
	os.Setenv("APP_LOG_LEVEL", "debug")

	os.Setenv("SANITY_PROJECT_ID", "abc123")
	os.Setenv("SANITY_DATASET", "staging")
	os.Setenv("SANITY_API_VERSION", "2025-01-01")
	os.Setenv("SANITY_USE_CDN", "true")

	os.Setenv("OPENEXCHANGE_APP_ID", "app-id")
	os.Setenv("OPENEXCHANGE_URL", "http://rates.local/latest.json")
	os.Setenv("UPSTREAM_TIMEOUT_SECOND", "3")

	os.Setenv("REDIS_HOST", "redis.example.com")
	os.Setenv("REDIS_PORT", "6380")
	os.Setenv("REDIS_DB", "2")
	os.Setenv("REDIS_PASSWORD", "redispass")
	os.Setenv("REDIS_POOL_SIZE", "15")
	os.Setenv("REDIS_MIN_IDLE_CONNS", "5")
	os.Setenv("REDIS_EXP_SECOND", "120")

	cfg, err := parseConfig("nonexistent.env")
	require.NoError(t, err)

	assert.Equal(t, config{
		AppHost:           "127.0.0.1",
		AppPort:           "9090",
		LogLevel:          "debug",
		SanityProjectID:   "abc123",
		SanityDataset:     "staging",
		SanityAPIVersion:  "2025-01-01",
		SanityUseCDN:      true,
		OpenExchangeAppID: "app-id",
		OpenExchangeURL:   "http://rates.local/latest.json",
		UpstreamTimeout:   3 * time.Second,
		RedisHost:         "redis.example.com",
		RedisPort:         6380,
		RedisDB:           2,
		RedisPassword:     "redispass",
		RedisPoolSize:     15,
		RedisMinIdleConns: 5,
		RedisExp:          2 * time.Minute,
	}, cfg)
}

func TestParseConfig_InvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"cdn flag", "SANITY_USE_CDN", "maybe"},
		{"upstream timeout", "UPSTREAM_TIMEOUT_SECOND", "ten"},
		{"redis port", "REDIS_PORT", "port"},
		{"redis exp", "REDIS_EXP_SECOND", "1m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetEnv()
			os.Setenv(tt.key, tt.value)

			_, err := parseConfig("nonexistent.env")
			assert.Error(t, err)
		})
	}
}

func TestParseConfig_FromFile(t *testing.T) {
	resetEnv()

	path := t.TempDir() + "/config.env"
	require.NoError(t, os.WriteFile(path, []byte("APP_PORT=7070\nOPENEXCHANGE_APP_ID=from-file\n"), 0o600))

	cfg, err := parseConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "7070", cfg.AppPort)
	assert.Equal(t, "from-file", cfg.OpenExchangeAppID)
}

// newUpstreams starts fake Sanity and Open Exchange Rates servers.
func newUpstreams(t *testing.T) (sanity, rates *httptest.Server) {
	t.Helper()

	sanity = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"query":"*","result":[{"_id":"a1","name":"Bitcoin","symbol":"BTC","price_usd":60000}],"ms":3}`)
	}))
	rates = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"base":"USD","timestamp":1700000000,"rates":{"NGN":1600,"USD":1}}`)
	}))
	t.Cleanup(sanity.Close)
	t.Cleanup(rates.Close)
	return sanity, rates
}

// waitForRates polls the rates endpoint until the server answers.
func waitForRates(t *testing.T, url string) map[string]float64 {
	t.Helper()

	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		resp, err := http.Get(url)
		if err == nil {
			var body struct {
				Rates map[string]float64 `json:"rates"`
			}
			decodeErr := json.NewDecoder(resp.Body).Decode(&body)
			resp.Body.Close()
			if resp.StatusCode == http.StatusOK && decodeErr == nil {
				return body.Rates
			}
		}
		time.Sleep(100 * time.Millisecond)
	}
	t.Fatalf("server did not answer on %s", url)
	return nil
}

// ------------------ Full integration test ------------------
func TestRun_Success(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()

	// ------------------ Redis container ------------------
	redisReq := testcontainers.ContainerRequest{
		Image:        "redis:7",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}
	redisContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{ContainerRequest: redisReq, Started: true})
	require.NoError(t, err)
	defer redisContainer.Terminate(ctx)

	redisHost, err := redisContainer.Host(ctx)
	require.NoError(t, err)
	redisPort, err := redisContainer.MappedPort(ctx, "6379")
	require.NoError(t, err)

	sanity, rates := newUpstreams(t)

	// ------------------ Run ------------------
	testCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	cfg := config{
		AppHost:           "127.0.0.1",
		AppPort:           "8086",
		LogLevel:          "debug",
		SanityProjectID:   "test",
		SanityBaseURL:     sanity.URL,
		SanityDataset:     "production",
		SanityAPIVersion:  "2024-03-11",
		OpenExchangeAppID: "test",
		OpenExchangeURL:   rates.URL,
		UpstreamTimeout:   2 * time.Second,
		RedisHost:         redisHost,
		RedisPort:         redisPort.Int(),
		RedisPoolSize:     10,
		RedisMinIdleConns: 2,
		RedisExp:          time.Minute,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- run(testCtx, cfg)
	}()

	got := waitForRates(t, "http://127.0.0.1:"+cfg.AppPort+"/api/v1/rates")
	assert.Equal(t, 1600.0, got["NGN"])

	resp, err := http.Get("http://127.0.0.1:" + cfg.AppPort + "/")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()

	select {
	case <-time.After(11 * time.Second):
		t.Fatal("test timed out")
	case err := <-errCh:
		assert.NoError(t, err)
	}
}

func TestRun_InvalidLogLevel(t *testing.T) {
	err := run(context.Background(), config{LogLevel: "loud", AppPort: "0"})
	assert.Error(t, err)
}
