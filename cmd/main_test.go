package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"net"
	"net/http"
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

	output := buf.String()
	assert.Contains(t, output, "Version: v1.0.0")
	assert.Contains(t, output, "Commit: abcd1234")
	assert.Contains(t, output, "Build: 2025-09-26")
}

func TestParseConfig_Defaults(t *testing.T) {
	resetEnv()
	os.Setenv("OPENAI_API_KEY", "sk-test")

	cfg, err := parseConfig("nonexistent.env")
	require.NoError(t, err)

	assert.Equal(t, config{
		AppHost:             "localhost",
		AppPort:             "8080",
		LogLevel:            "info",
		PGHost:              "localhost",
		PGPort:              5432,
		PGUser:              "user",
		PGPassword:          "password",
		PGDB:                "database",
		PGMaxOpenConns:      16,
		PGMaxIdleConns:      8,
		RedisHost:           "localhost",
		RedisPort:           6379,
		RedisDB:             0,
		RedisPoolSize:       10,
		RedisMinIdleConns:   2,
		SessionSecretKey:    "my_super_secret_key",
		SessionExpSecond:    3600,
		OpenAIAPIKey:        "sk-test",
		OpenAIModel:         "gpt-3.5-turbo",
		OpenAITimeoutSecond: 10,
		KafkaTopic:          "health-check-events",
	}, cfg)
}

func TestParseConfig_CustomEnv(t *testing.T) {
	resetEnv()
	env := map[string]string{
		"APP_HOST":                "127.0.0.1",
		"APP_PORT":                "9090",
		"APP_LOG_LEVEL":           "debug",
		"POSTGRES_HOST":           "pg.example.com",
		"POSTGRES_PORT":           "5433",
		"POSTGRES_USER":           "admin",
		"POSTGRES_PASSWORD":       "secret",
		"POSTGRES_DB":             "mydb",
		"POSTGRES_MAX_OPEN_CONNS": "20",
		"POSTGRES_MAX_IDLE_CONNS": "10",
		"REDIS_HOST":              "redis.example.com",
		"REDIS_PORT":              "6380",
		"REDIS_DB":                "2",
		"REDIS_PASSWORD":          "redispass",
		"REDIS_POOL_SIZE":         "15",
		"REDIS_MIN_IDLE_CONNS":    "5",
		"SESSION_SECRET_KEY":      "supersecret",
		"SESSION_EXP_SECOND":      "300",
		"OPENAI_API_KEY":          "sk-custom",
		"OPENAI_MODEL":            "gpt-4o-mini",
		"OPENAI_BASE_URL":         "http://llm.local/v1",
		"OPENAI_TIMEOUT_SECOND":   "3",
		"KAFKA_BROKERS":           "kafka1:9092, kafka2:9092,",
		"KAFKA_TOPIC":             "events",
	}
	for k, v := range env {
		os.Setenv(k, v)
	}

	cfg, err := parseConfig("nonexistent.env")
	require.NoError(t, err)

	assert.Equal(t, config{
		AppHost:             "127.0.0.1",
		AppPort:             "9090",
		LogLevel:            "debug",
		PGHost:              "pg.example.com",
		PGPort:              5433,
		PGUser:              "admin",
		PGPassword:          "secret",
		PGDB:                "mydb",
		PGMaxOpenConns:      20,
		PGMaxIdleConns:      10,
		RedisHost:           "redis.example.com",
		RedisPort:           6380,
		RedisDB:             2,
		RedisPassword:       "redispass",
		RedisPoolSize:       15,
		RedisMinIdleConns:   5,
		SessionSecretKey:    "supersecret",
		SessionExpSecond:    300,
		OpenAIAPIKey:        "sk-custom",
		OpenAIModel:         "gpt-4o-mini",
		OpenAIBaseURL:       "http://llm.local/v1",
		OpenAITimeoutSecond: 3,
		KafkaBrokers:        []string{"kafka1:9092", "kafka2:9092"},
		KafkaTopic:          "events",
	}, cfg)
}

func TestParseConfig_FromFile(t *testing.T) {
	resetEnv()
	path := t.TempDir() + "/test.env"
	require.NoError(t, os.WriteFile(path, []byte("OPENAI_API_KEY=sk-file\nAPP_PORT=7070\n"), 0o600))

	cfg, err := parseConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "sk-file", cfg.OpenAIAPIKey)
	assert.Equal(t, "7070", cfg.AppPort)
}

func TestParseConfig_MissingOpenAIKey(t *testing.T) {
	resetEnv()

	_, err := parseConfig("nonexistent.env")
	assert.EqualError(t, err, "OPENAI_API_KEY is required")
}

func TestParseConfig_InvalidInt(t *testing.T) {
	for _, key := range []string{"POSTGRES_PORT", "REDIS_DB", "SESSION_EXP_SECOND", "OPENAI_TIMEOUT_SECOND"} {
		t.Run(key, func(t *testing.T) {
			resetEnv()
			os.Setenv("OPENAI_API_KEY", "sk-test")
			os.Setenv(key, "not-a-number")

			_, err := parseConfig("nonexistent.env")
			require.Error(t, err)
			assert.Contains(t, err.Error(), key)
		})
	}
}

func TestParseConfig_NonPositiveOpenAITimeout(t *testing.T) {
	for _, v := range []string{"0", "-5"} {
		t.Run(v, func(t *testing.T) {
			resetEnv()
			os.Setenv("OPENAI_API_KEY", "sk-test")
			os.Setenv("OPENAI_TIMEOUT_SECOND", v)

			_, err := parseConfig("nonexistent.env")
			assert.EqualError(t, err, "OPENAI_TIMEOUT_SECOND must be positive")
		})
	}
}

func freePort(t *testing.T) int {
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer lis.Close()
	return lis.Addr().(*net.TCPAddr).Port
}

// ------------------ Full integration test ------------------
func TestRun_Success(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}
	ctx := context.Background()

	pgContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:15",
			Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "user"},
			ExposedPorts: []string{"5432/tcp"},
			WaitingFor:   wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
		},
		Started: true,
	})
	require.NoError(t, err)
	defer pgContainer.Terminate(ctx)

	pgHost, _ := pgContainer.Host(ctx)
	pgPort, _ := pgContainer.MappedPort(ctx, "5432")

	redisContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForListeningPort("6379/tcp"),
		},
		Started: true,
	})
	require.NoError(t, err)
	defer redisContainer.Terminate(ctx)

	redisHost, _ := redisContainer.Host(ctx)
	redisPort, _ := redisContainer.MappedPort(ctx, "6379")

	appPort := fmt.Sprint(freePort(t))
	cfg := config{
		AppHost:             "127.0.0.1",
		AppPort:             appPort,
		LogLevel:            "debug",
		PGHost:              pgHost,
		PGPort:              pgPort.Int(),
		PGUser:              "user",
		PGPassword:          "password",
		PGDB:                "testdb",
		PGMaxOpenConns:      5,
		PGMaxIdleConns:      2,
		RedisHost:           redisHost,
		RedisPort:           redisPort.Int(),
		RedisPoolSize:       10,
		RedisMinIdleConns:   2,
		SessionSecretKey:    "testsecret",
		SessionExpSecond:    60,
		OpenAIAPIKey:        "sk-test",
		OpenAIModel:         "gpt-3.5-turbo",
		OpenAITimeoutSecond: 1,
	}

	testCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		errCh <- run(testCtx, cfg)
	}()

	baseURL := "http://127.0.0.1:" + appPort
	client := &http.Client{
		CheckRedirect: func(req *http.Request, via []*http.Request) error { return http.ErrUseLastResponse },
	}
	require.Eventually(t, func() bool {
		resp, err := client.Get(baseURL + "/login")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 10*time.Second, 100*time.Millisecond)

	resp, err := client.Get(baseURL + "/user/healthcheck")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))

	resp, err = client.Get(baseURL + "/swagger/doc.json")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	select {
	case <-time.After(20 * time.Second):
		t.Fatal("test timed out")
	case err := <-errCh:
		assert.NoError(t, err)
	}
}
