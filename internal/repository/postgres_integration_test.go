//go:build integration

package repository_test

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"testing"
	"time"

	"vidtube-go/internal/config"
	"vidtube-go/internal/infra/database"
	"vidtube-go/internal/model"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
)

const postgresImage = "postgres:16-alpine"

// TestMain 带 integration 标签时，同一组仓储测试改跑在容器里的 PostgreSQL 上
func TestMain(m *testing.M) {
	if !dockerAvailable() {
		fmt.Println("docker not available, skipping postgres integration tests")
		os.Exit(0)
	}

	ctx := context.Background()
	container, cfg, err := startPostgres(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "start postgres: %v\n", err)
		os.Exit(1)
	}

	db, err := database.Open(cfg)
	if err == nil {
		err = database.AutoMigrate(db, model.All()...)
	}
	if err != nil {
		_ = container.Terminate(ctx)
		fmt.Fprintf(os.Stderr, "prepare postgres: %v\n", err)
		os.Exit(1)
	}

	openDB = func(t *testing.T) *gorm.DB {
		t.Helper()
		// 每个用例从空表开始
		err := db.Exec("TRUNCATE users, videos, comments, likes, tweets, playlists, playlist_entries, subscriptions").Error
		require.NoError(t, err)
		return db
	}

	code := m.Run()
	_ = database.Close(db)
	_ = container.Terminate(ctx)
	os.Exit(code)
}

func dockerAvailable() bool {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return exec.CommandContext(ctx, "docker", "info").Run() == nil
}

func startPostgres(ctx context.Context) (testcontainers.Container, *config.DatabaseConfig, error) {
	req := testcontainers.ContainerRequest{
		Image:        postgresImage,
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "vidtube",
			"POSTGRES_PASSWORD": "vidtube",
			"POSTGRES_DB":       "vidtube",
		},
		// 官方镜像初始化时会重启一次，第二条日志之后才真正可用
		WaitingFor: wait.ForAll(
			wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
			wait.ForListeningPort("5432/tcp"),
		).WithStartupTimeout(90 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("create postgres container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, nil, fmt.Errorf("get container host: %w", err)
	}
	port, err := container.MappedPort(ctx, "5432/tcp")
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, nil, fmt.Errorf("get mapped port: %w", err)
	}

	return container, &config.DatabaseConfig{
		Host:            host,
		Port:            port.Int(),
		User:            "vidtube",
		Password:        "vidtube",
		DBName:          "vidtube",
		SSLMode:         "disable",
		MaxOpenConns:    10,
		MaxIdleConns:    5,
		ConnMaxLifetime: 300,
	}, nil
}
