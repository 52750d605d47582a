package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv(configPathEnv, "")
	t.Setenv("STORAGE_DRIVER", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DriverMemory, cfg.Storage.Driver)
	assert.Equal(t, ":8080", cfg.HTTP.Addr())
	assert.Equal(t, "approval-only", cfg.Store.SubmissionPolicy)
	assert.Empty(t, cfg.Auth.Secret)
}

func TestLoad_FileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
http:
  port: "9000"
  readTimeout: 2s
storage:
  driver: sqlite
  sqlitePath: /tmp/from-file.db
store:
  submissionPolicy: mark-pending
`), 0o600))

	t.Setenv(configPathEnv, path)
	t.Setenv("SQLITE_PATH", "/tmp/from-env.db")
	t.Setenv("S3_PATH_STYLE", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.HTTP.Port)
	assert.Equal(t, 2*time.Second, cfg.HTTP.ReadTimeout)
	assert.Equal(t, 10*time.Second, cfg.HTTP.WriteTimeout, "fields missing in the file keep defaults")
	assert.Equal(t, DriverSQLite, cfg.Storage.Driver)
	assert.Equal(t, "/tmp/from-env.db", cfg.Storage.SQLitePath, "env wins over file")
	assert.Equal(t, "mark-pending", cfg.Store.SubmissionPolicy)
	assert.True(t, cfg.Storage.S3.PathStyle)
}

func TestLoad_S3StaticCredentialsFromEnv(t *testing.T) {
	t.Setenv(configPathEnv, "")
	t.Setenv("STORAGE_DRIVER", "s3")
	t.Setenv("S3_BUCKET", "pets")
	t.Setenv("S3_ACCESS_KEY_ID", "minio")
	t.Setenv("S3_SECRET_ACCESS_KEY", "minio-secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "minio", cfg.Storage.S3.AccessKeyID)
	assert.Equal(t, "minio-secret", cfg.Storage.S3.SecretAccessKey)
}

func TestLoad_S3HalfCredentialsRejected(t *testing.T) {
	t.Setenv(configPathEnv, "")
	t.Setenv("STORAGE_DRIVER", "s3")
	t.Setenv("S3_BUCKET", "pets")
	t.Setenv("S3_ACCESS_KEY_ID", "minio")

	_, err := Load()
	assert.ErrorContains(t, err, "S3_SECRET_ACCESS_KEY")
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		t.Setenv(configPathEnv, filepath.Join(t.TempDir(), "nope.yaml"))
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("driver without settings", func(t *testing.T) {
		t.Setenv(configPathEnv, "")
		t.Setenv("STORAGE_DRIVER", DriverPostgres)
		t.Setenv("DB_DSN", "")
		_, err := Load()
		assert.ErrorContains(t, err, "DB_DSN")
	})

	t.Run("unknown driver", func(t *testing.T) {
		t.Setenv(configPathEnv, "")
		t.Setenv("STORAGE_DRIVER", "redis")
		_, err := Load()
		assert.ErrorContains(t, err, "unknown storage driver")
	})

	t.Run("bad bool", func(t *testing.T) {
		t.Setenv(configPathEnv, "")
		t.Setenv("STORAGE_DRIVER", "")
		t.Setenv("S3_PATH_STYLE", "maybe")
		_, err := Load()
		assert.ErrorContains(t, err, "S3_PATH_STYLE")
	})
}
