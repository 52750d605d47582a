// Package config carga la configuración del servicio:
// defaults => archivo YAML opcional (PET_ADOPTION_CONFIG) => variables de entorno.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	configPathEnv = "PET_ADOPTION_CONFIG"

	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverRemote   = "remote"
	DriverS3       = "s3"
)

type Config struct {
	App     AppConfig     `yaml:"app"`
	HTTP    HTTPConfig    `yaml:"http"`
	Log     LogConfig     `yaml:"log"`
	Storage StorageConfig `yaml:"storage"`
	Store   StoreConfig   `yaml:"store"`
	Auth    AuthConfig    `yaml:"auth"`
}

type AppConfig struct {
	Name string `yaml:"name"`
}

type HTTPConfig struct {
	Port            string        `yaml:"port"`
	ReadTimeout     time.Duration `yaml:"readTimeout"`
	WriteTimeout    time.Duration `yaml:"writeTimeout"`
	ShutdownTimeout time.Duration `yaml:"shutdownTimeout"`
}

func (h HTTPConfig) Addr() string {
	return ":" + strings.TrimPrefix(h.Port, ":")
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// StorageConfig elige el backend clave/valor y sus parámetros.
type StorageConfig struct {
	Driver string `yaml:"driver"`

	DSN        string       `yaml:"dsn"`        // postgres
	SQLitePath string       `yaml:"sqlitePath"` // sqlite
	Remote     RemoteConfig `yaml:"remote"`
	S3         S3Config     `yaml:"s3"`
}

type RemoteConfig struct {
	URL     string        `yaml:"url"`
	APIKey  string        `yaml:"apiKey"`
	Timeout time.Duration `yaml:"timeout"`
}

type S3Config struct {
	Bucket    string `yaml:"bucket"`
	Region    string `yaml:"region"`
	Endpoint  string `yaml:"endpoint"`
	Prefix    string `yaml:"prefix"`
	PathStyle bool   `yaml:"pathStyle"`

	// Credenciales estáticas (MinIO, dev). Vacías => cadena default de AWS.
	AccessKeyID     string `yaml:"accessKeyId"`
	SecretAccessKey string `yaml:"secretAccessKey"`
}

type StoreConfig struct {
	// SubmissionPolicy: "approval-only" | "mark-pending".
	SubmissionPolicy string `yaml:"submissionPolicy"`
	// LoadTimeout acota el Load inicial.
	LoadTimeout time.Duration `yaml:"loadTimeout"`
}

type AuthConfig struct {
	// Secret vacío => sin verificador (modo dev con headers X-Debug-*).
	Secret   string        `yaml:"secret"`
	TokenTTL time.Duration `yaml:"tokenTTL"`
}

func Default() Config {
	return Config{
		App: AppConfig{Name: "pet-adoption"},
		HTTP: HTTPConfig{
			Port:            "8080",
			ReadTimeout:     5 * time.Second,
			WriteTimeout:    10 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Log:     LogConfig{Level: "info", Format: "text"},
		Storage: StorageConfig{Driver: DriverMemory, SQLitePath: "pet-adoption.db", Remote: RemoteConfig{Timeout: 10 * time.Second}, S3: S3Config{Region: "us-east-1"}},
		Store:   StoreConfig{SubmissionPolicy: "approval-only", LoadTimeout: 15 * time.Second},
		Auth:    AuthConfig{TokenTTL: 24 * time.Hour},
	}
}

// Load aplica defaults, luego el YAML (si PET_ADOPTION_CONFIG apunta a uno) y por último env.
func Load() (Config, error) {
	cfg := Default()

	if path := strings.TrimSpace(os.Getenv(configPathEnv)); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
		// yaml.v3 pisa solo los campos presentes en el archivo.
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnvOverrides() error {
	str := func(env string, dst *string) {
		if v := strings.TrimSpace(os.Getenv(env)); v != "" {
			*dst = v
		}
	}

	str("APP_NAME", &c.App.Name)
	str("PORT", &c.HTTP.Port)
	str("LOG_LEVEL", &c.Log.Level)
	str("LOG_FORMAT", &c.Log.Format)

	str("STORAGE_DRIVER", &c.Storage.Driver)
	str("DB_DSN", &c.Storage.DSN)
	str("SQLITE_PATH", &c.Storage.SQLitePath)
	str("REMOTE_KV_URL", &c.Storage.Remote.URL)
	str("REMOTE_KV_API_KEY", &c.Storage.Remote.APIKey)
	str("S3_BUCKET", &c.Storage.S3.Bucket)
	str("S3_REGION", &c.Storage.S3.Region)
	str("S3_ENDPOINT", &c.Storage.S3.Endpoint)
	str("S3_PREFIX", &c.Storage.S3.Prefix)
	str("S3_ACCESS_KEY_ID", &c.Storage.S3.AccessKeyID)
	str("S3_SECRET_ACCESS_KEY", &c.Storage.S3.SecretAccessKey)

	str("SUBMISSION_POLICY", &c.Store.SubmissionPolicy)
	str("AUTH_SECRET", &c.Auth.Secret)

	if v := strings.TrimSpace(os.Getenv("S3_PATH_STYLE")); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("config: S3_PATH_STYLE: %w", err)
		}
		c.Storage.S3.PathStyle = b
	}
	c.Storage.Driver = strings.ToLower(strings.TrimSpace(c.Storage.Driver))
	return nil
}

// Validate revisa que el driver elegido tenga lo que necesita.
func (c Config) Validate() error {
	var errs []error

	if strings.TrimSpace(c.HTTP.Port) == "" {
		errs = append(errs, errors.New("http port is required"))
	}

	switch c.Storage.Driver {
	case DriverMemory:
	case DriverSQLite:
		if c.Storage.SQLitePath == "" {
			errs = append(errs, errors.New("sqlite driver requires storage.sqlitePath (SQLITE_PATH)"))
		}
	case DriverPostgres:
		if c.Storage.DSN == "" {
			errs = append(errs, errors.New("postgres driver requires storage.dsn (DB_DSN)"))
		}
	case DriverRemote:
		if c.Storage.Remote.URL == "" {
			errs = append(errs, errors.New("remote driver requires storage.remote.url (REMOTE_KV_URL)"))
		}
	case DriverS3:
		if c.Storage.S3.Bucket == "" {
			errs = append(errs, errors.New("s3 driver requires storage.s3.bucket (S3_BUCKET)"))
		}
		if (c.Storage.S3.AccessKeyID == "") != (c.Storage.S3.SecretAccessKey == "") {
			errs = append(errs, errors.New("s3 static credentials need both S3_ACCESS_KEY_ID and S3_SECRET_ACCESS_KEY"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown storage driver %q", c.Storage.Driver))
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}
