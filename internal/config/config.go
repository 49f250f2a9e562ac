package config

import (
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	log "github.com/sirupsen/logrus"
)

type Application struct {
	Addr      string    `koanf:"addr"`
	Frontend  Frontend  `koanf:"frontend"`
	Database  Database  `koanf:"db"`
	Predictor Predictor `koanf:"predictor"`
	Snapshot  Snapshot  `koanf:"snapshot"`
	Advisor   Advisor   `koanf:"advisor"`
	UserData  UserData  `koanf:"userdata"`
}

type Frontend struct {
	Enabled bool `koanf:"enabled"`
}

// Database selects the storage backend. Driver "sqlite" uses Path,
// driver "pgx" uses the remaining connection fields.
type Database struct {
	Driver string `koanf:"driver"`
	Path   string `koanf:"path"`
	Host   string `koanf:"host"`
	Port   int    `koanf:"port"`
	User   string `koanf:"user"`
	Pass   string `koanf:"pass"`
	Name   string `koanf:"name"`
}

// Predictor points at the external prediction model service.
type Predictor struct {
	BaseURL string        `koanf:"baseurl"`
	Timeout time.Duration `koanf:"timeout"`
}

// Snapshot is the directory holding the last-known-good user data
// documents, one JSON file per user.
type Snapshot struct {
	Path string `koanf:"path"`
}

type Advisor struct {
	APIKey string `koanf:"apikey"`
	Model  string `koanf:"model"`
}

// UserData holds the caller-side policy around the resolution chain:
// bounded retries with a fixed delay and a staleness window for the
// last successful bundle.
type UserData struct {
	CacheTTL   time.Duration `koanf:"cachettl"`
	Retries    int           `koanf:"retries"`
	RetryDelay time.Duration `koanf:"retrydelay"`
}

func Load(path string) (Application, error) {
	var k = koanf.New(".")

	err := k.Load(structs.Provider(Application{
		Addr: ":8282",
		Frontend: Frontend{
			Enabled: true,
		},
		Database: Database{
			Driver: "sqlite",
			Path:   "finsight.db",
			Host:   "localhost",
			Port:   5432,
			User:   "finsight",
			Pass:   "",
			Name:   "finsight",
		},
		Predictor: Predictor{
			BaseURL: "http://localhost:5000/api",
			Timeout: 30 * time.Second,
		},
		Snapshot: Snapshot{
			Path: "snapshots",
		},
		Advisor: Advisor{
			Model: "gemini-2.0-flash",
		},
		UserData: UserData{
			CacheTTL:   2 * time.Minute,
			Retries:    2,
			RetryDelay: time.Second,
		},
	}, "koanf"), nil)
	if err != nil {
		log.Errorf("error loading config from structs: %v", err)
		return Application{}, err
	}

	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		if os.IsNotExist(err) {
			log.Infof("Config file not found at %s, using defaults and environment variables", path)
		} else {
			log.Errorf("error loading config from YAML: %v", err)
			return Application{}, err
		}
	} else {
		log.Infof("Loaded configuration from file: %s", path)
	}

	err = k.Load(env.Provider(".", env.Opt{
		Prefix: "FINSIGHT_",
		TransformFunc: func(k, v string) (string, any) {
			// Transform the key.
			k = strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(k, "FINSIGHT_")), "_", ".")
			return k, v
		},
	}), nil)
	if err != nil {
		log.Errorf("error loading config from envs: %v", err)
		return Application{}, err
	}

	var app Application
	if err := k.Unmarshal("", &app); err != nil {
		return Application{}, err
	}

	return app, nil
}
