package config

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/Astemirdum/bookstore-storefront/pkg/kafka"
	"github.com/Astemirdum/bookstore-storefront/pkg/logger"
)

type HTTPServer struct {
	Host         string        `yaml:"host" envconfig:"STOREFRONT_HTTP_HOST" default:"0.0.0.0"`
	Port         string        `yaml:"port" envconfig:"STOREFRONT_HTTP_PORT" default:"8080"`
	ReadTimeout  time.Duration `yaml:"readTimeout" envconfig:"HTTP_READ" default:"15s"`
	WriteTimeout time.Duration `yaml:"writeTimeout" envconfig:"HTTP_WRITE" default:"15s"`
}

// API is the remote backend every resource client talks to.
type API struct {
	BaseURL string `envconfig:"API_BASE_URL" default:"https://localhost:7111"`
	// Timeout 0 keeps the transport defaults.
	Timeout time.Duration `envconfig:"API_TIMEOUT"`
	// CatalogLocalFilter fetches the whole catalog and filters/sorts it here.
	CatalogLocalFilter bool `envconfig:"API_CATALOG_LOCAL_FILTER"`
}

type Session struct {
	Secret string        `envconfig:"SESSION_SECRET" json:"-"`
	TTL    time.Duration `envconfig:"SESSION_TTL" default:"1h"`
	Secure bool          `envconfig:"SESSION_SECURE" default:"true"`
	// BearerKey verifies bearer tokens sent straight to the storefront.
	BearerKey string `envconfig:"SESSION_BEARER_KEY" json:"-"`
}

type Config struct {
	Server  HTTPServer   `yaml:"server"`
	API     API          `yaml:"api"`
	Session Session      `yaml:"session"`
	Kafka   kafka.Config `yaml:"kafka"`
	Log     logger.Log   `yaml:"log"`
}

var (
	once sync.Once
	cfg  Config
)

// NewConfig reads config from environment.
func NewConfig(ops ...Option) Config {
	once.Do(func() {
		var config Config
		if err := envconfig.Process("", &config); err != nil {
			log.Fatal("NewConfig ", err)
		}
		for _, op := range ops {
			op(&config)
		}
		cfg = config
		printConfig(cfg)
	})

	return cfg
}

func printConfig(cfg Config) {
	jscfg, _ := json.MarshalIndent(cfg, "", "	") //nolint:errcheck
	fmt.Println(string(jscfg))
}
