package config

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/Astemirdum/room-booking/pkg/kafka"
	"github.com/Astemirdum/room-booking/pkg/logger"
	"github.com/kelseyhightower/envconfig"
)

type HTTPServer struct {
	Host         string        `yaml:"host" envconfig:"CONSOLE_HTTP_HOST" default:"0.0.0.0"`
	Port         string        `yaml:"port" envconfig:"CONSOLE_HTTP_PORT" default:"8080"`
	ReadTimeout  time.Duration `yaml:"readTimeout" envconfig:"HTTP_READ" default:"15s"`
	WriteTimeout time.Duration `yaml:"writeTimeout" envconfig:"HTTP_WRITE"`
}

// ReservationAPI is the backend that owns requests and rooms.
type ReservationAPI struct {
	URL     string        `envconfig:"API_URL" required:"true"`
	Timeout time.Duration `envconfig:"API_TIMEOUT" default:"30s"`
}

type Requests struct {
	PollInterval time.Duration `envconfig:"REQUESTS_POLL_INTERVAL" default:"5m"`
}

type Session struct {
	Path string `envconfig:"SESSION_PATH"`
}

type Config struct {
	Server   HTTPServer `yaml:"server"`
	API      ReservationAPI
	Requests Requests
	Session  Session
	Kafka    kafka.Config
	Log      logger.Log `yaml:"log"`
}

var (
	once sync.Once
	cfg  Config
)

// NewConfig reads config from environment.
func NewConfig(ops ...Option) Config {
	once.Do(func() {
		var config Config
		for _, op := range ops {
			op(&config)
		}
		err := envconfig.Process("", &config)
		if err != nil {
			log.Fatal("NewConfig ", err)
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
