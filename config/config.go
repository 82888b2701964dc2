package config

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/readspace/library-portal/pkg/kafka"
	"github.com/readspace/library-portal/pkg/logger"
	"github.com/readspace/library-portal/pkg/postgres"
)

type HTTPServer struct {
	Host         string        `yaml:"host" envconfig:"PORTAL_HTTP_HOST"`
	Port         string        `yaml:"port" envconfig:"PORTAL_HTTP_PORT" default:"8080"`
	ReadTimeout  time.Duration `yaml:"readTimeout" envconfig:"HTTP_READ"`
	WriteTimeout time.Duration
}

type Booking struct {
	// WorkingDays lists weekdays on which rooms accept bookings.
	WorkingDays string `yaml:"workingDays" envconfig:"BOOKING_WORKING_DAYS" default:"Mon,Tue,Wed,Thu,Fri"`
}

type Config struct {
	Server   HTTPServer   `yaml:"server"`
	Database postgres.DB  `yaml:"db"`
	Kafka    kafka.Config `yaml:"kafka"`
	Booking  Booking      `yaml:"booking"`
	Log      logger.Log   `yaml:"log"`
}

var (
	once sync.Once
	cfg  *Config
)

// NewConfig reads config from environment.
func NewConfig(ops ...Option) *Config {
	once.Do(func() {
		var config Config
		for _, op := range ops {
			op(&config)
		}
		err := envconfig.Process("", &config)
		if err != nil {
			log.Fatal("NewConfig ", err)
		}
		cfg = &config
		printConfig(cfg)
	})

	return cfg
}

func printConfig(cfg *Config) {
	jscfg, _ := json.MarshalIndent(cfg, "", "	") //nolint:errcheck
	fmt.Println(string(jscfg))
}
