// Package config holds settings for the press kit command-line client.
package config

import "time"

// Config holds runtime settings for the client.
//
// Fields:
//   - ServerEndpointAddr: host:port of the press kit gRPC endpoint.
//   - RequestTimeout: deadline applied to every call.
//   - SessionDir: where the session database lives (relative to the working directory unless absolute).
//   - MaxUploadBytes: largest logo or profile image the client will send.
type Config struct {
	ServerEndpointAddr string        `env:"PRESSKIT_CLIENT_ADDR"`
	RequestTimeout     time.Duration `env:"PRESSKIT_CLIENT_TIMEOUT"`
	SessionDir         string        `env:"PRESSKIT_CLIENT_SESSION_DIR"`
	MaxUploadBytes     int64         `env:"PRESSKIT_CLIENT_MAX_UPLOAD"`
}

func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.RequestTimeout = 10 * time.Second
	c.SessionDir = ".presskit"
	c.MaxUploadBytes = 5 << 20
}

// LoadConfig applies defaults, then the JSON file, the environment and
// command-line flags. Later sources win.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
