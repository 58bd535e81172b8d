package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/presskit/internal/flagx"
	"github.com/dmitrijs2005/presskit/internal/timex"
)

// JsonConfig is the on-disk shape of the client config file.
type JsonConfig struct {
	ServerEndpointAddr string         `json:"server_endpoint_addr"`
	RequestTimeout     timex.Duration `json:"request_timeout"`
	SessionDir         string         `json:"session_dir"`
	MaxUploadBytes     int64          `json:"max_upload_bytes"`
}

// parseJson overlays cfg with the file named by -c / -config. Missing keys
// keep their current value. Read or decode errors panic.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.ConfigFileFlag()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.ServerEndpointAddr != "" {
		cfg.ServerEndpointAddr = jc.ServerEndpointAddr
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.SessionDir != "" {
		cfg.SessionDir = jc.SessionDir
	}
	if jc.MaxUploadBytes != 0 {
		cfg.MaxUploadBytes = jc.MaxUploadBytes
	}
}
