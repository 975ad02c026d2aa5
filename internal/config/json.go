package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] in the layout of the JSON
// config file. Durations are written as strings ("30s") or nanoseconds.
type StructuredJSONConfig struct {
	App struct {
		SessionToken string `json:"session_token"`
		ProofKey     string `json:"proof_key"`
		Version      string `json:"version"`
	} `json:"app,omitempty"`

	Adapter struct {
		LedgerAddress            string   `json:"ledger_address"`
		RelayerAddress           string   `json:"relayer_address"`
		RequestTimeout           Duration `json:"request_timeout"`
		ConfirmationPollInterval Duration `json:"confirmation_poll_interval"`
	} `json:"adapter,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress       string   `json:"http_address"`
		RequestTimeout    Duration `json:"request_timeout"`
		ConfirmationDelay Duration `json:"confirmation_delay"`
	} `json:"server,omitempty"`

	Workers struct {
		RefreshInterval Duration `json:"refresh_interval"`
	} `json:"workers,omitempty"`

	Status struct {
		SuccessTTL Duration `json:"success_ttl"`
		ErrorTTL   Duration `json:"error_ttl"`
	} `json:"status,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			SessionToken: jsonCfg.App.SessionToken,
			ProofKey:     jsonCfg.App.ProofKey,
			Version:      jsonCfg.App.Version,
		},
		Adapter: Adapter{
			LedgerAddress:            jsonCfg.Adapter.LedgerAddress,
			RelayerAddress:           jsonCfg.Adapter.RelayerAddress,
			RequestTimeout:           time.Duration(jsonCfg.Adapter.RequestTimeout),
			ConfirmationPollInterval: time.Duration(jsonCfg.Adapter.ConfirmationPollInterval),
		},
		Storage: Storage{
			DB: DB{DSN: jsonCfg.Storage.DB.DSN},
		},
		Server: Server{
			HTTPAddress:       jsonCfg.Server.HTTPAddress,
			RequestTimeout:    time.Duration(jsonCfg.Server.RequestTimeout),
			ConfirmationDelay: time.Duration(jsonCfg.Server.ConfirmationDelay),
		},
		Workers: Workers{RefreshInterval: time.Duration(jsonCfg.Workers.RefreshInterval)},
		Status: Status{
			SuccessTTL: time.Duration(jsonCfg.Status.SuccessTTL),
			ErrorTTL:   time.Duration(jsonCfg.Status.ErrorTTL),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s" as well as plain nanosecond numbers.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration: %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
