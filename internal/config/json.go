// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk layout of the JSON configuration file.
type StructuredJSONConfig struct {
	App struct {
		PasswordHashCost  int      `json:"password_hash_cost"`
		TokenSignKey      string   `json:"token_sign_key"`
		TokenIssuer       string   `json:"token_issuer"`
		TokenDuration     Duration `json:"token_duration"`
		CookieMaxAge      Duration `json:"cookie_max_age"`
		CookieInsecure    bool     `json:"cookie_insecure"`
		RevocationTTL     Duration `json:"revocation_ttl"`
		EnforceRevocation bool     `json:"enforce_revocation"`
		AllowBodySeller   bool     `json:"allow_body_seller"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN          string `json:"dsn"`
			MaxOpenConns int    `json:"max_open_conns"`
			MaxIdleConns int    `json:"max_idle_conns"`
		} `json:"db,omitempty"`

		Revocation struct {
			Backend       string `json:"backend"`
			RedisAddress  string `json:"redis_address"`
			RedisPassword string `json:"redis_password"`
			RedisDB       int    `json:"redis_db"`
		} `json:"revocation,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress     string   `json:"http_address"`
		RequestTimeout  Duration `json:"request_timeout"`
		ShutdownTimeout Duration `json:"shutdown_timeout"`
	} `json:"server,omitempty"`

	Adapter struct {
		ImageKit struct {
			PublicKey      string   `json:"public_key"`
			PrivateKey     string   `json:"private_key"`
			URLEndpoint    string   `json:"url_endpoint"`
			UploadURL      string   `json:"upload_url"`
			Folder         string   `json:"folder"`
			RequestTimeout Duration `json:"request_timeout"`
		} `json:"imagekit,omitempty"`
	} `json:"adapter,omitempty"`

	Workers struct {
		RevocationPurgeInterval Duration `json:"revocation_purge_interval"`
	} `json:"workers,omitempty"`
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
			PasswordHashCost:  jsonCfg.App.PasswordHashCost,
			TokenSignKey:      jsonCfg.App.TokenSignKey,
			TokenIssuer:       jsonCfg.App.TokenIssuer,
			TokenDuration:     time.Duration(jsonCfg.App.TokenDuration),
			CookieMaxAge:      time.Duration(jsonCfg.App.CookieMaxAge),
			CookieInsecure:    jsonCfg.App.CookieInsecure,
			RevocationTTL:     time.Duration(jsonCfg.App.RevocationTTL),
			EnforceRevocation: jsonCfg.App.EnforceRevocation,
			AllowBodySeller:   jsonCfg.App.AllowBodySeller,
		},
		Storage: Storage{
			DB: DB{
				DSN:          jsonCfg.Storage.DB.DSN,
				MaxOpenConns: jsonCfg.Storage.DB.MaxOpenConns,
				MaxIdleConns: jsonCfg.Storage.DB.MaxIdleConns,
			},
			Revocation: Revocation{
				Backend:       jsonCfg.Storage.Revocation.Backend,
				RedisAddress:  jsonCfg.Storage.Revocation.RedisAddress,
				RedisPassword: jsonCfg.Storage.Revocation.RedisPassword,
				RedisDB:       jsonCfg.Storage.Revocation.RedisDB,
			},
		},
		Server: Server{
			HTTPAddress:     jsonCfg.Server.HTTPAddress,
			RequestTimeout:  time.Duration(jsonCfg.Server.RequestTimeout),
			ShutdownTimeout: time.Duration(jsonCfg.Server.ShutdownTimeout),
		},
		Adapter: Adapter{
			ImageKit: ImageKit{
				PublicKey:      jsonCfg.Adapter.ImageKit.PublicKey,
				PrivateKey:     jsonCfg.Adapter.ImageKit.PrivateKey,
				URLEndpoint:    jsonCfg.Adapter.ImageKit.URLEndpoint,
				UploadURL:      jsonCfg.Adapter.ImageKit.UploadURL,
				Folder:         jsonCfg.Adapter.ImageKit.Folder,
				RequestTimeout: time.Duration(jsonCfg.Adapter.ImageKit.RequestTimeout),
			},
		},
		Workers: Workers{
			RevocationPurgeInterval: time.Duration(jsonCfg.Workers.RevocationPurgeInterval),
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
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
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
