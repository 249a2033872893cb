package config

import (
	"encoding/json"
	"errors"
	"log"
	"os"

	"github.com/missionMeteora/mandrill"
)

var (
	ErrInvalidConfig = errors.New("invalid config")
)

func New(loc string) (*Config, error) {
	var c Config

	f, err := os.Open(loc)
	if err != nil {
		log.Println("Config error", err)
		return nil, err
	}

	if err := json.NewDecoder(f).Decode(&c); err != nil {
		log.Println("Config error", err)
		return nil, err
	}

	// env wins over the file, mainly so the backend URL can be swapped
	// per-deploy without editing config.json
	if v := os.Getenv("PORT"); v != "" {
		c.Port = v
	}
	if v := os.Getenv("API_BASE_URL"); v != "" {
		c.API.BaseURL = v
	}
	if v := os.Getenv("API_SHARD_KEY"); v != "" {
		c.API.ShardKey = v
	}
	if v := os.Getenv("MANDRILL_KEY"); v != "" {
		c.Mandrill.APIKey = v
	}

	if c.API.BaseURL == "" {
		return nil, ErrInvalidConfig
	}

	return &c, nil
}

type Config struct {
	Host string `json:"host"`
	Port string `json:"port"`

	DBPath string `json:"dbPath"`
	DBName string `json:"dbName"`

	Sandbox bool `json:"sandbox"`

	// The remote donation service everything here proxies to. ShardKey is an
	// opaque routing parameter the backend requires on several calls.
	API struct {
		BaseURL  string `json:"baseUrl"`
		ShardKey string `json:"shardKey"`
	} `json:"api"`

	Mandrill struct {
		APIKey     string `json:"apiKey"`
		SubAccount string `json:"subAccount"`
		FromEmail  string `json:"fromEmail"`
		FromName   string `json:"fromName"`
	} `json:"mandrill"`

	Bucket struct {
		Session string   `json:"session"`
		All     []string `json:"all"`
	} `json:"bucket"`
}

func (c *Config) MailClient() *mandrill.Client {
	return mandrill.New(c.Mandrill.APIKey, c.Mandrill.SubAccount, c.Mandrill.FromEmail, c.Mandrill.FromName)
}
