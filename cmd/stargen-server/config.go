package main

import (
	"encoding/json"
	"flag"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/keldric/stargen/internal/stargen"
)

// ServerConfig holds the server configuration
type ServerConfig struct {
	Addr           string
	TuningFile     string
	LogLevel       string
	RateLimitOn    bool
	RateLimitRPS   float64
	RateLimitBurst int
}

// configResolver defines how to resolve a single configuration value
type configResolver struct {
	flagName    string
	envVarName  string
	defaultVal  string
	description string
	setter      func(*ServerConfig, string)
}

// loadServerConfig loads server configuration from CLI flags and environment
// variables. A .env file in the working directory is read first, so local
// development does not need exported variables. Uses a resolver pattern to
// make it easy to add new configuration options.
func loadServerConfig() ServerConfig {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg := ServerConfig{}

	resolvers := []configResolver{
		{
			flagName:    "addr",
			envVarName:  "STARGEN_ADDR",
			defaultVal:  ":8080",
			description: "HTTP listen address (e.g. :8080, 0.0.0.0:8080)",
			setter:      func(c *ServerConfig, v string) { c.Addr = v },
		},
		{
			flagName:    "tuning-file",
			envVarName:  "STARGEN_TUNING_FILE",
			defaultVal:  "",
			description: "optional path to a JSON tuning config applied to the generation tables",
			setter:      func(c *ServerConfig, v string) { c.TuningFile = v },
		},
		{
			flagName:    "log-level",
			envVarName:  "STARGEN_LOG_LEVEL",
			defaultVal:  "info",
			description: "Log level: debug, info, warn, error",
			setter:      func(c *ServerConfig, v string) { c.LogLevel = v },
		},
		{
			flagName:    "rate-limit",
			envVarName:  "STARGEN_RATE_LIMIT_ENABLED",
			defaultVal:  "true",
			description: "Enable per-client request rate limiting",
			setter:      func(c *ServerConfig, v string) { c.RateLimitOn = v == "true" },
		},
		{
			flagName:    "rate-limit-rps",
			envVarName:  "STARGEN_RATE_LIMIT_REQUESTS_PER_SECOND",
			defaultVal:  "10",
			description: "Allowed requests per second per client",
			setter: func(c *ServerConfig, v string) {
				if val, err := strconv.ParseFloat(v, 64); err == nil && val > 0 {
					c.RateLimitRPS = val
				} else {
					log.Printf("Invalid value for rate-limit-rps: %s, using default 10", v)
					c.RateLimitRPS = 10
				}
			},
		},
		{
			flagName:    "rate-limit-burst",
			envVarName:  "STARGEN_RATE_LIMIT_BURST_SIZE",
			defaultVal:  "20",
			description: "Allowed burst size per client",
			setter: func(c *ServerConfig, v string) {
				if val, err := strconv.Atoi(v); err == nil && val > 0 {
					c.RateLimitBurst = val
				} else {
					log.Printf("Invalid value for rate-limit-burst: %s, using default 20", v)
					c.RateLimitBurst = 20
				}
			},
		},
	}

	// Register string flags first
	flagVars := make(map[string]*string)
	for _, resolver := range resolvers {
		flagVars[resolver.flagName] = flag.String(resolver.flagName, "", resolver.description)
	}

	// Parse flags once
	flag.Parse()

	// Resolve values: flag beats environment beats default
	for _, resolver := range resolvers {
		var value string
		if *flagVars[resolver.flagName] != "" {
			value = *flagVars[resolver.flagName]
		} else if envValue := os.Getenv(resolver.envVarName); envValue != "" {
			value = envValue
		} else {
			value = resolver.defaultVal
		}
		resolver.setter(&cfg, value)
	}

	return cfg
}

// loadTablesFromFile reads a tuning config JSON file, validates it, and
// returns the tuned table set.
func loadTablesFromFile(path string) (*stargen.TableSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg stargen.TuningConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return stargen.BuildTablesFromConfig(cfg)
}
