package config

// LoadTestConfig returns a configuration suitable for tests: silent seed
// control left to the test, permissive CORS, generous rate limit, and no
// file logging. Integration tests build their own stores, so nothing here
// reads the environment.
func LoadTestConfig() *Config {
	return &Config{
		Server:             ServerConfig{Port: 0},
		Logging:            LoggingConfig{Level: "error"},
		CORS:               CORSConfig{AllowedOrigins: []string{"*"}},
		SeedData:           false,
		RateLimitPerMinute: 10000,
	}
}
