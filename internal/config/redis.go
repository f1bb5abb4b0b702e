package config

// RedisConfig holds cache connection configuration.
type RedisConfig struct {
	// Addr is the host:port of the redis server.
	Addr string
	// Password is the redis auth password (empty for none).
	Password string
	// DB is the redis database number.
	DB int
}

// LoadRedisConfigFromEnv loads redis configuration from environment variables.
func LoadRedisConfigFromEnv() RedisConfig {
	return RedisConfig{
		Addr:     GetEnv("REDIS_ADDR", "localhost:6379"),
		Password: GetEnv("REDIS_PASSWORD", ""),
		DB:       GetEnvInt("REDIS_DB", 0),
	}
}
