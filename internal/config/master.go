package config

import "os"

type AppConfig struct {
	DebugMode      bool
	RedisConfig    *RedisConfig
	PostgresConfig *PostgresConfig
	StorageConfig  *StorageConfig
	JwtConfig      *JwtConfig
}

func NewSystemConfig() *AppConfig {
	return &AppConfig{
		DebugMode:      os.Getenv("DEBUG_MODE") == "true",
		RedisConfig:    NewRedisConfig(),
		PostgresConfig: NewPostgresConfig(),
		StorageConfig:  NewStorageConfig(),
		JwtConfig:      NewJwtConfig(),
	}
}
