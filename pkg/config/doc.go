// Package config fills tagged structs from environment variables using
// github.com/caarlos0/env, after loading optional .env files with
// github.com/joho/godotenv.
//
//	type Config struct {
//	    MaxBodySize int64 `env:"MAX_BODY_SIZE" envDefault:"4194304"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg, config.WithPrefix("CLOUCH_")); err != nil {
//	    return err
//	}
//
// Variables already present in the process environment win over values from
// env files.
package config
