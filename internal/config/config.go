package config

import (
	"os"
	"strconv"
)

type Config struct {
	Port             string
	NumWorkers       int
	PostgresAddress  string
	PostgresPort     string
	PostgresDB       string
	PostgresUsername string
	PostgresPassword string
}

func ProcessEnvironmentVariables() (*Config, error) {
	// In all cases the default behavior should be for the docker compose setup
	env := Config{
		Port:             "9446",
		NumWorkers:       4,
		PostgresAddress:  "localhost",
		PostgresPort:     "5433",
		PostgresDB:       "postgres",
		PostgresUsername: "postgres",
		PostgresPassword: "testpassword",
	}

	envPort := os.Getenv("PORT")
	envNumWorkers := os.Getenv("NUM_WORKERS")
	envPostgresAddress := os.Getenv("POSTGRES_ADDRESS")
	envPostgresPort := os.Getenv("POSTGRES_PORT")
	envPostgresDB := os.Getenv("POSTGRES_DB")
	envPostgresUsername := os.Getenv("POSTGRES_USERNAME")
	envPostgresPassword := os.Getenv("POSTGRES_PASSWORD")

	if len(envPort) != 0 {
		env.Port = envPort
	}

	if len(envNumWorkers) != 0 {
		numWorkers, err := strconv.Atoi(envNumWorkers)
		if err != nil {
			return nil, err
		}
		env.NumWorkers = numWorkers
	}

	if len(envPostgresAddress) != 0 {
		env.PostgresAddress = envPostgresAddress
	}

	if len(envPostgresPort) != 0 {
		env.PostgresPort = envPostgresPort
	}

	if len(envPostgresDB) != 0 {
		env.PostgresDB = envPostgresDB
	}

	if len(envPostgresUsername) != 0 {
		env.PostgresUsername = envPostgresUsername
	}

	if len(envPostgresPassword) != 0 {
		env.PostgresPassword = envPostgresPassword
	}

	return &env, nil
}

// ConnectionString assembles the postgres connection URL used by both the
// server and the migration script.
func (c *Config) ConnectionString() string {
	return "postgres://" + c.PostgresUsername + ":" + c.PostgresPassword +
		"@" + c.PostgresAddress + ":" + c.PostgresPort + "/" + c.PostgresDB +
		"?sslmode=disable"
}
