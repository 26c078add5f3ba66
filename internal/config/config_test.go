package config_test

import (
	"testing"

	"scrumboard/internal/config"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("JWT_EXPIRY_HOURS", "not-a-number")
	t.Setenv("AUTO_MIGRATE", "true")

	cfg := config.Load()

	assert.Equal(t, "db.internal", cfg.DBHost)
	assert.Equal(t, 24, cfg.JWTExpiryHours)
	assert.True(t, cfg.AutoMigrate)
}

func TestConfig_ConnectionStrings(t *testing.T) {
	cfg := &config.Config{
		DBHost: "localhost", DBPort: "5432", DBUser: "u", DBPassword: "p", DBName: "scrum", DBSSLMode: "disable",
	}

	assert.Equal(t, "host=localhost port=5432 user=u password=p dbname=scrum sslmode=disable", cfg.DSN())
	assert.Equal(t, "pgx5://u:p@localhost:5432/scrum?sslmode=disable", cfg.MigrateURL())
}

func TestConfig_MigrateURLEscapesCredentials(t *testing.T) {
	cfg := &config.Config{
		DBHost: "db", DBPort: "5432", DBUser: "app", DBPassword: "p@ss/word", DBName: "scrum", DBSSLMode: "require",
	}

	assert.Equal(t, "pgx5://app:p%40ss%2Fword@db:5432/scrum?sslmode=require", cfg.MigrateURL())
}
