// cmd/seeduser creates or resets the bootstrap admin user.
// Usage: SEED_EMAIL=... SEED_PASSWORD=... go run ./cmd/seeduser
package main

import (
	"context"
	"os"
	"strings"

	"gastropos/internal/config"
	"gastropos/internal/infra"
	"gastropos/internal/model"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	email := strings.ToLower(envOr("SEED_EMAIL", "admin@gastropos.local"))
	password := envOr("SEED_PASSWORD", "")
	if password == "" {
		log.Fatal().Msg("SEED_PASSWORD is required")
	}
	nombre := envOr("SEED_FULL_NAME", "Administrador")

	hash, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	if err != nil {
		log.Fatal().Err(err).Msg("bcrypt failed")
	}

	db, err := infra.NewDatabase(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}

	result := db.WithContext(context.Background()).Exec(`
		INSERT INTO users (email, password_hash, full_name, role, active)
		VALUES (?, ?, ?, ?, true)
		ON CONFLICT ((LOWER(email))) DO UPDATE
		SET password_hash = EXCLUDED.password_hash,
		    full_name = EXCLUDED.full_name,
		    role = EXCLUDED.role,
		    active = true,
		    updated_at = now()
	`, email, string(hash), nombre, model.RolAdmin)
	if result.Error != nil {
		log.Fatal().Err(result.Error).Msg("upsert failed")
	}
	log.Info().Str("email", email).Msg("admin user created or updated")
}

func envOr(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}
