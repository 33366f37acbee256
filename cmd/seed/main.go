package main

import (
	"flag"

	"inkwell/config"
	"inkwell/internal/database"
	"inkwell/pkg/logger"

	"github.com/joho/godotenv"
)

// Seeds the database from a directory of JSON data files. Tables that
// already hold rows are left untouched, so this is safe to rerun.
func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.New(cfg.Server.Env)

	dir := flag.String("dir", "", "directory with auth.json, blog.json, books.json, site.json, social.json (defaults to SEED_DIR or ./data)")
	flag.Parse()
	if *dir == "" {
		*dir = cfg.Seed.Dir
	}
	if *dir == "" {
		*dir = "./data"
	}

	if err := database.EnsureDatabase(&cfg.Database, log); err != nil {
		log.Fatal().Err(err).Msg("database provisioning failed")
	}
	db, err := database.NewDB(&cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("database connection failed")
	}
	if err := database.AutoMigrate(db); err != nil {
		log.Fatal().Err(err).Msg("migration failed")
	}
	if err := database.Seed(db, *dir, log); err != nil {
		log.Fatal().Err(err).Str("dir", *dir).Msg("seeding failed")
	}
	log.Info().Str("dir", *dir).Msg("seed complete")
}
