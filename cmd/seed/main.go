// Command seed fills the database with demo data or adds a single user.
//
//	seed -demo
//	seed -name "Jane Doe" -api-key jane_api_key
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/anonto42/microblog/backend/internal/logging"
	"github.com/anonto42/microblog/backend/internal/models"
	"github.com/anonto42/microblog/backend/internal/repositories"
	"github.com/anonto42/microblog/backend/pkg/config"
	"gorm.io/gorm"
)

func main() {
	demo := flag.Bool("demo", false, "reset all tables and load the demo dataset")
	name := flag.String("name", "", "name of a user to add")
	apiKey := flag.String("api-key", "", "API key of the user to add")
	flag.Parse()

	if !*demo && (*name == "" || *apiKey == "") {
		fmt.Fprintln(os.Stderr, "usage: seed -demo | seed -name NAME -api-key KEY")
		os.Exit(2)
	}

	cfg := config.Load()
	logging.Init(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	db, err := config.InitDB(cfg)
	if err != nil {
		logging.Fatal().Err(err).Msg("failed to initialize database")
	}
	defer db.CloseDB()

	if *demo {
		err = seedDemo(db.SQL)
	} else {
		err = addUser(db.SQL, *name, *apiKey)
	}
	if err != nil {
		logging.Error().Err(err).Msg("seed failed")
		db.CloseDB()
		os.Exit(1)
	}
}

func addUser(db *gorm.DB, name, apiKey string) error {
	store := repositories.NewStore(db)
	user := &models.User{Name: name, APIKey: apiKey}
	if err := store.Users.CreateUser(user); err != nil {
		if repositories.IsDuplicateKey(err) {
			return fmt.Errorf("api key %q is already in use", apiKey)
		}
		return err
	}
	logging.Info().Uint("id", user.ID).Str("name", name).Msg("user created")
	return nil
}
