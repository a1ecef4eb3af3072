package app

import (
	"fmt"
	"log"
	"os"

	fyneapp "fyne.io/fyne/v2/app"
	"github.com/joho/godotenv"

	"foodiefy/recommender"
)

const fyneAppID = "studio.foodiefy.recommender"

// Run initializes required resources and starts the desktop UI.
//
// A missing dataset comes up as an on-screen banner; a missing model artifact
// aborts here, before any window is shown.
func Run() error {
	_ = godotenv.Load()

	cfg, err := recommender.LoadConfig(os.Getenv("FOODIEFY_CONFIG"))
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := log.New(os.Stdout, "", log.LstdFlags)
	svc, err := recommender.NewService(cfg, logger)
	if err != nil {
		return fmt.Errorf("init service: %w", err)
	}

	a := fyneapp.NewWithID(fyneAppID)
	u := buildUI(a, svc)
	u.w.ShowAndRun()
	return nil
}
