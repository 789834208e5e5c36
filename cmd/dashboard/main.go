package main

import (
	"log"
	"os"
	"time"

	"github.com/adrg/xdg"
	"github.com/bankist/backend/internal/bank"
	"github.com/bankist/backend/internal/config"
	"github.com/bankist/backend/internal/tui"
)

func main() {
	// The terminal belongs to tview, so logs go to a file.
	logPath, err := xdg.StateFile("bankist/dashboard.log")
	if err != nil {
		log.Fatalf("failed to resolve log file: %v", err)
	}
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		log.Fatalf("failed to open log file: %v", err)
	}
	defer logFile.Close()
	log.SetOutput(logFile)

	cfg, err := config.Load(os.Getenv("BANKIST_CONFIG"))
	if err != nil {
		log.Fatalf("[CONFIG] %v", err)
	}

	accounts, err := bank.LoadAccounts(cfg.SeedPath())
	if err != nil {
		log.Fatalf("[BANK] Failed to load accounts: %v", err)
	}
	store, err := bank.NewStore(accounts)
	if err != nil {
		log.Fatalf("[BANK] Failed to build account store: %v", err)
	}

	teller := bank.NewTeller(store, time.Now)
	teller.Timeout = cfg.SessionTimeout
	teller.ResetSortOnLogout = cfg.ResetSortOnLogout

	if err := tui.New(teller).Run(); err != nil {
		log.Fatalf("dashboard stopped: %v", err)
	}
}
