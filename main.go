package main

import (
	"fmt"
	"os"

	accounts "freelance-market/internal/accountService"
	bids "freelance-market/internal/bidService"
	"freelance-market/internal/config"
	"freelance-market/internal/notify"
	"freelance-market/internal/repository"
	sellers "freelance-market/internal/sellerService"
	"freelance-market/internal/server"
	"freelance-market/utils"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	repo := repository.NewMemoryRepo()
	hub := notify.NewHub()

	accountService := accounts.NewAccountService(repo, []byte(cfg.TokenSecret), cfg.TokenTTL)
	sellerService := sellers.NewSellerService(repo)
	bidService := bids.NewBidService(repo, hub)

	router := server.SetupRouter(cfg, accountService, sellerService, bidService, hub)

	utils.Info("starting marketplace server", map[string]any{"address": cfg.ServerAddress})
	if err := router.Run(cfg.ServerAddress); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start server: %v\n", err)
		os.Exit(1)
	}
}
