package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/jobsift/jobsift/internal/config"
	"github.com/jobsift/jobsift/internal/googleauth"
	"github.com/jobsift/jobsift/internal/logging"
)

var (
	credentialsPath = flag.String("credentials", "", "Path to the OAuth client secret file (defaults to the configured path)")
	tokenPath       = flag.String("token", "", "Path to write the token file (defaults to the configured path)")
	verbose         = flag.Bool("verbose", false, "Enable verbose logging")
)

func main() {
	flag.Parse()

	// Initialize logger
	logger, err := logging.InitConsoleLogger(*verbose, false)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	cfg, err := config.New()
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}

	gmailCfg := cfg.GetGmail()
	if *credentialsPath == "" {
		*credentialsPath = gmailCfg.CredentialsPath
	}
	if *tokenPath == "" {
		*tokenPath = gmailCfg.TokenPath
	}

	oauthCfg, err := googleauth.ReadConfig(*credentialsPath)
	if err != nil {
		logger.Fatal("Failed to read client credentials", zap.Error(err))
	}

	token, err := googleauth.Authorize(context.Background(), oauthCfg, os.Stdin, os.Stdout)
	if err != nil {
		logger.Fatal("Authorization failed", zap.Error(err))
	}

	if err := googleauth.SaveToken(*tokenPath, token); err != nil {
		logger.Fatal("Failed to save token", zap.Error(err))
	}

	fmt.Printf("Token saved to %s\n", *tokenPath)
	fmt.Println("The daemon and CLI can now talk to Gmail and Sheets with this account.")
}
