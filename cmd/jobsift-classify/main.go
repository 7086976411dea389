package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/jobsift/jobsift/internal/adapters/intake"
	"github.com/jobsift/jobsift/internal/config"
	"github.com/jobsift/jobsift/internal/core"
	"github.com/jobsift/jobsift/internal/di"
	"go.uber.org/zap"
)

func main() {
	flags := di.ParseFlags()

	// Build the dependency injection container
	container, err := di.BuildCLIContainer(flags)
	if err != nil {
		fmt.Printf("Failed to build dependency container: %v\n", err)
		os.Exit(1)
	}

	// Run the application
	if err := container.Invoke(run); err != nil {
		fmt.Printf("Application error: %v\n", err)
		os.Exit(1)
	}
}

// run classifies one email and prints the assembled record
func run(
	flags *di.CLIFlags,
	cfg *config.Config,
	logger *zap.Logger,
	service *core.TrackerService,
	assistClient core.AssistClient,
) error {
	defer logger.Sync()

	// Read email from file or stdin
	var emailReader io.Reader
	if flags.InputFile != "" {
		file, err := os.Open(flags.InputFile)
		if err != nil {
			logger.Fatal("Failed to open input file", zap.Error(err), zap.String("file", flags.InputFile))
		}
		defer file.Close()
		emailReader = file
		logger.Info("Reading email from file", zap.String("file", flags.InputFile))
	} else {
		emailReader = os.Stdin
		logger.Info("Reading email from stdin")
	}

	// Parse email
	msg, err := intake.ParseRFC822(bufio.NewReader(emailReader))
	if err != nil {
		logger.Fatal("Failed to parse email", zap.Error(err))
	}

	// Print email summary
	fmt.Printf("\n=== Email Summary ===\n")
	fmt.Printf("From: %s\n", msg.HeaderValue("From"))
	fmt.Printf("Subject: %s\n", msg.HeaderValue("Subject"))
	fmt.Printf("Date: %s\n", msg.HeaderValue("Date"))
	fmt.Printf("\n")

	// Analyze email
	fmt.Printf("=== Analysis ===\n")
	if cfg.GetBool("assist.enabled") {
		fmt.Printf("Assist provider: %s\n", cfg.GetString("assist.provider"))
	} else {
		fmt.Printf("Assist provider: disabled\n")
	}

	startTime := time.Now()

	record, err := service.ProcessMessage(context.Background(), msg)
	if err != nil {
		logger.Fatal("Failed to process email", zap.Error(err))
	}
	duration := time.Since(startTime)

	// Print results
	fmt.Printf("\n=== Results ===\n")
	if record == nil {
		fmt.Printf("Job related: false (screened out as a non-job message)\n")
		fmt.Printf("Processing time: %v\n", duration)
		return nil
	}
	fmt.Printf("Job related: true\n")
	fmt.Printf("Category: %s\n", record.Category)
	fmt.Printf("Status: %s\n", record.Category.StatusLabel())
	fmt.Printf("Company: %s\n", orUnknown(record.Company))
	fmt.Printf("Position: %s\n", orUnknown(record.Position))
	fmt.Printf("Snippet: %s\n", record.BodySnippet)
	fmt.Printf("Processing time: %v\n", duration)

	// Close any resources that need closing
	if closer, ok := assistClient.(interface{ Close() error }); ok {
		if err := closer.Close(); err != nil {
			logger.Error("Failed to close assist client", zap.Error(err))
		}
	}

	return nil
}

// orUnknown substitutes a placeholder for entities the pipeline could not find
func orUnknown(s string) string {
	if s == "" {
		return "Unknown"
	}
	return s
}
