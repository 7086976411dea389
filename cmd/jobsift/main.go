package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jobsift/jobsift/internal/core"
	"github.com/jobsift/jobsift/internal/di"
	"github.com/jobsift/jobsift/internal/ports"
	"go.uber.org/zap"
)

func main() {
	// Build the dependency injection container
	container, err := di.BuildContainer()
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

// run is the main application function that gets all dependencies injected
func run(
	logger *zap.Logger,
	intake ports.Intake,
	assistClient core.AssistClient,
	store core.UserStore,
) error {
	defer logger.Sync()

	// Start the intake
	if err := intake.Start(); err != nil {
		logger.Fatal("Failed to start intake", zap.Error(err))
		return err
	}

	// Handle graceful shutdown. A run-once intake finishes on its own.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	if waiter, ok := intake.(interface{ Done() <-chan struct{} }); ok {
		select {
		case <-sigCh:
		case <-waiter.Done():
		}
	} else {
		<-sigCh
	}
	logger.Info("Shutting down...")

	// Stop the intake
	if err := intake.Stop(); err != nil {
		logger.Error("Failed to stop intake", zap.Error(err))
	}

	// Close any resources that need closing
	if closer, ok := assistClient.(interface{ Close() error }); ok {
		if err := closer.Close(); err != nil {
			logger.Error("Failed to close assist client", zap.Error(err))
		}
	}

	// Close the user store
	store.Close()

	logger.Info("Shutdown complete")
	return nil
}
