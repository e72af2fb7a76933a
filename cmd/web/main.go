package main

import (
	"fmt"
	"net"
	"os"
	"time"

	"github.com/andrearuggiero83/StorePilot/pkg/server"
	"github.com/andrearuggiero83/StorePilot/pkg/services/feasibility"
	"github.com/andrearuggiero83/StorePilot/pkg/services/model"
	"github.com/andrearuggiero83/StorePilot/pkg/services/scenario"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the StorePilot web server",
		RunE:  runServer,
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	host := os.Getenv("SERVER_HOST")
	port := os.Getenv("SERVER_PORT")

	if host == "" || port == "" {
		logger.Error().Msgf("Missing server configuration from .env file")
		os.Exit(1)
	}

	scenarios := scenario.NewController(model.NewEngine(), feasibility.NewAssessor())

	webAPI := server.NewWebAPI(logger, server.Config{
		Addr:            net.JoinHostPort(host, port),
		ShutdownTimeout: 10 * time.Second,
		Dependencies: server.Dependencies{
			Scenarios: scenarios,
		},
	})

	return webAPI.Start()
}
