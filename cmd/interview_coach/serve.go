package main

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/jonathan/interview-coach/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long: `Start the REST API. Completion-backed routes return 503 when no API key is available;
catalog, extraction, scoring and session routes work without one.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

var servePort int

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "Port to listen on (default from config, then 8080)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	catalog, err := loadCatalog()
	if err != nil {
		return err
	}
	extractor, err := loadExtractor("")
	if err != nil {
		return err
	}

	svc, closeClient, err := newCoach(ctx)
	if err != nil {
		log.Printf("Completion routes disabled: %v", err)
	} else {
		defer closeClient()
	}

	port := settings.ListenPort()
	if cmd.Flags().Changed("port") {
		port = servePort
	}

	srv, err := server.New(server.Config{
		Port:       port,
		Catalog:    catalog,
		Extractor:  extractor,
		Coach:      svc,
		UseBrowser: settings.UseBrowser,
		Verbose:    settings.Verbose,
	})
	if err != nil {
		return err
	}
	return srv.Start(ctx)
}
