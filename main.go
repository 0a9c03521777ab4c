package main

import (
	"fmt"
	"os"

	"cortado/cmd"
	"cortado/internal/db"
	"cortado/internal/search"
	"cortado/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
)

// version is set at build time via -ldflags
var version = "dev"

func main() {
	config, err := cmd.ParseFlags(version)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var searchSvc search.Service
	if config.YelpAPIKey != "" {
		searchSvc = search.NewClient(config.YelpAPIKey)
	} else if !config.SearchEnabled {
		fmt.Fprintln(os.Stderr, "ℹ  Spot search disabled in onboarding settings")
	} else {
		fmt.Fprintln(os.Stderr, "ℹ  No YELP_API_KEY set — spot search disabled")
	}

	database, err := db.Open(config.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer database.Close()

	p := tea.NewProgram(ui.New(database, searchSvc), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running app: %v\n", err)
		os.Exit(1)
	}
}
