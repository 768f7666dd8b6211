package main

import (
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/tatianab/turnlog/internal/api"
	"github.com/tatianab/turnlog/internal/config"
	"github.com/tatianab/turnlog/internal/controller"
	"github.com/tatianab/turnlog/internal/models"
	"github.com/tatianab/turnlog/internal/state"
	"github.com/tatianab/turnlog/internal/tui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	models.ExportDir = cfg.ExportDir

	var diag *log.Logger
	if cfg.DebugLog != "" {
		f, err := tea.LogToFile(cfg.DebugLog, "turnlog")
		if err != nil {
			fmt.Printf("Error opening debug log: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		diag = log.Default()
	}

	store := state.NewStore()
	ctl := controller.New(store, api.NewClient(cfg.BaseURL), diag)

	if err := tui.Run(store, ctl); err != nil {
		fmt.Printf("Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
