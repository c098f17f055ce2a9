package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/akyairhashvil/sprintline/internal/config"
	"github.com/akyairhashvil/sprintline/internal/database"
	"github.com/akyairhashvil/sprintline/internal/engine"
	"github.com/akyairhashvil/sprintline/internal/tui"
	"github.com/akyairhashvil/sprintline/internal/util"
	"github.com/akyairhashvil/sprintline/internal/web"
	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	var (
		dbPath    = flag.String("db", "", "path to the sqlite database (default: per-user data dir)")
		addr      = flag.String("addr", config.DefaultListenAddr, "listen address for the HTTP API")
		useTUI    = flag.Bool("tui", false, "run the interactive sprint board instead of the API server")
		projectID = flag.Int64("project", 1, "project to show on the sprint board")
		theme     = flag.String("theme", "default", "board color theme")
	)
	flag.Parse()

	path := *dbPath
	if path == "" {
		root := util.DataDir(config.AppName)
		if err := os.MkdirAll(root, 0o755); err != nil {
			fmt.Printf("failed to create data dir: %v\n", err)
			os.Exit(1)
		}
		path = filepath.Join(root, config.DBFileName)
	}

	ctx := context.Background()
	db, err := database.Open(ctx, path)
	if err != nil {
		fmt.Printf("failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	eng := engine.New(db)

	if *useTUI {
		tui.SetTheme(*theme)
		p := tea.NewProgram(tui.NewModel(eng, db, *projectID), tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			fmt.Printf("board failed: %v\n", err)
			os.Exit(1)
		}
		return
	}

	web.NewServer(eng).Start(*addr)
}
