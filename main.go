// valentine asks the big question in your terminal.
//
//	valentine [-config config.json] [-log valentine.log]
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gdamore/tcell/v2"

	"valentine/internal/app"
	"valentine/internal/audio"
	"valentine/internal/config"
	"valentine/internal/page"
	"valentine/internal/render"
)

func main() {
	configFile := flag.String("config", "", "Path to the greeting's JSON config")
	logFile := flag.String("log", "", "Log file (default $XDG_STATE_HOME/valentine/valentine.log)")
	flag.Parse()

	if err := run(*configFile, *logFile); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(configFile, logFile string) error {
	logger, f, err := app.OpenLog(logFile)
	if err != nil {
		return err
	}
	defer f.Close()

	cfg, err := config.Load(configFile)
	if err != nil {
		return err
	}
	for _, w := range config.Validate(&cfg) {
		logger.Warn(w)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}

	var player *audio.Player
	base := ""
	if configFile != "" {
		base = filepath.Dir(configFile)
	}
	app.New(screen, app.Options{
		Config: cfg,
		Audio: func(post func(func())) page.Audio {
			player = audio.NewPlayer(post)
			return player
		},
		Pictures: render.NewPictures(base),
		Logger:   logger,
	}).Run()

	if player != nil {
		return player.Close()
	}
	return nil
}
