// termtac is a terminal application to play tic-tac-toe and browse the moves of a game.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"go.uber.org/zap"

	"termtac/config"
	"termtac/game"
	"termtac/ui"
)

// Version is set at build time via ldflags
var Version = "dev"

// Command-line flags
var (
	flagOrder   = flag.String("order", "", "Move list order (asc or desc)")
	flagMoves   = flag.String("moves", "", "Opening moves to replay, e.g. \"b2,a1,c3\"")
	flagFocus   = flag.Bool("focus", false, "Start in focus mode (board only)")
	flagDebug   = flag.Bool("debug", false, "Write debug messages to the log file")
	flagVersion = flag.Bool("version", false, "Print version and exit")
)

func main() {
	flag.Parse()

	if *flagVersion {
		fmt.Printf("termtac %s\n", Version)
		return
	}

	cfg, err := config.InitConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *flagOrder != "" {
		cfg.MoveList.Order = *flagOrder
		if err := cfg.Validate(); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
	}

	log := newLogger(*flagDebug)
	defer log.Sync()

	g := game.New()
	if err := replayMoves(g, *flagMoves); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid -moves: %s\n", err)
		os.Exit(2)
	}
	log.Infow("session started", "version", Version, "replayed", g.Len()-1, "order", cfg.MoveList.Order)

	app := tview.NewApplication()
	rootPage := tview.NewPages()
	rootPage.SetBorder(true).SetTitle(" ✕ termtac ◯ ")

	view := ui.NewGameView(app, g, cfg, log)
	rootPage.AddPage("gameview", view.Frame(), true, true)

	settings := ui.NewSettings(cfg,
		func(edited *config.Config) {
			*cfg = *edited
			if err := cfg.Save(); err != nil {
				log.Warnw("could not save config", "error", err)
			}
			view.ApplyConfig(cfg)
			rootPage.SwitchToPage("gameview")
		},
		func() {
			rootPage.SwitchToPage("gameview")
		},
	)
	rootPage.AddPage("settings", settings.Form(), true, false)
	view.OnSettings = func() {
		settings.Reset()
		rootPage.SwitchToPage("settings")
	}

	// Global keys only apply to the game screen.
	app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if name, _ := rootPage.GetFrontPage(); name != "gameview" {
			return event
		}
		return view.HandleKey(event)
	})

	if *flagFocus {
		view.SetFocusMode(true)
	}

	if err := app.SetRoot(rootPage, true).SetFocus(view.Board.Box).Run(); err != nil {
		log.Errorw("application stopped", "error", err)
		panic(err)
	}
	log.Infow("session ended", "moves", g.Len()-1, "status", g.Status().String())
}

// newLogger writes to the XDG cache dir; the terminal belongs to the UI.
func newLogger(debug bool) *zap.SugaredLogger {
	path, err := config.LogPath()
	if err != nil {
		return zap.NewNop().Sugar()
	}

	zcfg := zap.NewProductionConfig()
	zcfg.OutputPaths = []string{path}
	zcfg.ErrorOutputPaths = []string{path}
	if debug {
		zcfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}

	logger, err := zcfg.Build()
	if err != nil {
		return zap.NewNop().Sugar()
	}
	return logger.Sugar()
}

// replayMoves plays an opening given on the command line.
func replayMoves(g *game.Game, moves string) error {
	cells, err := game.ParseMoves(moves)
	if err != nil {
		return err
	}
	for i, cell := range cells {
		if g.Current()[cell] != game.Empty {
			return fmt.Errorf("move %d: cell %s is occupied", i+1, game.CellName(cell))
		}
		if !g.Play(cell) {
			return fmt.Errorf("move %d: game is over (%s)", i+1, g.Status())
		}
	}
	return nil
}
