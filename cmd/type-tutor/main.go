package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/lixenwraith/type-tutor/config"
	"github.com/lixenwraith/type-tutor/constants"
	"github.com/lixenwraith/type-tutor/engine"
	"github.com/lixenwraith/type-tutor/input"
	"github.com/lixenwraith/type-tutor/metrics"
	"github.com/lixenwraith/type-tutor/render"
)

// screen is kept global so panic recovery can restore the terminal
var screen tcell.Screen

func main() {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			if screen != nil {
				screen.Fini()
			}
			fmt.Fprintf(os.Stderr, "\n\x1b[31mTYPE-TUTOR CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "type-tutor: %+v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(*configFlag)
	if err != nil {
		return err
	}
	applyFlags(cfg, setFlags())
	if err := cfg.Validate(); err != nil {
		return errors.Wrap(err, "invalid flags")
	}

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	session := uuid.NewString()
	log.SetPrefix("[" + session[:8] + "] ")
	log.Printf("Session %s starting in %s mode", session, cfg.GameMode())

	screen, err = tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "create screen")
	}
	if err := screen.Init(); err != nil {
		return errors.Wrap(err, "init screen")
	}
	defer screen.Fini()
	screen.HideCursor()

	palette, err := cfg.Palette()
	if err != nil {
		return err
	}
	screen.SetStyle(tcell.StyleDefault.Background(render.ToTcell(palette.Background)))
	cells := metrics.NewCellMetrics()
	renderer := render.NewTerminalRenderer(screen, render.NewTheme(palette), cells, session)

	a, err := newApp(cfg, session, renderer.Layout().Playfield, cells)
	if err != nil {
		return err
	}

	if err := a.sound.Initialize(); err != nil {
		log.Printf("Audio initialization failed: %v (continuing without audio)", err)
	} else {
		defer a.sound.Cleanup()
	}

	eventChan := make(chan tcell.Event, 256)
	// Input polling uses raw goroutine as it interacts directly with terminal
	go func() {
		defer func() {
			if r := recover(); r != nil {
				screen.Fini()
				fmt.Fprintf(os.Stderr, "\r\n\x1b[31mEVENT POLLER CRASHED: %v\x1b[0m\r\n", r)
				fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
				os.Exit(1)
			}
		}()

		for {
			ev := screen.PollEvent()
			// nil after Fini
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	frameTicker := time.NewTicker(time.Second / time.Duration(cfg.FPS))
	defer frameTicker.Stop()
	frameTimer := engine.NewFrameTimer(engine.NewMonotonicTimeProvider(), constants.MaxFrameDelta)

	for {
		select {
		case ev := <-eventChan:
			intent := a.keys.Translate(ev)
			switch intent.Type {
			case input.IntentQuit:
				log.Printf("Session ended: %s", a.summary())
				return nil
			case input.IntentResize:
				screen.Sync()
				layout := renderer.Resize()
				a.game.SetPlayfield(layout.Playfield)
			default:
				a.game.Enqueue(intent)
			}

		case <-frameTicker.C:
			a.game.Tick(frameTimer.Delta())
			renderer.RenderFrame(a.game.Frame(), a.stats)
		}
	}
}
