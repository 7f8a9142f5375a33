package main

import (
	"flag"
	"fmt"
	"os"

	"othello/experiments"
	"othello/ui"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	console := flag.Bool("console", false, "play in plain console mode instead of the terminal UI")
	depth := flag.Int("depth", 5, "search depth for console mode")
	experiment := flag.String("experiment", "", "run an experiment instead of a game: depth or parallel")
	logFile := flag.String("log", "", "append structured logs to this file")
	flag.Parse()

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log.Logger = zerolog.New(f).With().Timestamp().Logger()
	}

	switch {
	case *experiment != "":
		runExperiment(*experiment)

	case *console:
		if err := playConsole(*depth); err != nil {
			fmt.Fprintf(os.Stderr, "console game: %v\n", err)
			os.Exit(1)
		}

	default:
		// The match screen owns the terminal, so logs go nowhere unless a
		// file was given.
		if *logFile == "" {
			zerolog.SetGlobalLevel(zerolog.Disabled)
		}
		if err := runUI(); err != nil {
			fmt.Fprintf(os.Stderr, "terminal ui: %v\n", err)
			os.Exit(1)
		}
	}
}

func runUI() error {
	u, err := ui.New()
	if err != nil {
		return err
	}
	defer u.Shutdown()

	return u.Run()
}

func runExperiment(name string) {
	switch name {
	case "depth":
		experiments.RunDepthToStrength()
	case "parallel":
		experiments.RunParallelSpeedup()
	default:
		fmt.Fprintf(os.Stderr, "unknown experiment %q (want depth or parallel)\n", name)
		os.Exit(2)
	}
}
