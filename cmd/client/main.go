package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/atinyakov/passmeter/internal/client/meter"
	"github.com/atinyakov/passmeter/internal/client/prompt"
	"github.com/atinyakov/passmeter/internal/client/remote"
)

var (
	version   string
	buildDate string
)

// main parses command-line flags and starts the interactive checker,
// evaluating locally or through a passmeter server.
func main() {
	var (
		cmd     string
		baseURL string
		color   bool
		width   int
		showVer bool
	)

	flag.StringVar(&cmd, "cmd", "local", "command: local | remote")
	flag.StringVar(&baseURL, "url", "http://localhost:8080", "server base URL")
	flag.BoolVar(&color, "color", true, "colorize the meter")
	flag.IntVar(&width, "width", meter.DefaultWidth, "meter width")
	flag.BoolVar(&showVer, "version", false, "show build version and date")
	flag.Parse()

	if showVer {
		fmt.Printf("passmeter client\nVersion: %s\nBuild Date: %s\n", version, buildDate)
		return
	}

	session := &prompt.Session{
		In:    os.Stdin,
		Out:   os.Stdout,
		Meter: meter.Meter{Width: width, Color: color},
	}

	switch cmd {
	case "local":
		session.Evaluator = prompt.Local
	case "remote":
		session.Evaluator = remote.NewClient(baseURL, nil)
	default:
		log.Fatalf("unknown command: %s", cmd)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := session.Run(ctx); err != nil && ctx.Err() == nil {
		log.Fatal(err)
	}
}
