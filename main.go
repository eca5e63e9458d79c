package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	lib "github.com/awused/random-wallpaper/lib"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/urfave/cli/v2"
)

const usageLine = "Usage: random-wallpaper [--config FILE] [--debug] DIRECTORY"

// Overridden at build time with -ldflags "-X main.version=..."
var version = "0.1.0"

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	app := newApp(stdout, stderr)

	err := app.Run(args)
	if err == nil {
		return lib.ExOK
	}

	errorColor(stderr).Fprintln(stderr, err)
	if errors.Is(err, lib.ErrUsage) {
		fmt.Fprintln(stderr, usageLine)
	}
	return lib.ExitCode(err)
}

func newApp(stdout, stderr io.Writer) *cli.App {
	app := cli.NewApp()
	app.Name = "random-wallpaper"
	app.Usage = "Set a random image from a directory as the desktop wallpaper"
	app.ArgsUsage = "DIRECTORY"
	app.Version = version
	app.HideHelpCommand = true
	app.Writer = stdout
	app.ErrWriter = stderr
	app.Flags = randomFlags()
	app.Action = randomAction(stderr)

	app.OnUsageError = func(c *cli.Context, err error, _ bool) error {
		return lib.UsageErrorf("%s", err)
	}
	// Exit codes are decided in run
	app.ExitErrHandler = func(*cli.Context, error) {}

	return app
}

// color only checks whether stdout is a terminal
func errorColor(w io.Writer) *color.Color {
	c := color.New(color.FgRed)
	if useColor(w) {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c
}

func useColor(w io.Writer) bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok || os.Getenv("TERM") == "dumb" {
		return false
	}

	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
