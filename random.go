package main

import (
	"errors"
	"io"
	"log"

	lib "github.com/awused/random-wallpaper/lib"
	"github.com/urfave/cli/v2"
)

const configFlag = "config"
const debugFlag = "debug"

func randomFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    configFlag,
			Aliases: []string{"c"},
			Usage:   "Read configuration from `FILE` instead of the default location",
		},
		&cli.BoolFlag{
			Name:  debugFlag,
			Usage: "Log each step of the selection",
		},
	}
}

func randomAction(logOutput io.Writer) cli.ActionFunc {
	return func(c *cli.Context) error {
		if c.NArg() != 1 {
			return lib.UsageErrorf("expected exactly one DIRECTORY, got %d arguments", c.NArg())
		}
		dir := c.Args().First()

		conf, err := lib.Init(c.String(configFlag), c.Bool(debugFlag), logOutput)
		if err != nil {
			return err
		}
		defer lib.Cleanup()

		setter, err := lib.NewSetter(conf)
		if err != nil {
			return err
		}

		return setRandomWallpaper(dir, lib.NewPicker(), setter)
	}
}

func setRandomWallpaper(dir string, picker *lib.Picker, setter lib.Setter) error {
	if err := lib.EnsureDirectory(dir); err != nil {
		return err
	}

	images, err := lib.FindImages(dir)
	if err != nil {
		return err
	}

	image, err := picker.Pick(images)
	if err != nil {
		return err
	}
	lib.Debugf("Selected [%s] out of %d images", image, len(images))

	err = setter.SetWallpaper(image)

	// The setter ran to completion, its status is not ours to interpret
	var exitErr *lib.ExitStatusError
	if errors.As(err, &exitErr) && exitErr.Final() {
		log.Println(exitErr)
		return nil
	}
	return err
}
