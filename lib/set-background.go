package changewallpaperlib

import (
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

const (
	pathPlaceholder = "{path}"
	uriPlaceholder  = "{uri}"
)

const systemSetterName = "windows"

var presets = map[string][][]string{
	"feh": {
		{"feh", "--bg-fill", pathPlaceholder},
	},
	// zoom is GNOME's equivalent of fill
	"gnome": {
		{"gsettings", "set", "org.gnome.desktop.background", "picture-options", "zoom"},
		{"gsettings", "set", "org.gnome.desktop.background", "picture-uri", uriPlaceholder},
	},
}

type Setter interface {
	SetWallpaper(path string) error
}

// CommandSetter runs each command in order, stopping at the first failure.
type CommandSetter struct {
	Commands [][]string
	Stdout   io.Writer
	Stderr   io.Writer
}

type systemSetter struct{}

func (systemSetter) SetWallpaper(path string) error {
	if !utf8.ValidString(path) {
		return fmt.Errorf("%w: %q", ErrInvalidPath, path)
	}
	return setSystemWallpaper(path)
}

func NewSetter(c *Config) (Setter, error) {
	if len(c.Command) > 0 {
		return &CommandSetter{Commands: [][]string{c.Command}}, nil
	}

	if c.Setter == systemSetterName && hasSystemSetter {
		return systemSetter{}, nil
	}

	commands, ok := presets[c.Setter]
	if !ok {
		return nil, fmt.Errorf("Unknown setter [%s]", c.Setter)
	}
	return &CommandSetter{Commands: commands}, nil
}

func (s *CommandSetter) SetWallpaper(path string) error {
	if !utf8.ValidString(path) {
		return fmt.Errorf("%w: %q", ErrInvalidPath, path)
	}

	for i, template := range s.Commands {
		args, err := expandCommand(template, path)
		if err != nil {
			return err
		}

		err = s.run(args)
		var exitErr *ExitStatusError
		if errors.As(err, &exitErr) {
			exitErr.Step, exitErr.Steps = i+1, len(s.Commands)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *CommandSetter) run(args []string) error {
	program, err := exec.LookPath(args[0])
	if err != nil {
		return fmt.Errorf("%w: %s: %s", ErrSetterNotFound, args[0], err)
	}

	cmd := exec.Command(program, args[1:]...)
	cmd.SysProcAttr = sysProcAttr
	cmd.Stdout = s.Stdout
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}
	cmd.Stderr = s.Stderr
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}

	Debugf("Running %q", args)
	err = cmd.Run()

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return &ExitStatusError{Program: args[0], Code: exitErr.ExitCode()}
	}
	if err != nil {
		return fmt.Errorf("Error running [%s]: %w", args[0], err)
	}
	return nil
}

func expandCommand(template []string, path string) ([]string, error) {
	if len(template) == 0 || template[0] == "" {
		return nil, errors.New("Empty setter command")
	}

	uri := ""
	substituted := false
	for _, a := range template {
		if strings.Contains(a, uriPlaceholder) {
			var err error
			if uri, err = fileURI(path); err != nil {
				return nil, err
			}
		}
		if strings.Contains(a, uriPlaceholder) || strings.Contains(a, pathPlaceholder) {
			substituted = true
		}
	}

	r := strings.NewReplacer(pathPlaceholder, path, uriPlaceholder, uri)
	args := make([]string, 0, len(template)+1)
	for _, a := range template {
		args = append(args, r.Replace(a))
	}

	if !substituted {
		args = append(args, path)
	}
	return args, nil
}

func fileURI(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	p := filepath.ToSlash(abs)
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	u := url.URL{Scheme: "file", Path: p}
	return u.String(), nil
}
