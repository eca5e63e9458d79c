//go:build !windows
// +build !windows

package changewallpaperlib

import (
	"errors"
	"syscall"
)

const defaultSetter = "feh"
const hasSystemSetter = false

var sysProcAttr = &syscall.SysProcAttr{}

func setSystemWallpaper(path string) error {
	return errors.New("Not supported on this platform")
}
