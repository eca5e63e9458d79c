//go:build windows
// +build windows

package changewallpaperlib

import (
	"fmt"
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"
	"golang.org/x/sys/windows/registry"
)

const defaultSetter = systemSetterName
const hasSystemSetter = true

// Pulled from headers
const (
	spiSetDeskWallpaper  = 0x0014
	spifUpdateIniFile    = 0x01
	spifSendWinIniChange = 0x02
)

// Fill
const wallpaperStyle = "10"

var sysProcAttr = &syscall.SysProcAttr{HideWindow: true}

var user32 = windows.NewLazySystemDLL("user32.dll")
var systemParametersInfo = user32.NewProc("SystemParametersInfoW")

func setRegistryKeys() error {
	k, err := registry.OpenKey(registry.CURRENT_USER, `Control Panel\Desktop`, registry.SET_VALUE)
	if err != nil {
		return err
	}
	defer k.Close()

	err = k.SetStringValue("WallpaperStyle", wallpaperStyle)
	if err != nil {
		return err
	}

	return k.SetStringValue("TileWallpaper", "0")
}

func setSystemWallpaper(path string) error {
	if err := setRegistryKeys(); err != nil {
		return fmt.Errorf("Error setting wallpaper style: %w", err)
	}

	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidPath, err)
	}

	if err = systemParametersInfo.Find(); err != nil {
		return fmt.Errorf("%w: %s", ErrSetterNotFound, err)
	}

	ret, _, err := systemParametersInfo.Call(
		spiSetDeskWallpaper,
		0,
		uintptr(unsafe.Pointer(p)),
		spifUpdateIniFile|spifSendWinIniChange)
	if ret == 0 {
		return fmt.Errorf("SystemParametersInfoW failed: %w", err)
	}

	return nil
}
