//go:build windows

package fullscreen

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	modUser32             = windows.NewLazySystemDLL("user32.dll")
	procGetWindowRect     = modUser32.NewProc("GetWindowRect")
	procMonitorFromWindow = modUser32.NewProc("MonitorFromWindow")
	procGetMonitorInfoW   = modUser32.NewProc("GetMonitorInfoW")
)

const monitorDefaultToPrimary = 0x00000001

type monitorInfo struct {
	CbSize    uint32
	RcMonitor Rect
	RcWork    Rect
	DwFlags   uint32
}

type user32WindowSystem struct{}

func newUser32WindowSystem() *user32WindowSystem {
	return &user32WindowSystem{}
}

func (user32WindowSystem) ForegroundWindow() Handle {
	return Handle(windows.GetForegroundWindow())
}

func (user32WindowSystem) DesktopWindow() Handle {
	return Handle(windows.GetDesktopWindow())
}

func (user32WindowSystem) ShellWindow() Handle {
	return Handle(windows.GetShellWindow())
}

func (user32WindowSystem) WindowRect(hwnd Handle) (Rect, error) {
	var r Rect
	ret, _, err := procGetWindowRect.Call(uintptr(hwnd), uintptr(unsafe.Pointer(&r)))
	if ret == 0 {
		return Rect{}, fmt.Errorf("GetWindowRect: %w", err)
	}
	return r, nil
}

func (user32WindowSystem) MonitorRect(hwnd Handle) (Rect, error) {
	hmon, _, _ := procMonitorFromWindow.Call(uintptr(hwnd), monitorDefaultToPrimary)
	if hmon == 0 {
		return Rect{}, fmt.Errorf("MonitorFromWindow returned no monitor")
	}

	info := monitorInfo{CbSize: uint32(unsafe.Sizeof(monitorInfo{}))}
	ret, _, err := procGetMonitorInfoW.Call(hmon, uintptr(unsafe.Pointer(&info)))
	if ret == 0 {
		return Rect{}, fmt.Errorf("GetMonitorInfoW: %w", err)
	}
	return info.RcMonitor, nil
}
