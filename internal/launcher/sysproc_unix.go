//go:build unix

package launcher

import "syscall"

// detached starts the child in its own session so it outlives the launcher
func detached() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{Setsid: true}
}
