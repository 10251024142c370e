// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build unix

package process

import (
	"errors"

	"golang.org/x/sys/unix"
)

// Alive reports whether the operating system still knows the pid.
// It sends signal 0, which checks existence and permissions only.
func (p *Process) Alive() bool {
	err := unix.Kill(int(p.pid), 0)
	return err == nil || errors.Is(err, unix.EPERM)
}
