// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !unix

package process

// Alive always reports true where no signal-0 probe is available.
func (p *Process) Alive() bool {
	return true
}
