// SPDX-License-Identifier: EPL-2.0

package transform

import "errors"

var (
	ErrInvalidSpeed  = errors.New("a positive number must be supplied for the speed change")
	ErrInvalidTime   = errors.New("a positive number must be supplied for the fade in and fade out time")
	ErrInvalidVolume = errors.New("a positive number must be supplied for the volume scale")
	ErrInvalidEcho   = errors.New("a positive number must be supplied for the echo delay and scale parameters")
)
