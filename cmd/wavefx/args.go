// SPDX-License-Identifier: EPL-2.0

package main

import (
	"errors"
	"strconv"

	"github.com/ik5/wavefx/transform"
)

var errUsage = errors.New("usage: wavefx [-r] [-s factor] [-f] [-o duration] [-i duration] [-v scale] [-e delay scale] < input.wav > output.wav")

// parseArgs turns the ordered flag list into the transform program.
// Flags may repeat and apply in argument order. An unknown flag or a
// missing value is a usage error; a value that does not parse as a number
// fails with the owning transform's domain error.
func parseArgs(args []string) ([]transform.Command, error) {
	var cmds []transform.Command

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "-r":
			cmds = append(cmds, transform.Reverse{})
		case "-f":
			cmds = append(cmds, transform.FlipChannels{})
		case "-s":
			factor, err := floatArg(args, &i, transform.ErrInvalidSpeed)
			if err != nil {
				return nil, err
			}
			cmds = append(cmds, transform.ChangeSpeed{Factor: factor})
		case "-o":
			duration, err := floatArg(args, &i, transform.ErrInvalidTime)
			if err != nil {
				return nil, err
			}
			cmds = append(cmds, transform.FadeOut{Duration: duration})
		case "-i":
			duration, err := floatArg(args, &i, transform.ErrInvalidTime)
			if err != nil {
				return nil, err
			}
			cmds = append(cmds, transform.FadeIn{Duration: duration})
		case "-v":
			scale, err := floatArg(args, &i, transform.ErrInvalidVolume)
			if err != nil {
				return nil, err
			}
			cmds = append(cmds, transform.Volume{Scale: scale})
		case "-e":
			delay, err := floatArg(args, &i, transform.ErrInvalidEcho)
			if err != nil {
				return nil, err
			}
			scale, err := floatArg(args, &i, transform.ErrInvalidEcho)
			if err != nil {
				return nil, err
			}
			cmds = append(cmds, transform.Echo{Delay: delay, Scale: scale})
		default:
			return nil, errUsage
		}
	}

	return cmds, nil
}

func floatArg(args []string, i *int, domainErr error) (float64, error) {
	*i++
	if *i >= len(args) {
		return 0, errUsage
	}

	v, err := strconv.ParseFloat(args[*i], 64)
	if err != nil {
		return 0, domainErr
	}

	return v, nil
}
