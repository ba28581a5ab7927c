// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package tca6424

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/pin"
)

// PinIO extends gpio.PinIO with the chip's polarity inversion and
// interrupt mask bits.
type PinIO interface {
	gpio.PinIO
	// SetPolarityInverted inverts the pin's input sense: when true, the
	// Input register bit reads back flipped relative to the line level.
	SetPolarityInverted(inverted bool) error
	// IsPolarityInverted returns whether the pin's input sense is inverted.
	IsPolarityInverted() (bool, error)
	// SetInterruptMasked masks (true) or enables (false) the pin's
	// contribution to the INT line.
	SetInterruptMasked(masked bool) error
	// IsInterruptMasked returns whether the pin's interrupt is masked.
	IsInterruptMasked() (bool, error)
}

// ioport exposes one 8-bit port as a half duplex conn.Conn: writes go to
// the port's Output register, reads come from its Input register.
type ioport struct {
	dev  *Dev
	port Port
}

// Tx writes or reads bytes sequentially on the port. Only half duplex is
// supported, so it is an error to pass both buffers at once.
func (p *ioport) Tx(w, r []byte) error {
	switch {
	case len(w) > 0 && len(r) > 0:
		return fmt.Errorf("tca6424: only conn.Half duplex is supported")
	case len(w) > 0:
		for _, b := range w {
			if err := p.dev.SetPortOutput(p.port, b); err != nil {
				return err
			}
		}
	case len(r) > 0:
		for i := range r {
			b, err := p.dev.GetPortInputState(p.port)
			if err != nil {
				return err
			}
			r[i] = b
		}
	}
	return nil
}

// Duplex returns that this is a half duplex connection.
func (p *ioport) Duplex() conn.Duplex {
	return conn.Half
}

func (p *ioport) String() string {
	return p.dev.name + "_P" + strconv.Itoa(int(p.port))
}

// portpin is a single expander line exposed as a PinIO.
type portpin struct {
	dev *Dev
	pin Pin
}

func (p *portpin) String() string {
	return p.Name()
}

// Halt stops the pin from driving its line by making it an input.
func (p *portpin) Halt() error {
	return p.In(gpio.Float, gpio.NoEdge)
}

func (p *portpin) Name() string {
	return p.dev.name + "_P" + strconv.Itoa(int(p.pin.port())) + "_" + strconv.Itoa(int(p.pin.bit()))
}

func (p *portpin) Number() int {
	return int(p.pin)
}

func (p *portpin) Function() string {
	return string(p.Func())
}

func (p *portpin) In(pull gpio.Pull, edge gpio.Edge) error {
	switch pull {
	case gpio.PullDown, gpio.PullUp:
		return errors.New("tca6424: pull resistors are not supported")
	case gpio.Float, gpio.PullNoChange:
	}
	// The INT line is not routed through the I²C bus.
	if edge != gpio.NoEdge {
		return errors.New("tca6424: edge detection is not supported")
	}
	return p.dev.SetPinDirection(p.pin, Input)
}

func (p *portpin) Read() gpio.Level {
	s, _ := p.dev.GetPinInputState(p.pin)
	return s == High
}

func (p *portpin) WaitForEdge(timeout time.Duration) bool {
	return false
}

func (p *portpin) Pull() gpio.Pull {
	return gpio.Float
}

func (p *portpin) DefaultPull() gpio.Pull {
	return gpio.Float
}

func (p *portpin) Out(l gpio.Level) error {
	s := Low
	if l == gpio.High {
		s = High
	}
	if err := p.dev.SetPinOutput(p.pin, s); err != nil {
		return err
	}
	return p.dev.SetPinDirection(p.pin, Output)
}

func (p *portpin) PWM(duty gpio.Duty, f physic.Frequency) error {
	return errors.New("tca6424: PWM is not supported")
}

func (p *portpin) Func() pin.Func {
	dir, _ := p.dev.GetPinDirection(p.pin)
	if dir == Input {
		return gpio.IN
	}
	return gpio.OUT
}

func (p *portpin) SupportedFuncs() []pin.Func {
	return supportedFuncs[:]
}

func (p *portpin) SetFunc(f pin.Func) error {
	switch f {
	case gpio.IN:
		return p.dev.SetPinDirection(p.pin, Input)
	case gpio.OUT:
		return p.dev.SetPinDirection(p.pin, Output)
	default:
		return errors.New("tca6424: function not supported: " + string(f))
	}
}

func (p *portpin) SetPolarityInverted(inverted bool) error {
	return p.dev.SetPinPolarityInversion(p.pin, inverted)
}

func (p *portpin) IsPolarityInverted() (bool, error) {
	return p.dev.GetPinPolarityInversion(p.pin)
}

func (p *portpin) SetInterruptMasked(masked bool) error {
	return p.dev.SetPinInterruptMask(p.pin, masked)
}

func (p *portpin) IsInterruptMasked() (bool, error) {
	return p.dev.GetPinInterruptMask(p.pin)
}

var supportedFuncs = [...]pin.Func{gpio.IN, gpio.OUT}
