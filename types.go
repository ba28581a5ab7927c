// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package tca6424

import "strconv"

// Pin identifies one of the 24 I/O lines, P00 through P27. Pin Pxy is bit
// y of port x.
type Pin uint8

const (
	P00 Pin = iota
	P01
	P02
	P03
	P04
	P05
	P06
	P07
	P10
	P11
	P12
	P13
	P14
	P15
	P16
	P17
	P20
	P21
	P22
	P23
	P24
	P25
	P26
	P27
)

// port returns the 8-bit port the pin belongs to.
func (p Pin) port() Port {
	return Port(p / 8)
}

// bit returns the pin's bit position within its port's registers.
func (p Pin) bit() uint8 {
	return uint8(p % 8)
}

func (p Pin) valid() bool {
	return p <= P27
}

func (p Pin) String() string {
	return "P" + strconv.Itoa(int(p/8)) + strconv.Itoa(int(p%8))
}

// Port identifies one of the three 8-bit pin groups.
type Port uint8

const (
	Port0 Port = iota
	Port1
	Port2
)

// portCount is the number of ports, and so also the number of registers
// per register kind.
const portCount = 3

func (p Port) valid() bool {
	return p <= Port2
}

func (p Port) String() string {
	return "Port" + strconv.Itoa(int(p))
}

// PinDirection is the direction of a single pin. The values are the
// Configuration register encoding: the chip uses 1 for input and 0 for
// output.
type PinDirection uint8

const (
	Output PinDirection = 0
	Input  PinDirection = 1
)

func (d PinDirection) String() string {
	if d == Input {
		return "Input"
	}
	return "Output"
}

// PinState is the logic level of a single pin, for both input and output
// registers. High is encoded as 1.
type PinState uint8

const (
	Low  PinState = 0
	High PinState = 1
)

func (s PinState) String() string {
	if s == High {
		return "High"
	}
	return "Low"
}
