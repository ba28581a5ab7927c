// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package tca6424

// regKind is one of the five kinds of registers the chip has. Each kind
// is realized as three per-port registers at consecutive addresses.
type regKind uint8

const (
	regInput    regKind = iota // physical pin level, read-only
	regOutput                  // output flip-flop
	regPolarity                // input polarity inversion, 1 = inverted
	regConfig                  // direction, 1 = input, 0 = output
	regIntMask                 // interrupt mask, 1 = masked
)

// regBase maps a register kind to the address of its Port0 register. The
// three registers of one kind occupy consecutive addresses, which is what
// makes auto-increment transfers valid across ports of the same kind.
var regBase = [...]uint8{
	regInput:    0x00,
	regOutput:   0x04,
	regPolarity: 0x08,
	regConfig:   0x0C,
	regIntMask:  0x10,
}

// autoIncrement is bit 7 of the command byte. Set, the chip advances to
// the next register address after every data byte of the transfer; clear,
// the transfer targets the single addressed register.
const autoIncrement = 0x80

// reg returns the command byte (auto-increment clear) addressing the
// kind's register for the given port.
func (k regKind) reg(p Port) uint8 {
	return regBase[k] + uint8(p)
}
