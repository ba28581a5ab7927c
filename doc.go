// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package tca6424 controls a Texas Instruments TCA6424 or TCA6424A 24-bit
// I²C I/O expander.
//
// The expander's 24 lines are grouped into three 8-bit ports. Every port
// has one register of each kind: Input, Output, Polarity Inversion,
// Configuration (direction) and Interrupt Mask. The driver exposes the
// register map three ways:
//
//   - Typed pin and port operations on Dev (SetPinDirection,
//     SetPortOutput, ...), including multi-port transfers that use the
//     chip's register auto-increment feature to batch up to three
//     consecutive registers into a single bus transaction.
//   - gpio.PinIO for every line, registered with gpioreg under
//     "TCA6424_<addr>_P<port>_<bit>".
//   - conn.Conn for every port, for byte-at-a-time half duplex access.
//
// The device offers no per-bit write command, so single-pin mutations are
// read-modify-write sequences of two bus transactions. Dev serializes its
// own callers, but another master on the bus can still modify a register
// between the two halves; such writes are lost. No register state is
// cached: every operation reflects live device state.
//
// # Datasheet
//
// https://www.ti.com/lit/gpn/tca6424a
package tca6424
