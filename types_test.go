// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package tca6424

import "testing"

func TestPin_decompose(t *testing.T) {
	tests := []struct {
		pin  Pin
		port Port
		bit  uint8
	}{
		{P00, Port0, 0},
		{P07, Port0, 7},
		{P10, Port1, 0},
		{P15, Port1, 5},
		{P20, Port2, 0},
		{P27, Port2, 7},
	}
	for _, tc := range tests {
		if got := tc.pin.port(); got != tc.port {
			t.Errorf("%s.port() = %s, want %s", tc.pin, got, tc.port)
		}
		if got := tc.pin.bit(); got != tc.bit {
			t.Errorf("%s.bit() = %d, want %d", tc.pin, got, tc.bit)
		}
	}
}

func TestString(t *testing.T) {
	if P13.String() != "P13" {
		t.Errorf("P13.String() = %q", P13.String())
	}
	if Port2.String() != "Port2" {
		t.Errorf("Port2.String() = %q", Port2.String())
	}
	if Input.String() != "Input" || Output.String() != "Output" {
		t.Error("PinDirection.String() is wrong")
	}
	if High.String() != "High" || Low.String() != "Low" {
		t.Error("PinState.String() is wrong")
	}
}

func TestRegisterMap(t *testing.T) {
	// Input 0x00..0x02, Output 0x04..0x06, Polarity 0x08..0x0A,
	// Configuration 0x0C..0x0E, Interrupt Mask 0x10..0x12.
	tests := []struct {
		kind regKind
		port Port
		addr uint8
	}{
		{regInput, Port0, 0x00},
		{regInput, Port2, 0x02},
		{regOutput, Port0, 0x04},
		{regOutput, Port1, 0x05},
		{regPolarity, Port2, 0x0A},
		{regConfig, Port0, 0x0C},
		{regConfig, Port2, 0x0E},
		{regIntMask, Port0, 0x10},
		{regIntMask, Port2, 0x12},
	}
	for _, tc := range tests {
		if got := tc.kind.reg(tc.port); got != tc.addr {
			t.Errorf("reg(%d, %s) = %#02x, want %#02x", tc.kind, tc.port, got, tc.addr)
		}
	}
}
