// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package tca6424

import (
	"errors"
	"strconv"
	"sync"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/i2c"
)

// DefaultAddress is the device address with the ADDR pin tied low. Tying
// ADDR high selects 0x23.
const DefaultAddress uint16 = 0x22

var (
	// ErrInvalidPin is returned when a Pin value is outside P00..P27.
	ErrInvalidPin = errors.New("tca6424: invalid pin")
	// ErrInvalidPort is returned when a Port value is outside Port0..Port2.
	ErrInvalidPort = errors.New("tca6424: invalid port")

	errInvalidAddress = errors.New("tca6424: address not supported by device")
)

// Dev is a handle to a TCA6424 on an I²C bus.
//
// Besides the typed register operations, the expander is exposed as
// gpio.PinIO per pin and conn.Conn per port.
type Dev struct {
	// Pins is indexed as [port][bit].
	Pins [][]PinIO
	// Conns uses the same [port] indexing.
	Conns []conn.Conn

	name string

	// mu keeps the two transactions of a read-modify-write contiguous
	// with respect to other callers of this Dev. It cannot protect
	// against other masters on the bus.
	mu sync.Mutex
	c  *i2c.Dev
}

// New returns a driver for the TCA6424 at the given address on the bus.
// The chip only decodes addresses 0x22 and 0x23.
//
// New performs no bus transaction; the device is stateless on the wire
// and is only touched when an operation is issued.
func New(bus i2c.Bus, addr uint16) (*Dev, error) {
	if addr != 0x22 && addr != 0x23 {
		return nil, errInvalidAddress
	}
	d := &Dev{
		name: "TCA6424_" + strconv.FormatInt(int64(addr), 16),
		c:    &i2c.Dev{Bus: bus, Addr: addr},
	}

	d.Pins = make([][]PinIO, portCount)
	for port := 0; port < portCount; port++ {
		d.Pins[port] = make([]PinIO, 8)
		for bit := 0; bit < 8; bit++ {
			p := &portpin{dev: d, pin: Pin(port*8 + bit)}
			d.Pins[port][bit] = p
			// Ignore registration failure.
			_ = gpioreg.Register(p)
		}
		d.Conns = append(d.Conns, &ioport{dev: d, port: Port(port)})
	}
	return d, nil
}

// String implements conn.Resource.
func (d *Dev) String() string {
	return d.name
}

// Halt floats all 24 lines by configuring every pin as an input, in a
// single auto-increment write.
func (d *Dev) Halt() error {
	return d.SetPortsDirectionAI(Port0, []uint8{0xFF, 0xFF, 0xFF})
}

// Close unregisters the device pins from gpioreg.
func (d *Dev) Close() error {
	for _, port := range d.Pins {
		for _, pin := range port {
			if err := gpioreg.Unregister(pin.Name()); err != nil {
				return err
			}
		}
	}
	return nil
}

// writeRegister writes one register. The frame is the command byte with
// the auto-increment bit clear, followed by the value.
func (d *Dev) writeRegister(reg uint8, value uint8) error {
	return d.c.Tx([]byte{reg, value}, nil)
}

// readRegister reads one register: command byte in write mode, then one
// byte read after a repeated start.
func (d *Dev) readRegister(reg uint8) (uint8, error) {
	rx := make([]byte, 1)
	err := d.c.Tx([]byte{reg}, rx)
	return rx[0], err
}

// writeRegistersAI writes consecutive registers starting at reg in one
// transaction, using auto-increment. A register kind spans three
// registers, so at most three values are written; extra values are
// silently dropped.
func (d *Dev) writeRegistersAI(reg uint8, values []uint8) error {
	n := len(values)
	if n > portCount {
		n = portCount
	}
	w := make([]byte, 0, 1+portCount)
	w = append(w, reg|autoIncrement)
	w = append(w, values[:n]...)
	return d.c.Tx(w, nil)
}

// readRegistersAI reads len(buf) consecutive registers starting at reg in
// one transaction, using auto-increment. The buffer length is trusted;
// reading past the kind's three registers is undefined chip behavior.
func (d *Dev) readRegistersAI(reg uint8, buf []uint8) error {
	return d.c.Tx([]byte{reg | autoIncrement}, buf)
}

// setBit sets or clears one bit of the kind's register for the pin's
// port, by read-modify-write. The read half failing means no write is
// issued.
func (d *Dev) setBit(k regKind, pin Pin, set bool) error {
	if !pin.valid() {
		return ErrInvalidPin
	}
	reg := k.reg(pin.port())
	d.mu.Lock()
	defer d.mu.Unlock()
	v, err := d.readRegister(reg)
	if err != nil {
		return err
	}
	if set {
		v |= 1 << pin.bit()
	} else {
		v &^= 1 << pin.bit()
	}
	return d.writeRegister(reg, v)
}

// getBit reads one bit of the kind's register for the pin's port.
func (d *Dev) getBit(k regKind, pin Pin) (bool, error) {
	if !pin.valid() {
		return false, ErrInvalidPin
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	v, err := d.readRegister(k.reg(pin.port()))
	if err != nil {
		return false, err
	}
	return v&(1<<pin.bit()) != 0, nil
}

func (d *Dev) writePort(k regKind, port Port, value uint8) error {
	if !port.valid() {
		return ErrInvalidPort
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.writeRegister(k.reg(port), value)
}

func (d *Dev) readPort(k regKind, port Port) (uint8, error) {
	if !port.valid() {
		return 0, ErrInvalidPort
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.readRegister(k.reg(port))
}

func (d *Dev) writePortsAI(k regKind, start Port, values []uint8) error {
	if !start.valid() {
		return ErrInvalidPort
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.writeRegistersAI(k.reg(start), values)
}

func (d *Dev) readPortsAI(k regKind, start Port, buf []uint8) error {
	if !start.valid() {
		return ErrInvalidPort
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.readRegistersAI(k.reg(start), buf)
}

// SetPinDirection configures a single pin as input or output.
//
// This is a read-modify-write of the port's Configuration register, two
// bus transactions; a write by another bus master landing between them is
// lost.
func (d *Dev) SetPinDirection(pin Pin, dir PinDirection) error {
	return d.setBit(regConfig, pin, dir == Input)
}

// GetPinDirection returns the configured direction of a single pin.
func (d *Dev) GetPinDirection(pin Pin) (PinDirection, error) {
	set, err := d.getBit(regConfig, pin)
	if err != nil {
		return Output, err
	}
	if set {
		return Input, nil
	}
	return Output, nil
}

// SetPinOutput sets the output flip-flop of a single pin. It only drives
// the line if the pin is configured as an output.
//
// This is a read-modify-write of the port's Output register, two bus
// transactions; a write by another bus master landing between them is
// lost.
func (d *Dev) SetPinOutput(pin Pin, state PinState) error {
	return d.setBit(regOutput, pin, state == High)
}

// GetPinOutputState returns the output flip-flop of a single pin. This is
// the register value, not the physical line level; the two agree only
// when the pin is configured as an output.
func (d *Dev) GetPinOutputState(pin Pin) (PinState, error) {
	set, err := d.getBit(regOutput, pin)
	if err != nil {
		return Low, err
	}
	if set {
		return High, nil
	}
	return Low, nil
}

// GetPinInputState returns the physical level of a single pin, regardless
// of its configured direction. The Input registers are hardware-driven;
// there is no corresponding setter.
func (d *Dev) GetPinInputState(pin Pin) (PinState, error) {
	set, err := d.getBit(regInput, pin)
	if err != nil {
		return Low, err
	}
	if set {
		return High, nil
	}
	return Low, nil
}

// SetPinPolarityInversion enables or disables polarity inversion of a
// single pin. An inverted pin reads back flipped in the Input register.
//
// This is a read-modify-write of the port's Polarity Inversion register,
// two bus transactions; a write by another bus master landing between
// them is lost.
func (d *Dev) SetPinPolarityInversion(pin Pin, invert bool) error {
	return d.setBit(regPolarity, pin, invert)
}

// GetPinPolarityInversion returns whether a single pin's input polarity
// is inverted.
func (d *Dev) GetPinPolarityInversion(pin Pin) (bool, error) {
	return d.getBit(regPolarity, pin)
}

// SetPinInterruptMask masks (true) or enables (false) the interrupt
// contribution of a single pin.
//
// This is a read-modify-write of the port's Interrupt Mask register, two
// bus transactions; a write by another bus master landing between them is
// lost.
func (d *Dev) SetPinInterruptMask(pin Pin, mask bool) error {
	return d.setBit(regIntMask, pin, mask)
}

// GetPinInterruptMask returns whether a single pin's interrupt is masked.
func (d *Dev) GetPinInterruptMask(pin Pin) (bool, error) {
	return d.getBit(regIntMask, pin)
}

// SetPortDirection configures all 8 pins of a port at once. Bit value 1
// is input, 0 is output.
func (d *Dev) SetPortDirection(port Port, mask uint8) error {
	return d.writePort(regConfig, port, mask)
}

// GetPortDirection returns the direction configuration of a port. Bit
// value 1 is input, 0 is output.
func (d *Dev) GetPortDirection(port Port) (uint8, error) {
	return d.readPort(regConfig, port)
}

// SetPortOutput sets the output flip-flops of all 8 pins of a port at
// once. Bit value 1 is high, 0 is low.
func (d *Dev) SetPortOutput(port Port, mask uint8) error {
	return d.writePort(regOutput, port, mask)
}

// GetPortOutputState returns the output flip-flops of a port. This is the
// register value, not the physical line levels.
func (d *Dev) GetPortOutputState(port Port) (uint8, error) {
	return d.readPort(regOutput, port)
}

// GetPortInputState returns the physical level of all 8 pins of a port,
// regardless of their configured direction.
func (d *Dev) GetPortInputState(port Port) (uint8, error) {
	return d.readPort(regInput, port)
}

// SetPortPolarityInversion sets the polarity inversion of all 8 pins of a
// port at once. Bit value 1 is inverted, 0 is original.
func (d *Dev) SetPortPolarityInversion(port Port, mask uint8) error {
	return d.writePort(regPolarity, port, mask)
}

// GetPortPolarityInversion returns the polarity inversion mask of a port.
func (d *Dev) GetPortPolarityInversion(port Port) (uint8, error) {
	return d.readPort(regPolarity, port)
}

// SetPortInterruptMask sets the interrupt mask of all 8 pins of a port at
// once. Bit value 1 is masked (interrupt disabled), 0 is enabled.
func (d *Dev) SetPortInterruptMask(port Port, mask uint8) error {
	return d.writePort(regIntMask, port, mask)
}

// GetPortInterruptMask returns the interrupt mask of a port.
func (d *Dev) GetPortInterruptMask(port Port) (uint8, error) {
	return d.readPort(regIntMask, port)
}

// SetPortsDirectionAI configures consecutive ports starting at start in a
// single auto-increment transaction, one mask per port. At most three
// masks are written; extras are silently dropped.
func (d *Dev) SetPortsDirectionAI(start Port, masks []uint8) error {
	return d.writePortsAI(regConfig, start, masks)
}

// GetPortsDirectionAI reads the direction configuration of len(buf)
// consecutive ports starting at start in a single auto-increment
// transaction.
func (d *Dev) GetPortsDirectionAI(start Port, buf []uint8) error {
	return d.readPortsAI(regConfig, start, buf)
}

// SetPortsOutputAI sets the output flip-flops of consecutive ports
// starting at start in a single auto-increment transaction, one mask per
// port. At most three masks are written; extras are silently dropped.
func (d *Dev) SetPortsOutputAI(start Port, masks []uint8) error {
	return d.writePortsAI(regOutput, start, masks)
}

// GetPortsOutputStateAI reads the output flip-flops of len(buf)
// consecutive ports starting at start in a single auto-increment
// transaction.
func (d *Dev) GetPortsOutputStateAI(start Port, buf []uint8) error {
	return d.readPortsAI(regOutput, start, buf)
}

// GetPortsInputStateAI reads the physical level of len(buf) consecutive
// ports starting at start in a single auto-increment transaction.
func (d *Dev) GetPortsInputStateAI(start Port, buf []uint8) error {
	return d.readPortsAI(regInput, start, buf)
}

// SetPortsPolarityInversionAI sets the polarity inversion of consecutive
// ports starting at start in a single auto-increment transaction, one
// mask per port. At most three masks are written; extras are silently
// dropped.
func (d *Dev) SetPortsPolarityInversionAI(start Port, masks []uint8) error {
	return d.writePortsAI(regPolarity, start, masks)
}

// GetPortsPolarityInversionAI reads the polarity inversion masks of
// len(buf) consecutive ports starting at start in a single auto-increment
// transaction.
func (d *Dev) GetPortsPolarityInversionAI(start Port, buf []uint8) error {
	return d.readPortsAI(regPolarity, start, buf)
}

// SetPortsInterruptMaskAI sets the interrupt masks of consecutive ports
// starting at start in a single auto-increment transaction, one mask per
// port. At most three masks are written; extras are silently dropped.
func (d *Dev) SetPortsInterruptMaskAI(start Port, masks []uint8) error {
	return d.writePortsAI(regIntMask, start, masks)
}

// GetPortsInterruptMaskAI reads the interrupt masks of len(buf)
// consecutive ports starting at start in a single auto-increment
// transaction.
func (d *Dev) GetPortsInterruptMaskAI(start Port, buf []uint8) error {
	return d.readPortsAI(regIntMask, start, buf)
}

// SetInitialOutputState writes the output flip-flops of all three ports
// in a single auto-increment transaction. Useful at power-up to establish
// output levels before configuring pins as outputs.
func (d *Dev) SetInitialOutputState(port0, port1, port2 uint8) error {
	return d.SetPortsOutputAI(Port0, []uint8{port0, port1, port2})
}
