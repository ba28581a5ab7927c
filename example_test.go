// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package tca6424_test

import (
	"fmt"
	"log"

	"github.com/GermanBionicSystems/tca6424"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"
)

func Example() {
	// Make sure periph is initialized.
	if _, err := host.Init(); err != nil {
		log.Fatal(err)
	}

	// Open default I²C bus.
	bus, err := i2creg.Open("")
	if err != nil {
		log.Fatalf("failed to open I²C: %v", err)
	}
	defer bus.Close()

	dev, err := tca6424.New(bus, tca6424.DefaultAddress)
	if err != nil {
		log.Fatalln(err)
	}
	defer dev.Close()

	// Establish the output levels before any pin starts driving.
	if err = dev.SetInitialOutputState(0x00, 0x00, 0x00); err != nil {
		log.Fatalln(err)
	}

	// Drive P00, read P17 back.
	if err = dev.SetPinDirection(tca6424.P00, tca6424.Output); err != nil {
		log.Fatalln(err)
	}
	if err = dev.SetPinOutput(tca6424.P00, tca6424.High); err != nil {
		log.Fatalln(err)
	}
	state, err := dev.GetPinInputState(tca6424.P17)
	if err != nil {
		log.Fatalln(err)
	}
	fmt.Printf("%s\t%s\n", tca6424.P17, state)
}

func Example_gpio() {
	if _, err := host.Init(); err != nil {
		log.Fatal(err)
	}

	bus, err := i2creg.Open("")
	if err != nil {
		log.Fatalf("failed to open I²C: %v", err)
	}
	defer bus.Close()

	dev, err := tca6424.New(bus, tca6424.DefaultAddress)
	if err != nil {
		log.Fatalln(err)
	}
	defer dev.Close()

	// Every expander line doubles as a gpio.PinIO.
	for _, port := range dev.Pins {
		for _, pin := range port {
			if err = pin.In(gpio.Float, gpio.NoEdge); err != nil {
				log.Fatalln(err)
			}
			fmt.Printf("%s\t%s\n", pin.Name(), pin.Read())
		}
	}
}
