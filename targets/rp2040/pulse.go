//go:build rp2040 || rp2350

package main

import (
	"machine"

	"tinygo.org/x/drivers/servo"
)

// Actuator outputs on GPIO0..GPIO8, matching the board layout. GPIO pin N
// sits on PWM slice (N/2)%8, so nine consecutive pins span slices 0..4 and
// never collide on a slice channel.
var actuatorPins = [...]machine.Pin{
	machine.GPIO0, machine.GPIO1, machine.GPIO2,
	machine.GPIO3, machine.GPIO4, machine.GPIO5,
	machine.GPIO6, machine.GPIO7, machine.GPIO8,
}

// servoPulseDriver implements core.PulseDriver on the hardware PWM slices
// through the drivers/servo wrapper: 20ms period, high time set directly in
// microseconds. Each SetMicroseconds call is a single compare-register
// store that takes effect on the next counter wrap.
type servoPulseDriver struct {
	outputs [len(actuatorPins)]servo.Servo
}

func (d *servoPulseDriver) Configure(channels int) error {
	for i := 0; i < channels; i++ {
		pin := actuatorPins[i]
		out, err := servo.New(pwmForPin(pin), pin)
		if err != nil {
			return err
		}
		d.outputs[i] = out
	}
	return nil
}

func (d *servoPulseDriver) SetPulseMicros(channel int, pulseUS uint16) {
	d.outputs[channel].SetMicroseconds(int16(pulseUS))
}

// pwmForPin returns the PWM slice owning a GPIO pin.
func pwmForPin(pin machine.Pin) servo.PWM {
	switch (uint8(pin) >> 1) & 0x7 {
	case 0:
		return machine.PWM0
	case 1:
		return machine.PWM1
	case 2:
		return machine.PWM2
	case 3:
		return machine.PWM3
	case 4:
		return machine.PWM4
	case 5:
		return machine.PWM5
	case 6:
		return machine.PWM6
	default:
		return machine.PWM7
	}
}
