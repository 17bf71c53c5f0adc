// Package bus provides the I2C transport used to reach the chip on a
// Linux devfs bus.
package bus

import (
	"fmt"

	"golang.org/x/exp/io/i2c"
)

// I2C is an exclusive handle to one chip on an I2C bus. It implements
// ezo.Transport.
type I2C struct {
	dev *i2c.Device
}

// Open opens the chip at the given 7-bit address on the devfs bus at
// path, e.g. Open("/dev/i2c-1", 0x66).
func Open(path string, addr int) (*I2C, error) {
	dev, err := i2c.Open(&i2c.Devfs{Dev: path}, addr)
	if err != nil {
		return nil, fmt.Errorf("failed to open I2C device %s@0x%02x: %w", path, addr, err)
	}

	return &I2C{dev: dev}, nil
}

func (b *I2C) Write(p []byte) error {
	return b.dev.Write(p)
}

func (b *I2C) Read(p []byte) error {
	return b.dev.Read(p)
}

// Close releases the bus handle. No command may be in flight.
func (b *I2C) Close() error {
	return b.dev.Close()
}
