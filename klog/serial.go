package klog

import (
	"fmt"

	"github.com/tarm/serial"
)

// Serial is a Sink writing drained output to a serial port, the classic
// kernel console transport.
type Serial struct {
	port *serial.Port
}

// NewSerial opens device at the given baud rate and returns a sink
// writing to it.
func NewSerial(device string, baud int) (*Serial, error) {
	if device == "" {
		return nil, fmt.Errorf("klog: serial device must not be empty")
	}
	if baud <= 0 {
		return nil, fmt.Errorf("klog: serial baud rate %d out of range", baud)
	}
	port, err := serial.OpenPort(&serial.Config{Name: device, Baud: baud})
	if err != nil {
		return nil, fmt.Errorf("klog: open serial port %s: %w", device, err)
	}
	return &Serial{port: port}, nil
}

// Log writes p to the port. A slow or wedged port drops bytes rather
// than propagating the failure into the draining path.
func (s *Serial) Log(p []byte) {
	if len(p) == 0 {
		return
	}
	_, _ = s.port.Write(p)
}

// Close releases the port.
func (s *Serial) Close() error {
	return s.port.Close()
}
