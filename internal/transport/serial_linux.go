//go:build linux

package transport

import (
	"github.com/daedaluz/goserial"

	"swicc/ierrors"
)

// OpenSerial opens name (e.g. "/dev/ttyACM0") as the command channel's
// wire, raw mode, 115200 8N1. Raw mode matters here the same way it does
// for an interactive terminal: without it the kernel line discipline
// would buffer and echo, breaking the parser's own CR/LF handling.
func OpenSerial(name string) (Line, error) {
	port, err := serial.Open(name, serial.NewOptions().SetReadTimeout(-1))
	if err != nil {
		return nil, ierrors.Errorf(ierrors.TransportOpenError, name, err)
	}

	attrs, err := port.GetAttr2()
	if err != nil {
		port.Close()
		return nil, ierrors.Errorf(ierrors.TransportOpenError, name, err)
	}
	attrs.MakeRaw()
	attrs.Cflag |= serial.CS8
	attrs.SetSpeed(serial.B115200)
	if err := port.SetAttr2(serial.TCSANOW, attrs); err != nil {
		port.Close()
		return nil, ierrors.Errorf(ierrors.TransportOpenError, name, err)
	}

	return port, nil
}
