package monitor

import "errors"

var (
	// ErrNoInterfaceAvailable is returned when no interface was configured
	// and enumeration yields no non-loopback interface to monitor.
	ErrNoInterfaceAvailable = errors.New("no usable network interface found")

	// ErrInterfaceNotFound is returned when an explicitly configured
	// interface is absent from the counter source's enumeration.
	ErrInterfaceNotFound = errors.New("interface not found")
)
