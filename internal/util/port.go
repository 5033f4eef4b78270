package util

import (
	"fmt"
	"math/rand/v2"
	"net"
	"strconv"

	"OnionShare-NG/internal/errors"
)

// GetAvailablePort returns a TCP port in [minPort, maxPort] that could be
// bound on the loopback interface. The test binding is released before
// returning; no reservation is held. Another process may grab the port
// between this probe and the caller's real bind — that race is inherent to
// probe-then-release and accepted, callers handle a failed re-bind by
// probing again.
//
// Give-up policy: every port in the range is probed exactly once, in a
// random order. If all probes fail the range is exhausted and
// ErrNoPortAvailable is returned; the call never loops forever.
func GetAvailablePort(minPort, maxPort int) (int, error) {
	if minPort < 1 || maxPort > 65535 || minPort > maxPort {
		return 0, errors.NewValidationError("port range",
			fmt.Sprintf("invalid range %d-%d", minPort, maxPort))
	}

	for _, offset := range rand.Perm(maxPort - minPort + 1) {
		port := minPort + offset
		ln, err := net.Listen("tcp", net.JoinHostPort("127.0.0.1", strconv.Itoa(port)))
		if err != nil {
			continue
		}
		if err := ln.Close(); err != nil {
			continue
		}
		return port, nil
	}
	return 0, fmt.Errorf("ports %d-%d: %w", minPort, maxPort, errors.ErrNoPortAvailable)
}
