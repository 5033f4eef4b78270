package util

import (
	"net"
	"strconv"
	"testing"

	"OnionShare-NG/internal/errors"
)

func TestGetAvailablePort(t *testing.T) {
	port, err := GetAvailablePort(35000, 35999)
	if err != nil {
		t.Fatalf("GetAvailablePort(35000, 35999) error: %v", err)
	}
	if port < 35000 || port > 35999 {
		t.Errorf("GetAvailablePort(35000, 35999) = %d; want port in range", port)
	}

	// The returned port should still be bindable
	ln, err := net.Listen("tcp", net.JoinHostPort("127.0.0.1", strconv.Itoa(port)))
	if err != nil {
		t.Errorf("rebinding port %d failed: %v", port, err)
	} else {
		ln.Close()
	}
}

func TestGetAvailablePortSingle(t *testing.T) {
	port, err := GetAvailablePort(35500, 35500)
	if err != nil {
		t.Fatalf("GetAvailablePort(35500, 35500) error: %v", err)
	}
	if port != 35500 {
		t.Errorf("GetAvailablePort(35500, 35500) = %d; want 35500", port)
	}
}

func TestGetAvailablePortExhausted(t *testing.T) {
	// Occupy a port and ask for a range containing only that port
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("setup listener: %v", err)
	}
	defer ln.Close()
	port := ln.Addr().(*net.TCPAddr).Port

	_, err = GetAvailablePort(port, port)
	if !errors.Is(err, errors.ErrNoPortAvailable) {
		t.Errorf("GetAvailablePort(%d, %d) error = %v; want ErrNoPortAvailable", port, port, err)
	}
}

func TestGetAvailablePortInvalidRange(t *testing.T) {
	tests := []struct {
		minPort int
		maxPort int
	}{
		{0, 100},      // below 1
		{-1, 100},     // negative
		{100, 70000},  // above 65535
		{5000, 4000},  // inverted
	}

	for _, tt := range tests {
		_, err := GetAvailablePort(tt.minPort, tt.maxPort)
		if err == nil {
			t.Errorf("GetAvailablePort(%d, %d) = nil error; want ValidationError", tt.minPort, tt.maxPort)
			continue
		}
		var valErr *errors.ValidationError
		if !errors.As(err, &valErr) {
			t.Errorf("GetAvailablePort(%d, %d) error = %v; want ValidationError", tt.minPort, tt.maxPort, err)
		}
	}
}
