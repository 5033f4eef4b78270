package util

import "testing"

func TestBufferPool(t *testing.T) {
	pool := NewBufferPool(1024)

	buf := pool.Get()
	if len(buf) != 1024 {
		t.Errorf("Get() len = %d; want 1024", len(buf))
	}
	pool.Put(buf)

	// Mismatched sizes must not be pooled
	pool.Put(make([]byte, 512))
	buf = pool.Get()
	if len(buf) != 1024 {
		t.Errorf("Get() after bad Put len = %d; want 1024", len(buf))
	}
}

func TestMiBPool(t *testing.T) {
	buf := GetMiBBuffer()
	if len(buf) != MiB {
		t.Errorf("GetMiBBuffer() len = %d; want %d", len(buf), MiB)
	}
	PutMiBBuffer(buf)
}
