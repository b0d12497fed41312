// Package leaktest provides goroutine and heap growth checks for tests
package leaktest

import (
	"runtime"
	"testing"
	"time"
)

const (
	defaultTimeout = 2 * time.Second
	pollInterval   = 10 * time.Millisecond
)

// Goroutines records the current goroutine count and returns a check that
// fails t when, after waiting up to the timeout, more than tolerance extra
// goroutines are still running.
//
//	defer leaktest.Goroutines(t, 0)()
func Goroutines(t testing.TB, tolerance int) func() {
	t.Helper()
	before := runtime.NumGoroutine()

	return func() {
		t.Helper()
		if after, ok := waitForCount(before+tolerance, defaultTimeout); !ok {
			t.Errorf("goroutine leak: before=%d after=%d tolerance=%d", before, after, tolerance)
		}
	}
}

// waitForCount polls until at most target goroutines remain or timeout passes
func waitForCount(target int, timeout time.Duration) (int, bool) {
	deadline := time.Now().Add(timeout)
	for {
		runtime.Gosched()
		n := runtime.NumGoroutine()
		if n <= target {
			return n, true
		}
		if time.Now().After(deadline) {
			return n, false
		}
		time.Sleep(pollInterval)
	}
}

// HeapGrowth runs fn and fails t when live heap grows by more than maxMB
func HeapGrowth(t testing.TB, maxMB float64, fn func()) {
	t.Helper()

	before := liveHeapMB()
	fn()
	after := liveHeapMB()

	if growth := after - before; growth > maxMB {
		t.Errorf("heap growth: before=%.2fMB after=%.2fMB growth=%.2fMB max=%.2fMB",
			before, after, growth, maxMB)
	}
}

func liveHeapMB() float64 {
	runtime.GC()
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return float64(m.HeapAlloc) / 1024 / 1024
}
