//go:build !linux

package config

// detectTempMemoryBudget falls back to a fixed budget on platforms where we
// don't have a cheap syscall for total system memory wired up (only linux's
// Sysinfo is implemented; darwin/windows would need their own x/sys calls).
func detectTempMemoryBudget() int64 {
	return fallbackTempMemoryBytes
}
