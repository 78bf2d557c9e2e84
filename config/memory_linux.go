//go:build linux

package config

import "golang.org/x/sys/unix"

// detectTempMemoryBudget queries the kernel for total system memory via
// Sysinfo and returns a conservative fraction of it as the default temp
// memory ceiling J (see §4.7's memory budget). Falling back to a fixed
// budget on error keeps Default() infallible.
func detectTempMemoryBudget() int64 {
	var info unix.Sysinfo_t
	if err := unix.Sysinfo(&info); err != nil {
		return fallbackTempMemoryBytes
	}
	total := int64(info.Totalram) * int64(info.Unit)
	if total <= 0 {
		return fallbackTempMemoryBytes
	}
	// Budget a quarter of system RAM for the planner's work buffers; the
	// rest stays available for the caller's own matrices and the context's
	// out-of-core model.
	budget := total / 4
	if budget < fallbackTempMemoryBytes {
		return fallbackTempMemoryBytes
	}
	return budget
}
