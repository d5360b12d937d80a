// internal/runutil/runutil.go
package runutil

import "runtime"

// Window profiles.
const (
	DefaultWindow = 25 // production data
	FixtureWindow = 5  // small test fixtures
)

// ComputeWindow returns the effective window given an override and the
// fixture profile. If window > 0 it is used as-is. Otherwise: fixture=5,
// everything else=25.
func ComputeWindow(window int, fixture bool) int {
	if window > 0 {
		return window
	}
	if fixture {
		return FixtureWindow
	}
	return DefaultWindow
}

// EffectiveThreads maps the --threads value to a worker count:
// 0 means all CPUs, anything else is used as-is (minimum 1).
func EffectiveThreads(threads int) int {
	if threads == 0 {
		return runtime.NumCPU()
	}
	if threads < 1 {
		return 1
	}
	return threads
}

// WriterBuffer sizes the report channel for the given number of jobs.
func WriterBuffer(jobs int) int {
	if jobs < 1 {
		jobs = 1
	}
	return jobs * 4
}
