// Package exitcodes defines the standard exit codes of an SCUnit test
// binary.
package exitcodes

// Exit code constants used by SCUnit test binaries:
//
// * Success (0): Used when all tests pass
// * TestFailure (1): Used when one or more tests fail
// * RuntimeErr (2): Used for infrastructure failures such as invalid
//   configuration, timer failures or stream errors mid-run
const (
	Success     = 0 // All tests pass
	TestFailure = 1 // Test failures
	RuntimeErr  = 2 // Runtime errors
)
