//go:build !snakedebug

package snake

// strictContracts is false in release builds: violations are reported to the
// caller, which clamps to a safe value. Build with -tags snakedebug to panic.
const strictContracts = false
