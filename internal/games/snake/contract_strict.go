//go:build snakedebug

package snake

const strictContracts = true
