package snake

// require checks a caller contract. It panics in snakedebug builds and
// otherwise returns cond so the caller can fall back to a clamped value.
func require(cond bool, msg string) bool {
	if !cond && strictContracts {
		panic("snake: contract violation: " + msg)
	}
	return cond
}
