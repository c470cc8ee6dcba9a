package utils

// Assert panics when condition does not hold. Reserved for programming
// contract violations that must abort loudly, never for runtime errors.
func Assert(condition bool, message ...string) {
	if !condition {
		if len(message) == 1 {
			panic(message[0])
		}
		panic("failed assertion")
	}
}
