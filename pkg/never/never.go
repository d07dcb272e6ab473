package never

// Never is a result type with no legitimate values.
//
// A computation typed to succeed with Never promises that it can never
// successfully complete: it either runs forever or terminates through its
// error channel. Go has no uninhabited type, so Never is an empty,
// non-comparable struct; its zero value exists as a matter of language
// mechanics, and producing one signals a broken contract. Terminate
// never-succeeding computations through Fail rather than constructing a
// Never directly.
type Never struct {
	_ [0]func()
}

// Absurd converts a Never into any target type.
//
// The conversion is total over the zero legitimate values of Never, so there
// is no conversion logic to write. Being called at all means a computation
// declared as never-succeeding produced a success value, which is a contract
// violation; Absurd panics rather than invent a result.
func Absurd[T any](Never) T {
	panic("never: computation declared as never-completing produced a success value")
}

// Fail terminates a never-succeeding computation through its error channel.
// It is the intended way to produce a (Never, error) return pair. Fail
// panics if err is nil, since returning a nil error would claim success.
func Fail(err error) (Never, error) {
	if err == nil {
		panic("never: Fail called with a nil error")
	}
	var n Never
	return n, err
}

// Pending blocks the calling goroutine forever. It is the canonical body of
// a computation that neither succeeds nor fails; the goroutine is released
// only when the program exits.
func Pending() Never {
	select {}
}
