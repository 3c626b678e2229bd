package runner

// Result is the outcome of an asynchronous command. Only this value crosses
// from the worker goroutine back to the caller.
type Result struct {
	Output string
	Err    error
}

// Go runs fn on its own goroutine and delivers exactly one Result on the
// returned channel. The channel is buffered so an abandoned receiver never
// leaks the worker.
func Go(fn func() (string, error)) <-chan Result {
	ch := make(chan Result, 1)
	go func() {
		out, err := fn()
		ch <- Result{Output: out, Err: err}
	}()
	return ch
}
