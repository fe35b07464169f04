package catalog

// AsyncScan is a pending background scan. The result is delivered once
// through a buffered channel and picked up by polling; Poll never
// blocks the caller.
type AsyncScan struct {
	result chan Catalog
}

// GoScan runs Scan on its own goroutine and returns a handle to poll
// for the result. Callers are responsible for keeping at most one scan
// in flight.
func (s *Scanner) GoScan() *AsyncScan {
	a := &AsyncScan{result: make(chan Catalog, 1)}
	go func() {
		a.result <- s.Scan()
	}()
	return a
}

// Poll reports whether the scan has finished, returning the catalog
// exactly once when it has.
func (a *AsyncScan) Poll() (Catalog, bool) {
	select {
	case c := <-a.result:
		return c, true
	default:
		return Catalog{}, false
	}
}
