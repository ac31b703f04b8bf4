package storage

import (
	"sync"
	"time"
)

// Watch polls the store's change token every interval and invokes fn
// after any mutation, whether made by this process or another one
// sharing the store. It returns a stop function that detaches the
// watcher; calling stop more than once is harmless.
//
// There is no locking across processes. Two writers can interleave a
// read-modify-write on the same key and lose one increment; the
// ledgers accept that for this single-user, device-local domain and
// re-derive their state from the store on every read instead.
func Watch(st Store, interval time.Duration, fn func()) (stop func()) {
	if interval <= 0 {
		interval = time.Second
	}

	done := make(chan struct{})
	go func() {
		last := st.ChangeToken()
		t := time.NewTicker(interval)
		defer t.Stop()
		for {
			select {
			case <-t.C:
				cur := st.ChangeToken()
				if cur != last {
					last = cur
					fn()
				}
			case <-done:
				return
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() { close(done) })
	}
}
