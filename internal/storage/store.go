package storage

import "encoding/json"

// Store is the persistence port every ledger is built on: a flat,
// string-keyed value space shared by all processes on the device.
//
// The contract is deliberately total: no method returns an error. A
// backend that cannot read hands back the fallback; a backend that
// cannot write drops the value on the floor. Ledgers recompute their
// state from the store on every call, so a lost write degrades to a
// default on the next read instead of crashing a play session.
type Store interface {
	// Get returns the value at key, or fallback when the key is
	// missing or the backend is unavailable.
	Get(key, fallback string) string

	// Set writes value at key, best effort.
	Set(key, value string)

	// Remove deletes key, best effort.
	Remove(key string)

	// Keys returns every stored key in lexical order.
	Keys() []string

	// ChangeToken returns an opaque token that differs after any
	// mutation of the store, including mutations made by other
	// processes. Watch polls it.
	ChangeToken() string
}

// GetJSON reads and decodes the JSON value at key. A missing or
// corrupt value is repaired in place: the fallback is written back and
// a fresh clone of it is returned, so callers never share the
// fallback's pointers and never observe a decode failure.
func GetJSON[T any](st Store, key string, fallback T) T {
	fb := cloneJSON(fallback)

	raw := st.Get(key, "")
	if raw == "" {
		SetJSON(st, key, fb)
		return cloneJSON(fb)
	}

	var out T
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		SetJSON(st, key, fb)
		return cloneJSON(fb)
	}
	return out
}

// SetJSON encodes v and writes it at key, best effort.
func SetJSON(st Store, key string, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		return
	}
	st.Set(key, string(b))
}

func cloneJSON[T any](v T) T {
	b, err := json.Marshal(v)
	if err != nil {
		return v
	}
	var out T
	if err := json.Unmarshal(b, &out); err != nil {
		return v
	}
	return out
}
