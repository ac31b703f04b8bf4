package engine

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// Parent tooling: the entire "wire format" of this system is its
// persisted key space. Export flattens every namespaced key into one
// JSON object; import writes the same shape back. Keys outside the
// namespace are never touched in either direction.

// ExportState collects every pp_* key. Values that parse as JSON are
// exported parsed; everything else stays a raw string.
func (s *Service) ExportState() map[string]any {
	payload := map[string]any{}
	for _, key := range s.store.Keys() {
		if !strings.HasPrefix(key, KeyPrefix) {
			continue
		}

		raw := s.store.Get(key, "")
		if raw == "" {
			payload[key] = ""
			continue
		}

		var parsed any
		if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
			payload[key] = raw
			continue
		}
		payload[key] = parsed
	}
	return payload
}

// ExportJSON serializes the export payload.
func (s *Service) ExportJSON() ([]byte, error) {
	b, err := json.MarshalIndent(s.ExportState(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("export: %w", err)
	}
	return b, nil
}

// ImportState applies an export payload: string values are written
// as-is, objects/numbers re-encoded as JSON, nulls remove the key.
// Keys outside the namespace are ignored. Returns the number of keys
// applied; a payload containing none is rejected.
func (s *Service) ImportState(data []byte) (int, error) {
	var parsed any
	if err := json.Unmarshal(data, &parsed); err != nil {
		return 0, fmt.Errorf("import: invalid JSON: %w", err)
	}

	obj, ok := parsed.(map[string]any)
	if !ok {
		return 0, fmt.Errorf("import: payload must be a JSON object of keys and values")
	}

	keys := make([]string, 0, len(obj))
	for key := range obj {
		if strings.HasPrefix(key, KeyPrefix) {
			keys = append(keys, key)
		}
	}
	if len(keys) == 0 {
		return 0, fmt.Errorf("import: no %s* keys found in payload", KeyPrefix)
	}
	sort.Strings(keys)

	for _, key := range keys {
		value := obj[key]
		switch v := value.(type) {
		case nil:
			s.store.Remove(key)
		case string:
			s.store.Set(key, v)
		default:
			b, err := json.Marshal(v)
			if err != nil {
				continue
			}
			s.store.Set(key, string(b))
		}
	}
	return len(keys), nil
}

// ClearAll removes every namespaced key, returning the state space to
// factory defaults.
func (s *Service) ClearAll() int {
	removed := 0
	for _, key := range s.store.Keys() {
		if strings.HasPrefix(key, KeyPrefix) {
			s.store.Remove(key)
			removed++
		}
	}
	return removed
}
