package client

import (
	"bytes"
	"encoding/json"

	"github.com/medtracker/medtracker-go/pkg/logger"
)

// Endpoints disagree on their response envelopes: some nest the payload
// under a named key, others return it bare. These helpers centralize the
// unwrapping and the leniency contract: a missing or null payload key is
// an empty result, never an error. Callers may treat "missing payload"
// and "legitimately zero records" identically; a debug diagnostic keeps
// the two distinguishable in logs.

func isNull(raw json.RawMessage) bool {
	t := bytes.TrimSpace(raw)
	return len(t) == 0 || bytes.Equal(t, []byte("null"))
}

func payloadKey(raw json.RawMessage, key string) (json.RawMessage, bool) {
	var env map[string]json.RawMessage
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, false
	}
	v, ok := env[key]
	if !ok || isNull(v) {
		return nil, false
	}
	return v, true
}

// listPayload unwraps a list endpoint: a bare JSON array is accepted
// as-is, otherwise the array is expected under key. Missing key yields
// an empty slice.
func listPayload[T any](log *logger.Logger, raw json.RawMessage, route, key string) ([]T, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var out []T
		if err := json.Unmarshal(trimmed, &out); err != nil {
			return nil, err
		}
		return out, nil
	}

	v, ok := payloadKey(raw, key)
	if !ok {
		log.Debug("payload key missing, defaulting to empty list", "route", route, "key", key)
		return []T{}, nil
	}
	var out []T
	if err := json.Unmarshal(v, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}

// objectPayload unwraps a single-record endpoint whose payload lives
// under key. Missing key yields the zero value.
func objectPayload[T any](log *logger.Logger, raw json.RawMessage, route, key string) (T, error) {
	var out T
	v, ok := payloadKey(raw, key)
	if !ok {
		log.Debug("payload key missing, defaulting to empty object", "route", route, "key", key)
		return out, nil
	}
	if err := json.Unmarshal(v, &out); err != nil {
		return out, err
	}
	return out, nil
}

// objectOrBare unwraps endpoints that nest the record under key in some
// iterations and return it bare in others. The key wins when present;
// otherwise the whole body is decoded, and an undecodable body degrades
// to the zero value.
func objectOrBare[T any](log *logger.Logger, raw json.RawMessage, route, key string) (T, error) {
	if v, ok := payloadKey(raw, key); ok {
		var out T
		if err := json.Unmarshal(v, &out); err != nil {
			return out, err
		}
		return out, nil
	}
	var out T
	if isNull(raw) {
		log.Debug("empty response body, defaulting to empty object", "route", route, "key", key)
		return out, nil
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		log.Debug("unexpected response shape, defaulting to empty object", "route", route, "key", key)
		var zero T
		return zero, nil
	}
	return out, nil
}
