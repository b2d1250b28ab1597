package event

import "encoding/json"

// DecodePayload returns the payload as T. Payloads published on the
// MemoryBus already have the concrete type; anything else (a map decoded
// from a stream message, for instance) is converted through JSON.
func DecodePayload[T any](input interface{}) (T, error) {
	if v, ok := input.(T); ok {
		return v, nil
	}
	var result T
	data, err := json.Marshal(input)
	if err != nil {
		return result, err
	}
	return result, json.Unmarshal(data, &result)
}
