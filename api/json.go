package api

import (
	"encoding/json"
	"fmt"
)

func marshalBody(v any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, NewFatalError(fmt.Errorf("marshal request body: %w", err))
	}
	return data, nil
}

func unmarshalBody(data []byte, out any) error {
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
