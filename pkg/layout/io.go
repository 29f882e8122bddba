package layout

import (
	"encoding/json"
	"fmt"
	"os"
)

// MarshalResult serializes a Result to indented JSON.
func MarshalResult(r *Result) ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}

// WriteResultFile writes a Result to a JSON file.
func WriteResultFile(r *Result, path string) error {
	data, err := MarshalResult(r)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ReadResultFile reads a Result from a JSON file.
func ReadResultFile(path string) (*Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	var r Result
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &r, nil
}
