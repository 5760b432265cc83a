package main

import (
	"encoding/json"
	"math"
	"strconv"
)

// CLIResult is the top-level JSON envelope for all commands.
type CLIResult struct {
	Command string `json:"command"`
	Results any    `json:"results"`
	Error   string `json:"error,omitempty"`
}

// CLIParam is one named dimension of a built shape.
type CLIParam struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// CLIArea is the result of the area command.
type CLIArea struct {
	Kind   string     `json:"kind"`
	Params []CLIParam `json:"params"`
	Area   Number     `json:"area"`
}

// CLIKind describes one registered shape kind.
type CLIKind struct {
	Name   string   `json:"name"`
	Params []string `json:"params"`
}

// CLIUserData is the result of the userdata command.
type CLIUserData struct {
	UserData string `json:"user_data"`
}

// Number is a float that survives JSON encoding when it is not finite.
// Finite values encode as JSON numbers; NaN and ±Inf encode as the strings
// "NaN", "+Inf" and "-Inf".
type Number float64

// MarshalJSON implements json.Marshaler.
func (n Number) MarshalJSON() ([]byte, error) {
	f := float64(n)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return json.Marshal(formatFloat(f))
	}
	return strconv.AppendFloat(nil, f, 'g', -1, 64), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (n *Number) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return err
		}
		*n = Number(f)
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*n = Number(f)
	return nil
}
