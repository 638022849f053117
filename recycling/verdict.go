// Copyright 2025 The Recicla Authors
// SPDX-License-Identifier: Apache-2.0

package recycling

import (
	"bytes"
	"encoding/json"
	"strings"
)

// Recyclable is the tri-state recyclability answer of the model.
type Recyclable int

const (
	// RecyclableUnknown means the model could not tell, or did not say.
	RecyclableUnknown Recyclable = iota
	RecyclableYes
	RecyclableNo
)

func (r Recyclable) String() string {
	switch r {
	case RecyclableYes:
		return "true"
	case RecyclableNo:
		return "false"
	default:
		return "unknown"
	}
}

// MarshalJSON encodes Recyclable as true, false or null.
func (r Recyclable) MarshalJSON() ([]byte, error) {
	switch r {
	case RecyclableYes:
		return []byte("true"), nil
	case RecyclableNo:
		return []byte("false"), nil
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON decodes a JSON boolean; any other value is RecyclableUnknown.
func (r *Recyclable) UnmarshalJSON(data []byte) error {
	*r = recyclableFrom(data)

	return nil
}

func recyclableFrom(raw json.RawMessage) Recyclable {
	switch string(bytes.TrimSpace(raw)) {
	case "true":
		return RecyclableYes
	case "false":
		return RecyclableNo
	default:
		return RecyclableUnknown
	}
}

// Verdict is the structured answer read from the model reply.
type Verdict struct {
	Recyclable  Recyclable `json:"reciclavel"`
	Material    string     `json:"material"`
	Instruction string     `json:"instrucao"`
	// HasInstruction reports whether the reply carried a string "instrucao",
	// possibly empty.
	HasInstruction bool `json:"-"`
}

// Keys of the object expected from the model. Lookups are case-sensitive.
const (
	keyRecyclable  = "reciclavel"
	keyMaterial    = "material"
	keyInstruction = "instrucao"
)

// LocateJSON returns the span between the first '{' and the last '}' of text.
// A stray brace elsewhere in the text widens the span; that is accepted.
func LocateJSON(text string) (string, bool) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")

	if start == -1 || end == -1 || end <= start {
		return "", false
	}

	return text[start : end+1], true
}

// ParseVerdict strictly parses a JSON object into a Verdict. Values of the
// wrong type fall back to their defaults instead of failing the document.
func ParseVerdict(doc string) (Verdict, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(doc), &fields); err != nil {
		return Verdict{}, err
	}

	instruction, hasInstruction := stringFrom(fields[keyInstruction])

	material, _ := stringFrom(fields[keyMaterial])

	return Verdict{
		Recyclable:     recyclableFrom(fields[keyRecyclable]),
		Material:       material,
		Instruction:    instruction,
		HasInstruction: hasInstruction,
	}, nil
}

func stringFrom(raw json.RawMessage) (string, bool) {
	if len(raw) == 0 || string(bytes.TrimSpace(raw)) == "null" {
		return "", false
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}

	return s, true
}

// ExtractVerdict reads a Verdict out of a free-text model reply. On failure
// the returned Verdict is unknown and the error is an *Error of kind
// ErrorKindNoJSON or ErrorKindMalformedJSON carrying the reply.
func ExtractVerdict(text string) (Verdict, error) {
	doc, ok := LocateJSON(text)
	if !ok {
		return Verdict{}, &Error{
			Kind:        ErrorKindNoJSON,
			Message:     "Resposta do modelo não contém formato JSON esperado.",
			RawResponse: text,
		}
	}

	verdict, err := ParseVerdict(doc)
	if err != nil {
		return Verdict{}, &Error{
			Kind:        ErrorKindMalformedJSON,
			Message:     "Formato de resposta inesperado do modelo. Tente novamente mais tarde.",
			RawResponse: text,
			Err:         err,
		}
	}

	return verdict, nil
}
