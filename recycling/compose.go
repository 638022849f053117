// Copyright 2025 The Recicla Authors
// SPDX-License-Identifier: Apache-2.0

package recycling

import (
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Status is the outcome of an Ask operation.
type Status string

const (
	StatusHasLocation          Status = "tem_local"
	StatusRecyclableNoLocation Status = "reciclavel_sem_local"
	StatusNotRecyclable        Status = "nao_reciclavel"
	StatusUnknown              Status = "desconhecido"
)

// Result is the user-facing answer of an Ask operation.
type Result struct {
	Status             Status         `json:"status"`
	MessagePrimary     string         `json:"mensagem1"`
	MessageSecondary   string         `json:"mensagem2"`
	MessageInstruction string         `json:"mensagem3"`
	Verdict            Verdict        `json:"gemini_raw"`
	Matches            []MatchedPoint `json:"locais"`
}

// Compose merges the verdict and the matching points into a Result.
func Compose(item string, verdict Verdict, matches []MatchedPoint) Result {
	if matches == nil {
		matches = []MatchedPoint{}
	}

	result := Result{
		Status:  StatusUnknown,
		Verdict: verdict,
		Matches: matches,
	}

	instruction := verdict.Instruction
	if !verdict.HasInstruction {
		instruction = "N/A"
	}

	switch {
	case verdict.Recyclable == RecyclableYes && len(matches) > 0:
		result.Status = StatusHasLocation
		result.MessagePrimary = fmt.Sprintf("Há cooperativas que recolhem %s, confira a mais perto de você.", lower(item))
		result.MessageSecondary = "Esse material é reciclável."
		result.MessageInstruction = "Instruções para reciclar: " + instruction
	case verdict.Recyclable == RecyclableYes:
		result.Status = StatusRecyclableNoLocation
		result.MessagePrimary = fmt.Sprintf("Esse material é reciclável, mas não temos informações de locais que reciclam %s na nossa base de dados.", lower(item))
		result.MessageSecondary = "Dicas do Gemini para você:"
		result.MessageInstruction = instruction
	case verdict.Recyclable == RecyclableNo:
		result.Status = StatusNotRecyclable
		result.MessagePrimary = capitalize(item) + " NÃO é reciclável. É considerado um resíduo comum."
		result.MessageSecondary = "Orientação do Gemini para você:"
		result.MessageInstruction = instruction
	default:
		result.MessagePrimary = fmt.Sprintf("Não foi possível determinar para %s. Tente novamente com outra descrição.", lower(item))
		result.MessageSecondary = "Verifique a informação ou tente novamente."
	}

	return result
}

// Casers keep state, so a new one is built per call.
func lower(s string) string {
	return cases.Lower(language.BrazilianPortuguese).String(s)
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}

	return cases.Upper(language.BrazilianPortuguese).String(string(r)) + lower(s[size:])
}
