// Copyright 2025 The Recicla Authors
// SPDX-License-Identifier: Apache-2.0

package recycling

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/jcodagnone/recicla/spatial"
)

const modelUnavailableMessage = "Ocorreu um erro interno ao verificar o item. Por favor, tente novamente mais tarde."

var errNoModel = errors.New("no model configured")

// Model is a text-completion service.
type Model interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Service runs the Ask and Find-points operations. It holds no mutable state
// and may be used from many goroutines.
type Service struct {
	model  Model
	points *Dataset
}

// NewService serves points and asks model. A nil model is allowed; Ask then
// fails with ErrorKindModelUnavailable.
func NewService(model Model, points *Dataset) *Service {
	if points == nil {
		points = NewDataset(nil)
	}

	return &Service{model: model, points: points}
}

// Points returns the dataset served.
func (s *Service) Points() *Dataset {
	return s.points
}

// Ask asks the model whether item is recyclable and looks up the points
// accepting the material it names.
func (s *Service) Ask(ctx context.Context, item string) (*Result, error) {
	if strings.TrimSpace(item) == "" {
		return nil, &Error{Kind: ErrorKindInvalidInput, Message: "Por favor, forneça um item para verificar."}
	}

	if s.model == nil {
		log.Printf("no model configured, cannot check item %q", item)

		return nil, &Error{Kind: ErrorKindModelUnavailable, Message: modelUnavailableMessage, Err: errNoModel}
	}

	text, err := s.model.Generate(ctx, BuildPrompt(item))
	if err != nil {
		log.Printf("model call failed for item %q: %v", item, err)

		return nil, &Error{Kind: ErrorKindModelUnavailable, Message: modelUnavailableMessage, Err: err}
	}

	verdict, err := ExtractVerdict(text)
	if err != nil {
		log.Printf("unexpected model response for item %q: %v\n%s", item, err, text)

		return nil, err
	}

	result := Compose(item, verdict, s.points.Match(verdict.Material, nil))

	return &result, nil
}

// FindPoints returns the points accepting material sorted by distance from origin.
func (s *Service) FindPoints(material string, origin *spatial.Point) ([]MatchedPoint, error) {
	if strings.TrimSpace(material) == "" || origin == nil {
		return nil, &Error{Kind: ErrorKindInvalidInput, Message: "Material, latitude e longitude são necessários para buscar pontos."}
	}

	return s.points.Match(material, origin), nil
}
