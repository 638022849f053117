// Copyright 2025 The Recicla Authors
// SPDX-License-Identifier: Apache-2.0

// Package server exposes the recycling operations over HTTP.
package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jcodagnone/recicla/recycling"
	"github.com/jcodagnone/recicla/spatial"
)

type Server struct {
	svc *recycling.Service
}

func NewServer(svc *recycling.Service) *Server {
	return &Server{svc: svc}
}

// Handler returns the router serving the API.
func (s *Server) Handler() *gin.Engine {
	r := gin.Default()

	r.GET("/healthz", s.healthz)
	r.POST("/ask_gemini", s.askGemini)
	r.POST("/find_recycling_points", s.findRecyclingPoints)

	return r
}

func (s *Server) Run(addr string) error {
	return s.Handler().Run(addr)
}

type AskRequest struct {
	Item string `json:"item"`
}

type FindPointsRequest struct {
	Material  string   `json:"material"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

type FindPointsResponse struct {
	Points []recycling.MatchedPoint `json:"pontos"`
}

type ErrorResponse struct {
	Error       string `json:"error"`
	Kind        string `json:"kind"`
	RawResponse string `json:"raw_gemini_response,omitempty"`
}

func (s *Server) healthz(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"status": "ok", "points": s.svc.Points().Len()})
}

func (s *Server) askGemini(ctx *gin.Context) {
	var req AskRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error(), Kind: recycling.ErrorKindInvalidInput.String()})

		return
	}

	result, err := s.svc.Ask(ctx.Request.Context(), req.Item)
	if err != nil {
		s.fail(ctx, err)

		return
	}

	ctx.JSON(http.StatusOK, result)
}

func (s *Server) findRecyclingPoints(ctx *gin.Context) {
	var req FindPointsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error(), Kind: recycling.ErrorKindInvalidInput.String()})

		return
	}

	var origin *spatial.Point
	if req.Latitude != nil && req.Longitude != nil {
		origin = &spatial.Point{Lat: *req.Latitude, Lng: *req.Longitude}
	}

	points, err := s.svc.FindPoints(req.Material, origin)
	if err != nil {
		s.fail(ctx, err)

		return
	}

	ctx.JSON(http.StatusOK, FindPointsResponse{Points: points})
}

// fail writes err as an ErrorResponse. Only caller errors map to 400.
func (s *Server) fail(ctx *gin.Context, err error) {
	resp := ErrorResponse{Error: err.Error(), Kind: recycling.KindOf(err).String()}

	var recErr *recycling.Error
	if errors.As(err, &recErr) {
		resp.Error = recErr.Message
		resp.RawResponse = recErr.RawResponse
	}

	status := http.StatusInternalServerError
	if recycling.IsInvalidInput(err) {
		status = http.StatusBadRequest
	}

	ctx.JSON(status, resp)
}
