// Copyright 2025 The Recicla Authors
// SPDX-License-Identifier: Apache-2.0

// Package config reads the service settings from the environment and an optional .env file.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/jcodagnone/recicla/gemini"
	"github.com/joho/godotenv"
)

type Config struct {
	GeminiAPIKey   string
	GeminiModel    string
	GeminiEndpoint string
	GeminiTimeout  time.Duration
	GCPProject     string

	PointsPath string
	Addr       string
}

// Load reads .env, when present, and then the environment.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		GeminiAPIKey:   getEnv("GEMINI_API_KEY", ""),
		GeminiModel:    getEnv("GEMINI_MODEL", gemini.DefaultModel),
		GeminiEndpoint: getEnv("GEMINI_ENDPOINT", gemini.DefaultEndpoint),
		GeminiTimeout:  time.Duration(getEnvInt("GEMINI_TIMEOUT_SECONDS", 30)) * time.Second,
		GCPProject:     getEnv("GOOGLE_CLOUD_PROJECT", ""),

		PointsPath: getEnv("RECICLA_POINTS", "data/pontos_reciclagem_sp.json"),
		Addr:       getEnv("RECICLA_ADDR", "localhost:8080"),
	}
}

func getEnv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}

	return def
}

func getEnvInt(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}

	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return def
	}

	return n
}
