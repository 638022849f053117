// Copyright 2025 The Recicla Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/jcodagnone/recicla/config"
	"github.com/jcodagnone/recicla/gemini"
	"github.com/jcodagnone/recicla/recycling"
	"github.com/spf13/cobra"
)

type logWriter struct {
	writer io.Writer
}

func (w *logWriter) Write(bytes []byte) (int, error) {
	return fmt.Fprintf(w.writer, "%s %s", time.Now().Format("2006-01-02 15:04:05"), string(bytes))
}

type rootOptions struct {
	PointsPath string
	Model      string
	TraceHTTP  bool
}

var (
	cfg     config.Config
	options = &rootOptions{}
)

func init() {
	log.SetFlags(0)
	log.SetOutput(&logWriter{writer: os.Stderr})

	rootCmd.PersistentFlags().StringVar(
		&options.PointsPath,
		"points",
		"",
		"Arquivo JSON com os pontos de reciclagem (padrão: $RECICLA_POINTS)",
	)
	rootCmd.PersistentFlags().StringVar(
		&options.Model,
		"model",
		"",
		"Modelo Gemini (padrão: $GEMINI_MODEL)",
	)
	rootCmd.PersistentFlags().BoolVar(
		&options.TraceHTTP,
		"trace-http",
		false,
		"Display HTTP requests-responses to the model",
	)

	rootCmd.AddCommand(serveCmd, askCmd, pointsCmd)
}

var rootCmd = &cobra.Command{
	Use:   "recicla",
	Short: "descubra se um item é reciclável e onde descartá-lo",
	Long: `
recicla pergunta a um modelo de linguagem se um item é reciclável e cruza a
resposta com a base de pontos de coleta para indicar os locais mais próximos.
`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		cfg = config.Load()

		if options.PointsPath != "" {
			cfg.PointsPath = options.PointsPath
		}

		if options.Model != "" {
			cfg.GeminiModel = options.Model
		}
	},
}

var Version = "dev"

func Execute(version string) {
	Version = version
	rootCmd.Version = version

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// loadDataset loads the points file. A missing file is not fatal: the
// service runs with an empty dataset.
func loadDataset(path string) (*recycling.Dataset, error) {
	dataset, err := recycling.LoadPoints(path)
	if errors.Is(err, os.ErrNotExist) {
		log.Printf("⚠️  points file %s not found, searching for recycling points will return nothing", path)

		return recycling.NewDataset(nil), nil
	}

	if err != nil {
		return nil, err
	}

	log.Printf("loaded %d recycling points from %s", dataset.Len(), path)

	return dataset, nil
}

func newModel(ctx context.Context) (*gemini.Client, error) {
	apiKey := cfg.GeminiAPIKey
	if apiKey == "" {
		log.Println("GEMINI_API_KEY is not set. Attempting to retrieve via ADC...")

		var err error

		apiKey, err = gemini.APIKeyFromADC(ctx, cfg.GCPProject, gemini.KeyDisplayName)
		if err != nil {
			return nil, fmt.Errorf("GEMINI_API_KEY is not set and ADC lookup failed: %w", err)
		}

		log.Println("✅ Successfully retrieved Gemini API Key via ADC")
	}

	var trace io.Writer
	if options.TraceHTTP {
		trace = os.Stderr
	}

	return gemini.NewClient(ctx, gemini.Config{
		APIKey:   apiKey,
		Model:    cfg.GeminiModel,
		Endpoint: cfg.GeminiEndpoint,
		Timeout:  cfg.GeminiTimeout,
		Trace:    trace,
	})
}

func newService(ctx context.Context) (*recycling.Service, error) {
	dataset, err := loadDataset(cfg.PointsPath)
	if err != nil {
		return nil, fmt.Errorf("loading recycling points: %w", err)
	}

	model, err := newModel(ctx)
	if err != nil {
		return nil, fmt.Errorf("creating model client: %w", err)
	}

	return recycling.NewService(model, dataset), nil
}
