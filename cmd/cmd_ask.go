// Copyright 2025 The Recicla Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/jcodagnone/recicla/recycling"
	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

var askFile string

var askCmd = &cobra.Command{
	Use:   "ask [item]",
	Short: "Pergunta se um item é reciclável",
	Long: `Pergunta ao modelo se o item é reciclável e imprime o resultado em JSON.

Com --file, lê um item por linha e imprime um resultado JSON por linha.

$ recicla ask garrafa pet
$ recicla ask --file itens.txt > resultados.jsonl
`,
	Args: func(cmd *cobra.Command, args []string) error {
		if askFile == "" {
			return cobra.MinimumNArgs(1)(cmd, args)
		}

		return cobra.NoArgs(cmd, args)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newService(cmd.Context())
		if err != nil {
			return err
		}

		if askFile != "" {
			return askBatch(cmd.Context(), svc, askFile, cmd.OutOrStdout())
		}

		result, err := svc.Ask(cmd.Context(), strings.Join(args, " "))
		if err != nil {
			var recErr *recycling.Error
			if errors.As(err, &recErr) && recErr.RawResponse != "" {
				fmt.Fprintf(cmd.ErrOrStderr(), "model response:\n%s\n", recErr.RawResponse)
			}

			return err
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")

		return enc.Encode(result)
	},
}

func init() {
	askCmd.Flags().StringVar(&askFile, "file", "", "Arquivo com um item por linha")
}

// batchLine is one line of the ask --file output.
type batchLine struct {
	Item   string            `json:"item"`
	Result *recycling.Result `json:"result,omitempty"`
	Error  string            `json:"error,omitempty"`
	Kind   string            `json:"kind,omitempty"`
}

func readItems(path string) ([]string, error) {
	f, err := os.Open(path) // #nosec G304 - path is provided by the user
	if err != nil {
		return nil, fmt.Errorf("opening items file: %w", err)
	}
	defer f.Close()

	var items []string

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if item := strings.TrimSpace(scanner.Text()); item != "" {
			items = append(items, item)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading items file: %w", err)
	}

	return items, nil
}

func askBatch(ctx context.Context, svc *recycling.Service, path string, out io.Writer) error {
	items, err := readItems(path)
	if err != nil {
		return err
	}

	var bar *progressbar.ProgressBar
	if isatty.IsTerminal(os.Stderr.Fd()) {
		bar = progressbar.NewOptions(len(items),
			progressbar.OptionSetDescription("Classificando itens"),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionShowCount(),
			progressbar.OptionClearOnFinish(),
		)
	}

	enc := json.NewEncoder(out)
	failed := 0

	for _, item := range items {
		if err := ctx.Err(); err != nil {
			return err
		}

		line := batchLine{Item: item}

		result, err := svc.Ask(ctx, item)
		if err != nil {
			failed++
			line.Error = err.Error()
			line.Kind = recycling.KindOf(err).String()
		} else {
			line.Result = result
		}

		if err := enc.Encode(line); err != nil {
			return fmt.Errorf("writing result: %w", err)
		}

		if bar != nil {
			_ = bar.Add(1)
		}
	}

	log.Printf("classified %d items, %d failed", len(items), failed)

	return nil
}
