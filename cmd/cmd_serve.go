// Copyright 2025 The Recicla Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"

	"github.com/jcodagnone/recicla/server"
	"github.com/spf13/cobra"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Inicia o servidor HTTP",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if serveAddr != "" {
			cfg.Addr = serveAddr
		}

		svc, err := newService(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Printf("♻️  recicla server starting on http://%s\n", cfg.Addr)

		return server.NewServer(svc).Run(cfg.Addr)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Endereço de escuta (padrão: $RECICLA_ADDR)")
}
