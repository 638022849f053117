// Copyright 2025 The Recicla Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"github.com/jcodagnone/recicla/cmd"
)

var Version = "development"

func main() {
	cmd.Execute(Version)
}
