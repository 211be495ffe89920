package main

import (
	"fmt"

	// Packages
	version "github.com/mutablelogic/go-llm-local/pkg/version"
)

type VersionCommand struct{}

func (cmd *VersionCommand) Run(ctx *Globals) error {
	fmt.Println(version.Get(ctx.name))
	return nil
}
