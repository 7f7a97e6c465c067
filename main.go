// Package main is the entry point for the huekit application.
package main

import (
	"github.com/huekit-cli/huekit/cmd"
	"github.com/huekit-cli/huekit/config"
	"github.com/huekit-cli/huekit/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
