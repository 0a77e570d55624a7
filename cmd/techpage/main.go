package main

import (
	"os"

	"github.com/3-lines-studio/techpage/internal/adapters/cli"
	"github.com/3-lines-studio/techpage/internal/usecase"
)

var _ usecase.CLIOutput = (*cli.Output)(nil)

func main() {
	output := cli.NewOutput()
	if err := newRootCmd(output).Execute(); err != nil {
		output.PrintError("%v", err)
		os.Exit(1)
	}
}
