package main

import (
	"context"
	"os"

	"github.com/rivoric/vstsdiff/pkg/cli"
	"github.com/rivoric/vstsdiff/pkg/domain/model"
)

func main() {
	if err := cli.Run(context.Background(), os.Args); err != nil {
		if code, ok := model.ExitCodeFrom(err); ok {
			os.Exit(code)
		}
		os.Exit(1)
	}
}
