package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/rivoric/vstsdiff/pkg/cli/config"
	"github.com/rivoric/vstsdiff/pkg/infra/azuredevops"
	"github.com/rivoric/vstsdiff/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdList() *cli.Command {
	var (
		azureCfg          config.Azure
		releaseDefinition string
	)

	flags := append(azureCfg.Flags(),
		&cli.StringFlag{
			Name:        "release-definition",
			Aliases:     []string{"r"},
			Usage:       "Show the environments of this release definition instead of all definitions",
			Destination: &releaseDefinition,
			Sources:     cli.EnvVars("VSTSDIFF_RELEASE_DEFINITION"),
		},
	)

	return &cli.Command{
		Name:    "list",
		Aliases: []string{"ls"},
		Usage:   "List release definitions, or the environments of one definition",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			if err := azureCfg.LoadFile(); err != nil {
				return err
			}

			if missing := azureCfg.MissingFlags(); len(missing) > 0 {
				fmt.Fprintf(os.Stderr, "Missing required flags: %s\n\n", strings.Join(missing, ", "))
				_ = cli.ShowSubcommandHelp(c)
				return goerr.New("missing required flags", goerr.V("flags", missing))
			}

			client := azuredevops.NewClient(
				azureCfg.Account,
				azureCfg.Project,
				azureCfg.Username,
				azureCfg.PAT,
			)

			return usecase.NewList(client, os.Stdout).List(ctx, releaseDefinition)
		},
	}
}
