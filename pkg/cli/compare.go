package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/rivoric/vstsdiff/pkg/cli/config"
	"github.com/rivoric/vstsdiff/pkg/domain/model"
	"github.com/rivoric/vstsdiff/pkg/infra/azuredevops"
	"github.com/rivoric/vstsdiff/pkg/infra/comparetool"
	"github.com/rivoric/vstsdiff/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdCompare() *cli.Command {
	var (
		azureCfg   config.Azure
		compareCfg config.Compare
	)

	flags := append(azureCfg.Flags(), compareCfg.Flags()...)

	return &cli.Command{
		Name:    "compare",
		Aliases: []string{"c"},
		Usage:   "Compare two environments of a release definition",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			if err := azureCfg.LoadFile(); err != nil {
				return err
			}

			missing := append(azureCfg.MissingFlags(), compareCfg.MissingFlags()...)
			if len(missing) > 0 {
				fmt.Fprintf(os.Stderr, "Missing required flags: %s\n\n", strings.Join(missing, ", "))
				_ = cli.ShowSubcommandHelp(c)
				return goerr.New("missing required flags", goerr.V("flags", missing))
			}

			logger.Debug("loaded configuration",
				slog.Any("azure", azureCfg),
				slog.Any("compare", compareCfg),
			)

			client := azuredevops.NewClient(
				azureCfg.Account,
				azureCfg.Project,
				azureCfg.Username,
				azureCfg.PAT,
			)

			uc := usecase.NewCompare(
				client,
				usecase.NewSelector(os.Stdin, os.Stdout),
				comparetool.NewLocator(),
				comparetool.NewLauncher(),
			)

			return uc.Compare(ctx, &model.CompareRequest{
				ReleaseDefinition: compareCfg.ReleaseDefinition,
				CompareExe:        compareCfg.CompareExe,
				Indent:            compareCfg.Indent,
				DeleteTempFiles:   compareCfg.DeleteTempFiles,
			})
		},
	}
}
