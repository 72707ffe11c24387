package usecase

import (
	"context"
	"fmt"
	"os"

	"github.com/m-mizutani/ctxlog"
	"github.com/rivoric/vstsdiff/pkg/domain/interfaces"
	"github.com/rivoric/vstsdiff/pkg/domain/model"
)

type compareUseCase struct {
	client   interfaces.ReleaseClient
	selector interfaces.EnvironmentSelector
	locator  interfaces.ToolLocator
	launcher interfaces.ToolLauncher
}

// NewCompare creates a new instance of CompareUseCase
func NewCompare(
	client interfaces.ReleaseClient,
	selector interfaces.EnvironmentSelector,
	locator interfaces.ToolLocator,
	launcher interfaces.ToolLauncher,
) interfaces.CompareUseCase {
	return &compareUseCase{
		client:   client,
		selector: selector,
		locator:  locator,
		launcher: launcher,
	}
}

// Compare runs the whole pipeline: look up the release definition by name,
// select two environments, write them to temp files and launch the
// comparison tool on the pair. Every failure is fatal and carries its
// mandated exit code; already-created temp files are not cleaned up on
// failure.
func (uc *compareUseCase) Compare(ctx context.Context, req *model.CompareRequest) error {
	logger := ctxlog.From(ctx)

	def, err := uc.findDefinition(ctx, req.ReleaseDefinition)
	if err != nil {
		return err
	}

	logger.Info("found release definition",
		"id", def.ID,
		"name", def.Name,
	)

	detail, err := uc.client.GetDefinition(ctx, def.ID)
	if err != nil {
		return err
	}

	left, right, err := uc.selector.Select(detail.Environments)
	if err != nil {
		return err
	}

	logger.Info("selected environments",
		"left", detail.Environments[left].Name,
		"right", detail.Environments[right].Name,
	)

	leftPath, err := WriteEnvironmentFile(detail.Environments[left], req.Indent)
	if err != nil {
		return err
	}

	rightPath, err := WriteEnvironmentFile(detail.Environments[right], req.Indent)
	if err != nil {
		return err
	}

	logger.Debug("wrote environment files",
		"left", leftPath,
		"right", rightPath,
	)

	exe, err := uc.locator.Resolve(req.CompareExe)
	if err != nil {
		return err
	}

	if err := uc.launcher.Launch(ctx, exe, leftPath, rightPath); err != nil {
		return err
	}

	if req.DeleteTempFiles {
		for _, path := range []string{leftPath, rightPath} {
			if err := os.Remove(path); err != nil {
				logger.Warn("failed to delete temp file", "path", path, "error", err)
			}
		}
	}

	return nil
}

// findDefinition linear-searches the list endpoint response for the first
// definition with the given name
func (uc *compareUseCase) findDefinition(ctx context.Context, name string) (*model.ReleaseDefinition, error) {
	defs, err := uc.client.ListDefinitions(ctx)
	if err != nil {
		return nil, err
	}

	for _, def := range defs {
		if def.Name == name {
			return &def, nil
		}
	}

	return nil, model.NewExitError(model.ExitDefinitionNotFound,
		fmt.Sprintf("release definition %q not found", name))
}
