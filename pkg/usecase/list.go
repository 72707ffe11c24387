package usecase

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/rivoric/vstsdiff/pkg/domain/interfaces"
	"github.com/rivoric/vstsdiff/pkg/domain/model"
)

type listUseCase struct {
	client interfaces.ReleaseClient
	out    io.Writer
}

// NewList creates a new instance of ListUseCase writing to out
func NewList(client interfaces.ReleaseClient, out io.Writer) interfaces.ListUseCase {
	return &listUseCase{
		client: client,
		out:    out,
	}
}

// List prints the release definitions of the project, or the environments
// of one definition in order when name is non-empty
func (uc *listUseCase) List(ctx context.Context, name string) error {
	defs, err := uc.client.ListDefinitions(ctx)
	if err != nil {
		return err
	}

	id := color.New(color.FgCyan)

	if name == "" {
		for _, def := range defs {
			fmt.Fprintf(uc.out, "%s %s\n", id.Sprint(def.ID), def.Name)
		}
		return nil
	}

	for _, def := range defs {
		if def.Name != name {
			continue
		}

		detail, err := uc.client.GetDefinition(ctx, def.ID)
		if err != nil {
			return err
		}

		for i, env := range detail.Environments {
			fmt.Fprintf(uc.out, "%s %s\n", id.Sprint(i), env.Name)
		}
		return nil
	}

	return model.NewExitError(model.ExitDefinitionNotFound,
		fmt.Sprintf("release definition %q not found", name))
}
