package interfaces

import (
	"context"

	"github.com/rivoric/vstsdiff/pkg/domain/model"
)

// CompareUseCase defines the environment comparison flow
type CompareUseCase interface {
	// Compare runs the whole pipeline: find the definition, select two
	// environments, serialize them and launch the comparison tool
	Compare(ctx context.Context, req *model.CompareRequest) error
}

// ListUseCase defines the listing flow
type ListUseCase interface {
	// List prints the release definitions of the project, or the
	// environments of one definition when name is non-empty
	List(ctx context.Context, name string) error
}

// EnvironmentSelector picks two distinct environment indices
type EnvironmentSelector interface {
	// Select returns two distinct indices into envs, in user-chosen order
	Select(envs []model.Environment) (int, int, error)
}

// ToolLocator resolves the comparison executable path
type ToolLocator interface {
	// Resolve returns the explicit path when given, otherwise probes the
	// well-known installation locations
	Resolve(explicit string) (string, error)
}

// ToolLauncher runs the comparison executable on two files
type ToolLauncher interface {
	// Launch runs the tool with the two file paths and blocks until it exits
	Launch(ctx context.Context, exe, left, right string) error
}
