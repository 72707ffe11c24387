package interfaces

import (
	"context"

	"github.com/rivoric/vstsdiff/pkg/domain/model"
)

// ReleaseClient defines operations against the Release Management REST API
type ReleaseClient interface {
	// ListDefinitions fetches the release definition summaries of the project
	ListDefinitions(ctx context.Context) ([]model.ReleaseDefinition, error)

	// GetDefinition fetches the full release definition by ID
	GetDefinition(ctx context.Context, id int) (*model.ReleaseDefinitionDetail, error)
}
