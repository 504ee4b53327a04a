package codecommit

import (
	"context"
	"maps"
	"slices"

	"github.com/bravo68web/codecommit/pkg/codecommit/types"
)

// BatchGetRepositoriesRequest is the input of BatchGetRepositories.
type BatchGetRepositoriesRequest struct {
	RepositoryNames []string `json:"repositoryNames,omitempty" validate:"required,min=1,max=25,dive,min=1,max=100"`
}

func (r BatchGetRepositoriesRequest) String() string { return types.Stringify(r) }

// WithRepositoryNames sets RepositoryNames to a copy of repositoryNames.
func (r *BatchGetRepositoriesRequest) WithRepositoryNames(repositoryNames ...string) *BatchGetRepositoriesRequest {
	r.RepositoryNames = slices.Clone(repositoryNames)
	return r
}

type BatchGetRepositoriesResult struct {
	Repositories         []types.RepositoryMetadata `json:"repositories,omitempty"`
	RepositoriesNotFound []string                   `json:"repositoriesNotFound,omitempty"`
}

func (r BatchGetRepositoriesResult) String() string { return types.Stringify(r) }

// BatchGetRepositories returns information about up to 25 repositories.
func (c *Client) BatchGetRepositories(ctx context.Context, params *BatchGetRepositoriesRequest) (*BatchGetRepositoriesResult, error) {
	return call[BatchGetRepositoriesResult](ctx, c, "BatchGetRepositories", params)
}

// CreateRepositoryRequest is the input of CreateRepository.
type CreateRepositoryRequest struct {
	RepositoryName        *string           `json:"repositoryName,omitempty" validate:"required,min=1,max=100"`
	RepositoryDescription *string           `json:"repositoryDescription,omitempty" validate:"omitempty,max=1000"`
	Tags                  map[string]string `json:"tags,omitempty" validate:"omitempty,dive,keys,min=1,max=128,endkeys,max=256"`
}

func (r CreateRepositoryRequest) String() string { return types.Stringify(r) }

// WithTags sets Tags to a copy of tags.
func (r *CreateRepositoryRequest) WithTags(tags map[string]string) *CreateRepositoryRequest {
	r.Tags = maps.Clone(tags)
	return r
}

type CreateRepositoryResult struct {
	RepositoryMetadata *types.RepositoryMetadata `json:"repositoryMetadata,omitempty"`
}

func (r CreateRepositoryResult) String() string { return types.Stringify(r) }

// CreateRepository creates an empty repository.
func (c *Client) CreateRepository(ctx context.Context, params *CreateRepositoryRequest) (*CreateRepositoryResult, error) {
	return call[CreateRepositoryResult](ctx, c, "CreateRepository", params)
}

// DeleteRepositoryRequest is the input of DeleteRepository.
type DeleteRepositoryRequest struct {
	RepositoryName *string `json:"repositoryName,omitempty" validate:"required,min=1,max=100"`
}

func (r DeleteRepositoryRequest) String() string { return types.Stringify(r) }

type DeleteRepositoryResult struct {
	RepositoryID *string `json:"repositoryId,omitempty"`
}

func (r DeleteRepositoryResult) String() string { return types.Stringify(r) }

// DeleteRepository deletes a repository. Deleting a repository that does not
// exist succeeds with an empty result.
func (c *Client) DeleteRepository(ctx context.Context, params *DeleteRepositoryRequest) (*DeleteRepositoryResult, error) {
	return call[DeleteRepositoryResult](ctx, c, "DeleteRepository", params)
}

// GetRepositoryRequest is the input of GetRepository.
type GetRepositoryRequest struct {
	RepositoryName *string `json:"repositoryName,omitempty" validate:"required,min=1,max=100"`
}

func (r GetRepositoryRequest) String() string { return types.Stringify(r) }

type GetRepositoryResult struct {
	RepositoryMetadata *types.RepositoryMetadata `json:"repositoryMetadata,omitempty"`
}

func (r GetRepositoryResult) String() string { return types.Stringify(r) }

// GetRepository returns information about a repository.
func (c *Client) GetRepository(ctx context.Context, params *GetRepositoryRequest) (*GetRepositoryResult, error) {
	return call[GetRepositoryResult](ctx, c, "GetRepository", params)
}

// ListRepositoriesRequest is the input of ListRepositories.
type ListRepositoriesRequest struct {
	NextToken *string          `json:"nextToken,omitempty"`
	SortBy    types.SortByEnum `json:"sortBy,omitempty" validate:"omitempty,enum"`
	Order     types.OrderEnum  `json:"order,omitempty" validate:"omitempty,enum"`
}

func (r ListRepositoriesRequest) String() string { return types.Stringify(r) }

type ListRepositoriesResult struct {
	Repositories []types.RepositoryNameIdPair `json:"repositories,omitempty"`
	NextToken    *string                      `json:"nextToken,omitempty"`
}

func (r ListRepositoriesResult) String() string { return types.Stringify(r) }

// ListRepositories lists the repositories of the caller's account.
func (c *Client) ListRepositories(ctx context.Context, params *ListRepositoriesRequest) (*ListRepositoriesResult, error) {
	return call[ListRepositoriesResult](ctx, c, "ListRepositories", params)
}

// UpdateRepositoryDescriptionRequest is the input of UpdateRepositoryDescription.
type UpdateRepositoryDescriptionRequest struct {
	RepositoryName        *string `json:"repositoryName,omitempty" validate:"required,min=1,max=100"`
	RepositoryDescription *string `json:"repositoryDescription,omitempty" validate:"omitempty,max=1000"`
}

func (r UpdateRepositoryDescriptionRequest) String() string { return types.Stringify(r) }

// UpdateRepositoryDescription sets or clears the description of a repository.
func (c *Client) UpdateRepositoryDescription(ctx context.Context, params *UpdateRepositoryDescriptionRequest) error {
	return callNoResult(ctx, c, "UpdateRepositoryDescription", params)
}

// UpdateRepositoryNameRequest is the input of UpdateRepositoryName.
type UpdateRepositoryNameRequest struct {
	OldName *string `json:"oldName,omitempty" validate:"required,min=1,max=100"`
	NewName *string `json:"newName,omitempty" validate:"required,min=1,max=100"`
}

func (r UpdateRepositoryNameRequest) String() string { return types.Stringify(r) }

// UpdateRepositoryName renames a repository.
func (c *Client) UpdateRepositoryName(ctx context.Context, params *UpdateRepositoryNameRequest) error {
	return callNoResult(ctx, c, "UpdateRepositoryName", params)
}
