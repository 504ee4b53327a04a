package codecommit

import (
	"context"

	"github.com/bravo68web/codecommit/pkg/codecommit/types"
)

// CreateBranchRequest is the input of CreateBranch.
type CreateBranchRequest struct {
	RepositoryName *string `json:"repositoryName,omitempty" validate:"required,min=1,max=100"`
	BranchName     *string `json:"branchName,omitempty" validate:"required,min=1,max=256"`
	CommitID       *string `json:"commitId,omitempty" validate:"required"`
}

func (r CreateBranchRequest) String() string { return types.Stringify(r) }

// CreateBranch creates a branch pointing at commitId.
func (c *Client) CreateBranch(ctx context.Context, params *CreateBranchRequest) error {
	return callNoResult(ctx, c, "CreateBranch", params)
}

// DeleteBranchRequest is the input of DeleteBranch.
type DeleteBranchRequest struct {
	RepositoryName *string `json:"repositoryName,omitempty" validate:"required,min=1,max=100"`
	BranchName     *string `json:"branchName,omitempty" validate:"required,min=1,max=256"`
}

func (r DeleteBranchRequest) String() string { return types.Stringify(r) }

type DeleteBranchResult struct {
	DeletedBranch *types.BranchInfo `json:"deletedBranch,omitempty"`
}

func (r DeleteBranchResult) String() string { return types.Stringify(r) }

// DeleteBranch deletes a branch. The default branch cannot be deleted.
func (c *Client) DeleteBranch(ctx context.Context, params *DeleteBranchRequest) (*DeleteBranchResult, error) {
	return call[DeleteBranchResult](ctx, c, "DeleteBranch", params)
}

// GetBranchRequest is the input of GetBranch.
type GetBranchRequest struct {
	RepositoryName *string `json:"repositoryName,omitempty" validate:"omitempty,min=1,max=100"`
	BranchName     *string `json:"branchName,omitempty" validate:"omitempty,min=1,max=256"`
}

func (r GetBranchRequest) String() string { return types.Stringify(r) }

type GetBranchResult struct {
	Branch *types.BranchInfo `json:"branch,omitempty"`
}

func (r GetBranchResult) String() string { return types.Stringify(r) }

// GetBranch returns a branch and the commit at its tip.
func (c *Client) GetBranch(ctx context.Context, params *GetBranchRequest) (*GetBranchResult, error) {
	return call[GetBranchResult](ctx, c, "GetBranch", params)
}

// ListBranchesRequest is the input of ListBranches.
type ListBranchesRequest struct {
	RepositoryName *string `json:"repositoryName,omitempty" validate:"required,min=1,max=100"`
	NextToken      *string `json:"nextToken,omitempty"`
}

func (r ListBranchesRequest) String() string { return types.Stringify(r) }

type ListBranchesResult struct {
	Branches  []string `json:"branches,omitempty"`
	NextToken *string  `json:"nextToken,omitempty"`
}

func (r ListBranchesResult) String() string { return types.Stringify(r) }

// ListBranches lists the branch names of a repository.
func (c *Client) ListBranches(ctx context.Context, params *ListBranchesRequest) (*ListBranchesResult, error) {
	return call[ListBranchesResult](ctx, c, "ListBranches", params)
}

// UpdateDefaultBranchRequest is the input of UpdateDefaultBranch.
type UpdateDefaultBranchRequest struct {
	RepositoryName    *string `json:"repositoryName,omitempty" validate:"required,min=1,max=100"`
	DefaultBranchName *string `json:"defaultBranchName,omitempty" validate:"required,min=1,max=256"`
}

func (r UpdateDefaultBranchRequest) String() string { return types.Stringify(r) }

// UpdateDefaultBranch changes the default branch of a repository.
func (c *Client) UpdateDefaultBranch(ctx context.Context, params *UpdateDefaultBranchRequest) error {
	return callNoResult(ctx, c, "UpdateDefaultBranch", params)
}
