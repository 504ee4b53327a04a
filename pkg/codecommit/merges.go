package codecommit

import (
	"context"
	"slices"

	"github.com/bravo68web/codecommit/pkg/codecommit/types"
)

// BatchDescribeMergeConflictsRequest is the input of BatchDescribeMergeConflicts.
type BatchDescribeMergeConflictsRequest struct {
	RepositoryName             *string                                  `json:"repositoryName,omitempty" validate:"required,min=1,max=100"`
	DestinationCommitSpecifier *string                                  `json:"destinationCommitSpecifier,omitempty" validate:"required"`
	SourceCommitSpecifier      *string                                  `json:"sourceCommitSpecifier,omitempty" validate:"required"`
	MergeOption                types.MergeOptionTypeEnum                `json:"mergeOption,omitempty" validate:"required,enum"`
	MaxMergeHunks              *int32                                   `json:"maxMergeHunks,omitempty" validate:"omitempty,min=1"`
	MaxConflictFiles           *int32                                   `json:"maxConflictFiles,omitempty" validate:"omitempty,min=1"`
	FilePaths                  []string                                 `json:"filePaths,omitempty"`
	ConflictDetailLevel        types.ConflictDetailLevelTypeEnum        `json:"conflictDetailLevel,omitempty" validate:"omitempty,enum"`
	ConflictResolutionStrategy types.ConflictResolutionStrategyTypeEnum `json:"conflictResolutionStrategy,omitempty" validate:"omitempty,enum"`
	NextToken                  *string                                  `json:"nextToken,omitempty"`
}

func (r BatchDescribeMergeConflictsRequest) String() string { return types.Stringify(r) }

// WithFilePaths sets FilePaths to a copy of filePaths.
func (r *BatchDescribeMergeConflictsRequest) WithFilePaths(filePaths ...string) *BatchDescribeMergeConflictsRequest {
	r.FilePaths = slices.Clone(filePaths)
	return r
}

type BatchDescribeMergeConflictsResult struct {
	Conflicts           []types.Conflict                         `json:"conflicts,omitempty"`
	NextToken           *string                                  `json:"nextToken,omitempty"`
	Errors              []types.BatchDescribeMergeConflictsError `json:"errors,omitempty"`
	DestinationCommitID *string                                  `json:"destinationCommitId,omitempty"`
	SourceCommitID      *string                                  `json:"sourceCommitId,omitempty"`
	BaseCommitID        *string                                  `json:"baseCommitId,omitempty"`
}

func (r BatchDescribeMergeConflictsResult) String() string { return types.Stringify(r) }

// BatchDescribeMergeConflicts describes the merge conflicts of several files.
func (c *Client) BatchDescribeMergeConflicts(ctx context.Context, params *BatchDescribeMergeConflictsRequest) (*BatchDescribeMergeConflictsResult, error) {
	return call[BatchDescribeMergeConflictsResult](ctx, c, "BatchDescribeMergeConflicts", params)
}

// CreateUnreferencedMergeCommitRequest is the input of CreateUnreferencedMergeCommit.
type CreateUnreferencedMergeCommitRequest struct {
	RepositoryName             *string                                  `json:"repositoryName,omitempty" validate:"required,min=1,max=100"`
	SourceCommitSpecifier      *string                                  `json:"sourceCommitSpecifier,omitempty" validate:"required"`
	DestinationCommitSpecifier *string                                  `json:"destinationCommitSpecifier,omitempty" validate:"required"`
	MergeOption                types.MergeOptionTypeEnum                `json:"mergeOption,omitempty" validate:"required,enum"`
	ConflictDetailLevel        types.ConflictDetailLevelTypeEnum        `json:"conflictDetailLevel,omitempty" validate:"omitempty,enum"`
	ConflictResolutionStrategy types.ConflictResolutionStrategyTypeEnum `json:"conflictResolutionStrategy,omitempty" validate:"omitempty,enum"`
	AuthorName                 *string                                  `json:"authorName,omitempty"`
	Email                      *string                                  `json:"email,omitempty"`
	CommitMessage              *string                                  `json:"commitMessage,omitempty"`
	KeepEmptyFolders           *bool                                    `json:"keepEmptyFolders,omitempty"`
	ConflictResolution         *types.ConflictResolution                `json:"conflictResolution,omitempty"`
}

func (r CreateUnreferencedMergeCommitRequest) String() string { return types.Stringify(r) }

type CreateUnreferencedMergeCommitResult struct {
	CommitID *string `json:"commitId,omitempty"`
	TreeID   *string `json:"treeId,omitempty"`
}

func (r CreateUnreferencedMergeCommitResult) String() string { return types.Stringify(r) }

// CreateUnreferencedMergeCommit creates a merge commit that no branch points at.
func (c *Client) CreateUnreferencedMergeCommit(ctx context.Context, params *CreateUnreferencedMergeCommitRequest) (*CreateUnreferencedMergeCommitResult, error) {
	return call[CreateUnreferencedMergeCommitResult](ctx, c, "CreateUnreferencedMergeCommit", params)
}

// DescribeMergeConflictsRequest is the input of DescribeMergeConflicts.
type DescribeMergeConflictsRequest struct {
	RepositoryName             *string                                  `json:"repositoryName,omitempty" validate:"required,min=1,max=100"`
	DestinationCommitSpecifier *string                                  `json:"destinationCommitSpecifier,omitempty" validate:"required"`
	SourceCommitSpecifier      *string                                  `json:"sourceCommitSpecifier,omitempty" validate:"required"`
	MergeOption                types.MergeOptionTypeEnum                `json:"mergeOption,omitempty" validate:"required,enum"`
	MaxMergeHunks              *int32                                   `json:"maxMergeHunks,omitempty" validate:"omitempty,min=1"`
	FilePath                   *string                                  `json:"filePath,omitempty" validate:"required"`
	ConflictDetailLevel        types.ConflictDetailLevelTypeEnum        `json:"conflictDetailLevel,omitempty" validate:"omitempty,enum"`
	ConflictResolutionStrategy types.ConflictResolutionStrategyTypeEnum `json:"conflictResolutionStrategy,omitempty" validate:"omitempty,enum"`
	NextToken                  *string                                  `json:"nextToken,omitempty"`
}

func (r DescribeMergeConflictsRequest) String() string { return types.Stringify(r) }

type DescribeMergeConflictsResult struct {
	ConflictMetadata    *types.ConflictMetadata `json:"conflictMetadata,omitempty"`
	MergeHunks          []types.MergeHunk       `json:"mergeHunks,omitempty"`
	NextToken           *string                 `json:"nextToken,omitempty"`
	DestinationCommitID *string                 `json:"destinationCommitId,omitempty"`
	SourceCommitID      *string                 `json:"sourceCommitId,omitempty"`
	BaseCommitID        *string                 `json:"baseCommitId,omitempty"`
}

func (r DescribeMergeConflictsResult) String() string { return types.Stringify(r) }

// DescribeMergeConflicts returns the merge hunks of one conflicted file.
func (c *Client) DescribeMergeConflicts(ctx context.Context, params *DescribeMergeConflictsRequest) (*DescribeMergeConflictsResult, error) {
	return call[DescribeMergeConflictsResult](ctx, c, "DescribeMergeConflicts", params)
}

// GetMergeCommitRequest is the input of GetMergeCommit.
type GetMergeCommitRequest struct {
	RepositoryName             *string                                  `json:"repositoryName,omitempty" validate:"required,min=1,max=100"`
	SourceCommitSpecifier      *string                                  `json:"sourceCommitSpecifier,omitempty" validate:"required"`
	DestinationCommitSpecifier *string                                  `json:"destinationCommitSpecifier,omitempty" validate:"required"`
	ConflictDetailLevel        types.ConflictDetailLevelTypeEnum        `json:"conflictDetailLevel,omitempty" validate:"omitempty,enum"`
	ConflictResolutionStrategy types.ConflictResolutionStrategyTypeEnum `json:"conflictResolutionStrategy,omitempty" validate:"omitempty,enum"`
}

func (r GetMergeCommitRequest) String() string { return types.Stringify(r) }

type GetMergeCommitResult struct {
	SourceCommitID      *string `json:"sourceCommitId,omitempty"`
	DestinationCommitID *string `json:"destinationCommitId,omitempty"`
	BaseCommitID        *string `json:"baseCommitId,omitempty"`
	MergedCommitID      *string `json:"mergedCommitId,omitempty"`
}

func (r GetMergeCommitResult) String() string { return types.Stringify(r) }

// GetMergeCommit returns the merge commit between two commit specifiers, if any.
func (c *Client) GetMergeCommit(ctx context.Context, params *GetMergeCommitRequest) (*GetMergeCommitResult, error) {
	return call[GetMergeCommitResult](ctx, c, "GetMergeCommit", params)
}

// GetMergeConflictsRequest is the input of GetMergeConflicts.
type GetMergeConflictsRequest struct {
	RepositoryName             *string                                  `json:"repositoryName,omitempty" validate:"required,min=1,max=100"`
	DestinationCommitSpecifier *string                                  `json:"destinationCommitSpecifier,omitempty" validate:"required"`
	SourceCommitSpecifier      *string                                  `json:"sourceCommitSpecifier,omitempty" validate:"required"`
	MergeOption                types.MergeOptionTypeEnum                `json:"mergeOption,omitempty" validate:"required,enum"`
	ConflictDetailLevel        types.ConflictDetailLevelTypeEnum        `json:"conflictDetailLevel,omitempty" validate:"omitempty,enum"`
	MaxConflictFiles           *int32                                   `json:"maxConflictFiles,omitempty" validate:"omitempty,min=1"`
	ConflictResolutionStrategy types.ConflictResolutionStrategyTypeEnum `json:"conflictResolutionStrategy,omitempty" validate:"omitempty,enum"`
	NextToken                  *string                                  `json:"nextToken,omitempty"`
}

func (r GetMergeConflictsRequest) String() string { return types.Stringify(r) }

type GetMergeConflictsResult struct {
	Mergeable            *bool                    `json:"mergeable,omitempty"`
	DestinationCommitID  *string                  `json:"destinationCommitId,omitempty"`
	SourceCommitID       *string                  `json:"sourceCommitId,omitempty"`
	BaseCommitID         *string                  `json:"baseCommitId,omitempty"`
	ConflictMetadataList []types.ConflictMetadata `json:"conflictMetadataList,omitempty"`
	NextToken            *string                  `json:"nextToken,omitempty"`
}

func (r GetMergeConflictsResult) String() string { return types.Stringify(r) }

// GetMergeConflicts lists the conflicted files of a prospective merge.
func (c *Client) GetMergeConflicts(ctx context.Context, params *GetMergeConflictsRequest) (*GetMergeConflictsResult, error) {
	return call[GetMergeConflictsResult](ctx, c, "GetMergeConflicts", params)
}

// GetMergeOptionsRequest is the input of GetMergeOptions.
type GetMergeOptionsRequest struct {
	RepositoryName             *string                                  `json:"repositoryName,omitempty" validate:"required,min=1,max=100"`
	SourceCommitSpecifier      *string                                  `json:"sourceCommitSpecifier,omitempty" validate:"required"`
	DestinationCommitSpecifier *string                                  `json:"destinationCommitSpecifier,omitempty" validate:"required"`
	ConflictDetailLevel        types.ConflictDetailLevelTypeEnum        `json:"conflictDetailLevel,omitempty" validate:"omitempty,enum"`
	ConflictResolutionStrategy types.ConflictResolutionStrategyTypeEnum `json:"conflictResolutionStrategy,omitempty" validate:"omitempty,enum"`
}

func (r GetMergeOptionsRequest) String() string { return types.Stringify(r) }

type GetMergeOptionsResult struct {
	MergeOptions        []types.MergeOptionTypeEnum `json:"mergeOptions,omitempty"`
	SourceCommitID      *string                     `json:"sourceCommitId,omitempty"`
	DestinationCommitID *string                     `json:"destinationCommitId,omitempty"`
	BaseCommitID        *string                     `json:"baseCommitId,omitempty"`
}

func (r GetMergeOptionsResult) String() string { return types.Stringify(r) }

// GetMergeOptions lists the merge strategies available between two commit specifiers.
func (c *Client) GetMergeOptions(ctx context.Context, params *GetMergeOptionsRequest) (*GetMergeOptionsResult, error) {
	return call[GetMergeOptionsResult](ctx, c, "GetMergeOptions", params)
}

// MergeBranchesByFastForwardRequest is the input of MergeBranchesByFastForward.
type MergeBranchesByFastForwardRequest struct {
	RepositoryName             *string `json:"repositoryName,omitempty" validate:"required,min=1,max=100"`
	SourceCommitSpecifier      *string `json:"sourceCommitSpecifier,omitempty" validate:"required"`
	DestinationCommitSpecifier *string `json:"destinationCommitSpecifier,omitempty" validate:"required"`
	TargetBranch               *string `json:"targetBranch,omitempty" validate:"omitempty,min=1,max=256"`
}

func (r MergeBranchesByFastForwardRequest) String() string { return types.Stringify(r) }

type MergeBranchesByFastForwardResult struct {
	CommitID *string `json:"commitId,omitempty"`
	TreeID   *string `json:"treeId,omitempty"`
}

func (r MergeBranchesByFastForwardResult) String() string { return types.Stringify(r) }

// MergeBranchesByFastForward merges two branches with the fast-forward strategy.
func (c *Client) MergeBranchesByFastForward(ctx context.Context, params *MergeBranchesByFastForwardRequest) (*MergeBranchesByFastForwardResult, error) {
	return call[MergeBranchesByFastForwardResult](ctx, c, "MergeBranchesByFastForward", params)
}

// MergeBranchesBySquashRequest is the input of MergeBranchesBySquash.
type MergeBranchesBySquashRequest struct {
	RepositoryName             *string                                  `json:"repositoryName,omitempty" validate:"required,min=1,max=100"`
	SourceCommitSpecifier      *string                                  `json:"sourceCommitSpecifier,omitempty" validate:"required"`
	DestinationCommitSpecifier *string                                  `json:"destinationCommitSpecifier,omitempty" validate:"required"`
	TargetBranch               *string                                  `json:"targetBranch,omitempty" validate:"omitempty,min=1,max=256"`
	ConflictDetailLevel        types.ConflictDetailLevelTypeEnum        `json:"conflictDetailLevel,omitempty" validate:"omitempty,enum"`
	ConflictResolutionStrategy types.ConflictResolutionStrategyTypeEnum `json:"conflictResolutionStrategy,omitempty" validate:"omitempty,enum"`
	AuthorName                 *string                                  `json:"authorName,omitempty"`
	Email                      *string                                  `json:"email,omitempty"`
	CommitMessage              *string                                  `json:"commitMessage,omitempty"`
	KeepEmptyFolders           *bool                                    `json:"keepEmptyFolders,omitempty"`
	ConflictResolution         *types.ConflictResolution                `json:"conflictResolution,omitempty"`
}

func (r MergeBranchesBySquashRequest) String() string { return types.Stringify(r) }

type MergeBranchesBySquashResult struct {
	CommitID *string `json:"commitId,omitempty"`
	TreeID   *string `json:"treeId,omitempty"`
}

func (r MergeBranchesBySquashResult) String() string { return types.Stringify(r) }

// MergeBranchesBySquash merges two branches with the squash strategy.
func (c *Client) MergeBranchesBySquash(ctx context.Context, params *MergeBranchesBySquashRequest) (*MergeBranchesBySquashResult, error) {
	return call[MergeBranchesBySquashResult](ctx, c, "MergeBranchesBySquash", params)
}

// MergeBranchesByThreeWayRequest is the input of MergeBranchesByThreeWay.
type MergeBranchesByThreeWayRequest struct {
	RepositoryName             *string                                  `json:"repositoryName,omitempty" validate:"required,min=1,max=100"`
	SourceCommitSpecifier      *string                                  `json:"sourceCommitSpecifier,omitempty" validate:"required"`
	DestinationCommitSpecifier *string                                  `json:"destinationCommitSpecifier,omitempty" validate:"required"`
	TargetBranch               *string                                  `json:"targetBranch,omitempty" validate:"omitempty,min=1,max=256"`
	ConflictDetailLevel        types.ConflictDetailLevelTypeEnum        `json:"conflictDetailLevel,omitempty" validate:"omitempty,enum"`
	ConflictResolutionStrategy types.ConflictResolutionStrategyTypeEnum `json:"conflictResolutionStrategy,omitempty" validate:"omitempty,enum"`
	AuthorName                 *string                                  `json:"authorName,omitempty"`
	Email                      *string                                  `json:"email,omitempty"`
	CommitMessage              *string                                  `json:"commitMessage,omitempty"`
	KeepEmptyFolders           *bool                                    `json:"keepEmptyFolders,omitempty"`
	ConflictResolution         *types.ConflictResolution                `json:"conflictResolution,omitempty"`
}

func (r MergeBranchesByThreeWayRequest) String() string { return types.Stringify(r) }

type MergeBranchesByThreeWayResult struct {
	CommitID *string `json:"commitId,omitempty"`
	TreeID   *string `json:"treeId,omitempty"`
}

func (r MergeBranchesByThreeWayResult) String() string { return types.Stringify(r) }

// MergeBranchesByThreeWay merges two branches with the three-way strategy.
func (c *Client) MergeBranchesByThreeWay(ctx context.Context, params *MergeBranchesByThreeWayRequest) (*MergeBranchesByThreeWayResult, error) {
	return call[MergeBranchesByThreeWayResult](ctx, c, "MergeBranchesByThreeWay", params)
}
