package codecommit

import (
	"context"
	"slices"

	"github.com/bravo68web/codecommit/pkg/codecommit/types"
)

// BatchGetCommitsRequest is the input of BatchGetCommits.
type BatchGetCommitsRequest struct {
	CommitIDs      []string `json:"commitIds,omitempty" validate:"required,min=1,max=100"`
	RepositoryName *string  `json:"repositoryName,omitempty" validate:"required,min=1,max=100"`
}

func (r BatchGetCommitsRequest) String() string { return types.Stringify(r) }

// WithCommitIDs sets CommitIDs to a copy of commitIDs.
func (r *BatchGetCommitsRequest) WithCommitIDs(commitIDs ...string) *BatchGetCommitsRequest {
	r.CommitIDs = slices.Clone(commitIDs)
	return r
}

type BatchGetCommitsResult struct {
	Commits []types.Commit               `json:"commits,omitempty"`
	Errors  []types.BatchGetCommitsError `json:"errors,omitempty"`
}

func (r BatchGetCommitsResult) String() string { return types.Stringify(r) }

// BatchGetCommits returns up to 100 commits.
func (c *Client) BatchGetCommits(ctx context.Context, params *BatchGetCommitsRequest) (*BatchGetCommitsResult, error) {
	return call[BatchGetCommitsResult](ctx, c, "BatchGetCommits", params)
}

// CreateCommitRequest is the input of CreateCommit. At least one of PutFiles,
// DeleteFiles or SetFileModes should be set.
type CreateCommitRequest struct {
	RepositoryName   *string                  `json:"repositoryName,omitempty" validate:"required,min=1,max=100"`
	BranchName       *string                  `json:"branchName,omitempty" validate:"required,min=1,max=256"`
	ParentCommitID   *string                  `json:"parentCommitId,omitempty"`
	AuthorName       *string                  `json:"authorName,omitempty"`
	Email            *string                  `json:"email,omitempty"`
	CommitMessage    *string                  `json:"commitMessage,omitempty"`
	KeepEmptyFolders *bool                    `json:"keepEmptyFolders,omitempty"`
	PutFiles         []types.PutFileEntry     `json:"putFiles,omitempty" validate:"omitempty,dive"`
	DeleteFiles      []types.DeleteFileEntry  `json:"deleteFiles,omitempty" validate:"omitempty,dive"`
	SetFileModes     []types.SetFileModeEntry `json:"setFileModes,omitempty" validate:"omitempty,dive"`
}

func (r CreateCommitRequest) String() string { return types.Stringify(r) }

// WithPutFiles sets PutFiles to a copy of putFiles.
func (r *CreateCommitRequest) WithPutFiles(putFiles ...types.PutFileEntry) *CreateCommitRequest {
	r.PutFiles = slices.Clone(putFiles)
	return r
}

// WithDeleteFiles sets DeleteFiles to a copy of deleteFiles.
func (r *CreateCommitRequest) WithDeleteFiles(deleteFiles ...types.DeleteFileEntry) *CreateCommitRequest {
	r.DeleteFiles = slices.Clone(deleteFiles)
	return r
}

// WithSetFileModes sets SetFileModes to a copy of setFileModes.
func (r *CreateCommitRequest) WithSetFileModes(setFileModes ...types.SetFileModeEntry) *CreateCommitRequest {
	r.SetFileModes = slices.Clone(setFileModes)
	return r
}

type CreateCommitResult struct {
	CommitID     *string              `json:"commitId,omitempty"`
	TreeID       *string              `json:"treeId,omitempty"`
	FilesAdded   []types.FileMetadata `json:"filesAdded,omitempty"`
	FilesUpdated []types.FileMetadata `json:"filesUpdated,omitempty"`
	FilesDeleted []types.FileMetadata `json:"filesDeleted,omitempty"`
}

func (r CreateCommitResult) String() string { return types.Stringify(r) }

// CreateCommit creates a commit on a branch from file additions, deletions and mode changes.
func (c *Client) CreateCommit(ctx context.Context, params *CreateCommitRequest) (*CreateCommitResult, error) {
	return call[CreateCommitResult](ctx, c, "CreateCommit", params)
}

// GetCommitRequest is the input of GetCommit.
type GetCommitRequest struct {
	RepositoryName *string `json:"repositoryName,omitempty" validate:"required,min=1,max=100"`
	CommitID       *string `json:"commitId,omitempty" validate:"required"`
}

func (r GetCommitRequest) String() string { return types.Stringify(r) }

type GetCommitResult struct {
	Commit *types.Commit `json:"commit,omitempty"`
}

func (r GetCommitResult) String() string { return types.Stringify(r) }

// GetCommit returns a commit.
func (c *Client) GetCommit(ctx context.Context, params *GetCommitRequest) (*GetCommitResult, error) {
	return call[GetCommitResult](ctx, c, "GetCommit", params)
}

// GetDifferencesRequest is the input of GetDifferences.
type GetDifferencesRequest struct {
	RepositoryName        *string `json:"repositoryName,omitempty" validate:"required,min=1,max=100"`
	BeforeCommitSpecifier *string `json:"beforeCommitSpecifier,omitempty"`
	AfterCommitSpecifier  *string `json:"afterCommitSpecifier,omitempty" validate:"required"`
	BeforePath            *string `json:"beforePath,omitempty"`
	AfterPath             *string `json:"afterPath,omitempty"`
	MaxResults            *int32  `json:"MaxResults,omitempty" validate:"omitempty,min=1"`
	NextToken             *string `json:"NextToken,omitempty"`
}

func (r GetDifferencesRequest) String() string { return types.Stringify(r) }

type GetDifferencesResult struct {
	Differences []types.Difference `json:"differences,omitempty"`
	NextToken   *string            `json:"NextToken,omitempty"`
}

func (r GetDifferencesResult) String() string { return types.Stringify(r) }

// GetDifferences lists the differences between two commit specifiers.
func (c *Client) GetDifferences(ctx context.Context, params *GetDifferencesRequest) (*GetDifferencesResult, error) {
	return call[GetDifferencesResult](ctx, c, "GetDifferences", params)
}

// GetBlobRequest is the input of GetBlob.
type GetBlobRequest struct {
	RepositoryName *string `json:"repositoryName,omitempty" validate:"required,min=1,max=100"`
	BlobID         *string `json:"blobId,omitempty" validate:"required"`
}

func (r GetBlobRequest) String() string { return types.Stringify(r) }

type GetBlobResult struct {
	Content []byte `json:"content,omitempty"`
}

func (r GetBlobResult) String() string { return types.Stringify(r) }

// GetBlob returns the raw content of a blob.
func (c *Client) GetBlob(ctx context.Context, params *GetBlobRequest) (*GetBlobResult, error) {
	out, err := call[GetBlobResult](ctx, c, "GetBlob", params)
	if err != nil {
		return nil, err
	}
	if err := c.verifyContent("GetBlob", params.BlobID, out.Content); err != nil {
		return nil, err
	}
	return out, nil
}

// GetFileRequest is the input of GetFile.
type GetFileRequest struct {
	RepositoryName  *string `json:"repositoryName,omitempty" validate:"required,min=1,max=100"`
	CommitSpecifier *string `json:"commitSpecifier,omitempty"`
	FilePath        *string `json:"filePath,omitempty" validate:"required"`
}

func (r GetFileRequest) String() string { return types.Stringify(r) }

type GetFileResult struct {
	CommitID    *string                `json:"commitId,omitempty"`
	BlobID      *string                `json:"blobId,omitempty"`
	FilePath    *string                `json:"filePath,omitempty"`
	FileMode    types.FileModeTypeEnum `json:"fileMode,omitempty"`
	FileSize    *int64                 `json:"fileSize,omitempty"`
	FileContent []byte                 `json:"fileContent,omitempty"`
}

func (r GetFileResult) String() string { return types.Stringify(r) }

// GetFile returns a file and its metadata at a commit specifier.
func (c *Client) GetFile(ctx context.Context, params *GetFileRequest) (*GetFileResult, error) {
	out, err := call[GetFileResult](ctx, c, "GetFile", params)
	if err != nil {
		return nil, err
	}
	if err := c.verifyContent("GetFile", out.BlobID, out.FileContent); err != nil {
		return nil, err
	}
	return out, nil
}

// GetFolderRequest is the input of GetFolder.
type GetFolderRequest struct {
	RepositoryName  *string `json:"repositoryName,omitempty" validate:"required,min=1,max=100"`
	CommitSpecifier *string `json:"commitSpecifier,omitempty"`
	FolderPath      *string `json:"folderPath,omitempty" validate:"required"`
}

func (r GetFolderRequest) String() string { return types.Stringify(r) }

type GetFolderResult struct {
	CommitID      *string              `json:"commitId,omitempty"`
	FolderPath    *string              `json:"folderPath,omitempty"`
	TreeID        *string              `json:"treeId,omitempty"`
	SubFolders    []types.Folder       `json:"subFolders,omitempty"`
	Files         []types.File         `json:"files,omitempty"`
	SymbolicLinks []types.SymbolicLink `json:"symbolicLinks,omitempty"`
	SubModules    []types.SubModule    `json:"subModules,omitempty"`
}

func (r GetFolderResult) String() string { return types.Stringify(r) }

// GetFolder returns the contents of a folder at a commit specifier.
func (c *Client) GetFolder(ctx context.Context, params *GetFolderRequest) (*GetFolderResult, error) {
	return call[GetFolderResult](ctx, c, "GetFolder", params)
}

// PutFileRequest is the input of PutFile.
type PutFileRequest struct {
	RepositoryName *string                `json:"repositoryName,omitempty" validate:"required,min=1,max=100"`
	BranchName     *string                `json:"branchName,omitempty" validate:"required,min=1,max=256"`
	FileContent    []byte                 `json:"fileContent" validate:"required"`
	FilePath       *string                `json:"filePath,omitempty" validate:"required"`
	FileMode       types.FileModeTypeEnum `json:"fileMode,omitempty" validate:"omitempty,enum"`
	ParentCommitID *string                `json:"parentCommitId,omitempty"`
	CommitMessage  *string                `json:"commitMessage,omitempty"`
	Name           *string                `json:"name,omitempty"`
	Email          *string                `json:"email,omitempty"`
}

func (r PutFileRequest) String() string { return types.Stringify(r) }

type PutFileResult struct {
	CommitID *string `json:"commitId,omitempty"`
	BlobID   *string `json:"blobId,omitempty"`
	TreeID   *string `json:"treeId,omitempty"`
}

func (r PutFileResult) String() string { return types.Stringify(r) }

// PutFile adds or updates a single file on a branch and commits the change.
func (c *Client) PutFile(ctx context.Context, params *PutFileRequest) (*PutFileResult, error) {
	return call[PutFileResult](ctx, c, "PutFile", params)
}

// DeleteFileRequest is the input of DeleteFile.
type DeleteFileRequest struct {
	RepositoryName   *string `json:"repositoryName,omitempty" validate:"required,min=1,max=100"`
	BranchName       *string `json:"branchName,omitempty" validate:"required,min=1,max=256"`
	FilePath         *string `json:"filePath,omitempty" validate:"required"`
	ParentCommitID   *string `json:"parentCommitId,omitempty" validate:"required"`
	KeepEmptyFolders *bool   `json:"keepEmptyFolders,omitempty"`
	CommitMessage    *string `json:"commitMessage,omitempty"`
	Name             *string `json:"name,omitempty"`
	Email            *string `json:"email,omitempty"`
}

func (r DeleteFileRequest) String() string { return types.Stringify(r) }

type DeleteFileResult struct {
	CommitID *string `json:"commitId,omitempty"`
	BlobID   *string `json:"blobId,omitempty"`
	TreeID   *string `json:"treeId,omitempty"`
	FilePath *string `json:"filePath,omitempty"`
}

func (r DeleteFileResult) String() string { return types.Stringify(r) }

// DeleteFile deletes a file from a branch and commits the change.
func (c *Client) DeleteFile(ctx context.Context, params *DeleteFileRequest) (*DeleteFileResult, error) {
	return call[DeleteFileResult](ctx, c, "DeleteFile", params)
}
