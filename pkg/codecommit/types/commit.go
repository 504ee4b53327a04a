package types

// UserInfo identifies the author or committer of a commit.
type UserInfo struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
	Date  *string `json:"date,omitempty"`
}

func (s UserInfo) String() string { return Stringify(s) }

type Commit struct {
	CommitID       *string   `json:"commitId,omitempty"`
	TreeID         *string   `json:"treeId,omitempty"`
	Parents        []string  `json:"parents,omitempty"`
	Message        *string   `json:"message,omitempty"`
	Author         *UserInfo `json:"author,omitempty"`
	Committer      *UserInfo `json:"committer,omitempty"`
	AdditionalData *string   `json:"additionalData,omitempty"`
}

func (s Commit) String() string { return Stringify(s) }

// BatchGetCommitsError reports a commit that could not be returned by BatchGetCommits.
type BatchGetCommitsError struct {
	CommitID     *string `json:"commitId,omitempty"`
	ErrorCode    *string `json:"errorCode,omitempty"`
	ErrorMessage *string `json:"errorMessage,omitempty"`
}

func (s BatchGetCommitsError) String() string { return Stringify(s) }

// BlobMetadata describes a blob at a path.
type BlobMetadata struct {
	BlobID *string `json:"blobId,omitempty"`
	Path   *string `json:"path,omitempty"`
	Mode   *string `json:"mode,omitempty"`
}

func (s BlobMetadata) String() string { return Stringify(s) }

// Difference is one change between two commit specifiers.
type Difference struct {
	BeforeBlob *BlobMetadata  `json:"beforeBlob,omitempty"`
	AfterBlob  *BlobMetadata  `json:"afterBlob,omitempty"`
	ChangeType ChangeTypeEnum `json:"changeType,omitempty"`
}

func (s Difference) String() string { return Stringify(s) }

type File struct {
	BlobID       *string          `json:"blobId,omitempty"`
	AbsolutePath *string          `json:"absolutePath,omitempty"`
	RelativePath *string          `json:"relativePath,omitempty"`
	FileMode     FileModeTypeEnum `json:"fileMode,omitempty"`
}

func (s File) String() string { return Stringify(s) }

// FileMetadata describes a file touched by a commit.
type FileMetadata struct {
	AbsolutePath *string          `json:"absolutePath,omitempty"`
	BlobID       *string          `json:"blobId,omitempty"`
	FileMode     FileModeTypeEnum `json:"fileMode,omitempty"`
}

func (s FileMetadata) String() string { return Stringify(s) }

type Folder struct {
	TreeID       *string `json:"treeId,omitempty"`
	AbsolutePath *string `json:"absolutePath,omitempty"`
	RelativePath *string `json:"relativePath,omitempty"`
}

func (s Folder) String() string { return Stringify(s) }

type SubModule struct {
	CommitID     *string `json:"commitId,omitempty"`
	AbsolutePath *string `json:"absolutePath,omitempty"`
	RelativePath *string `json:"relativePath,omitempty"`
}

func (s SubModule) String() string { return Stringify(s) }

type SymbolicLink struct {
	BlobID       *string          `json:"blobId,omitempty"`
	AbsolutePath *string          `json:"absolutePath,omitempty"`
	RelativePath *string          `json:"relativePath,omitempty"`
	FileMode     FileModeTypeEnum `json:"fileMode,omitempty"`
}

func (s SymbolicLink) String() string { return Stringify(s) }

// SourceFileSpecifier points at an existing file to copy or move in a commit.
type SourceFileSpecifier struct {
	FilePath *string `json:"filePath,omitempty" validate:"required"`
	IsMove   *bool   `json:"isMove,omitempty"`
}

func (s SourceFileSpecifier) String() string { return Stringify(s) }

// PutFileEntry adds or updates a file in CreateCommit.
type PutFileEntry struct {
	FilePath    *string              `json:"filePath,omitempty" validate:"required"`
	FileMode    FileModeTypeEnum     `json:"fileMode,omitempty" validate:"omitempty,enum"`
	FileContent []byte               `json:"fileContent,omitempty"`
	SourceFile  *SourceFileSpecifier `json:"sourceFile,omitempty"`
}

func (s PutFileEntry) String() string { return Stringify(s) }

type DeleteFileEntry struct {
	FilePath *string `json:"filePath,omitempty" validate:"required"`
}

func (s DeleteFileEntry) String() string { return Stringify(s) }

type SetFileModeEntry struct {
	FilePath *string          `json:"filePath,omitempty" validate:"required"`
	FileMode FileModeTypeEnum `json:"fileMode,omitempty" validate:"required,enum"`
}

func (s SetFileModeEntry) String() string { return Stringify(s) }
