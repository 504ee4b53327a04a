package types

import "slices"

// FileModes holds the file mode of a conflicted file in each version.
type FileModes struct {
	Source      FileModeTypeEnum `json:"source,omitempty"`
	Destination FileModeTypeEnum `json:"destination,omitempty"`
	Base        FileModeTypeEnum `json:"base,omitempty"`
}

func (s FileModes) String() string { return Stringify(s) }

type FileSizes struct {
	Source      *int64 `json:"source,omitempty"`
	Destination *int64 `json:"destination,omitempty"`
	Base        *int64 `json:"base,omitempty"`
}

func (s FileSizes) String() string { return Stringify(s) }

type IsBinaryFile struct {
	Source      *bool `json:"source,omitempty"`
	Destination *bool `json:"destination,omitempty"`
	Base        *bool `json:"base,omitempty"`
}

func (s IsBinaryFile) String() string { return Stringify(s) }

type ObjectTypes struct {
	Source      ObjectTypeEnum `json:"source,omitempty"`
	Destination ObjectTypeEnum `json:"destination,omitempty"`
	Base        ObjectTypeEnum `json:"base,omitempty"`
}

func (s ObjectTypes) String() string { return Stringify(s) }

// MergeOperations holds the change type applied on each side of a merge.
type MergeOperations struct {
	Source      ChangeTypeEnum `json:"source,omitempty"`
	Destination ChangeTypeEnum `json:"destination,omitempty"`
}

func (s MergeOperations) String() string { return Stringify(s) }

// ConflictMetadata summarizes the conflicts in one file.
type ConflictMetadata struct {
	FilePath           *string          `json:"filePath,omitempty"`
	FileSizes          *FileSizes       `json:"fileSizes,omitempty"`
	FileModes          *FileModes       `json:"fileModes,omitempty"`
	ObjectTypes        *ObjectTypes     `json:"objectTypes,omitempty"`
	NumberOfConflicts  *int32           `json:"numberOfConflicts,omitempty"`
	IsBinaryFile       *IsBinaryFile    `json:"isBinaryFile,omitempty"`
	ContentConflict    *bool            `json:"contentConflict,omitempty"`
	FileModeConflict   *bool            `json:"fileModeConflict,omitempty"`
	ObjectTypeConflict *bool            `json:"objectTypeConflict,omitempty"`
	MergeOperations    *MergeOperations `json:"mergeOperations,omitempty"`
}

func (s ConflictMetadata) String() string { return Stringify(s) }

type MergeHunkDetail struct {
	StartLine   *int32  `json:"startLine,omitempty"`
	EndLine     *int32  `json:"endLine,omitempty"`
	HunkContent *string `json:"hunkContent,omitempty"`
}

func (s MergeHunkDetail) String() string { return Stringify(s) }

// MergeHunk is a block of lines that differs between merge sides.
type MergeHunk struct {
	IsConflict  *bool            `json:"isConflict,omitempty"`
	Source      *MergeHunkDetail `json:"source,omitempty"`
	Destination *MergeHunkDetail `json:"destination,omitempty"`
	Base        *MergeHunkDetail `json:"base,omitempty"`
}

func (s MergeHunk) String() string { return Stringify(s) }

type Conflict struct {
	ConflictMetadata *ConflictMetadata `json:"conflictMetadata,omitempty"`
	MergeHunks       []MergeHunk       `json:"mergeHunks,omitempty"`
}

func (s Conflict) String() string { return Stringify(s) }

// ReplaceContentEntry resolves a conflicted file by replacing its content.
type ReplaceContentEntry struct {
	FilePath        *string             `json:"filePath,omitempty" validate:"required"`
	ReplacementType ReplacementTypeEnum `json:"replacementType,omitempty" validate:"required,enum"`
	Content         []byte              `json:"content,omitempty"`
	FileMode        FileModeTypeEnum    `json:"fileMode,omitempty" validate:"omitempty,enum"`
}

func (s ReplaceContentEntry) String() string { return Stringify(s) }

// ConflictResolution lists the file-level resolutions applied when merging with conflicts.
type ConflictResolution struct {
	ReplaceContents []ReplaceContentEntry `json:"replaceContents,omitempty" validate:"omitempty,dive"`
	DeleteFiles     []DeleteFileEntry     `json:"deleteFiles,omitempty" validate:"omitempty,dive"`
	SetFileModes    []SetFileModeEntry    `json:"setFileModes,omitempty" validate:"omitempty,dive"`
}

func (s ConflictResolution) String() string { return Stringify(s) }

// WithReplaceContents sets ReplaceContents to a copy of replaceContents.
func (s *ConflictResolution) WithReplaceContents(replaceContents ...ReplaceContentEntry) *ConflictResolution {
	s.ReplaceContents = slices.Clone(replaceContents)
	return s
}

// WithDeleteFiles sets DeleteFiles to a copy of deleteFiles.
func (s *ConflictResolution) WithDeleteFiles(deleteFiles ...DeleteFileEntry) *ConflictResolution {
	s.DeleteFiles = slices.Clone(deleteFiles)
	return s
}

// WithSetFileModes sets SetFileModes to a copy of setFileModes.
func (s *ConflictResolution) WithSetFileModes(setFileModes ...SetFileModeEntry) *ConflictResolution {
	s.SetFileModes = slices.Clone(setFileModes)
	return s
}

// MergeMetadata reports whether and how a pull request was merged.
type MergeMetadata struct {
	IsMerged      *bool               `json:"isMerged,omitempty"`
	MergedBy      *string             `json:"mergedBy,omitempty"`
	MergeCommitID *string             `json:"mergeCommitId,omitempty"`
	MergeOption   MergeOptionTypeEnum `json:"mergeOption,omitempty"`
}

func (s MergeMetadata) String() string { return Stringify(s) }

type BatchDescribeMergeConflictsError struct {
	FilePath      *string `json:"filePath,omitempty"`
	ExceptionName *string `json:"exceptionName,omitempty"`
	Message       *string `json:"message,omitempty"`
}

func (s BatchDescribeMergeConflictsError) String() string { return Stringify(s) }
