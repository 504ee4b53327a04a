package types

import (
	"slices"
	"time"
)

// RepositoryMetadata describes a repository.
type RepositoryMetadata struct {
	AccountID             *string    `json:"accountId,omitempty"`
	RepositoryID          *string    `json:"repositoryId,omitempty"`
	RepositoryName        *string    `json:"repositoryName,omitempty"`
	RepositoryDescription *string    `json:"repositoryDescription,omitempty"`
	DefaultBranch         *string    `json:"defaultBranch,omitempty"`
	LastModifiedDate      *time.Time `json:"lastModifiedDate,omitempty"`
	CreationDate          *time.Time `json:"creationDate,omitempty"`
	CloneURLHTTP          *string    `json:"cloneUrlHttp,omitempty"`
	CloneURLSSH           *string    `json:"cloneUrlSsh,omitempty"`
	Arn                   *string    `json:"Arn,omitempty"`
}

func (s RepositoryMetadata) String() string { return Stringify(s) }

// RepositoryNameIdPair pairs a repository name with its ID.
type RepositoryNameIdPair struct {
	RepositoryName *string `json:"repositoryName,omitempty"`
	RepositoryID   *string `json:"repositoryId,omitempty"`
}

func (s RepositoryNameIdPair) String() string { return Stringify(s) }

// BranchInfo names a branch and the commit at its tip.
type BranchInfo struct {
	BranchName *string `json:"branchName,omitempty"`
	CommitID   *string `json:"commitId,omitempty"`
}

func (s BranchInfo) String() string { return Stringify(s) }

// RepositoryTrigger describes a trigger that notifies a destination on repository events.
type RepositoryTrigger struct {
	Name           *string                      `json:"name,omitempty" validate:"required"`
	DestinationArn *string                      `json:"destinationArn,omitempty" validate:"required"`
	CustomData     *string                      `json:"customData,omitempty"`
	Branches       []string                     `json:"branches,omitempty"`
	Events         []RepositoryTriggerEventEnum `json:"events,omitempty" validate:"required,dive,enum"`
}

func (s RepositoryTrigger) String() string { return Stringify(s) }

// WithBranches sets Branches to a copy of branches.
func (s *RepositoryTrigger) WithBranches(branches ...string) *RepositoryTrigger {
	s.Branches = slices.Clone(branches)
	return s
}

// WithEvents sets Events to a copy of events.
func (s *RepositoryTrigger) WithEvents(events ...RepositoryTriggerEventEnum) *RepositoryTrigger {
	s.Events = slices.Clone(events)
	return s
}

// RepositoryTriggerExecutionFailure reports a trigger that failed a test run.
type RepositoryTriggerExecutionFailure struct {
	Trigger        *string `json:"trigger,omitempty"`
	FailureMessage *string `json:"failureMessage,omitempty"`
}

func (s RepositoryTriggerExecutionFailure) String() string { return Stringify(s) }
