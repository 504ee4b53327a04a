package types

import "time"

// Target names the source and destination references of a new pull request.
type Target struct {
	RepositoryName       *string `json:"repositoryName,omitempty" validate:"required,min=1,max=100"`
	SourceReference      *string `json:"sourceReference,omitempty" validate:"required"`
	DestinationReference *string `json:"destinationReference,omitempty"`
}

func (s Target) String() string { return Stringify(s) }

// PullRequestTarget is the resolved source and destination of a pull request.
type PullRequestTarget struct {
	RepositoryName       *string        `json:"repositoryName,omitempty"`
	SourceReference      *string        `json:"sourceReference,omitempty"`
	DestinationReference *string        `json:"destinationReference,omitempty"`
	DestinationCommit    *string        `json:"destinationCommit,omitempty"`
	SourceCommit         *string        `json:"sourceCommit,omitempty"`
	MergeBase            *string        `json:"mergeBase,omitempty"`
	MergeMetadata        *MergeMetadata `json:"mergeMetadata,omitempty"`
}

func (s PullRequestTarget) String() string { return Stringify(s) }

type PullRequest struct {
	PullRequestID      *string               `json:"pullRequestId,omitempty"`
	Title              *string               `json:"title,omitempty"`
	Description        *string               `json:"description,omitempty"`
	LastActivityDate   *time.Time            `json:"lastActivityDate,omitempty"`
	CreationDate       *time.Time            `json:"creationDate,omitempty"`
	PullRequestStatus  PullRequestStatusEnum `json:"pullRequestStatus,omitempty"`
	AuthorArn          *string               `json:"authorArn,omitempty"`
	PullRequestTargets []PullRequestTarget   `json:"pullRequestTargets,omitempty"`
	ClientRequestToken *string               `json:"clientRequestToken,omitempty"`
	RevisionID         *string               `json:"revisionId,omitempty"`
	ApprovalRules      []ApprovalRule        `json:"approvalRules,omitempty"`
}

func (s PullRequest) String() string { return Stringify(s) }

type PullRequestCreatedEventMetadata struct {
	RepositoryName      *string `json:"repositoryName,omitempty"`
	SourceCommitID      *string `json:"sourceCommitId,omitempty"`
	DestinationCommitID *string `json:"destinationCommitId,omitempty"`
	MergeBase           *string `json:"mergeBase,omitempty"`
}

func (s PullRequestCreatedEventMetadata) String() string { return Stringify(s) }

type PullRequestStatusChangedEventMetadata struct {
	PullRequestStatus PullRequestStatusEnum `json:"pullRequestStatus,omitempty"`
}

func (s PullRequestStatusChangedEventMetadata) String() string { return Stringify(s) }

type PullRequestSourceReferenceUpdatedEventMetadata struct {
	RepositoryName *string `json:"repositoryName,omitempty"`
	BeforeCommitID *string `json:"beforeCommitId,omitempty"`
	AfterCommitID  *string `json:"afterCommitId,omitempty"`
	MergeBase      *string `json:"mergeBase,omitempty"`
}

func (s PullRequestSourceReferenceUpdatedEventMetadata) String() string { return Stringify(s) }

type PullRequestMergedStateChangedEventMetadata struct {
	RepositoryName       *string        `json:"repositoryName,omitempty"`
	DestinationReference *string        `json:"destinationReference,omitempty"`
	MergeMetadata        *MergeMetadata `json:"mergeMetadata,omitempty"`
}

func (s PullRequestMergedStateChangedEventMetadata) String() string { return Stringify(s) }

type ApprovalRuleEventMetadata struct {
	ApprovalRuleName    *string `json:"approvalRuleName,omitempty"`
	ApprovalRuleID      *string `json:"approvalRuleId,omitempty"`
	ApprovalRuleContent *string `json:"approvalRuleContent,omitempty"`
}

func (s ApprovalRuleEventMetadata) String() string { return Stringify(s) }

type ApprovalStateChangedEventMetadata struct {
	RevisionID     *string       `json:"revisionId,omitempty"`
	ApprovalStatus ApprovalState `json:"approvalStatus,omitempty"`
}

func (s ApprovalStateChangedEventMetadata) String() string { return Stringify(s) }

type ApprovalRuleOverriddenEventMetadata struct {
	RevisionID     *string        `json:"revisionId,omitempty"`
	OverrideStatus OverrideStatus `json:"overrideStatus,omitempty"`
}

func (s ApprovalRuleOverriddenEventMetadata) String() string { return Stringify(s) }

// PullRequestEvent is one entry of a pull request's history. At most one of the
// metadata fields is set, selected by PullRequestEventType; see Metadata.
type PullRequestEvent struct {
	PullRequestID                                  *string                                         `json:"pullRequestId,omitempty"`
	EventDate                                      *time.Time                                      `json:"eventDate,omitempty"`
	PullRequestEventType                           PullRequestEventType                            `json:"pullRequestEventType,omitempty"`
	ActorArn                                       *string                                         `json:"actorArn,omitempty"`
	PullRequestCreatedEventMetadata                *PullRequestCreatedEventMetadata                `json:"pullRequestCreatedEventMetadata,omitempty"`
	PullRequestStatusChangedEventMetadata          *PullRequestStatusChangedEventMetadata          `json:"pullRequestStatusChangedEventMetadata,omitempty"`
	PullRequestSourceReferenceUpdatedEventMetadata *PullRequestSourceReferenceUpdatedEventMetadata `json:"pullRequestSourceReferenceUpdatedEventMetadata,omitempty"`
	PullRequestMergedStateChangedEventMetadata     *PullRequestMergedStateChangedEventMetadata     `json:"pullRequestMergedStateChangedEventMetadata,omitempty"`
	ApprovalRuleEventMetadata                      *ApprovalRuleEventMetadata                      `json:"approvalRuleEventMetadata,omitempty"`
	ApprovalStateChangedEventMetadata              *ApprovalStateChangedEventMetadata              `json:"approvalStateChangedEventMetadata,omitempty"`
	ApprovalRuleOverriddenEventMetadata            *ApprovalRuleOverriddenEventMetadata            `json:"approvalRuleOverriddenEventMetadata,omitempty"`
}

func (s PullRequestEvent) String() string { return Stringify(s) }

// Metadata returns the metadata matching the event type, or nil when the
// event carries none. The returned value is one of the *...EventMetadata
// pointer types declared in this package.
func (e PullRequestEvent) Metadata() any {
	switch e.PullRequestEventType {
	case PullRequestEventTypePullRequestCreated:
		return nilIfAbsent(e.PullRequestCreatedEventMetadata)
	case PullRequestEventTypePullRequestStatusChanged:
		return nilIfAbsent(e.PullRequestStatusChangedEventMetadata)
	case PullRequestEventTypePullRequestSourceReferenceUpdated:
		return nilIfAbsent(e.PullRequestSourceReferenceUpdatedEventMetadata)
	case PullRequestEventTypePullRequestMergeStateChanged:
		return nilIfAbsent(e.PullRequestMergedStateChangedEventMetadata)
	case PullRequestEventTypePullRequestApprovalRuleCreated,
		PullRequestEventTypePullRequestApprovalRuleUpdated,
		PullRequestEventTypePullRequestApprovalRuleDeleted:
		return nilIfAbsent(e.ApprovalRuleEventMetadata)
	case PullRequestEventTypePullRequestApprovalRuleOverridden:
		return nilIfAbsent(e.ApprovalRuleOverriddenEventMetadata)
	case PullRequestEventTypePullRequestApprovalStateChanged:
		return nilIfAbsent(e.ApprovalStateChangedEventMetadata)
	}
	return nil
}

func nilIfAbsent[T any](p *T) any {
	if p == nil {
		return nil
	}
	return p
}
