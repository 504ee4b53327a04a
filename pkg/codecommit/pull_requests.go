package codecommit

import (
	"context"
	"slices"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/bravo68web/codecommit/pkg/codecommit/types"
	"github.com/google/uuid"
)

// CreatePullRequestRequest is the input of CreatePullRequest.
type CreatePullRequestRequest struct {
	Title              *string        `json:"title,omitempty" validate:"required,min=1,max=150"`
	Description        *string        `json:"description,omitempty" validate:"omitempty,max=10240"`
	Targets            []types.Target `json:"targets,omitempty" validate:"required,min=1,dive"`
	ClientRequestToken *string        `json:"clientRequestToken,omitempty"`
}

func (r CreatePullRequestRequest) String() string { return types.Stringify(r) }

// WithTargets sets Targets to a copy of targets.
func (r *CreatePullRequestRequest) WithTargets(targets ...types.Target) *CreatePullRequestRequest {
	r.Targets = slices.Clone(targets)
	return r
}

type CreatePullRequestResult struct {
	PullRequest *types.PullRequest `json:"pullRequest,omitempty"`
}

func (r CreatePullRequestResult) String() string { return types.Stringify(r) }

// CreatePullRequest opens a pull request. A missing ClientRequestToken is
// generated so that retried calls stay idempotent.
func (c *Client) CreatePullRequest(ctx context.Context, params *CreatePullRequestRequest) (*CreatePullRequestResult, error) {
	if params != nil && params.ClientRequestToken == nil {
		cp := *params
		cp.ClientRequestToken = aws.String(uuid.NewString())
		params = &cp
	}
	return call[CreatePullRequestResult](ctx, c, "CreatePullRequest", params)
}

// DescribePullRequestEventsRequest is the input of DescribePullRequestEvents.
type DescribePullRequestEventsRequest struct {
	PullRequestID        *string                    `json:"pullRequestId,omitempty" validate:"required"`
	PullRequestEventType types.PullRequestEventType `json:"pullRequestEventType,omitempty" validate:"omitempty,enum"`
	ActorArn             *string                    `json:"actorArn,omitempty"`
	NextToken            *string                    `json:"nextToken,omitempty"`
	MaxResults           *int32                     `json:"maxResults,omitempty" validate:"omitempty,min=1,max=100"`
}

func (r DescribePullRequestEventsRequest) String() string { return types.Stringify(r) }

type DescribePullRequestEventsResult struct {
	PullRequestEvents []types.PullRequestEvent `json:"pullRequestEvents,omitempty"`
	NextToken         *string                  `json:"nextToken,omitempty"`
}

func (r DescribePullRequestEventsResult) String() string { return types.Stringify(r) }

// DescribePullRequestEvents returns the event history of a pull request.
func (c *Client) DescribePullRequestEvents(ctx context.Context, params *DescribePullRequestEventsRequest) (*DescribePullRequestEventsResult, error) {
	return call[DescribePullRequestEventsResult](ctx, c, "DescribePullRequestEvents", params)
}

// GetPullRequestRequest is the input of GetPullRequest.
type GetPullRequestRequest struct {
	PullRequestID *string `json:"pullRequestId,omitempty" validate:"required"`
}

func (r GetPullRequestRequest) String() string { return types.Stringify(r) }

type GetPullRequestResult struct {
	PullRequest *types.PullRequest `json:"pullRequest,omitempty"`
}

func (r GetPullRequestResult) String() string { return types.Stringify(r) }

// GetPullRequest returns a pull request.
func (c *Client) GetPullRequest(ctx context.Context, params *GetPullRequestRequest) (*GetPullRequestResult, error) {
	return call[GetPullRequestResult](ctx, c, "GetPullRequest", params)
}

// ListPullRequestsRequest is the input of ListPullRequests.
type ListPullRequestsRequest struct {
	RepositoryName    *string                     `json:"repositoryName,omitempty" validate:"required,min=1,max=100"`
	AuthorArn         *string                     `json:"authorArn,omitempty"`
	PullRequestStatus types.PullRequestStatusEnum `json:"pullRequestStatus,omitempty" validate:"omitempty,enum"`
	NextToken         *string                     `json:"nextToken,omitempty"`
	MaxResults        *int32                      `json:"maxResults,omitempty" validate:"omitempty,min=1,max=1000"`
}

func (r ListPullRequestsRequest) String() string { return types.Stringify(r) }

type ListPullRequestsResult struct {
	PullRequestIDs []string `json:"pullRequestIds,omitempty"`
	NextToken      *string  `json:"nextToken,omitempty"`
}

func (r ListPullRequestsResult) String() string { return types.Stringify(r) }

// ListPullRequests lists the pull request IDs of a repository.
func (c *Client) ListPullRequests(ctx context.Context, params *ListPullRequestsRequest) (*ListPullRequestsResult, error) {
	return call[ListPullRequestsResult](ctx, c, "ListPullRequests", params)
}

// MergePullRequestByFastForwardRequest is the input of MergePullRequestByFastForward.
type MergePullRequestByFastForwardRequest struct {
	PullRequestID  *string `json:"pullRequestId,omitempty" validate:"required"`
	RepositoryName *string `json:"repositoryName,omitempty" validate:"required,min=1,max=100"`
	SourceCommitID *string `json:"sourceCommitId,omitempty"`
}

func (r MergePullRequestByFastForwardRequest) String() string { return types.Stringify(r) }

type MergePullRequestByFastForwardResult struct {
	PullRequest *types.PullRequest `json:"pullRequest,omitempty"`
}

func (r MergePullRequestByFastForwardResult) String() string { return types.Stringify(r) }

// MergePullRequestByFastForward merges a pull request with the fast-forward strategy.
func (c *Client) MergePullRequestByFastForward(ctx context.Context, params *MergePullRequestByFastForwardRequest) (*MergePullRequestByFastForwardResult, error) {
	return call[MergePullRequestByFastForwardResult](ctx, c, "MergePullRequestByFastForward", params)
}

// MergePullRequestBySquashRequest is the input of MergePullRequestBySquash.
type MergePullRequestBySquashRequest struct {
	PullRequestID              *string                                  `json:"pullRequestId,omitempty" validate:"required"`
	RepositoryName             *string                                  `json:"repositoryName,omitempty" validate:"required,min=1,max=100"`
	SourceCommitID             *string                                  `json:"sourceCommitId,omitempty"`
	ConflictDetailLevel        types.ConflictDetailLevelTypeEnum        `json:"conflictDetailLevel,omitempty" validate:"omitempty,enum"`
	ConflictResolutionStrategy types.ConflictResolutionStrategyTypeEnum `json:"conflictResolutionStrategy,omitempty" validate:"omitempty,enum"`
	AuthorName                 *string                                  `json:"authorName,omitempty"`
	Email                      *string                                  `json:"email,omitempty"`
	CommitMessage              *string                                  `json:"commitMessage,omitempty"`
	KeepEmptyFolders           *bool                                    `json:"keepEmptyFolders,omitempty"`
	ConflictResolution         *types.ConflictResolution                `json:"conflictResolution,omitempty"`
}

func (r MergePullRequestBySquashRequest) String() string { return types.Stringify(r) }

type MergePullRequestBySquashResult struct {
	PullRequest *types.PullRequest `json:"pullRequest,omitempty"`
}

func (r MergePullRequestBySquashResult) String() string { return types.Stringify(r) }

// MergePullRequestBySquash merges a pull request with the squash strategy.
func (c *Client) MergePullRequestBySquash(ctx context.Context, params *MergePullRequestBySquashRequest) (*MergePullRequestBySquashResult, error) {
	return call[MergePullRequestBySquashResult](ctx, c, "MergePullRequestBySquash", params)
}

// MergePullRequestByThreeWayRequest is the input of MergePullRequestByThreeWay.
type MergePullRequestByThreeWayRequest struct {
	PullRequestID              *string                                  `json:"pullRequestId,omitempty" validate:"required"`
	RepositoryName             *string                                  `json:"repositoryName,omitempty" validate:"required,min=1,max=100"`
	SourceCommitID             *string                                  `json:"sourceCommitId,omitempty"`
	ConflictDetailLevel        types.ConflictDetailLevelTypeEnum        `json:"conflictDetailLevel,omitempty" validate:"omitempty,enum"`
	ConflictResolutionStrategy types.ConflictResolutionStrategyTypeEnum `json:"conflictResolutionStrategy,omitempty" validate:"omitempty,enum"`
	AuthorName                 *string                                  `json:"authorName,omitempty"`
	Email                      *string                                  `json:"email,omitempty"`
	CommitMessage              *string                                  `json:"commitMessage,omitempty"`
	KeepEmptyFolders           *bool                                    `json:"keepEmptyFolders,omitempty"`
	ConflictResolution         *types.ConflictResolution                `json:"conflictResolution,omitempty"`
}

func (r MergePullRequestByThreeWayRequest) String() string { return types.Stringify(r) }

type MergePullRequestByThreeWayResult struct {
	PullRequest *types.PullRequest `json:"pullRequest,omitempty"`
}

func (r MergePullRequestByThreeWayResult) String() string { return types.Stringify(r) }

// MergePullRequestByThreeWay merges a pull request with the three-way strategy.
func (c *Client) MergePullRequestByThreeWay(ctx context.Context, params *MergePullRequestByThreeWayRequest) (*MergePullRequestByThreeWayResult, error) {
	return call[MergePullRequestByThreeWayResult](ctx, c, "MergePullRequestByThreeWay", params)
}

// UpdatePullRequestDescriptionRequest is the input of UpdatePullRequestDescription.
type UpdatePullRequestDescriptionRequest struct {
	PullRequestID *string `json:"pullRequestId,omitempty" validate:"required"`
	Description   *string `json:"description,omitempty" validate:"required,max=10240"`
}

func (r UpdatePullRequestDescriptionRequest) String() string { return types.Stringify(r) }

type UpdatePullRequestDescriptionResult struct {
	PullRequest *types.PullRequest `json:"pullRequest,omitempty"`
}

func (r UpdatePullRequestDescriptionResult) String() string { return types.Stringify(r) }

// UpdatePullRequestDescription replaces the description of a pull request.
func (c *Client) UpdatePullRequestDescription(ctx context.Context, params *UpdatePullRequestDescriptionRequest) (*UpdatePullRequestDescriptionResult, error) {
	return call[UpdatePullRequestDescriptionResult](ctx, c, "UpdatePullRequestDescription", params)
}

// UpdatePullRequestStatusRequest is the input of UpdatePullRequestStatus.
type UpdatePullRequestStatusRequest struct {
	PullRequestID     *string                     `json:"pullRequestId,omitempty" validate:"required"`
	PullRequestStatus types.PullRequestStatusEnum `json:"pullRequestStatus,omitempty" validate:"required,enum"`
}

func (r UpdatePullRequestStatusRequest) String() string { return types.Stringify(r) }

type UpdatePullRequestStatusResult struct {
	PullRequest *types.PullRequest `json:"pullRequest,omitempty"`
}

func (r UpdatePullRequestStatusResult) String() string { return types.Stringify(r) }

// UpdatePullRequestStatus opens or closes a pull request.
func (c *Client) UpdatePullRequestStatus(ctx context.Context, params *UpdatePullRequestStatusRequest) (*UpdatePullRequestStatusResult, error) {
	return call[UpdatePullRequestStatusResult](ctx, c, "UpdatePullRequestStatus", params)
}

// UpdatePullRequestTitleRequest is the input of UpdatePullRequestTitle.
type UpdatePullRequestTitleRequest struct {
	PullRequestID *string `json:"pullRequestId,omitempty" validate:"required"`
	Title         *string `json:"title,omitempty" validate:"required,min=1,max=150"`
}

func (r UpdatePullRequestTitleRequest) String() string { return types.Stringify(r) }

type UpdatePullRequestTitleResult struct {
	PullRequest *types.PullRequest `json:"pullRequest,omitempty"`
}

func (r UpdatePullRequestTitleResult) String() string { return types.Stringify(r) }

// UpdatePullRequestTitle replaces the title of a pull request.
func (c *Client) UpdatePullRequestTitle(ctx context.Context, params *UpdatePullRequestTitleRequest) (*UpdatePullRequestTitleResult, error) {
	return call[UpdatePullRequestTitleResult](ctx, c, "UpdatePullRequestTitle", params)
}

// EvaluatePullRequestApprovalRulesRequest is the input of EvaluatePullRequestApprovalRules.
type EvaluatePullRequestApprovalRulesRequest struct {
	PullRequestID *string `json:"pullRequestId,omitempty" validate:"required"`
	RevisionID    *string `json:"revisionId,omitempty" validate:"required"`
}

func (r EvaluatePullRequestApprovalRulesRequest) String() string { return types.Stringify(r) }

type EvaluatePullRequestApprovalRulesResult struct {
	Evaluation *types.Evaluation `json:"evaluation,omitempty"`
}

func (r EvaluatePullRequestApprovalRulesResult) String() string { return types.Stringify(r) }

// EvaluatePullRequestApprovalRules reports whether a pull request revision meets its approval rules.
func (c *Client) EvaluatePullRequestApprovalRules(ctx context.Context, params *EvaluatePullRequestApprovalRulesRequest) (*EvaluatePullRequestApprovalRulesResult, error) {
	return call[EvaluatePullRequestApprovalRulesResult](ctx, c, "EvaluatePullRequestApprovalRules", params)
}

// GetPullRequestApprovalStatesRequest is the input of GetPullRequestApprovalStates.
type GetPullRequestApprovalStatesRequest struct {
	PullRequestID *string `json:"pullRequestId,omitempty" validate:"required"`
	RevisionID    *string `json:"revisionId,omitempty" validate:"required"`
}

func (r GetPullRequestApprovalStatesRequest) String() string { return types.Stringify(r) }

type GetPullRequestApprovalStatesResult struct {
	Approvals []types.Approval `json:"approvals,omitempty"`
}

func (r GetPullRequestApprovalStatesResult) String() string { return types.Stringify(r) }

// GetPullRequestApprovalStates lists the approvals of a pull request revision.
func (c *Client) GetPullRequestApprovalStates(ctx context.Context, params *GetPullRequestApprovalStatesRequest) (*GetPullRequestApprovalStatesResult, error) {
	return call[GetPullRequestApprovalStatesResult](ctx, c, "GetPullRequestApprovalStates", params)
}

// GetPullRequestOverrideStateRequest is the input of GetPullRequestOverrideState.
type GetPullRequestOverrideStateRequest struct {
	PullRequestID *string `json:"pullRequestId,omitempty" validate:"required"`
	RevisionID    *string `json:"revisionId,omitempty" validate:"required"`
}

func (r GetPullRequestOverrideStateRequest) String() string { return types.Stringify(r) }

type GetPullRequestOverrideStateResult struct {
	Overridden *bool   `json:"overridden,omitempty"`
	Overrider  *string `json:"overrider,omitempty"`
}

func (r GetPullRequestOverrideStateResult) String() string { return types.Stringify(r) }

// GetPullRequestOverrideState reports whether the approval rules of a revision were overridden.
func (c *Client) GetPullRequestOverrideState(ctx context.Context, params *GetPullRequestOverrideStateRequest) (*GetPullRequestOverrideStateResult, error) {
	return call[GetPullRequestOverrideStateResult](ctx, c, "GetPullRequestOverrideState", params)
}

// OverridePullRequestApprovalRulesRequest is the input of OverridePullRequestApprovalRules.
type OverridePullRequestApprovalRulesRequest struct {
	PullRequestID  *string              `json:"pullRequestId,omitempty" validate:"required"`
	RevisionID     *string              `json:"revisionId,omitempty" validate:"required"`
	OverrideStatus types.OverrideStatus `json:"overrideStatus,omitempty" validate:"required,enum"`
}

func (r OverridePullRequestApprovalRulesRequest) String() string { return types.Stringify(r) }

// OverridePullRequestApprovalRules sets or revokes an override of all approval rules of a revision.
func (c *Client) OverridePullRequestApprovalRules(ctx context.Context, params *OverridePullRequestApprovalRulesRequest) error {
	return callNoResult(ctx, c, "OverridePullRequestApprovalRules", params)
}

// UpdatePullRequestApprovalStateRequest is the input of UpdatePullRequestApprovalState.
type UpdatePullRequestApprovalStateRequest struct {
	PullRequestID *string             `json:"pullRequestId,omitempty" validate:"required"`
	RevisionID    *string             `json:"revisionId,omitempty" validate:"required"`
	ApprovalState types.ApprovalState `json:"approvalState,omitempty" validate:"required,enum"`
}

func (r UpdatePullRequestApprovalStateRequest) String() string { return types.Stringify(r) }

// UpdatePullRequestApprovalState approves a revision or revokes an approval.
func (c *Client) UpdatePullRequestApprovalState(ctx context.Context, params *UpdatePullRequestApprovalStateRequest) error {
	return callNoResult(ctx, c, "UpdatePullRequestApprovalState", params)
}
