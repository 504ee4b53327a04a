package codecommit

import (
	"context"

	"github.com/bravo68web/codecommit/pkg/codecommit/types"
)

// CreatePullRequestApprovalRuleRequest is the input of CreatePullRequestApprovalRule.
type CreatePullRequestApprovalRuleRequest struct {
	PullRequestID       *string `json:"pullRequestId,omitempty" validate:"required"`
	ApprovalRuleName    *string `json:"approvalRuleName,omitempty" validate:"required,min=1,max=100"`
	ApprovalRuleContent *string `json:"approvalRuleContent,omitempty" validate:"required,min=1,max=3000"`
}

func (r CreatePullRequestApprovalRuleRequest) String() string { return types.Stringify(r) }

type CreatePullRequestApprovalRuleResult struct {
	ApprovalRule *types.ApprovalRule `json:"approvalRule,omitempty"`
}

func (r CreatePullRequestApprovalRuleResult) String() string { return types.Stringify(r) }

// CreatePullRequestApprovalRule adds an approval rule to a pull request.
func (c *Client) CreatePullRequestApprovalRule(ctx context.Context, params *CreatePullRequestApprovalRuleRequest) (*CreatePullRequestApprovalRuleResult, error) {
	return call[CreatePullRequestApprovalRuleResult](ctx, c, "CreatePullRequestApprovalRule", params)
}

// DeletePullRequestApprovalRuleRequest is the input of DeletePullRequestApprovalRule.
type DeletePullRequestApprovalRuleRequest struct {
	PullRequestID    *string `json:"pullRequestId,omitempty" validate:"required"`
	ApprovalRuleName *string `json:"approvalRuleName,omitempty" validate:"required,min=1,max=100"`
}

func (r DeletePullRequestApprovalRuleRequest) String() string { return types.Stringify(r) }

type DeletePullRequestApprovalRuleResult struct {
	ApprovalRuleID *string `json:"approvalRuleId,omitempty"`
}

func (r DeletePullRequestApprovalRuleResult) String() string { return types.Stringify(r) }

// DeletePullRequestApprovalRule removes an approval rule from a pull request.
func (c *Client) DeletePullRequestApprovalRule(ctx context.Context, params *DeletePullRequestApprovalRuleRequest) (*DeletePullRequestApprovalRuleResult, error) {
	return call[DeletePullRequestApprovalRuleResult](ctx, c, "DeletePullRequestApprovalRule", params)
}

// UpdatePullRequestApprovalRuleContentRequest is the input of UpdatePullRequestApprovalRuleContent.
type UpdatePullRequestApprovalRuleContentRequest struct {
	PullRequestID             *string `json:"pullRequestId,omitempty" validate:"required"`
	ApprovalRuleName          *string `json:"approvalRuleName,omitempty" validate:"required,min=1,max=100"`
	ExistingRuleContentSha256 *string `json:"existingRuleContentSha256,omitempty"`
	NewRuleContent            *string `json:"newRuleContent,omitempty" validate:"required,min=1,max=3000"`
}

func (r UpdatePullRequestApprovalRuleContentRequest) String() string { return types.Stringify(r) }

type UpdatePullRequestApprovalRuleContentResult struct {
	ApprovalRule *types.ApprovalRule `json:"approvalRule,omitempty"`
}

func (r UpdatePullRequestApprovalRuleContentResult) String() string { return types.Stringify(r) }

// UpdatePullRequestApprovalRuleContent replaces the content of a pull request approval rule.
func (c *Client) UpdatePullRequestApprovalRuleContent(ctx context.Context, params *UpdatePullRequestApprovalRuleContentRequest) (*UpdatePullRequestApprovalRuleContentResult, error) {
	return call[UpdatePullRequestApprovalRuleContentResult](ctx, c, "UpdatePullRequestApprovalRuleContent", params)
}
