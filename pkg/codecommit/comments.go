package codecommit

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/bravo68web/codecommit/pkg/codecommit/types"
	"github.com/google/uuid"
)

// DeleteCommentContentRequest is the input of DeleteCommentContent.
type DeleteCommentContentRequest struct {
	CommentID *string `json:"commentId,omitempty" validate:"required"`
}

func (r DeleteCommentContentRequest) String() string { return types.Stringify(r) }

type DeleteCommentContentResult struct {
	Comment *types.Comment `json:"comment,omitempty"`
}

func (r DeleteCommentContentResult) String() string { return types.Stringify(r) }

// DeleteCommentContent clears the content of a comment. The comment itself remains.
func (c *Client) DeleteCommentContent(ctx context.Context, params *DeleteCommentContentRequest) (*DeleteCommentContentResult, error) {
	return call[DeleteCommentContentResult](ctx, c, "DeleteCommentContent", params)
}

// GetCommentRequest is the input of GetComment.
type GetCommentRequest struct {
	CommentID *string `json:"commentId,omitempty" validate:"required"`
}

func (r GetCommentRequest) String() string { return types.Stringify(r) }

type GetCommentResult struct {
	Comment *types.Comment `json:"comment,omitempty"`
}

func (r GetCommentResult) String() string { return types.Stringify(r) }

// GetComment returns a comment.
func (c *Client) GetComment(ctx context.Context, params *GetCommentRequest) (*GetCommentResult, error) {
	return call[GetCommentResult](ctx, c, "GetComment", params)
}

// GetCommentReactionsRequest is the input of GetCommentReactions.
type GetCommentReactionsRequest struct {
	CommentID       *string `json:"commentId,omitempty" validate:"required"`
	ReactionUserArn *string `json:"reactionUserArn,omitempty"`
	NextToken       *string `json:"nextToken,omitempty"`
	MaxResults      *int32  `json:"maxResults,omitempty" validate:"omitempty,min=1,max=1000"`
}

func (r GetCommentReactionsRequest) String() string { return types.Stringify(r) }

type GetCommentReactionsResult struct {
	ReactionsForComment []types.ReactionForComment `json:"reactionsForComment,omitempty"`
	NextToken           *string                    `json:"nextToken,omitempty"`
}

func (r GetCommentReactionsResult) String() string { return types.Stringify(r) }

// GetCommentReactions lists the emoji reactions to a comment.
func (c *Client) GetCommentReactions(ctx context.Context, params *GetCommentReactionsRequest) (*GetCommentReactionsResult, error) {
	return call[GetCommentReactionsResult](ctx, c, "GetCommentReactions", params)
}

// GetCommentsForComparedCommitRequest is the input of GetCommentsForComparedCommit.
type GetCommentsForComparedCommitRequest struct {
	RepositoryName *string `json:"repositoryName,omitempty" validate:"required,min=1,max=100"`
	BeforeCommitID *string `json:"beforeCommitId,omitempty"`
	AfterCommitID  *string `json:"afterCommitId,omitempty" validate:"required"`
	NextToken      *string `json:"nextToken,omitempty"`
	MaxResults     *int32  `json:"maxResults,omitempty" validate:"omitempty,min=1"`
}

func (r GetCommentsForComparedCommitRequest) String() string { return types.Stringify(r) }

type GetCommentsForComparedCommitResult struct {
	CommentsForComparedCommitData []types.CommentsForComparedCommit `json:"commentsForComparedCommitData,omitempty"`
	NextToken                     *string                           `json:"nextToken,omitempty"`
}

func (r GetCommentsForComparedCommitResult) String() string { return types.Stringify(r) }

// GetCommentsForComparedCommit returns the comments made on a comparison between two commits.
func (c *Client) GetCommentsForComparedCommit(ctx context.Context, params *GetCommentsForComparedCommitRequest) (*GetCommentsForComparedCommitResult, error) {
	return call[GetCommentsForComparedCommitResult](ctx, c, "GetCommentsForComparedCommit", params)
}

// GetCommentsForPullRequestRequest is the input of GetCommentsForPullRequest.
type GetCommentsForPullRequestRequest struct {
	PullRequestID  *string `json:"pullRequestId,omitempty" validate:"required"`
	RepositoryName *string `json:"repositoryName,omitempty" validate:"omitempty,min=1,max=100"`
	BeforeCommitID *string `json:"beforeCommitId,omitempty"`
	AfterCommitID  *string `json:"afterCommitId,omitempty"`
	NextToken      *string `json:"nextToken,omitempty"`
	MaxResults     *int32  `json:"maxResults,omitempty" validate:"omitempty,min=1"`
}

func (r GetCommentsForPullRequestRequest) String() string { return types.Stringify(r) }

type GetCommentsForPullRequestResult struct {
	CommentsForPullRequestData []types.CommentsForPullRequest `json:"commentsForPullRequestData,omitempty"`
	NextToken                  *string                        `json:"nextToken,omitempty"`
}

func (r GetCommentsForPullRequestResult) String() string { return types.Stringify(r) }

// GetCommentsForPullRequest returns the comments made on a pull request.
func (c *Client) GetCommentsForPullRequest(ctx context.Context, params *GetCommentsForPullRequestRequest) (*GetCommentsForPullRequestResult, error) {
	return call[GetCommentsForPullRequestResult](ctx, c, "GetCommentsForPullRequest", params)
}

// PostCommentForComparedCommitRequest is the input of PostCommentForComparedCommit.
type PostCommentForComparedCommitRequest struct {
	RepositoryName     *string         `json:"repositoryName,omitempty" validate:"required,min=1,max=100"`
	BeforeCommitID     *string         `json:"beforeCommitId,omitempty"`
	AfterCommitID      *string         `json:"afterCommitId,omitempty" validate:"required"`
	Location           *types.Location `json:"location,omitempty"`
	Content            *string         `json:"content,omitempty" validate:"required"`
	ClientRequestToken *string         `json:"clientRequestToken,omitempty"`
}

func (r PostCommentForComparedCommitRequest) String() string { return types.Stringify(r) }

type PostCommentForComparedCommitResult struct {
	RepositoryName *string         `json:"repositoryName,omitempty"`
	BeforeCommitID *string         `json:"beforeCommitId,omitempty"`
	AfterCommitID  *string         `json:"afterCommitId,omitempty"`
	BeforeBlobID   *string         `json:"beforeBlobId,omitempty"`
	AfterBlobID    *string         `json:"afterBlobId,omitempty"`
	Location       *types.Location `json:"location,omitempty"`
	Comment        *types.Comment  `json:"comment,omitempty"`
}

func (r PostCommentForComparedCommitResult) String() string { return types.Stringify(r) }

// PostCommentForComparedCommit comments on a comparison between two commits.
func (c *Client) PostCommentForComparedCommit(ctx context.Context, params *PostCommentForComparedCommitRequest) (*PostCommentForComparedCommitResult, error) {
	if params != nil && params.ClientRequestToken == nil {
		cp := *params
		cp.ClientRequestToken = aws.String(uuid.NewString())
		params = &cp
	}
	return call[PostCommentForComparedCommitResult](ctx, c, "PostCommentForComparedCommit", params)
}

// PostCommentForPullRequestRequest is the input of PostCommentForPullRequest.
type PostCommentForPullRequestRequest struct {
	PullRequestID      *string         `json:"pullRequestId,omitempty" validate:"required"`
	RepositoryName     *string         `json:"repositoryName,omitempty" validate:"required,min=1,max=100"`
	BeforeCommitID     *string         `json:"beforeCommitId,omitempty" validate:"required"`
	AfterCommitID      *string         `json:"afterCommitId,omitempty" validate:"required"`
	Location           *types.Location `json:"location,omitempty"`
	Content            *string         `json:"content,omitempty" validate:"required"`
	ClientRequestToken *string         `json:"clientRequestToken,omitempty"`
}

func (r PostCommentForPullRequestRequest) String() string { return types.Stringify(r) }

type PostCommentForPullRequestResult struct {
	RepositoryName *string         `json:"repositoryName,omitempty"`
	PullRequestID  *string         `json:"pullRequestId,omitempty"`
	BeforeCommitID *string         `json:"beforeCommitId,omitempty"`
	AfterCommitID  *string         `json:"afterCommitId,omitempty"`
	BeforeBlobID   *string         `json:"beforeBlobId,omitempty"`
	AfterBlobID    *string         `json:"afterBlobId,omitempty"`
	Location       *types.Location `json:"location,omitempty"`
	Comment        *types.Comment  `json:"comment,omitempty"`
}

func (r PostCommentForPullRequestResult) String() string { return types.Stringify(r) }

// PostCommentForPullRequest comments on a pull request.
func (c *Client) PostCommentForPullRequest(ctx context.Context, params *PostCommentForPullRequestRequest) (*PostCommentForPullRequestResult, error) {
	if params != nil && params.ClientRequestToken == nil {
		cp := *params
		cp.ClientRequestToken = aws.String(uuid.NewString())
		params = &cp
	}
	return call[PostCommentForPullRequestResult](ctx, c, "PostCommentForPullRequest", params)
}

// PostCommentReplyRequest is the input of PostCommentReply.
type PostCommentReplyRequest struct {
	InReplyTo          *string `json:"inReplyTo,omitempty" validate:"required"`
	ClientRequestToken *string `json:"clientRequestToken,omitempty"`
	Content            *string `json:"content,omitempty" validate:"required"`
}

func (r PostCommentReplyRequest) String() string { return types.Stringify(r) }

type PostCommentReplyResult struct {
	Comment *types.Comment `json:"comment,omitempty"`
}

func (r PostCommentReplyResult) String() string { return types.Stringify(r) }

// PostCommentReply replies to a comment.
func (c *Client) PostCommentReply(ctx context.Context, params *PostCommentReplyRequest) (*PostCommentReplyResult, error) {
	if params != nil && params.ClientRequestToken == nil {
		cp := *params
		cp.ClientRequestToken = aws.String(uuid.NewString())
		params = &cp
	}
	return call[PostCommentReplyResult](ctx, c, "PostCommentReply", params)
}

// PutCommentReactionRequest is the input of PutCommentReaction.
type PutCommentReactionRequest struct {
	CommentID     *string `json:"commentId,omitempty" validate:"required"`
	ReactionValue *string `json:"reactionValue,omitempty" validate:"required"`
}

func (r PutCommentReactionRequest) String() string { return types.Stringify(r) }

// PutCommentReaction adds or replaces the caller's reaction to a comment.
func (c *Client) PutCommentReaction(ctx context.Context, params *PutCommentReactionRequest) error {
	return callNoResult(ctx, c, "PutCommentReaction", params)
}

// UpdateCommentRequest is the input of UpdateComment.
type UpdateCommentRequest struct {
	CommentID *string `json:"commentId,omitempty" validate:"required"`
	Content   *string `json:"content,omitempty" validate:"required"`
}

func (r UpdateCommentRequest) String() string { return types.Stringify(r) }

type UpdateCommentResult struct {
	Comment *types.Comment `json:"comment,omitempty"`
}

func (r UpdateCommentResult) String() string { return types.Stringify(r) }

// UpdateComment replaces the content of a comment made by the caller.
func (c *Client) UpdateComment(ctx context.Context, params *UpdateCommentRequest) (*UpdateCommentResult, error) {
	return call[UpdateCommentResult](ctx, c, "UpdateComment", params)
}
