package types

import "time"

// Location places a comment on a file and position.
type Location struct {
	FilePath            *string                 `json:"filePath,omitempty"`
	FilePosition        *int64                  `json:"filePosition,omitempty"`
	RelativeFileVersion RelativeFileVersionEnum `json:"relativeFileVersion,omitempty" validate:"omitempty,enum"`
}

func (s Location) String() string { return Stringify(s) }

type Comment struct {
	CommentID          *string          `json:"commentId,omitempty"`
	Content            *string          `json:"content,omitempty"`
	InReplyTo          *string          `json:"inReplyTo,omitempty"`
	CreationDate       *time.Time       `json:"creationDate,omitempty"`
	LastModifiedDate   *time.Time       `json:"lastModifiedDate,omitempty"`
	AuthorArn          *string          `json:"authorArn,omitempty"`
	Deleted            *bool            `json:"deleted,omitempty"`
	ClientRequestToken *string          `json:"clientRequestToken,omitempty"`
	CallerReactions    []string         `json:"callerReactions,omitempty"`
	ReactionCounts     map[string]int32 `json:"reactionCounts,omitempty"`
}

func (s Comment) String() string { return Stringify(s) }

// CommentsForComparedCommit groups the comments made on a comparison between two commits.
type CommentsForComparedCommit struct {
	RepositoryName *string   `json:"repositoryName,omitempty"`
	BeforeCommitID *string   `json:"beforeCommitId,omitempty"`
	AfterCommitID  *string   `json:"afterCommitId,omitempty"`
	BeforeBlobID   *string   `json:"beforeBlobId,omitempty"`
	AfterBlobID    *string   `json:"afterBlobId,omitempty"`
	Location       *Location `json:"location,omitempty"`
	Comments       []Comment `json:"comments,omitempty"`
}

func (s CommentsForComparedCommit) String() string { return Stringify(s) }

type CommentsForPullRequest struct {
	PullRequestID  *string   `json:"pullRequestId,omitempty"`
	RepositoryName *string   `json:"repositoryName,omitempty"`
	BeforeCommitID *string   `json:"beforeCommitId,omitempty"`
	AfterCommitID  *string   `json:"afterCommitId,omitempty"`
	BeforeBlobID   *string   `json:"beforeBlobId,omitempty"`
	AfterBlobID    *string   `json:"afterBlobId,omitempty"`
	Location       *Location `json:"location,omitempty"`
	Comments       []Comment `json:"comments,omitempty"`
}

func (s CommentsForPullRequest) String() string { return Stringify(s) }

// ReactionValueFormats is a reaction in its emoji, short code and unicode forms.
type ReactionValueFormats struct {
	Emoji     *string `json:"emoji,omitempty"`
	ShortCode *string `json:"shortCode,omitempty"`
	Unicode   *string `json:"unicode,omitempty"`
}

func (s ReactionValueFormats) String() string { return Stringify(s) }

type ReactionForComment struct {
	Reaction                       *ReactionValueFormats `json:"reaction,omitempty"`
	ReactionUsers                  []string              `json:"reactionUsers,omitempty"`
	ReactionsFromDeletedUsersCount *int32                `json:"reactionsFromDeletedUsersCount,omitempty"`
}

func (s ReactionForComment) String() string { return Stringify(s) }
