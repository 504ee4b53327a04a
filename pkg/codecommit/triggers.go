package codecommit

import (
	"context"
	"slices"

	"github.com/bravo68web/codecommit/pkg/codecommit/types"
)

// GetRepositoryTriggersRequest is the input of GetRepositoryTriggers.
type GetRepositoryTriggersRequest struct {
	RepositoryName *string `json:"repositoryName,omitempty" validate:"required,min=1,max=100"`
}

func (r GetRepositoryTriggersRequest) String() string { return types.Stringify(r) }

type GetRepositoryTriggersResult struct {
	ConfigurationID *string                   `json:"configurationId,omitempty"`
	Triggers        []types.RepositoryTrigger `json:"triggers,omitempty"`
}

func (r GetRepositoryTriggersResult) String() string { return types.Stringify(r) }

// GetRepositoryTriggers returns the triggers configured on a repository.
func (c *Client) GetRepositoryTriggers(ctx context.Context, params *GetRepositoryTriggersRequest) (*GetRepositoryTriggersResult, error) {
	return call[GetRepositoryTriggersResult](ctx, c, "GetRepositoryTriggers", params)
}

// PutRepositoryTriggersRequest is the input of PutRepositoryTriggers.
type PutRepositoryTriggersRequest struct {
	RepositoryName *string                   `json:"repositoryName,omitempty" validate:"required,min=1,max=100"`
	Triggers       []types.RepositoryTrigger `json:"triggers,omitempty" validate:"required,dive"`
}

func (r PutRepositoryTriggersRequest) String() string { return types.Stringify(r) }

// WithTriggers sets Triggers to a copy of triggers.
func (r *PutRepositoryTriggersRequest) WithTriggers(triggers ...types.RepositoryTrigger) *PutRepositoryTriggersRequest {
	r.Triggers = slices.Clone(triggers)
	return r
}

type PutRepositoryTriggersResult struct {
	ConfigurationID *string `json:"configurationId,omitempty"`
}

func (r PutRepositoryTriggersResult) String() string { return types.Stringify(r) }

// PutRepositoryTriggers replaces all triggers of a repository.
func (c *Client) PutRepositoryTriggers(ctx context.Context, params *PutRepositoryTriggersRequest) (*PutRepositoryTriggersResult, error) {
	return call[PutRepositoryTriggersResult](ctx, c, "PutRepositoryTriggers", params)
}

// TestRepositoryTriggersRequest is the input of TestRepositoryTriggers.
type TestRepositoryTriggersRequest struct {
	RepositoryName *string                   `json:"repositoryName,omitempty" validate:"required,min=1,max=100"`
	Triggers       []types.RepositoryTrigger `json:"triggers,omitempty" validate:"required,dive"`
}

func (r TestRepositoryTriggersRequest) String() string { return types.Stringify(r) }

// WithTriggers sets Triggers to a copy of triggers.
func (r *TestRepositoryTriggersRequest) WithTriggers(triggers ...types.RepositoryTrigger) *TestRepositoryTriggersRequest {
	r.Triggers = slices.Clone(triggers)
	return r
}

type TestRepositoryTriggersResult struct {
	SuccessfulExecutions []string                                  `json:"successfulExecutions,omitempty"`
	FailedExecutions     []types.RepositoryTriggerExecutionFailure `json:"failedExecutions,omitempty"`
}

func (r TestRepositoryTriggersResult) String() string { return types.Stringify(r) }

// TestRepositoryTriggers sends test notifications for triggers without saving them.
func (c *Client) TestRepositoryTriggers(ctx context.Context, params *TestRepositoryTriggersRequest) (*TestRepositoryTriggersResult, error) {
	return call[TestRepositoryTriggersResult](ctx, c, "TestRepositoryTriggers", params)
}
