package codecommit

import (
	"context"
	"slices"

	"github.com/bravo68web/codecommit/pkg/codecommit/types"
)

// AssociateApprovalRuleTemplateWithRepositoryRequest is the input of AssociateApprovalRuleTemplateWithRepository.
type AssociateApprovalRuleTemplateWithRepositoryRequest struct {
	ApprovalRuleTemplateName *string `json:"approvalRuleTemplateName,omitempty" validate:"required,min=1,max=100"`
	RepositoryName           *string `json:"repositoryName,omitempty" validate:"required,min=1,max=100"`
}

func (r AssociateApprovalRuleTemplateWithRepositoryRequest) String() string { return types.Stringify(r) }

// AssociateApprovalRuleTemplateWithRepository associates a template with a repository.
func (c *Client) AssociateApprovalRuleTemplateWithRepository(ctx context.Context, params *AssociateApprovalRuleTemplateWithRepositoryRequest) error {
	return callNoResult(ctx, c, "AssociateApprovalRuleTemplateWithRepository", params)
}

// BatchAssociateApprovalRuleTemplateWithRepositoriesRequest is the input of BatchAssociateApprovalRuleTemplateWithRepositories.
type BatchAssociateApprovalRuleTemplateWithRepositoriesRequest struct {
	ApprovalRuleTemplateName *string  `json:"approvalRuleTemplateName,omitempty" validate:"required,min=1,max=100"`
	RepositoryNames          []string `json:"repositoryNames,omitempty" validate:"required,min=1,dive,min=1,max=100"`
}

func (r BatchAssociateApprovalRuleTemplateWithRepositoriesRequest) String() string { return types.Stringify(r) }

// WithRepositoryNames sets RepositoryNames to a copy of repositoryNames.
func (r *BatchAssociateApprovalRuleTemplateWithRepositoriesRequest) WithRepositoryNames(repositoryNames ...string) *BatchAssociateApprovalRuleTemplateWithRepositoriesRequest {
	r.RepositoryNames = slices.Clone(repositoryNames)
	return r
}

type BatchAssociateApprovalRuleTemplateWithRepositoriesResult struct {
	AssociatedRepositoryNames []string                                                        `json:"associatedRepositoryNames,omitempty"`
	Errors                    []types.BatchAssociateApprovalRuleTemplateWithRepositoriesError `json:"errors,omitempty"`
}

func (r BatchAssociateApprovalRuleTemplateWithRepositoriesResult) String() string { return types.Stringify(r) }

// BatchAssociateApprovalRuleTemplateWithRepositories associates a template with several repositories.
func (c *Client) BatchAssociateApprovalRuleTemplateWithRepositories(ctx context.Context, params *BatchAssociateApprovalRuleTemplateWithRepositoriesRequest) (*BatchAssociateApprovalRuleTemplateWithRepositoriesResult, error) {
	return call[BatchAssociateApprovalRuleTemplateWithRepositoriesResult](ctx, c, "BatchAssociateApprovalRuleTemplateWithRepositories", params)
}

// BatchDisassociateApprovalRuleTemplateFromRepositoriesRequest is the input of BatchDisassociateApprovalRuleTemplateFromRepositories.
type BatchDisassociateApprovalRuleTemplateFromRepositoriesRequest struct {
	ApprovalRuleTemplateName *string  `json:"approvalRuleTemplateName,omitempty" validate:"required,min=1,max=100"`
	RepositoryNames          []string `json:"repositoryNames,omitempty" validate:"required,min=1,dive,min=1,max=100"`
}

func (r BatchDisassociateApprovalRuleTemplateFromRepositoriesRequest) String() string { return types.Stringify(r) }

// WithRepositoryNames sets RepositoryNames to a copy of repositoryNames.
func (r *BatchDisassociateApprovalRuleTemplateFromRepositoriesRequest) WithRepositoryNames(repositoryNames ...string) *BatchDisassociateApprovalRuleTemplateFromRepositoriesRequest {
	r.RepositoryNames = slices.Clone(repositoryNames)
	return r
}

type BatchDisassociateApprovalRuleTemplateFromRepositoriesResult struct {
	DisassociatedRepositoryNames []string                                                           `json:"disassociatedRepositoryNames,omitempty"`
	Errors                       []types.BatchDisassociateApprovalRuleTemplateFromRepositoriesError `json:"errors,omitempty"`
}

func (r BatchDisassociateApprovalRuleTemplateFromRepositoriesResult) String() string { return types.Stringify(r) }

// BatchDisassociateApprovalRuleTemplateFromRepositories removes a template from several repositories.
func (c *Client) BatchDisassociateApprovalRuleTemplateFromRepositories(ctx context.Context, params *BatchDisassociateApprovalRuleTemplateFromRepositoriesRequest) (*BatchDisassociateApprovalRuleTemplateFromRepositoriesResult, error) {
	return call[BatchDisassociateApprovalRuleTemplateFromRepositoriesResult](ctx, c, "BatchDisassociateApprovalRuleTemplateFromRepositories", params)
}

// CreateApprovalRuleTemplateRequest is the input of CreateApprovalRuleTemplate.
type CreateApprovalRuleTemplateRequest struct {
	ApprovalRuleTemplateName        *string `json:"approvalRuleTemplateName,omitempty" validate:"required,min=1,max=100"`
	ApprovalRuleTemplateContent     *string `json:"approvalRuleTemplateContent,omitempty" validate:"required,min=1,max=3000"`
	ApprovalRuleTemplateDescription *string `json:"approvalRuleTemplateDescription,omitempty" validate:"omitempty,max=1000"`
}

func (r CreateApprovalRuleTemplateRequest) String() string { return types.Stringify(r) }

type CreateApprovalRuleTemplateResult struct {
	ApprovalRuleTemplate *types.ApprovalRuleTemplate `json:"approvalRuleTemplate,omitempty"`
}

func (r CreateApprovalRuleTemplateResult) String() string { return types.Stringify(r) }

// CreateApprovalRuleTemplate creates an approval rule template.
func (c *Client) CreateApprovalRuleTemplate(ctx context.Context, params *CreateApprovalRuleTemplateRequest) (*CreateApprovalRuleTemplateResult, error) {
	return call[CreateApprovalRuleTemplateResult](ctx, c, "CreateApprovalRuleTemplate", params)
}

// DeleteApprovalRuleTemplateRequest is the input of DeleteApprovalRuleTemplate.
type DeleteApprovalRuleTemplateRequest struct {
	ApprovalRuleTemplateName *string `json:"approvalRuleTemplateName,omitempty" validate:"required,min=1,max=100"`
}

func (r DeleteApprovalRuleTemplateRequest) String() string { return types.Stringify(r) }

type DeleteApprovalRuleTemplateResult struct {
	ApprovalRuleTemplateID *string `json:"approvalRuleTemplateId,omitempty"`
}

func (r DeleteApprovalRuleTemplateResult) String() string { return types.Stringify(r) }

// DeleteApprovalRuleTemplate deletes an approval rule template that is not associated with any repository.
func (c *Client) DeleteApprovalRuleTemplate(ctx context.Context, params *DeleteApprovalRuleTemplateRequest) (*DeleteApprovalRuleTemplateResult, error) {
	return call[DeleteApprovalRuleTemplateResult](ctx, c, "DeleteApprovalRuleTemplate", params)
}

// DisassociateApprovalRuleTemplateFromRepositoryRequest is the input of DisassociateApprovalRuleTemplateFromRepository.
type DisassociateApprovalRuleTemplateFromRepositoryRequest struct {
	ApprovalRuleTemplateName *string `json:"approvalRuleTemplateName,omitempty" validate:"required,min=1,max=100"`
	RepositoryName           *string `json:"repositoryName,omitempty" validate:"required,min=1,max=100"`
}

func (r DisassociateApprovalRuleTemplateFromRepositoryRequest) String() string { return types.Stringify(r) }

// DisassociateApprovalRuleTemplateFromRepository removes a template from a repository.
func (c *Client) DisassociateApprovalRuleTemplateFromRepository(ctx context.Context, params *DisassociateApprovalRuleTemplateFromRepositoryRequest) error {
	return callNoResult(ctx, c, "DisassociateApprovalRuleTemplateFromRepository", params)
}

// GetApprovalRuleTemplateRequest is the input of GetApprovalRuleTemplate.
type GetApprovalRuleTemplateRequest struct {
	ApprovalRuleTemplateName *string `json:"approvalRuleTemplateName,omitempty" validate:"required,min=1,max=100"`
}

func (r GetApprovalRuleTemplateRequest) String() string { return types.Stringify(r) }

type GetApprovalRuleTemplateResult struct {
	ApprovalRuleTemplate *types.ApprovalRuleTemplate `json:"approvalRuleTemplate,omitempty"`
}

func (r GetApprovalRuleTemplateResult) String() string { return types.Stringify(r) }

// GetApprovalRuleTemplate returns an approval rule template.
func (c *Client) GetApprovalRuleTemplate(ctx context.Context, params *GetApprovalRuleTemplateRequest) (*GetApprovalRuleTemplateResult, error) {
	return call[GetApprovalRuleTemplateResult](ctx, c, "GetApprovalRuleTemplate", params)
}

// ListApprovalRuleTemplatesRequest is the input of ListApprovalRuleTemplates.
type ListApprovalRuleTemplatesRequest struct {
	NextToken  *string `json:"nextToken,omitempty"`
	MaxResults *int32  `json:"maxResults,omitempty" validate:"omitempty,min=1,max=100"`
}

func (r ListApprovalRuleTemplatesRequest) String() string { return types.Stringify(r) }

type ListApprovalRuleTemplatesResult struct {
	ApprovalRuleTemplateNames []string `json:"approvalRuleTemplateNames,omitempty"`
	NextToken                 *string  `json:"nextToken,omitempty"`
}

func (r ListApprovalRuleTemplatesResult) String() string { return types.Stringify(r) }

// ListApprovalRuleTemplates lists the approval rule templates of the current region.
func (c *Client) ListApprovalRuleTemplates(ctx context.Context, params *ListApprovalRuleTemplatesRequest) (*ListApprovalRuleTemplatesResult, error) {
	return call[ListApprovalRuleTemplatesResult](ctx, c, "ListApprovalRuleTemplates", params)
}

// ListAssociatedApprovalRuleTemplatesForRepositoryRequest is the input of ListAssociatedApprovalRuleTemplatesForRepository.
type ListAssociatedApprovalRuleTemplatesForRepositoryRequest struct {
	RepositoryName *string `json:"repositoryName,omitempty" validate:"required,min=1,max=100"`
	NextToken      *string `json:"nextToken,omitempty"`
	MaxResults     *int32  `json:"maxResults,omitempty" validate:"omitempty,min=1,max=100"`
}

func (r ListAssociatedApprovalRuleTemplatesForRepositoryRequest) String() string { return types.Stringify(r) }

type ListAssociatedApprovalRuleTemplatesForRepositoryResult struct {
	ApprovalRuleTemplateNames []string `json:"approvalRuleTemplateNames,omitempty"`
	NextToken                 *string  `json:"nextToken,omitempty"`
}

func (r ListAssociatedApprovalRuleTemplatesForRepositoryResult) String() string { return types.Stringify(r) }

// ListAssociatedApprovalRuleTemplatesForRepository lists the templates associated with a repository.
func (c *Client) ListAssociatedApprovalRuleTemplatesForRepository(ctx context.Context, params *ListAssociatedApprovalRuleTemplatesForRepositoryRequest) (*ListAssociatedApprovalRuleTemplatesForRepositoryResult, error) {
	return call[ListAssociatedApprovalRuleTemplatesForRepositoryResult](ctx, c, "ListAssociatedApprovalRuleTemplatesForRepository", params)
}

// ListRepositoriesForApprovalRuleTemplateRequest is the input of ListRepositoriesForApprovalRuleTemplate.
type ListRepositoriesForApprovalRuleTemplateRequest struct {
	ApprovalRuleTemplateName *string `json:"approvalRuleTemplateName,omitempty" validate:"required,min=1,max=100"`
	NextToken                *string `json:"nextToken,omitempty"`
	MaxResults               *int32  `json:"maxResults,omitempty" validate:"omitempty,min=1,max=100"`
}

func (r ListRepositoriesForApprovalRuleTemplateRequest) String() string { return types.Stringify(r) }

type ListRepositoriesForApprovalRuleTemplateResult struct {
	RepositoryNames []string `json:"repositoryNames,omitempty"`
	NextToken       *string  `json:"nextToken,omitempty"`
}

func (r ListRepositoriesForApprovalRuleTemplateResult) String() string { return types.Stringify(r) }

// ListRepositoriesForApprovalRuleTemplate lists the repositories a template is associated with.
func (c *Client) ListRepositoriesForApprovalRuleTemplate(ctx context.Context, params *ListRepositoriesForApprovalRuleTemplateRequest) (*ListRepositoriesForApprovalRuleTemplateResult, error) {
	return call[ListRepositoriesForApprovalRuleTemplateResult](ctx, c, "ListRepositoriesForApprovalRuleTemplate", params)
}

// UpdateApprovalRuleTemplateContentRequest is the input of UpdateApprovalRuleTemplateContent.
type UpdateApprovalRuleTemplateContentRequest struct {
	ApprovalRuleTemplateName  *string `json:"approvalRuleTemplateName,omitempty" validate:"required,min=1,max=100"`
	NewRuleContent            *string `json:"newRuleContent,omitempty" validate:"required,min=1,max=3000"`
	ExistingRuleContentSha256 *string `json:"existingRuleContentSha256,omitempty"`
}

func (r UpdateApprovalRuleTemplateContentRequest) String() string { return types.Stringify(r) }

type UpdateApprovalRuleTemplateContentResult struct {
	ApprovalRuleTemplate *types.ApprovalRuleTemplate `json:"approvalRuleTemplate,omitempty"`
}

func (r UpdateApprovalRuleTemplateContentResult) String() string { return types.Stringify(r) }

// UpdateApprovalRuleTemplateContent replaces the content of a template.
func (c *Client) UpdateApprovalRuleTemplateContent(ctx context.Context, params *UpdateApprovalRuleTemplateContentRequest) (*UpdateApprovalRuleTemplateContentResult, error) {
	return call[UpdateApprovalRuleTemplateContentResult](ctx, c, "UpdateApprovalRuleTemplateContent", params)
}

// UpdateApprovalRuleTemplateDescriptionRequest is the input of UpdateApprovalRuleTemplateDescription.
type UpdateApprovalRuleTemplateDescriptionRequest struct {
	ApprovalRuleTemplateName        *string `json:"approvalRuleTemplateName,omitempty" validate:"required,min=1,max=100"`
	ApprovalRuleTemplateDescription *string `json:"approvalRuleTemplateDescription,omitempty" validate:"required,max=1000"`
}

func (r UpdateApprovalRuleTemplateDescriptionRequest) String() string { return types.Stringify(r) }

type UpdateApprovalRuleTemplateDescriptionResult struct {
	ApprovalRuleTemplate *types.ApprovalRuleTemplate `json:"approvalRuleTemplate,omitempty"`
}

func (r UpdateApprovalRuleTemplateDescriptionResult) String() string { return types.Stringify(r) }

// UpdateApprovalRuleTemplateDescription replaces the description of a template.
func (c *Client) UpdateApprovalRuleTemplateDescription(ctx context.Context, params *UpdateApprovalRuleTemplateDescriptionRequest) (*UpdateApprovalRuleTemplateDescriptionResult, error) {
	return call[UpdateApprovalRuleTemplateDescriptionResult](ctx, c, "UpdateApprovalRuleTemplateDescription", params)
}

// UpdateApprovalRuleTemplateNameRequest is the input of UpdateApprovalRuleTemplateName.
type UpdateApprovalRuleTemplateNameRequest struct {
	OldApprovalRuleTemplateName *string `json:"oldApprovalRuleTemplateName,omitempty" validate:"required,min=1,max=100"`
	NewApprovalRuleTemplateName *string `json:"newApprovalRuleTemplateName,omitempty" validate:"required,min=1,max=100"`
}

func (r UpdateApprovalRuleTemplateNameRequest) String() string { return types.Stringify(r) }

type UpdateApprovalRuleTemplateNameResult struct {
	ApprovalRuleTemplate *types.ApprovalRuleTemplate `json:"approvalRuleTemplate,omitempty"`
}

func (r UpdateApprovalRuleTemplateNameResult) String() string { return types.Stringify(r) }

// UpdateApprovalRuleTemplateName renames a template.
func (c *Client) UpdateApprovalRuleTemplateName(ctx context.Context, params *UpdateApprovalRuleTemplateNameRequest) (*UpdateApprovalRuleTemplateNameResult, error) {
	return call[UpdateApprovalRuleTemplateNameResult](ctx, c, "UpdateApprovalRuleTemplateName", params)
}
