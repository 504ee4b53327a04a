package types

import "time"

type Approval struct {
	UserArn       *string       `json:"userArn,omitempty"`
	ApprovalState ApprovalState `json:"approvalState,omitempty"`
}

func (s Approval) String() string { return Stringify(s) }

// OriginApprovalRuleTemplate names the template an approval rule was created from.
type OriginApprovalRuleTemplate struct {
	ApprovalRuleTemplateID   *string `json:"approvalRuleTemplateId,omitempty"`
	ApprovalRuleTemplateName *string `json:"approvalRuleTemplateName,omitempty"`
}

func (s OriginApprovalRuleTemplate) String() string { return Stringify(s) }

// ApprovalRule is an approval rule attached to a pull request.
type ApprovalRule struct {
	ApprovalRuleID             *string                     `json:"approvalRuleId,omitempty"`
	ApprovalRuleName           *string                     `json:"approvalRuleName,omitempty"`
	ApprovalRuleContent        *string                     `json:"approvalRuleContent,omitempty"`
	RuleContentSha256          *string                     `json:"ruleContentSha256,omitempty"`
	LastModifiedDate           *time.Time                  `json:"lastModifiedDate,omitempty"`
	CreationDate               *time.Time                  `json:"creationDate,omitempty"`
	LastModifiedUser           *string                     `json:"lastModifiedUser,omitempty"`
	OriginApprovalRuleTemplate *OriginApprovalRuleTemplate `json:"originApprovalRuleTemplate,omitempty"`
}

func (s ApprovalRule) String() string { return Stringify(s) }

type ApprovalRuleTemplate struct {
	ApprovalRuleTemplateID          *string    `json:"approvalRuleTemplateId,omitempty"`
	ApprovalRuleTemplateName        *string    `json:"approvalRuleTemplateName,omitempty"`
	ApprovalRuleTemplateDescription *string    `json:"approvalRuleTemplateDescription,omitempty"`
	ApprovalRuleTemplateContent     *string    `json:"approvalRuleTemplateContent,omitempty"`
	RuleContentSha256               *string    `json:"ruleContentSha256,omitempty"`
	LastModifiedDate                *time.Time `json:"lastModifiedDate,omitempty"`
	CreationDate                    *time.Time `json:"creationDate,omitempty"`
	LastModifiedUser                *string    `json:"lastModifiedUser,omitempty"`
}

func (s ApprovalRuleTemplate) String() string { return Stringify(s) }

// Evaluation is the outcome of evaluating a pull request's approval rules.
type Evaluation struct {
	Approved                  *bool    `json:"approved,omitempty"`
	Overridden                *bool    `json:"overridden,omitempty"`
	ApprovalRulesSatisfied    []string `json:"approvalRulesSatisfied,omitempty"`
	ApprovalRulesNotSatisfied []string `json:"approvalRulesNotSatisfied,omitempty"`
}

func (s Evaluation) String() string { return Stringify(s) }

type BatchAssociateApprovalRuleTemplateWithRepositoriesError struct {
	RepositoryName *string `json:"repositoryName,omitempty"`
	ErrorCode      *string `json:"errorCode,omitempty"`
	ErrorMessage   *string `json:"errorMessage,omitempty"`
}

func (s BatchAssociateApprovalRuleTemplateWithRepositoriesError) String() string { return Stringify(s) }

type BatchDisassociateApprovalRuleTemplateFromRepositoriesError struct {
	RepositoryName *string `json:"repositoryName,omitempty"`
	ErrorCode      *string `json:"errorCode,omitempty"`
	ErrorMessage   *string `json:"errorMessage,omitempty"`
}

func (s BatchDisassociateApprovalRuleTemplateFromRepositoriesError) String() string { return Stringify(s) }
