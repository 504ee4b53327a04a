package types

import "github.com/bravo68web/codecommit/pkg/errors"

// ApprovalState is the approval state a user can set on a pull request revision.
type ApprovalState string

const (
	ApprovalStateApprove ApprovalState = "APPROVE"
	ApprovalStateRevoke  ApprovalState = "REVOKE"
)

// Values returns every ApprovalState in declaration order.
func (ApprovalState) Values() []ApprovalState {
	return []ApprovalState{
		ApprovalStateApprove,
		ApprovalStateRevoke,
	}
}

func (e ApprovalState) String() string { return string(e) }

// IsKnown reports whether e is one of the declared values.
func (e ApprovalState) IsKnown() bool { return isKnown(e, e.Values()) }

// ParseApprovalState returns the ApprovalState named by s. The match is case-sensitive.
func ParseApprovalState(s string) (ApprovalState, error) {
	return parseEnum(ApprovalState(s), ApprovalState("").Values(), "ApprovalState")
}

// ChangeTypeEnum is the kind of change a difference records.
type ChangeTypeEnum string

const (
	ChangeTypeEnumAdded    ChangeTypeEnum = "A"
	ChangeTypeEnumModified ChangeTypeEnum = "M"
	ChangeTypeEnumDeleted  ChangeTypeEnum = "D"
)

// Values returns every ChangeTypeEnum in declaration order.
func (ChangeTypeEnum) Values() []ChangeTypeEnum {
	return []ChangeTypeEnum{
		ChangeTypeEnumAdded,
		ChangeTypeEnumModified,
		ChangeTypeEnumDeleted,
	}
}

func (e ChangeTypeEnum) String() string { return string(e) }

// IsKnown reports whether e is one of the declared values.
func (e ChangeTypeEnum) IsKnown() bool { return isKnown(e, e.Values()) }

// ParseChangeTypeEnum returns the ChangeTypeEnum named by s. The match is case-sensitive.
func ParseChangeTypeEnum(s string) (ChangeTypeEnum, error) {
	return parseEnum(ChangeTypeEnum(s), ChangeTypeEnum("").Values(), "ChangeTypeEnum")
}

// ConflictDetailLevelTypeEnum selects file-level or line-level conflict detection.
type ConflictDetailLevelTypeEnum string

const (
	ConflictDetailLevelTypeEnumFileLevel ConflictDetailLevelTypeEnum = "FILE_LEVEL"
	ConflictDetailLevelTypeEnumLineLevel ConflictDetailLevelTypeEnum = "LINE_LEVEL"
)

// Values returns every ConflictDetailLevelTypeEnum in declaration order.
func (ConflictDetailLevelTypeEnum) Values() []ConflictDetailLevelTypeEnum {
	return []ConflictDetailLevelTypeEnum{
		ConflictDetailLevelTypeEnumFileLevel,
		ConflictDetailLevelTypeEnumLineLevel,
	}
}

func (e ConflictDetailLevelTypeEnum) String() string { return string(e) }

// IsKnown reports whether e is one of the declared values.
func (e ConflictDetailLevelTypeEnum) IsKnown() bool { return isKnown(e, e.Values()) }

// ParseConflictDetailLevelTypeEnum returns the ConflictDetailLevelTypeEnum named by s. The match is case-sensitive.
func ParseConflictDetailLevelTypeEnum(s string) (ConflictDetailLevelTypeEnum, error) {
	return parseEnum(ConflictDetailLevelTypeEnum(s), ConflictDetailLevelTypeEnum("").Values(), "ConflictDetailLevelTypeEnum")
}

// ConflictResolutionStrategyTypeEnum controls how conflicts are resolved when merging.
type ConflictResolutionStrategyTypeEnum string

const (
	ConflictResolutionStrategyTypeEnumNone              ConflictResolutionStrategyTypeEnum = "NONE"
	ConflictResolutionStrategyTypeEnumAcceptSource      ConflictResolutionStrategyTypeEnum = "ACCEPT_SOURCE"
	ConflictResolutionStrategyTypeEnumAcceptDestination ConflictResolutionStrategyTypeEnum = "ACCEPT_DESTINATION"
	ConflictResolutionStrategyTypeEnumAutomerge         ConflictResolutionStrategyTypeEnum = "AUTOMERGE"
)

// Values returns every ConflictResolutionStrategyTypeEnum in declaration order.
func (ConflictResolutionStrategyTypeEnum) Values() []ConflictResolutionStrategyTypeEnum {
	return []ConflictResolutionStrategyTypeEnum{
		ConflictResolutionStrategyTypeEnumNone,
		ConflictResolutionStrategyTypeEnumAcceptSource,
		ConflictResolutionStrategyTypeEnumAcceptDestination,
		ConflictResolutionStrategyTypeEnumAutomerge,
	}
}

func (e ConflictResolutionStrategyTypeEnum) String() string { return string(e) }

// IsKnown reports whether e is one of the declared values.
func (e ConflictResolutionStrategyTypeEnum) IsKnown() bool { return isKnown(e, e.Values()) }

// ParseConflictResolutionStrategyTypeEnum returns the ConflictResolutionStrategyTypeEnum named by s. The match is case-sensitive.
func ParseConflictResolutionStrategyTypeEnum(s string) (ConflictResolutionStrategyTypeEnum, error) {
	return parseEnum(ConflictResolutionStrategyTypeEnum(s), ConflictResolutionStrategyTypeEnum("").Values(), "ConflictResolutionStrategyTypeEnum")
}

// FileModeTypeEnum is the git file mode of a file.
type FileModeTypeEnum string

const (
	FileModeTypeEnumExecutable FileModeTypeEnum = "EXECUTABLE"
	FileModeTypeEnumNormal     FileModeTypeEnum = "NORMAL"
	FileModeTypeEnumSymlink    FileModeTypeEnum = "SYMLINK"
)

// Values returns every FileModeTypeEnum in declaration order.
func (FileModeTypeEnum) Values() []FileModeTypeEnum {
	return []FileModeTypeEnum{
		FileModeTypeEnumExecutable,
		FileModeTypeEnumNormal,
		FileModeTypeEnumSymlink,
	}
}

func (e FileModeTypeEnum) String() string { return string(e) }

// IsKnown reports whether e is one of the declared values.
func (e FileModeTypeEnum) IsKnown() bool { return isKnown(e, e.Values()) }

// ParseFileModeTypeEnum returns the FileModeTypeEnum named by s. The match is case-sensitive.
func ParseFileModeTypeEnum(s string) (FileModeTypeEnum, error) {
	return parseEnum(FileModeTypeEnum(s), FileModeTypeEnum("").Values(), "FileModeTypeEnum")
}

// MergeOptionTypeEnum is a merge strategy.
type MergeOptionTypeEnum string

const (
	MergeOptionTypeEnumFastForwardMerge MergeOptionTypeEnum = "FAST_FORWARD_MERGE"
	MergeOptionTypeEnumSquashMerge      MergeOptionTypeEnum = "SQUASH_MERGE"
	MergeOptionTypeEnumThreeWayMerge    MergeOptionTypeEnum = "THREE_WAY_MERGE"
)

// Values returns every MergeOptionTypeEnum in declaration order.
func (MergeOptionTypeEnum) Values() []MergeOptionTypeEnum {
	return []MergeOptionTypeEnum{
		MergeOptionTypeEnumFastForwardMerge,
		MergeOptionTypeEnumSquashMerge,
		MergeOptionTypeEnumThreeWayMerge,
	}
}

func (e MergeOptionTypeEnum) String() string { return string(e) }

// IsKnown reports whether e is one of the declared values.
func (e MergeOptionTypeEnum) IsKnown() bool { return isKnown(e, e.Values()) }

// ParseMergeOptionTypeEnum returns the MergeOptionTypeEnum named by s. The match is case-sensitive.
func ParseMergeOptionTypeEnum(s string) (MergeOptionTypeEnum, error) {
	return parseEnum(MergeOptionTypeEnum(s), MergeOptionTypeEnum("").Values(), "MergeOptionTypeEnum")
}

// ObjectTypeEnum is the type of a git object in a conflict.
type ObjectTypeEnum string

const (
	ObjectTypeEnumFile         ObjectTypeEnum = "FILE"
	ObjectTypeEnumDirectory    ObjectTypeEnum = "DIRECTORY"
	ObjectTypeEnumGitLink      ObjectTypeEnum = "GIT_LINK"
	ObjectTypeEnumSymbolicLink ObjectTypeEnum = "SYMBOLIC_LINK"
)

// Values returns every ObjectTypeEnum in declaration order.
func (ObjectTypeEnum) Values() []ObjectTypeEnum {
	return []ObjectTypeEnum{
		ObjectTypeEnumFile,
		ObjectTypeEnumDirectory,
		ObjectTypeEnumGitLink,
		ObjectTypeEnumSymbolicLink,
	}
}

func (e ObjectTypeEnum) String() string { return string(e) }

// IsKnown reports whether e is one of the declared values.
func (e ObjectTypeEnum) IsKnown() bool { return isKnown(e, e.Values()) }

// ParseObjectTypeEnum returns the ObjectTypeEnum named by s. The match is case-sensitive.
func ParseObjectTypeEnum(s string) (ObjectTypeEnum, error) {
	return parseEnum(ObjectTypeEnum(s), ObjectTypeEnum("").Values(), "ObjectTypeEnum")
}

// OrderEnum is a sort direction.
type OrderEnum string

const (
	OrderEnumAscending  OrderEnum = "ascending"
	OrderEnumDescending OrderEnum = "descending"
)

// Values returns every OrderEnum in declaration order.
func (OrderEnum) Values() []OrderEnum {
	return []OrderEnum{
		OrderEnumAscending,
		OrderEnumDescending,
	}
}

func (e OrderEnum) String() string { return string(e) }

// IsKnown reports whether e is one of the declared values.
func (e OrderEnum) IsKnown() bool { return isKnown(e, e.Values()) }

// ParseOrderEnum returns the OrderEnum named by s. The match is case-sensitive.
func ParseOrderEnum(s string) (OrderEnum, error) {
	return parseEnum(OrderEnum(s), OrderEnum("").Values(), "OrderEnum")
}

// OverrideStatus sets or revokes an approval rule override.
type OverrideStatus string

const (
	OverrideStatusOverride OverrideStatus = "OVERRIDE"
	OverrideStatusRevoke   OverrideStatus = "REVOKE"
)

// Values returns every OverrideStatus in declaration order.
func (OverrideStatus) Values() []OverrideStatus {
	return []OverrideStatus{
		OverrideStatusOverride,
		OverrideStatusRevoke,
	}
}

func (e OverrideStatus) String() string { return string(e) }

// IsKnown reports whether e is one of the declared values.
func (e OverrideStatus) IsKnown() bool { return isKnown(e, e.Values()) }

// ParseOverrideStatus returns the OverrideStatus named by s. The match is case-sensitive.
func ParseOverrideStatus(s string) (OverrideStatus, error) {
	return parseEnum(OverrideStatus(s), OverrideStatus("").Values(), "OverrideStatus")
}

// PullRequestEventType is the type of a pull request event.
type PullRequestEventType string

const (
	PullRequestEventTypePullRequestCreated                PullRequestEventType = "PULL_REQUEST_CREATED"
	PullRequestEventTypePullRequestStatusChanged          PullRequestEventType = "PULL_REQUEST_STATUS_CHANGED"
	PullRequestEventTypePullRequestSourceReferenceUpdated PullRequestEventType = "PULL_REQUEST_SOURCE_REFERENCE_UPDATED"
	PullRequestEventTypePullRequestMergeStateChanged      PullRequestEventType = "PULL_REQUEST_MERGE_STATE_CHANGED"
	PullRequestEventTypePullRequestApprovalRuleCreated    PullRequestEventType = "PULL_REQUEST_APPROVAL_RULE_CREATED"
	PullRequestEventTypePullRequestApprovalRuleUpdated    PullRequestEventType = "PULL_REQUEST_APPROVAL_RULE_UPDATED"
	PullRequestEventTypePullRequestApprovalRuleDeleted    PullRequestEventType = "PULL_REQUEST_APPROVAL_RULE_DELETED"
	PullRequestEventTypePullRequestApprovalRuleOverridden PullRequestEventType = "PULL_REQUEST_APPROVAL_RULE_OVERRIDDEN"
	PullRequestEventTypePullRequestApprovalStateChanged   PullRequestEventType = "PULL_REQUEST_APPROVAL_STATE_CHANGED"
)

// Values returns every PullRequestEventType in declaration order.
func (PullRequestEventType) Values() []PullRequestEventType {
	return []PullRequestEventType{
		PullRequestEventTypePullRequestCreated,
		PullRequestEventTypePullRequestStatusChanged,
		PullRequestEventTypePullRequestSourceReferenceUpdated,
		PullRequestEventTypePullRequestMergeStateChanged,
		PullRequestEventTypePullRequestApprovalRuleCreated,
		PullRequestEventTypePullRequestApprovalRuleUpdated,
		PullRequestEventTypePullRequestApprovalRuleDeleted,
		PullRequestEventTypePullRequestApprovalRuleOverridden,
		PullRequestEventTypePullRequestApprovalStateChanged,
	}
}

func (e PullRequestEventType) String() string { return string(e) }

// IsKnown reports whether e is one of the declared values.
func (e PullRequestEventType) IsKnown() bool { return isKnown(e, e.Values()) }

// ParsePullRequestEventType returns the PullRequestEventType named by s. The match is case-sensitive.
func ParsePullRequestEventType(s string) (PullRequestEventType, error) {
	return parseEnum(PullRequestEventType(s), PullRequestEventType("").Values(), "PullRequestEventType")
}

// PullRequestStatusEnum is the status of a pull request.
type PullRequestStatusEnum string

const (
	PullRequestStatusEnumOpen   PullRequestStatusEnum = "OPEN"
	PullRequestStatusEnumClosed PullRequestStatusEnum = "CLOSED"
)

// Values returns every PullRequestStatusEnum in declaration order.
func (PullRequestStatusEnum) Values() []PullRequestStatusEnum {
	return []PullRequestStatusEnum{
		PullRequestStatusEnumOpen,
		PullRequestStatusEnumClosed,
	}
}

func (e PullRequestStatusEnum) String() string { return string(e) }

// IsKnown reports whether e is one of the declared values.
func (e PullRequestStatusEnum) IsKnown() bool { return isKnown(e, e.Values()) }

// ParsePullRequestStatusEnum returns the PullRequestStatusEnum named by s. The match is case-sensitive.
func ParsePullRequestStatusEnum(s string) (PullRequestStatusEnum, error) {
	return parseEnum(PullRequestStatusEnum(s), PullRequestStatusEnum("").Values(), "PullRequestStatusEnum")
}

// RelativeFileVersionEnum selects the before or after version of a file in a comparison.
type RelativeFileVersionEnum string

const (
	RelativeFileVersionEnumBefore RelativeFileVersionEnum = "BEFORE"
	RelativeFileVersionEnumAfter  RelativeFileVersionEnum = "AFTER"
)

// Values returns every RelativeFileVersionEnum in declaration order.
func (RelativeFileVersionEnum) Values() []RelativeFileVersionEnum {
	return []RelativeFileVersionEnum{
		RelativeFileVersionEnumBefore,
		RelativeFileVersionEnumAfter,
	}
}

func (e RelativeFileVersionEnum) String() string { return string(e) }

// IsKnown reports whether e is one of the declared values.
func (e RelativeFileVersionEnum) IsKnown() bool { return isKnown(e, e.Values()) }

// ParseRelativeFileVersionEnum returns the RelativeFileVersionEnum named by s. The match is case-sensitive.
func ParseRelativeFileVersionEnum(s string) (RelativeFileVersionEnum, error) {
	return parseEnum(RelativeFileVersionEnum(s), RelativeFileVersionEnum("").Values(), "RelativeFileVersionEnum")
}

// ReplacementTypeEnum selects the content used to resolve a conflicted file.
type ReplacementTypeEnum string

const (
	ReplacementTypeEnumKeepBase        ReplacementTypeEnum = "KEEP_BASE"
	ReplacementTypeEnumKeepSource      ReplacementTypeEnum = "KEEP_SOURCE"
	ReplacementTypeEnumKeepDestination ReplacementTypeEnum = "KEEP_DESTINATION"
	ReplacementTypeEnumUseNewContent   ReplacementTypeEnum = "USE_NEW_CONTENT"
)

// Values returns every ReplacementTypeEnum in declaration order.
func (ReplacementTypeEnum) Values() []ReplacementTypeEnum {
	return []ReplacementTypeEnum{
		ReplacementTypeEnumKeepBase,
		ReplacementTypeEnumKeepSource,
		ReplacementTypeEnumKeepDestination,
		ReplacementTypeEnumUseNewContent,
	}
}

func (e ReplacementTypeEnum) String() string { return string(e) }

// IsKnown reports whether e is one of the declared values.
func (e ReplacementTypeEnum) IsKnown() bool { return isKnown(e, e.Values()) }

// ParseReplacementTypeEnum returns the ReplacementTypeEnum named by s. The match is case-sensitive.
func ParseReplacementTypeEnum(s string) (ReplacementTypeEnum, error) {
	return parseEnum(ReplacementTypeEnum(s), ReplacementTypeEnum("").Values(), "ReplacementTypeEnum")
}

// RepositoryTriggerEventEnum is a repository event a trigger fires on.
type RepositoryTriggerEventEnum string

const (
	RepositoryTriggerEventEnumAll             RepositoryTriggerEventEnum = "all"
	RepositoryTriggerEventEnumUpdateReference RepositoryTriggerEventEnum = "updateReference"
	RepositoryTriggerEventEnumCreateReference RepositoryTriggerEventEnum = "createReference"
	RepositoryTriggerEventEnumDeleteReference RepositoryTriggerEventEnum = "deleteReference"
)

// Values returns every RepositoryTriggerEventEnum in declaration order.
func (RepositoryTriggerEventEnum) Values() []RepositoryTriggerEventEnum {
	return []RepositoryTriggerEventEnum{
		RepositoryTriggerEventEnumAll,
		RepositoryTriggerEventEnumUpdateReference,
		RepositoryTriggerEventEnumCreateReference,
		RepositoryTriggerEventEnumDeleteReference,
	}
}

func (e RepositoryTriggerEventEnum) String() string { return string(e) }

// IsKnown reports whether e is one of the declared values.
func (e RepositoryTriggerEventEnum) IsKnown() bool { return isKnown(e, e.Values()) }

// ParseRepositoryTriggerEventEnum returns the RepositoryTriggerEventEnum named by s. The match is case-sensitive.
func ParseRepositoryTriggerEventEnum(s string) (RepositoryTriggerEventEnum, error) {
	return parseEnum(RepositoryTriggerEventEnum(s), RepositoryTriggerEventEnum("").Values(), "RepositoryTriggerEventEnum")
}

// SortByEnum is the field repositories are sorted by.
type SortByEnum string

const (
	SortByEnumRepositoryName   SortByEnum = "repositoryName"
	SortByEnumLastModifiedDate SortByEnum = "lastModifiedDate"
)

// Values returns every SortByEnum in declaration order.
func (SortByEnum) Values() []SortByEnum {
	return []SortByEnum{
		SortByEnumRepositoryName,
		SortByEnumLastModifiedDate,
	}
}

func (e SortByEnum) String() string { return string(e) }

// IsKnown reports whether e is one of the declared values.
func (e SortByEnum) IsKnown() bool { return isKnown(e, e.Values()) }

// ParseSortByEnum returns the SortByEnum named by s. The match is case-sensitive.
func ParseSortByEnum(s string) (SortByEnum, error) {
	return parseEnum(SortByEnum(s), SortByEnum("").Values(), "SortByEnum")
}

func isKnown[E ~string](e E, values []E) bool {
	for _, v := range values {
		if v == e {
			return true
		}
	}
	return false
}

func parseEnum[E ~string](e E, values []E, kind string) (E, error) {
	if e == "" {
		return "", errors.InvalidArgument(kind, "value is empty")
	}
	if !isKnown(e, values) {
		return "", errors.InvalidArgument(kind, "unknown value "+string(e))
	}
	return e, nil
}
