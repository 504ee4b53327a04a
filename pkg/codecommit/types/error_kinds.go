package types

// Error kinds reported by the service. The value of each kind is the
// discriminator the service sends for it.
const (
	ErrorKindActorDoesNotExist                            ErrorKind = "ActorDoesNotExistException"
	ErrorKindApprovalRuleContentRequired                  ErrorKind = "ApprovalRuleContentRequiredException"
	ErrorKindApprovalRuleDoesNotExist                     ErrorKind = "ApprovalRuleDoesNotExistException"
	ErrorKindApprovalRuleNameAlreadyExists                ErrorKind = "ApprovalRuleNameAlreadyExistsException"
	ErrorKindApprovalRuleNameRequired                     ErrorKind = "ApprovalRuleNameRequiredException"
	ErrorKindApprovalRuleTemplateContentRequired          ErrorKind = "ApprovalRuleTemplateContentRequiredException"
	ErrorKindApprovalRuleTemplateDoesNotExist             ErrorKind = "ApprovalRuleTemplateDoesNotExistException"
	ErrorKindApprovalRuleTemplateInUse                    ErrorKind = "ApprovalRuleTemplateInUseException"
	ErrorKindApprovalRuleTemplateNameAlreadyExists        ErrorKind = "ApprovalRuleTemplateNameAlreadyExistsException"
	ErrorKindApprovalRuleTemplateNameRequired             ErrorKind = "ApprovalRuleTemplateNameRequiredException"
	ErrorKindApprovalStateRequired                        ErrorKind = "ApprovalStateRequiredException"
	ErrorKindAuthorDoesNotExist                           ErrorKind = "AuthorDoesNotExistException"
	ErrorKindBeforeCommitIdAndAfterCommitIdAreSame        ErrorKind = "BeforeCommitIdAndAfterCommitIdAreSameException"
	ErrorKindBlobIdDoesNotExist                           ErrorKind = "BlobIdDoesNotExistException"
	ErrorKindBlobIdRequired                               ErrorKind = "BlobIdRequiredException"
	ErrorKindBranchDoesNotExist                           ErrorKind = "BranchDoesNotExistException"
	ErrorKindBranchNameExists                             ErrorKind = "BranchNameExistsException"
	ErrorKindBranchNameIsTagName                          ErrorKind = "BranchNameIsTagNameException"
	ErrorKindBranchNameRequired                           ErrorKind = "BranchNameRequiredException"
	ErrorKindCannotDeleteApprovalRuleFromTemplate         ErrorKind = "CannotDeleteApprovalRuleFromTemplateException"
	ErrorKindCannotModifyApprovalRuleFromTemplate         ErrorKind = "CannotModifyApprovalRuleFromTemplateException"
	ErrorKindClientRequestTokenRequired                   ErrorKind = "ClientRequestTokenRequiredException"
	ErrorKindCommentContentRequired                       ErrorKind = "CommentContentRequiredException"
	ErrorKindCommentContentSizeLimitExceeded              ErrorKind = "CommentContentSizeLimitExceededException"
	ErrorKindCommentDeleted                               ErrorKind = "CommentDeletedException"
	ErrorKindCommentDoesNotExist                          ErrorKind = "CommentDoesNotExistException"
	ErrorKindCommentIdRequired                            ErrorKind = "CommentIdRequiredException"
	ErrorKindCommentNotCreatedByCaller                    ErrorKind = "CommentNotCreatedByCallerException"
	ErrorKindCommitDoesNotExist                           ErrorKind = "CommitDoesNotExistException"
	ErrorKindCommitIdDoesNotExist                         ErrorKind = "CommitIdDoesNotExistException"
	ErrorKindCommitIdRequired                             ErrorKind = "CommitIdRequiredException"
	ErrorKindCommitIdsLimitExceeded                       ErrorKind = "CommitIdsLimitExceededException"
	ErrorKindCommitIdsListRequired                        ErrorKind = "CommitIdsListRequiredException"
	ErrorKindCommitMessageLengthExceeded                  ErrorKind = "CommitMessageLengthExceededException"
	ErrorKindCommitRequired                               ErrorKind = "CommitRequiredException"
	ErrorKindConcurrentReferenceUpdate                    ErrorKind = "ConcurrentReferenceUpdateException"
	ErrorKindDefaultBranchCannotBeDeleted                 ErrorKind = "DefaultBranchCannotBeDeletedException"
	ErrorKindDirectoryNameConflictsWithFileName           ErrorKind = "DirectoryNameConflictsWithFileNameException"
	ErrorKindEncryptionIntegrityChecksFailed              ErrorKind = "EncryptionIntegrityChecksFailedException"
	ErrorKindEncryptionKeyAccessDenied                    ErrorKind = "EncryptionKeyAccessDeniedException"
	ErrorKindEncryptionKeyDisabled                        ErrorKind = "EncryptionKeyDisabledException"
	ErrorKindEncryptionKeyNotFound                        ErrorKind = "EncryptionKeyNotFoundException"
	ErrorKindEncryptionKeyUnavailable                     ErrorKind = "EncryptionKeyUnavailableException"
	ErrorKindFileContentAndSourceFileSpecified            ErrorKind = "FileContentAndSourceFileSpecifiedException"
	ErrorKindFileContentRequired                          ErrorKind = "FileContentRequiredException"
	ErrorKindFileContentSizeLimitExceeded                 ErrorKind = "FileContentSizeLimitExceededException"
	ErrorKindFileDoesNotExist                             ErrorKind = "FileDoesNotExistException"
	ErrorKindFileEntryRequired                            ErrorKind = "FileEntryRequiredException"
	ErrorKindFileModeRequired                             ErrorKind = "FileModeRequiredException"
	ErrorKindFileNameConflictsWithDirectoryName           ErrorKind = "FileNameConflictsWithDirectoryNameException"
	ErrorKindFilePathConflictsWithSubmodulePath           ErrorKind = "FilePathConflictsWithSubmodulePathException"
	ErrorKindFileTooLarge                                 ErrorKind = "FileTooLargeException"
	ErrorKindFolderContentSizeLimitExceeded               ErrorKind = "FolderContentSizeLimitExceededException"
	ErrorKindFolderDoesNotExist                           ErrorKind = "FolderDoesNotExistException"
	ErrorKindIdempotencyParameterMismatch                 ErrorKind = "IdempotencyParameterMismatchException"
	ErrorKindInvalidActorArn                              ErrorKind = "InvalidActorArnException"
	ErrorKindInvalidApprovalRuleContent                   ErrorKind = "InvalidApprovalRuleContentException"
	ErrorKindInvalidApprovalRuleName                      ErrorKind = "InvalidApprovalRuleNameException"
	ErrorKindInvalidApprovalRuleTemplateContent           ErrorKind = "InvalidApprovalRuleTemplateContentException"
	ErrorKindInvalidApprovalRuleTemplateDescription       ErrorKind = "InvalidApprovalRuleTemplateDescriptionException"
	ErrorKindInvalidApprovalRuleTemplateName              ErrorKind = "InvalidApprovalRuleTemplateNameException"
	ErrorKindInvalidApprovalState                         ErrorKind = "InvalidApprovalStateException"
	ErrorKindInvalidAuthorArn                             ErrorKind = "InvalidAuthorArnException"
	ErrorKindInvalidBlobId                                ErrorKind = "InvalidBlobIdException"
	ErrorKindInvalidBranchName                            ErrorKind = "InvalidBranchNameException"
	ErrorKindInvalidClientRequestToken                    ErrorKind = "InvalidClientRequestTokenException"
	ErrorKindInvalidCommentId                             ErrorKind = "InvalidCommentIdException"
	ErrorKindInvalidCommit                                ErrorKind = "InvalidCommitException"
	ErrorKindInvalidCommitId                              ErrorKind = "InvalidCommitIdException"
	ErrorKindInvalidConflictDetailLevel                   ErrorKind = "InvalidConflictDetailLevelException"
	ErrorKindInvalidConflictResolution                    ErrorKind = "InvalidConflictResolutionException"
	ErrorKindInvalidConflictResolutionStrategy            ErrorKind = "InvalidConflictResolutionStrategyException"
	ErrorKindInvalidContinuationToken                     ErrorKind = "InvalidContinuationTokenException"
	ErrorKindInvalidDeletionParameter                     ErrorKind = "InvalidDeletionParameterException"
	ErrorKindInvalidDescription                           ErrorKind = "InvalidDescriptionException"
	ErrorKindInvalidDestinationCommitSpecifier            ErrorKind = "InvalidDestinationCommitSpecifierException"
	ErrorKindInvalidEmail                                 ErrorKind = "InvalidEmailException"
	ErrorKindInvalidFileLocation                          ErrorKind = "InvalidFileLocationException"
	ErrorKindInvalidFileMode                              ErrorKind = "InvalidFileModeException"
	ErrorKindInvalidFilePosition                          ErrorKind = "InvalidFilePositionException"
	ErrorKindInvalidMaxConflictFiles                      ErrorKind = "InvalidMaxConflictFilesException"
	ErrorKindInvalidMaxMergeHunks                         ErrorKind = "InvalidMaxMergeHunksException"
	ErrorKindInvalidMaxResults                            ErrorKind = "InvalidMaxResultsException"
	ErrorKindInvalidMergeOption                           ErrorKind = "InvalidMergeOptionException"
	ErrorKindInvalidOrder                                 ErrorKind = "InvalidOrderException"
	ErrorKindInvalidOverrideStatus                        ErrorKind = "InvalidOverrideStatusException"
	ErrorKindInvalidParentCommitId                        ErrorKind = "InvalidParentCommitIdException"
	ErrorKindInvalidPath                                  ErrorKind = "InvalidPathException"
	ErrorKindInvalidPullRequestEventType                  ErrorKind = "InvalidPullRequestEventTypeException"
	ErrorKindInvalidPullRequestId                         ErrorKind = "InvalidPullRequestIdException"
	ErrorKindInvalidPullRequestStatus                     ErrorKind = "InvalidPullRequestStatusException"
	ErrorKindInvalidPullRequestStatusUpdate               ErrorKind = "InvalidPullRequestStatusUpdateException"
	ErrorKindInvalidReactionUserArn                       ErrorKind = "InvalidReactionUserArnException"
	ErrorKindInvalidReactionValue                         ErrorKind = "InvalidReactionValueException"
	ErrorKindInvalidReferenceName                         ErrorKind = "InvalidReferenceNameException"
	ErrorKindInvalidRelativeFileVersionEnum               ErrorKind = "InvalidRelativeFileVersionEnumException"
	ErrorKindInvalidReplacementContent                    ErrorKind = "InvalidReplacementContentException"
	ErrorKindInvalidReplacementType                       ErrorKind = "InvalidReplacementTypeException"
	ErrorKindInvalidRepositoryDescription                 ErrorKind = "InvalidRepositoryDescriptionException"
	ErrorKindInvalidRepositoryName                        ErrorKind = "InvalidRepositoryNameException"
	ErrorKindInvalidRepositoryTriggerBranchName           ErrorKind = "InvalidRepositoryTriggerBranchNameException"
	ErrorKindInvalidRepositoryTriggerCustomData           ErrorKind = "InvalidRepositoryTriggerCustomDataException"
	ErrorKindInvalidRepositoryTriggerDestinationArn       ErrorKind = "InvalidRepositoryTriggerDestinationArnException"
	ErrorKindInvalidRepositoryTriggerEvents               ErrorKind = "InvalidRepositoryTriggerEventsException"
	ErrorKindInvalidRepositoryTriggerName                 ErrorKind = "InvalidRepositoryTriggerNameException"
	ErrorKindInvalidRepositoryTriggerRegion               ErrorKind = "InvalidRepositoryTriggerRegionException"
	ErrorKindInvalidResourceArn                           ErrorKind = "InvalidResourceArnException"
	ErrorKindInvalidRevisionId                            ErrorKind = "InvalidRevisionIdException"
	ErrorKindInvalidSortBy                                ErrorKind = "InvalidSortByException"
	ErrorKindInvalidSourceCommitSpecifier                 ErrorKind = "InvalidSourceCommitSpecifierException"
	ErrorKindInvalidSystemTagUsage                        ErrorKind = "InvalidSystemTagUsageException"
	ErrorKindInvalidTagKeysList                           ErrorKind = "InvalidTagKeysListException"
	ErrorKindInvalidTagsMap                               ErrorKind = "InvalidTagsMapException"
	ErrorKindInvalidTargetBranch                          ErrorKind = "InvalidTargetBranchException"
	ErrorKindInvalidTarget                                ErrorKind = "InvalidTargetException"
	ErrorKindInvalidTargets                               ErrorKind = "InvalidTargetsException"
	ErrorKindInvalidTitle                                 ErrorKind = "InvalidTitleException"
	ErrorKindManualMergeRequired                          ErrorKind = "ManualMergeRequiredException"
	ErrorKindMaximumBranchesExceeded                      ErrorKind = "MaximumBranchesExceededException"
	ErrorKindMaximumConflictResolutionEntriesExceeded     ErrorKind = "MaximumConflictResolutionEntriesExceededException"
	ErrorKindMaximumFileContentToLoadExceeded             ErrorKind = "MaximumFileContentToLoadExceededException"
	ErrorKindMaximumFileEntriesExceeded                   ErrorKind = "MaximumFileEntriesExceededException"
	ErrorKindMaximumItemsToCompareExceeded                ErrorKind = "MaximumItemsToCompareExceededException"
	ErrorKindMaximumNumberOfApprovalsExceeded             ErrorKind = "MaximumNumberOfApprovalsExceededException"
	ErrorKindMaximumOpenPullRequestsExceeded              ErrorKind = "MaximumOpenPullRequestsExceededException"
	ErrorKindMaximumRepositoryNamesExceeded               ErrorKind = "MaximumRepositoryNamesExceededException"
	ErrorKindMaximumRepositoryTriggersExceeded            ErrorKind = "MaximumRepositoryTriggersExceededException"
	ErrorKindMaximumRuleTemplatesAssociatedWithRepository ErrorKind = "MaximumRuleTemplatesAssociatedWithRepositoryException"
	ErrorKindMergeOptionRequired                          ErrorKind = "MergeOptionRequiredException"
	ErrorKindMultipleConflictResolutionEntries            ErrorKind = "MultipleConflictResolutionEntriesException"
	ErrorKindMultipleRepositoriesInPullRequest            ErrorKind = "MultipleRepositoriesInPullRequestException"
	ErrorKindNameLengthExceeded                           ErrorKind = "NameLengthExceededException"
	ErrorKindNoChange                                     ErrorKind = "NoChangeException"
	ErrorKindNumberOfRuleTemplatesExceeded                ErrorKind = "NumberOfRuleTemplatesExceededException"
	ErrorKindNumberOfRulesExceeded                        ErrorKind = "NumberOfRulesExceededException"
	ErrorKindOverrideAlreadySet                           ErrorKind = "OverrideAlreadySetException"
	ErrorKindOverrideStatusRequired                       ErrorKind = "OverrideStatusRequiredException"
	ErrorKindParentCommitDoesNotExist                     ErrorKind = "ParentCommitDoesNotExistException"
	ErrorKindParentCommitIdOutdated                       ErrorKind = "ParentCommitIdOutdatedException"
	ErrorKindParentCommitIdRequired                       ErrorKind = "ParentCommitIdRequiredException"
	ErrorKindPathDoesNotExist                             ErrorKind = "PathDoesNotExistException"
	ErrorKindPathRequired                                 ErrorKind = "PathRequiredException"
	ErrorKindPullRequestAlreadyClosed                     ErrorKind = "PullRequestAlreadyClosedException"
	ErrorKindPullRequestApprovalRulesNotSatisfied         ErrorKind = "PullRequestApprovalRulesNotSatisfiedException"
	ErrorKindPullRequestCannotBeApprovedByAuthor          ErrorKind = "PullRequestCannotBeApprovedByAuthorException"
	ErrorKindPullRequestDoesNotExist                      ErrorKind = "PullRequestDoesNotExistException"
	ErrorKindPullRequestIdRequired                        ErrorKind = "PullRequestIdRequiredException"
	ErrorKindPullRequestStatusRequired                    ErrorKind = "PullRequestStatusRequiredException"
	ErrorKindPutFileEntryConflict                         ErrorKind = "PutFileEntryConflictException"
	ErrorKindReactionLimitExceeded                        ErrorKind = "ReactionLimitExceededException"
	ErrorKindReactionValueRequired                        ErrorKind = "ReactionValueRequiredException"
	ErrorKindReferenceDoesNotExist                        ErrorKind = "ReferenceDoesNotExistException"
	ErrorKindReferenceNameRequired                        ErrorKind = "ReferenceNameRequiredException"
	ErrorKindReferenceTypeNotSupported                    ErrorKind = "ReferenceTypeNotSupportedException"
	ErrorKindReplacementContentRequired                   ErrorKind = "ReplacementContentRequiredException"
	ErrorKindReplacementTypeRequired                      ErrorKind = "ReplacementTypeRequiredException"
	ErrorKindRepositoryDoesNotExist                       ErrorKind = "RepositoryDoesNotExistException"
	ErrorKindRepositoryLimitExceeded                      ErrorKind = "RepositoryLimitExceededException"
	ErrorKindRepositoryNameExists                         ErrorKind = "RepositoryNameExistsException"
	ErrorKindRepositoryNameRequired                       ErrorKind = "RepositoryNameRequiredException"
	ErrorKindRepositoryNamesRequired                      ErrorKind = "RepositoryNamesRequiredException"
	ErrorKindRepositoryNotAssociatedWithPullRequest       ErrorKind = "RepositoryNotAssociatedWithPullRequestException"
	ErrorKindRepositoryTriggerBranchNameListRequired      ErrorKind = "RepositoryTriggerBranchNameListRequiredException"
	ErrorKindRepositoryTriggerDestinationArnRequired      ErrorKind = "RepositoryTriggerDestinationArnRequiredException"
	ErrorKindRepositoryTriggerEventsListRequired          ErrorKind = "RepositoryTriggerEventsListRequiredException"
	ErrorKindRepositoryTriggerNameRequired                ErrorKind = "RepositoryTriggerNameRequiredException"
	ErrorKindRepositoryTriggersListRequired               ErrorKind = "RepositoryTriggersListRequiredException"
	ErrorKindResourceArnRequired                          ErrorKind = "ResourceArnRequiredException"
	ErrorKindRestrictedSourceFile                         ErrorKind = "RestrictedSourceFileException"
	ErrorKindRevisionIdRequired                           ErrorKind = "RevisionIdRequiredException"
	ErrorKindRevisionNotCurrent                           ErrorKind = "RevisionNotCurrentException"
	ErrorKindSameFileContent                              ErrorKind = "SameFileContentException"
	ErrorKindSamePathRequest                              ErrorKind = "SamePathRequestException"
	ErrorKindSourceAndDestinationAreSame                  ErrorKind = "SourceAndDestinationAreSameException"
	ErrorKindSourceFileOrContentRequired                  ErrorKind = "SourceFileOrContentRequiredException"
	ErrorKindTagKeysListRequired                          ErrorKind = "TagKeysListRequiredException"
	ErrorKindTagPolicy                                    ErrorKind = "TagPolicyException"
	ErrorKindTagsMapRequired                              ErrorKind = "TagsMapRequiredException"
	ErrorKindTargetRequired                               ErrorKind = "TargetRequiredException"
	ErrorKindTargetsRequired                              ErrorKind = "TargetsRequiredException"
	ErrorKindTipOfSourceReferenceIsDifferent              ErrorKind = "TipOfSourceReferenceIsDifferentException"
	ErrorKindTipsDivergenceExceeded                       ErrorKind = "TipsDivergenceExceededException"
	ErrorKindTitleRequired                                ErrorKind = "TitleRequiredException"
	ErrorKindTooManyTags                                  ErrorKind = "TooManyTagsException"

	// ErrorKindServiceFault is reported for discriminators outside the catalog.
	ErrorKindServiceFault                                 ErrorKind = "ServiceFault"
)

var errorKinds = []ErrorKind{
	ErrorKindActorDoesNotExist,
	ErrorKindApprovalRuleContentRequired,
	ErrorKindApprovalRuleDoesNotExist,
	ErrorKindApprovalRuleNameAlreadyExists,
	ErrorKindApprovalRuleNameRequired,
	ErrorKindApprovalRuleTemplateContentRequired,
	ErrorKindApprovalRuleTemplateDoesNotExist,
	ErrorKindApprovalRuleTemplateInUse,
	ErrorKindApprovalRuleTemplateNameAlreadyExists,
	ErrorKindApprovalRuleTemplateNameRequired,
	ErrorKindApprovalStateRequired,
	ErrorKindAuthorDoesNotExist,
	ErrorKindBeforeCommitIdAndAfterCommitIdAreSame,
	ErrorKindBlobIdDoesNotExist,
	ErrorKindBlobIdRequired,
	ErrorKindBranchDoesNotExist,
	ErrorKindBranchNameExists,
	ErrorKindBranchNameIsTagName,
	ErrorKindBranchNameRequired,
	ErrorKindCannotDeleteApprovalRuleFromTemplate,
	ErrorKindCannotModifyApprovalRuleFromTemplate,
	ErrorKindClientRequestTokenRequired,
	ErrorKindCommentContentRequired,
	ErrorKindCommentContentSizeLimitExceeded,
	ErrorKindCommentDeleted,
	ErrorKindCommentDoesNotExist,
	ErrorKindCommentIdRequired,
	ErrorKindCommentNotCreatedByCaller,
	ErrorKindCommitDoesNotExist,
	ErrorKindCommitIdDoesNotExist,
	ErrorKindCommitIdRequired,
	ErrorKindCommitIdsLimitExceeded,
	ErrorKindCommitIdsListRequired,
	ErrorKindCommitMessageLengthExceeded,
	ErrorKindCommitRequired,
	ErrorKindConcurrentReferenceUpdate,
	ErrorKindDefaultBranchCannotBeDeleted,
	ErrorKindDirectoryNameConflictsWithFileName,
	ErrorKindEncryptionIntegrityChecksFailed,
	ErrorKindEncryptionKeyAccessDenied,
	ErrorKindEncryptionKeyDisabled,
	ErrorKindEncryptionKeyNotFound,
	ErrorKindEncryptionKeyUnavailable,
	ErrorKindFileContentAndSourceFileSpecified,
	ErrorKindFileContentRequired,
	ErrorKindFileContentSizeLimitExceeded,
	ErrorKindFileDoesNotExist,
	ErrorKindFileEntryRequired,
	ErrorKindFileModeRequired,
	ErrorKindFileNameConflictsWithDirectoryName,
	ErrorKindFilePathConflictsWithSubmodulePath,
	ErrorKindFileTooLarge,
	ErrorKindFolderContentSizeLimitExceeded,
	ErrorKindFolderDoesNotExist,
	ErrorKindIdempotencyParameterMismatch,
	ErrorKindInvalidActorArn,
	ErrorKindInvalidApprovalRuleContent,
	ErrorKindInvalidApprovalRuleName,
	ErrorKindInvalidApprovalRuleTemplateContent,
	ErrorKindInvalidApprovalRuleTemplateDescription,
	ErrorKindInvalidApprovalRuleTemplateName,
	ErrorKindInvalidApprovalState,
	ErrorKindInvalidAuthorArn,
	ErrorKindInvalidBlobId,
	ErrorKindInvalidBranchName,
	ErrorKindInvalidClientRequestToken,
	ErrorKindInvalidCommentId,
	ErrorKindInvalidCommit,
	ErrorKindInvalidCommitId,
	ErrorKindInvalidConflictDetailLevel,
	ErrorKindInvalidConflictResolution,
	ErrorKindInvalidConflictResolutionStrategy,
	ErrorKindInvalidContinuationToken,
	ErrorKindInvalidDeletionParameter,
	ErrorKindInvalidDescription,
	ErrorKindInvalidDestinationCommitSpecifier,
	ErrorKindInvalidEmail,
	ErrorKindInvalidFileLocation,
	ErrorKindInvalidFileMode,
	ErrorKindInvalidFilePosition,
	ErrorKindInvalidMaxConflictFiles,
	ErrorKindInvalidMaxMergeHunks,
	ErrorKindInvalidMaxResults,
	ErrorKindInvalidMergeOption,
	ErrorKindInvalidOrder,
	ErrorKindInvalidOverrideStatus,
	ErrorKindInvalidParentCommitId,
	ErrorKindInvalidPath,
	ErrorKindInvalidPullRequestEventType,
	ErrorKindInvalidPullRequestId,
	ErrorKindInvalidPullRequestStatus,
	ErrorKindInvalidPullRequestStatusUpdate,
	ErrorKindInvalidReactionUserArn,
	ErrorKindInvalidReactionValue,
	ErrorKindInvalidReferenceName,
	ErrorKindInvalidRelativeFileVersionEnum,
	ErrorKindInvalidReplacementContent,
	ErrorKindInvalidReplacementType,
	ErrorKindInvalidRepositoryDescription,
	ErrorKindInvalidRepositoryName,
	ErrorKindInvalidRepositoryTriggerBranchName,
	ErrorKindInvalidRepositoryTriggerCustomData,
	ErrorKindInvalidRepositoryTriggerDestinationArn,
	ErrorKindInvalidRepositoryTriggerEvents,
	ErrorKindInvalidRepositoryTriggerName,
	ErrorKindInvalidRepositoryTriggerRegion,
	ErrorKindInvalidResourceArn,
	ErrorKindInvalidRevisionId,
	ErrorKindInvalidSortBy,
	ErrorKindInvalidSourceCommitSpecifier,
	ErrorKindInvalidSystemTagUsage,
	ErrorKindInvalidTagKeysList,
	ErrorKindInvalidTagsMap,
	ErrorKindInvalidTargetBranch,
	ErrorKindInvalidTarget,
	ErrorKindInvalidTargets,
	ErrorKindInvalidTitle,
	ErrorKindManualMergeRequired,
	ErrorKindMaximumBranchesExceeded,
	ErrorKindMaximumConflictResolutionEntriesExceeded,
	ErrorKindMaximumFileContentToLoadExceeded,
	ErrorKindMaximumFileEntriesExceeded,
	ErrorKindMaximumItemsToCompareExceeded,
	ErrorKindMaximumNumberOfApprovalsExceeded,
	ErrorKindMaximumOpenPullRequestsExceeded,
	ErrorKindMaximumRepositoryNamesExceeded,
	ErrorKindMaximumRepositoryTriggersExceeded,
	ErrorKindMaximumRuleTemplatesAssociatedWithRepository,
	ErrorKindMergeOptionRequired,
	ErrorKindMultipleConflictResolutionEntries,
	ErrorKindMultipleRepositoriesInPullRequest,
	ErrorKindNameLengthExceeded,
	ErrorKindNoChange,
	ErrorKindNumberOfRuleTemplatesExceeded,
	ErrorKindNumberOfRulesExceeded,
	ErrorKindOverrideAlreadySet,
	ErrorKindOverrideStatusRequired,
	ErrorKindParentCommitDoesNotExist,
	ErrorKindParentCommitIdOutdated,
	ErrorKindParentCommitIdRequired,
	ErrorKindPathDoesNotExist,
	ErrorKindPathRequired,
	ErrorKindPullRequestAlreadyClosed,
	ErrorKindPullRequestApprovalRulesNotSatisfied,
	ErrorKindPullRequestCannotBeApprovedByAuthor,
	ErrorKindPullRequestDoesNotExist,
	ErrorKindPullRequestIdRequired,
	ErrorKindPullRequestStatusRequired,
	ErrorKindPutFileEntryConflict,
	ErrorKindReactionLimitExceeded,
	ErrorKindReactionValueRequired,
	ErrorKindReferenceDoesNotExist,
	ErrorKindReferenceNameRequired,
	ErrorKindReferenceTypeNotSupported,
	ErrorKindReplacementContentRequired,
	ErrorKindReplacementTypeRequired,
	ErrorKindRepositoryDoesNotExist,
	ErrorKindRepositoryLimitExceeded,
	ErrorKindRepositoryNameExists,
	ErrorKindRepositoryNameRequired,
	ErrorKindRepositoryNamesRequired,
	ErrorKindRepositoryNotAssociatedWithPullRequest,
	ErrorKindRepositoryTriggerBranchNameListRequired,
	ErrorKindRepositoryTriggerDestinationArnRequired,
	ErrorKindRepositoryTriggerEventsListRequired,
	ErrorKindRepositoryTriggerNameRequired,
	ErrorKindRepositoryTriggersListRequired,
	ErrorKindResourceArnRequired,
	ErrorKindRestrictedSourceFile,
	ErrorKindRevisionIdRequired,
	ErrorKindRevisionNotCurrent,
	ErrorKindSameFileContent,
	ErrorKindSamePathRequest,
	ErrorKindSourceAndDestinationAreSame,
	ErrorKindSourceFileOrContentRequired,
	ErrorKindTagKeysListRequired,
	ErrorKindTagPolicy,
	ErrorKindTagsMapRequired,
	ErrorKindTargetRequired,
	ErrorKindTargetsRequired,
	ErrorKindTipOfSourceReferenceIsDifferent,
	ErrorKindTipsDivergenceExceeded,
	ErrorKindTitleRequired,
	ErrorKindTooManyTags,
}
