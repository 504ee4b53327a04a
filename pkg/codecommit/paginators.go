package codecommit

import "context"

// NewListRepositoriesPaginator returns a paginator over ListRepositories. params is copied;
// its NextToken, if set, selects the first page.
func NewListRepositoriesPaginator(client *Client, params *ListRepositoriesRequest) *Paginator[ListRepositoriesResult] {
	var req ListRepositoriesRequest
	if params != nil {
		req = *params
	}
	return newPaginator(req.NextToken, func(ctx context.Context, token *string) (*ListRepositoriesResult, *string, error) {
		req.NextToken = token
		out, err := client.ListRepositories(ctx, &req)
		if err != nil {
			return nil, nil, err
		}
		return out, out.NextToken, nil
	})
}

// NewListBranchesPaginator returns a paginator over ListBranches. params is copied;
// its NextToken, if set, selects the first page.
func NewListBranchesPaginator(client *Client, params *ListBranchesRequest) *Paginator[ListBranchesResult] {
	var req ListBranchesRequest
	if params != nil {
		req = *params
	}
	return newPaginator(req.NextToken, func(ctx context.Context, token *string) (*ListBranchesResult, *string, error) {
		req.NextToken = token
		out, err := client.ListBranches(ctx, &req)
		if err != nil {
			return nil, nil, err
		}
		return out, out.NextToken, nil
	})
}

// NewGetDifferencesPaginator returns a paginator over GetDifferences. params is copied;
// its NextToken, if set, selects the first page.
func NewGetDifferencesPaginator(client *Client, params *GetDifferencesRequest) *Paginator[GetDifferencesResult] {
	var req GetDifferencesRequest
	if params != nil {
		req = *params
	}
	return newPaginator(req.NextToken, func(ctx context.Context, token *string) (*GetDifferencesResult, *string, error) {
		req.NextToken = token
		out, err := client.GetDifferences(ctx, &req)
		if err != nil {
			return nil, nil, err
		}
		return out, out.NextToken, nil
	})
}

// NewBatchDescribeMergeConflictsPaginator returns a paginator over BatchDescribeMergeConflicts. params is copied;
// its NextToken, if set, selects the first page.
func NewBatchDescribeMergeConflictsPaginator(client *Client, params *BatchDescribeMergeConflictsRequest) *Paginator[BatchDescribeMergeConflictsResult] {
	var req BatchDescribeMergeConflictsRequest
	if params != nil {
		req = *params
	}
	return newPaginator(req.NextToken, func(ctx context.Context, token *string) (*BatchDescribeMergeConflictsResult, *string, error) {
		req.NextToken = token
		out, err := client.BatchDescribeMergeConflicts(ctx, &req)
		if err != nil {
			return nil, nil, err
		}
		return out, out.NextToken, nil
	})
}

// NewDescribeMergeConflictsPaginator returns a paginator over DescribeMergeConflicts. params is copied;
// its NextToken, if set, selects the first page.
func NewDescribeMergeConflictsPaginator(client *Client, params *DescribeMergeConflictsRequest) *Paginator[DescribeMergeConflictsResult] {
	var req DescribeMergeConflictsRequest
	if params != nil {
		req = *params
	}
	return newPaginator(req.NextToken, func(ctx context.Context, token *string) (*DescribeMergeConflictsResult, *string, error) {
		req.NextToken = token
		out, err := client.DescribeMergeConflicts(ctx, &req)
		if err != nil {
			return nil, nil, err
		}
		return out, out.NextToken, nil
	})
}

// NewGetMergeConflictsPaginator returns a paginator over GetMergeConflicts. params is copied;
// its NextToken, if set, selects the first page.
func NewGetMergeConflictsPaginator(client *Client, params *GetMergeConflictsRequest) *Paginator[GetMergeConflictsResult] {
	var req GetMergeConflictsRequest
	if params != nil {
		req = *params
	}
	return newPaginator(req.NextToken, func(ctx context.Context, token *string) (*GetMergeConflictsResult, *string, error) {
		req.NextToken = token
		out, err := client.GetMergeConflicts(ctx, &req)
		if err != nil {
			return nil, nil, err
		}
		return out, out.NextToken, nil
	})
}

// NewDescribePullRequestEventsPaginator returns a paginator over DescribePullRequestEvents. params is copied;
// its NextToken, if set, selects the first page.
func NewDescribePullRequestEventsPaginator(client *Client, params *DescribePullRequestEventsRequest) *Paginator[DescribePullRequestEventsResult] {
	var req DescribePullRequestEventsRequest
	if params != nil {
		req = *params
	}
	return newPaginator(req.NextToken, func(ctx context.Context, token *string) (*DescribePullRequestEventsResult, *string, error) {
		req.NextToken = token
		out, err := client.DescribePullRequestEvents(ctx, &req)
		if err != nil {
			return nil, nil, err
		}
		return out, out.NextToken, nil
	})
}

// NewListPullRequestsPaginator returns a paginator over ListPullRequests. params is copied;
// its NextToken, if set, selects the first page.
func NewListPullRequestsPaginator(client *Client, params *ListPullRequestsRequest) *Paginator[ListPullRequestsResult] {
	var req ListPullRequestsRequest
	if params != nil {
		req = *params
	}
	return newPaginator(req.NextToken, func(ctx context.Context, token *string) (*ListPullRequestsResult, *string, error) {
		req.NextToken = token
		out, err := client.ListPullRequests(ctx, &req)
		if err != nil {
			return nil, nil, err
		}
		return out, out.NextToken, nil
	})
}

// NewListApprovalRuleTemplatesPaginator returns a paginator over ListApprovalRuleTemplates. params is copied;
// its NextToken, if set, selects the first page.
func NewListApprovalRuleTemplatesPaginator(client *Client, params *ListApprovalRuleTemplatesRequest) *Paginator[ListApprovalRuleTemplatesResult] {
	var req ListApprovalRuleTemplatesRequest
	if params != nil {
		req = *params
	}
	return newPaginator(req.NextToken, func(ctx context.Context, token *string) (*ListApprovalRuleTemplatesResult, *string, error) {
		req.NextToken = token
		out, err := client.ListApprovalRuleTemplates(ctx, &req)
		if err != nil {
			return nil, nil, err
		}
		return out, out.NextToken, nil
	})
}

// NewListAssociatedApprovalRuleTemplatesForRepositoryPaginator returns a paginator over ListAssociatedApprovalRuleTemplatesForRepository. params is copied;
// its NextToken, if set, selects the first page.
func NewListAssociatedApprovalRuleTemplatesForRepositoryPaginator(client *Client, params *ListAssociatedApprovalRuleTemplatesForRepositoryRequest) *Paginator[ListAssociatedApprovalRuleTemplatesForRepositoryResult] {
	var req ListAssociatedApprovalRuleTemplatesForRepositoryRequest
	if params != nil {
		req = *params
	}
	return newPaginator(req.NextToken, func(ctx context.Context, token *string) (*ListAssociatedApprovalRuleTemplatesForRepositoryResult, *string, error) {
		req.NextToken = token
		out, err := client.ListAssociatedApprovalRuleTemplatesForRepository(ctx, &req)
		if err != nil {
			return nil, nil, err
		}
		return out, out.NextToken, nil
	})
}

// NewListRepositoriesForApprovalRuleTemplatePaginator returns a paginator over ListRepositoriesForApprovalRuleTemplate. params is copied;
// its NextToken, if set, selects the first page.
func NewListRepositoriesForApprovalRuleTemplatePaginator(client *Client, params *ListRepositoriesForApprovalRuleTemplateRequest) *Paginator[ListRepositoriesForApprovalRuleTemplateResult] {
	var req ListRepositoriesForApprovalRuleTemplateRequest
	if params != nil {
		req = *params
	}
	return newPaginator(req.NextToken, func(ctx context.Context, token *string) (*ListRepositoriesForApprovalRuleTemplateResult, *string, error) {
		req.NextToken = token
		out, err := client.ListRepositoriesForApprovalRuleTemplate(ctx, &req)
		if err != nil {
			return nil, nil, err
		}
		return out, out.NextToken, nil
	})
}

// NewGetCommentReactionsPaginator returns a paginator over GetCommentReactions. params is copied;
// its NextToken, if set, selects the first page.
func NewGetCommentReactionsPaginator(client *Client, params *GetCommentReactionsRequest) *Paginator[GetCommentReactionsResult] {
	var req GetCommentReactionsRequest
	if params != nil {
		req = *params
	}
	return newPaginator(req.NextToken, func(ctx context.Context, token *string) (*GetCommentReactionsResult, *string, error) {
		req.NextToken = token
		out, err := client.GetCommentReactions(ctx, &req)
		if err != nil {
			return nil, nil, err
		}
		return out, out.NextToken, nil
	})
}

// NewGetCommentsForComparedCommitPaginator returns a paginator over GetCommentsForComparedCommit. params is copied;
// its NextToken, if set, selects the first page.
func NewGetCommentsForComparedCommitPaginator(client *Client, params *GetCommentsForComparedCommitRequest) *Paginator[GetCommentsForComparedCommitResult] {
	var req GetCommentsForComparedCommitRequest
	if params != nil {
		req = *params
	}
	return newPaginator(req.NextToken, func(ctx context.Context, token *string) (*GetCommentsForComparedCommitResult, *string, error) {
		req.NextToken = token
		out, err := client.GetCommentsForComparedCommit(ctx, &req)
		if err != nil {
			return nil, nil, err
		}
		return out, out.NextToken, nil
	})
}

// NewGetCommentsForPullRequestPaginator returns a paginator over GetCommentsForPullRequest. params is copied;
// its NextToken, if set, selects the first page.
func NewGetCommentsForPullRequestPaginator(client *Client, params *GetCommentsForPullRequestRequest) *Paginator[GetCommentsForPullRequestResult] {
	var req GetCommentsForPullRequestRequest
	if params != nil {
		req = *params
	}
	return newPaginator(req.NextToken, func(ctx context.Context, token *string) (*GetCommentsForPullRequestResult, *string, error) {
		req.NextToken = token
		out, err := client.GetCommentsForPullRequest(ctx, &req)
		if err != nil {
			return nil, nil, err
		}
		return out, out.NextToken, nil
	})
}

// NewListTagsForResourcePaginator returns a paginator over ListTagsForResource. params is copied;
// its NextToken, if set, selects the first page.
func NewListTagsForResourcePaginator(client *Client, params *ListTagsForResourceRequest) *Paginator[ListTagsForResourceResult] {
	var req ListTagsForResourceRequest
	if params != nil {
		req = *params
	}
	return newPaginator(req.NextToken, func(ctx context.Context, token *string) (*ListTagsForResourceResult, *string, error) {
		req.NextToken = token
		out, err := client.ListTagsForResource(ctx, &req)
		if err != nil {
			return nil, nil, err
		}
		return out, out.NextToken, nil
	})
}
