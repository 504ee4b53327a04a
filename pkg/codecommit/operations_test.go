package codecommit_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bravo68web/codecommit/internal/codecommittest"
	"github.com/bravo68web/codecommit/pkg/codecommit"
	"github.com/bravo68web/codecommit/pkg/codecommit/types"
	"github.com/bravo68web/codecommit/pkg/errors"
)

func TestMergeOperations(t *testing.T) {
	t.Parallel()

	t.Run("should send the merge inputs and decode the new commit", func(t *testing.T) {
		t.Parallel()

		// given
		srv := codecommittest.NewServer(t)
		srv.Respond("MergeBranchesByThreeWay", http.StatusOK, map[string]any{"commitId": "c0ffee", "treeId": "7ree"})
		client := newClient(t, srv)

		// when
		out, err := client.MergeBranchesByThreeWay(context.Background(), &codecommit.MergeBranchesByThreeWayRequest{
			RepositoryName:             aws.String("demo"),
			SourceCommitSpecifier:      aws.String("dev"),
			DestinationCommitSpecifier: aws.String("main"),
			ConflictResolutionStrategy: types.ConflictResolutionStrategyTypeEnumAcceptSource,
		})

		// then
		require.NoError(t, err)
		assert.Equal(t, "{commitId: c0ffee,treeId: 7ree}", out.String())

		sent, ok := srv.LastRequest("MergeBranchesByThreeWay")
		require.True(t, ok)
		assert.JSONEq(t, `{
			"repositoryName": "demo",
			"sourceCommitSpecifier": "dev",
			"destinationCommitSpecifier": "main",
			"conflictResolutionStrategy": "ACCEPT_SOURCE"
		}`, string(sent.Body))
	})

	t.Run("should surface a manual merge fault by kind", func(t *testing.T) {
		t.Parallel()

		// given
		srv := codecommittest.NewServer(t)
		srv.RespondError("MergeBranchesBySquash", http.StatusBadRequest, "ManualMergeRequiredException", "resolve conflicts first")
		client := newClient(t, srv)

		// when
		_, err := client.MergeBranchesBySquash(context.Background(), &codecommit.MergeBranchesBySquashRequest{
			RepositoryName:             aws.String("demo"),
			SourceCommitSpecifier:      aws.String("dev"),
			DestinationCommitSpecifier: aws.String("main"),
		})

		// then
		require.Error(t, err)
		assert.True(t, types.IsKind(err, types.ErrorKindManualMergeRequired))
		svcErr, ok := types.AsServiceError(err)
		require.True(t, ok)
		assert.Equal(t, "resolve conflicts first", svcErr.Message)
	})

	t.Run("should require a merge option when describing conflicts", func(t *testing.T) {
		t.Parallel()

		// given
		srv := codecommittest.NewServer(t)
		client := newClient(t, srv)

		// when
		_, err := client.BatchDescribeMergeConflicts(context.Background(), &codecommit.BatchDescribeMergeConflictsRequest{
			RepositoryName:             aws.String("demo"),
			SourceCommitSpecifier:      aws.String("dev"),
			DestinationCommitSpecifier: aws.String("main"),
		})

		// then
		assert.True(t, errors.IsInvalidArgument(err))
		assert.Contains(t, err.Error(), "mergeOption")
		assert.Empty(t, srv.Requests())
	})

	t.Run("should decode conflicts", func(t *testing.T) {
		t.Parallel()

		// given
		srv := codecommittest.NewServer(t)
		srv.Respond("BatchDescribeMergeConflicts", http.StatusOK, map[string]any{
			"conflicts": []map[string]any{{
				"conflictMetadata": map[string]any{"filePath": "README.md", "numberOfConflicts": 2, "contentConflict": true},
			}},
			"destinationCommitId": "d1",
			"sourceCommitId":      "s1",
		})
		client := newClient(t, srv)

		// when
		out, err := client.BatchDescribeMergeConflicts(context.Background(), &codecommit.BatchDescribeMergeConflictsRequest{
			RepositoryName:             aws.String("demo"),
			SourceCommitSpecifier:      aws.String("dev"),
			DestinationCommitSpecifier: aws.String("main"),
			MergeOption:                types.MergeOptionTypeEnumThreeWayMerge,
		})

		// then
		require.NoError(t, err)
		require.Len(t, out.Conflicts, 1)
		md := out.Conflicts[0].ConflictMetadata
		require.NotNil(t, md)
		assert.Equal(t, "README.md", aws.ToString(md.FilePath))
		assert.Equal(t, int32(2), aws.ToInt32(md.NumberOfConflicts))
		assert.True(t, aws.ToBool(md.ContentConflict))
		assert.Nil(t, md.FileModeConflict)
	})
}

func TestPullRequestOperations(t *testing.T) {
	t.Parallel()

	t.Run("should page through pull request events", func(t *testing.T) {
		t.Parallel()

		// given
		srv := codecommittest.NewServer(t)
		srv.Handle("DescribePullRequestEvents", func(req *codecommittest.Request) codecommittest.Response {
			var in struct {
				NextToken *string `json:"nextToken"`
			}
			if err := req.Decode(&in); err != nil {
				return codecommittest.Fault(http.StatusBadRequest, types.ErrorKindInvalidContinuationToken, err.Error())
			}
			if in.NextToken == nil {
				return codecommittest.OK(map[string]any{
					"pullRequestEvents": []map[string]any{{
						"pullRequestId":        "7",
						"pullRequestEventType": "PULL_REQUEST_CREATED",
						"eventDate":            1700000000,
						"pullRequestCreatedEventMetadata": map[string]any{
							"repositoryName": "demo",
						},
					}},
					"nextToken": "t1",
				})
			}
			return codecommittest.OK(map[string]any{
				"pullRequestEvents": []map[string]any{{
					"pullRequestId":        "7",
					"pullRequestEventType": "PULL_REQUEST_STATUS_CHANGED",
				}},
			})
		})
		client := newClient(t, srv)
		p := codecommit.NewDescribePullRequestEventsPaginator(client, &codecommit.DescribePullRequestEventsRequest{
			PullRequestID: aws.String("7"),
		})

		// when
		var events []types.PullRequestEvent
		for p.HasMorePages() {
			page, err := p.NextPage(context.Background())
			require.NoError(t, err)
			events = append(events, page.PullRequestEvents...)
		}

		// then
		require.Len(t, events, 2)
		assert.Equal(t, types.PullRequestEventTypePullRequestCreated, events[0].PullRequestEventType)
		assert.Equal(t, time.Unix(1700000000, 0).UTC(), events[0].EventDate.UTC())
		created, ok := events[0].Metadata().(*types.PullRequestCreatedEventMetadata)
		require.True(t, ok)
		assert.Equal(t, "demo", aws.ToString(created.RepositoryName))
		assert.Equal(t, types.PullRequestEventTypePullRequestStatusChanged, events[1].PullRequestEventType)
		assert.Len(t, srv.Requests(), 2)
	})

	t.Run("should return only an error from an operation without a result", func(t *testing.T) {
		t.Parallel()

		// given
		srv := codecommittest.NewServer(t)
		srv.Respond("UpdatePullRequestApprovalState", http.StatusOK, nil)
		client := newClient(t, srv)

		// when
		err := client.UpdatePullRequestApprovalState(context.Background(), &codecommit.UpdatePullRequestApprovalStateRequest{
			PullRequestID: aws.String("7"),
			RevisionID:    aws.String("rev-1"),
			ApprovalState: types.ApprovalStateApprove,
		})

		// then
		require.NoError(t, err)
		sent, _ := srv.LastRequest("UpdatePullRequestApprovalState")
		assert.Contains(t, string(sent.Body), `"approvalState":"APPROVE"`)
	})

	t.Run("should reject an approval state the service does not declare", func(t *testing.T) {
		t.Parallel()

		// given
		srv := codecommittest.NewServer(t)
		client := newClient(t, srv)

		// when
		err := client.UpdatePullRequestApprovalState(context.Background(), &codecommit.UpdatePullRequestApprovalStateRequest{
			PullRequestID: aws.String("7"),
			RevisionID:    aws.String("rev-1"),
			ApprovalState: "MAYBE",
		})

		// then
		assert.True(t, errors.IsInvalidArgument(err))
		assert.Empty(t, srv.Requests())
	})
}

func TestCommentOperations(t *testing.T) {
	t.Parallel()

	t.Run("should fill in a token when posting on compared commits", func(t *testing.T) {
		t.Parallel()

		// given
		srv := codecommittest.NewServer(t)
		srv.Respond("PostCommentForComparedCommit", http.StatusOK, map[string]any{
			"comment": map[string]any{"commentId": "c-1", "content": "looks good"},
		})
		client := newClient(t, srv)
		req := &codecommit.PostCommentForComparedCommitRequest{
			RepositoryName: aws.String("demo"),
			AfterCommitID:  aws.String("a1"),
			Content:        aws.String("looks good"),
		}

		// when
		out, err := client.PostCommentForComparedCommit(context.Background(), req)

		// then
		require.NoError(t, err)
		assert.Equal(t, "c-1", aws.ToString(out.Comment.CommentID))
		assert.Nil(t, req.ClientRequestToken)
		sent, _ := srv.LastRequest("PostCommentForComparedCommit")
		assert.Contains(t, string(sent.Body), `"clientRequestToken":"`)
	})

	t.Run("should send a reaction", func(t *testing.T) {
		t.Parallel()

		// given
		srv := codecommittest.NewServer(t)
		srv.Respond("PutCommentReaction", http.StatusOK, nil)
		client := newClient(t, srv)

		// when
		err := client.PutCommentReaction(context.Background(), &codecommit.PutCommentReactionRequest{
			CommentID:     aws.String("c-1"),
			ReactionValue: aws.String(":thumbsup:"),
		})

		// then
		require.NoError(t, err)
		assert.Len(t, srv.Requests(), 1)
	})

	t.Run("should report a missing comment by kind", func(t *testing.T) {
		t.Parallel()

		// given
		srv := codecommittest.NewServer(t)
		srv.RespondError("GetComment", http.StatusBadRequest, "CommentDoesNotExistException", "no such comment")
		client := newClient(t, srv)

		// when
		_, err := client.GetComment(context.Background(), &codecommit.GetCommentRequest{CommentID: aws.String("c-9")})

		// then
		assert.True(t, types.IsKind(err, types.ErrorKindCommentDoesNotExist))
	})
}

func TestTriggerOperations(t *testing.T) {
	t.Parallel()

	t.Run("should validate each trigger", func(t *testing.T) {
		t.Parallel()

		// given
		srv := codecommittest.NewServer(t)
		client := newClient(t, srv)
		req := (&codecommit.PutRepositoryTriggersRequest{RepositoryName: aws.String("demo")}).
			WithTriggers(types.RepositoryTrigger{
				Name:   aws.String("notify"),
				Events: []types.RepositoryTriggerEventEnum{types.RepositoryTriggerEventEnumAll},
			})

		// when
		_, err := client.PutRepositoryTriggers(context.Background(), req)

		// then
		assert.True(t, errors.IsInvalidArgument(err))
		assert.Contains(t, err.Error(), "destinationArn")
		assert.Empty(t, srv.Requests())
	})

	t.Run("should send triggers and decode test executions", func(t *testing.T) {
		t.Parallel()

		// given
		srv := codecommittest.NewServer(t)
		srv.Respond("TestRepositoryTriggers", http.StatusOK, map[string]any{
			"successfulExecutions": []string{"notify"},
			"failedExecutions":     []map[string]any{{"trigger": "audit", "failureMessage": "denied"}},
		})
		client := newClient(t, srv)
		trigger := (&types.RepositoryTrigger{
			Name:           aws.String("notify"),
			DestinationArn: aws.String("arn:aws:sns:us-east-1:123456789012:topic"),
			Events:         []types.RepositoryTriggerEventEnum{types.RepositoryTriggerEventEnumAll},
		}).WithBranches("main")
		req := (&codecommit.TestRepositoryTriggersRequest{RepositoryName: aws.String("demo")}).WithTriggers(*trigger)

		// when
		out, err := client.TestRepositoryTriggers(context.Background(), req)

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{"notify"}, out.SuccessfulExecutions)
		require.Len(t, out.FailedExecutions, 1)
		assert.Equal(t, "denied", aws.ToString(out.FailedExecutions[0].FailureMessage))

		sent, _ := srv.LastRequest("TestRepositoryTriggers")
		assert.Contains(t, string(sent.Body), `"branches":["main"]`)
		assert.Contains(t, string(sent.Body), `"events":["all"]`)
	})
}

func TestApprovalRuleTemplateOperations(t *testing.T) {
	t.Parallel()

	t.Run("should decode partial batch failures", func(t *testing.T) {
		t.Parallel()

		// given
		srv := codecommittest.NewServer(t)
		srv.Respond("BatchAssociateApprovalRuleTemplateWithRepositories", http.StatusOK, map[string]any{
			"associatedRepositoryNames": []string{"demo"},
			"errors": []map[string]any{{
				"repositoryName": "ghost",
				"errorCode":      "RepositoryDoesNotExistException",
				"errorMessage":   "ghost does not exist",
			}},
		})
		client := newClient(t, srv)
		req := (&codecommit.BatchAssociateApprovalRuleTemplateWithRepositoriesRequest{
			ApprovalRuleTemplateName: aws.String("two-approvers"),
		}).WithRepositoryNames("demo", "ghost")

		// when
		out, err := client.BatchAssociateApprovalRuleTemplateWithRepositories(context.Background(), req)

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{"demo"}, out.AssociatedRepositoryNames)
		require.Len(t, out.Errors, 1)
		assert.Equal(t, "ghost", aws.ToString(out.Errors[0].RepositoryName))
		assert.Equal(t, "RepositoryDoesNotExistException", aws.ToString(out.Errors[0].ErrorCode))
	})

	t.Run("should require at least one repository", func(t *testing.T) {
		t.Parallel()

		// given
		srv := codecommittest.NewServer(t)
		client := newClient(t, srv)

		// when
		_, err := client.BatchAssociateApprovalRuleTemplateWithRepositories(context.Background(),
			(&codecommit.BatchAssociateApprovalRuleTemplateWithRepositoriesRequest{
				ApprovalRuleTemplateName: aws.String("two-approvers"),
			}).WithRepositoryNames())

		// then
		assert.True(t, errors.IsInvalidArgument(err))
		assert.Empty(t, srv.Requests())
	})
}
