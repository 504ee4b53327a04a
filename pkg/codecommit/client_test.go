package codecommit_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bravo68web/codecommit/internal/codecommittest"
	"github.com/bravo68web/codecommit/pkg/codecommit"
	"github.com/bravo68web/codecommit/pkg/codecommit/types"
	"github.com/bravo68web/codecommit/pkg/errors"
	"github.com/bravo68web/codecommit/pkg/logger"
)

func newClient(t *testing.T, srv *codecommittest.Server, optFns ...func(*codecommit.Options)) *codecommit.Client {
	t.Helper()

	client, err := codecommit.New(codecommit.Options{
		BaseEndpoint: srv.URL,
		Logger:       logger.Nop(),
	}, optFns...)
	require.NoError(t, err)
	return client
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("should default to the regional endpoint", func(t *testing.T) {
		t.Parallel()

		// when
		client, err := codecommit.New(codecommit.Options{Logger: logger.Nop()})

		// then
		require.NoError(t, err)
		assert.Equal(t, "https://codecommit.us-east-1.amazonaws.com", client.Options().Endpoint())
	})

	t.Run("should apply option functions in order", func(t *testing.T) {
		t.Parallel()

		// when
		client, err := codecommit.New(codecommit.Options{Region: "eu-west-1", Logger: logger.Nop()},
			func(o *codecommit.Options) { o.Region = "ap-south-1" },
			func(o *codecommit.Options) { o.VerifyContent = true },
		)

		// then
		require.NoError(t, err)
		assert.Equal(t, "https://codecommit.ap-south-1.amazonaws.com", client.Options().Endpoint())
		assert.True(t, client.Options().VerifyContent)
	})

	t.Run("should reject a malformed endpoint", func(t *testing.T) {
		t.Parallel()

		// when
		_, err := codecommit.New(codecommit.Options{BaseEndpoint: "localhost:4599", Logger: logger.Nop()})

		// then
		assert.True(t, errors.IsInvalidArgument(err))
	})

	t.Run("should build from an AWS configuration", func(t *testing.T) {
		t.Parallel()

		// given
		cfg := aws.Config{Region: "eu-central-1", BaseEndpoint: aws.String("http://127.0.0.1:4599")}

		// when
		client, err := codecommit.NewFromConfig(cfg, func(o *codecommit.Options) { o.Logger = logger.Nop() })

		// then
		require.NoError(t, err)
		assert.Equal(t, "eu-central-1", client.Options().Region)
		assert.Equal(t, "http://127.0.0.1:4599", client.Options().Endpoint())
	})
}

func TestClientValidation(t *testing.T) {
	t.Parallel()

	t.Run("should reject an invalid request before sending it", func(t *testing.T) {
		t.Parallel()

		// given
		srv := codecommittest.NewServer(t)
		client := newClient(t, srv)

		// when
		_, err := client.CreateRepository(context.Background(), &codecommit.CreateRepositoryRequest{})

		// then
		var opErr *errors.OperationError
		require.True(t, errors.As(err, &opErr))
		assert.Equal(t, "CreateRepository", opErr.Operation)
		assert.True(t, errors.IsInvalidArgument(err))
		assert.Contains(t, err.Error(), "repositoryName: is required")
		assert.Empty(t, srv.Requests())
	})

	t.Run("should reject a nil request", func(t *testing.T) {
		t.Parallel()

		// given
		srv := codecommittest.NewServer(t)
		client := newClient(t, srv)

		// when
		_, getErr := client.GetRepository(context.Background(), nil)
		branchErr := client.CreateBranch(context.Background(), nil)

		// then
		assert.True(t, errors.IsInvalidArgument(getErr))
		assert.True(t, errors.IsInvalidArgument(branchErr))
		assert.Empty(t, srv.Requests())
	})

	t.Run("should reject an undeclared enum value", func(t *testing.T) {
		t.Parallel()

		// given
		srv := codecommittest.NewServer(t)
		client := newClient(t, srv)

		// when
		_, err := client.ListRepositories(context.Background(), &codecommit.ListRepositoriesRequest{Order: "sideways"})

		// then
		assert.True(t, errors.IsInvalidArgument(err))
		assert.Contains(t, err.Error(), "order: unknown value sideways")
	})
}

func TestCreatePullRequest(t *testing.T) {
	t.Parallel()

	t.Run("should generate an idempotency token without touching the caller's request", func(t *testing.T) {
		t.Parallel()

		// given
		srv := codecommittest.NewServer(t)
		srv.Respond("CreatePullRequest", http.StatusOK, map[string]any{
			"pullRequest": map[string]any{"pullRequestId": "42", "pullRequestStatus": "OPEN"},
		})
		client := newClient(t, srv)
		req := (&codecommit.CreatePullRequestRequest{Title: aws.String("Add docs")}).
			WithTargets(types.Target{RepositoryName: aws.String("demo"), SourceReference: aws.String("dev")})

		// when
		out, err := client.CreatePullRequest(context.Background(), req)

		// then
		require.NoError(t, err)
		assert.Equal(t, "42", aws.ToString(out.PullRequest.PullRequestID))
		assert.Equal(t, types.PullRequestStatusEnumOpen, out.PullRequest.PullRequestStatus)
		assert.Nil(t, req.ClientRequestToken)

		sent, ok := srv.LastRequest("CreatePullRequest")
		require.True(t, ok)
		var body struct {
			ClientRequestToken string `json:"clientRequestToken"`
		}
		require.NoError(t, sent.Decode(&body))
		assert.NotEmpty(t, body.ClientRequestToken)
	})

	t.Run("should keep a caller supplied token", func(t *testing.T) {
		t.Parallel()

		// given
		srv := codecommittest.NewServer(t)
		srv.Respond("CreatePullRequest", http.StatusOK, nil)
		client := newClient(t, srv)
		req := (&codecommit.CreatePullRequestRequest{
			Title:              aws.String("Add docs"),
			ClientRequestToken: aws.String("token-1"),
		}).WithTargets(types.Target{RepositoryName: aws.String("demo"), SourceReference: aws.String("dev")})

		// when
		_, err := client.CreatePullRequest(context.Background(), req)

		// then
		require.NoError(t, err)
		sent, _ := srv.LastRequest("CreatePullRequest")
		assert.Contains(t, string(sent.Body), `"clientRequestToken":"token-1"`)
	})
}

func TestPaginator(t *testing.T) {
	t.Parallel()

	t.Run("should stop when the service repeats a token", func(t *testing.T) {
		t.Parallel()

		// given
		srv := codecommittest.NewServer(t)
		srv.Respond("ListBranches", http.StatusOK, map[string]any{"branches": []string{"main"}, "nextToken": "same"})
		client := newClient(t, srv)
		p := codecommit.NewListBranchesPaginator(client, &codecommit.ListBranchesRequest{RepositoryName: aws.String("demo")})

		// when
		pages := 0
		for p.HasMorePages() {
			_, err := p.NextPage(context.Background())
			require.NoError(t, err)
			pages++
		}

		// then
		assert.Equal(t, 2, pages)
		_, err := p.NextPage(context.Background())
		assert.True(t, errors.IsInvalidArgument(err))
	})

	t.Run("should stay on the failed page so it can be retried", func(t *testing.T) {
		t.Parallel()

		// given
		srv := codecommittest.NewServer(t)
		srv.RespondError("ListBranches", http.StatusInternalServerError, "InternalFailure", "try again")
		client := newClient(t, srv)
		p := codecommit.NewListBranchesPaginator(client, &codecommit.ListBranchesRequest{RepositoryName: aws.String("demo")})

		// when
		_, err := p.NextPage(context.Background())

		// then
		require.Error(t, err)
		assert.True(t, types.IsKind(err, types.ErrorKindServiceFault))
		assert.True(t, p.HasMorePages())
	})
}

func TestVerifyContent(t *testing.T) {
	t.Parallel()

	const helloBlob = "ce013625030ba8dba906f756967f9e9ca394464a"

	t.Run("should fail GetBlob when content does not match its id", func(t *testing.T) {
		t.Parallel()

		// given
		srv := codecommittest.NewServer(t)
		srv.Respond("GetBlob", http.StatusOK, map[string]any{"content": []byte("tampered")})
		client := newClient(t, srv, func(o *codecommit.Options) { o.VerifyContent = true })

		// when
		_, err := client.GetBlob(context.Background(), &codecommit.GetBlobRequest{
			RepositoryName: aws.String("demo"),
			BlobID:         aws.String(helloBlob),
		})

		// then
		assert.True(t, errors.IsIntegrity(err))
	})

	t.Run("should pass content through when verification is off", func(t *testing.T) {
		t.Parallel()

		// given
		srv := codecommittest.NewServer(t)
		srv.Respond("GetBlob", http.StatusOK, map[string]any{"content": []byte("tampered")})
		client := newClient(t, srv)

		// when
		out, err := client.GetBlob(context.Background(), &codecommit.GetBlobRequest{
			RepositoryName: aws.String("demo"),
			BlobID:         aws.String(helloBlob),
		})

		// then
		require.NoError(t, err)
		assert.Equal(t, []byte("tampered"), out.Content)
	})
}
