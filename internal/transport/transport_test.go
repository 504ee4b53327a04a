package transport_test

import (
	"context"
	stderrors "errors"
	"net/http"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bravo68web/codecommit/internal/codecommittest"
	"github.com/bravo68web/codecommit/internal/protocol"
	"github.com/bravo68web/codecommit/internal/transport"
	"github.com/bravo68web/codecommit/pkg/codecommit/types"
	"github.com/bravo68web/codecommit/pkg/errors"
	"github.com/bravo68web/codecommit/pkg/logger"
)

type branchOutput struct {
	Branch *types.BranchInfo `json:"branch,omitempty"`
}

func newTransport(t *testing.T, endpoint string, creds aws.CredentialsProvider) *transport.Transport {
	t.Helper()

	tr, err := transport.New(transport.Config{
		Endpoint:    endpoint,
		Region:      "us-east-1",
		UserAgent:   "codecommit-test",
		Credentials: creds,
		Logger:      logger.Nop(),
	})
	require.NoError(t, err)
	return tr
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("should require an http endpoint", func(t *testing.T) {
		t.Parallel()

		// when
		_, missing := transport.New(transport.Config{Logger: logger.Nop()})
		_, foreign := transport.New(transport.Config{Endpoint: "ftp://example.com", Logger: logger.Nop()})

		// then
		assert.True(t, errors.IsInvalidArgument(missing))
		assert.True(t, errors.IsInvalidArgument(foreign))
	})

	t.Run("should require a region when signing", func(t *testing.T) {
		t.Parallel()

		// when
		_, err := transport.New(transport.Config{
			Endpoint:    "https://codecommit.us-east-1.amazonaws.com",
			Credentials: credentials.NewStaticCredentialsProvider("AKID", "SECRET", ""),
			Logger:      logger.Nop(),
		})

		// then
		assert.True(t, errors.IsInvalidArgument(err))
	})
}

func TestTransportDo(t *testing.T) {
	t.Parallel()

	t.Run("should send an awsJson1.1 request and decode the response", func(t *testing.T) {
		t.Parallel()

		// given
		srv := codecommittest.NewServer(t)
		srv.Respond("GetBranch", http.StatusOK, map[string]any{
			"branch": map[string]any{"branchName": "main", "commitId": "abc"},
		})
		tr := newTransport(t, srv.URL, nil)
		in := map[string]string{"repositoryName": "demo", "branchName": "main"}
		var out branchOutput

		// when
		err := tr.Do(context.Background(), "GetBranch", in, &out)

		// then
		require.NoError(t, err)
		require.NotNil(t, out.Branch)
		assert.Equal(t, "abc", aws.ToString(out.Branch.CommitID))

		req, ok := srv.LastRequest("GetBranch")
		require.True(t, ok)
		assert.Equal(t, protocol.ContentType, req.Header.Get("Content-Type"))
		assert.Equal(t, "CodeCommit_20150413.GetBranch", req.Header.Get(protocol.HeaderTarget))
		assert.Equal(t, "codecommit-test", req.Header.Get("User-Agent"))
		assert.Empty(t, req.Header.Get("Authorization"))
		assert.JSONEq(t, `{"branchName":"main","repositoryName":"demo"}`, string(req.Body))
	})

	t.Run("should send an empty object for a nil input", func(t *testing.T) {
		t.Parallel()

		// given
		srv := codecommittest.NewServer(t)
		srv.Respond("ListRepositories", http.StatusOK, nil)
		tr := newTransport(t, srv.URL, nil)

		// when
		err := tr.Do(context.Background(), "ListRepositories", nil, nil)

		// then
		require.NoError(t, err)
		req, _ := srv.LastRequest("ListRepositories")
		assert.Equal(t, "{}", string(req.Body))
	})

	t.Run("should sign requests when credentials are given", func(t *testing.T) {
		t.Parallel()

		// given
		srv := codecommittest.NewServer(t)
		srv.Respond("ListRepositories", http.StatusOK, nil)
		tr := newTransport(t, srv.URL, credentials.NewStaticCredentialsProvider("AKID", "SECRET", "TOKEN"))

		// when
		err := tr.Do(context.Background(), "ListRepositories", nil, nil)

		// then
		require.NoError(t, err)
		req, _ := srv.LastRequest("ListRepositories")
		auth := req.Header.Get("Authorization")
		assert.True(t, strings.HasPrefix(auth, "AWS4-HMAC-SHA256 Credential=AKID/"), auth)
		assert.Contains(t, auth, "/us-east-1/codecommit/aws4_request")
		assert.Contains(t, auth, "x-amz-target")
		assert.NotEmpty(t, req.Header.Get("X-Amz-Date"))
		assert.Equal(t, "TOKEN", req.Header.Get("X-Amz-Security-Token"))
	})

	t.Run("should map a service fault to its kind", func(t *testing.T) {
		t.Parallel()

		// given
		srv := codecommittest.NewServer(t)
		srv.RespondError("GetRepository", http.StatusBadRequest,
			"com.amazonaws.codecommit#RepositoryDoesNotExistException", "demo does not exist")
		tr := newTransport(t, srv.URL, nil)

		// when
		err := tr.Do(context.Background(), "GetRepository", map[string]string{"repositoryName": "demo"}, nil)

		// then
		var opErr *errors.OperationError
		require.True(t, errors.As(err, &opErr))
		assert.Equal(t, "GetRepository", opErr.Operation)
		assert.Equal(t, http.StatusBadRequest, opErr.StatusCode)
		assert.NotEmpty(t, opErr.RequestID)
		assert.True(t, types.IsKind(err, types.ErrorKindRepositoryDoesNotExist))
		assert.True(t, transport.IsServiceFault(err))
	})

	t.Run("should report an unreadable success body as a serialization failure", func(t *testing.T) {
		t.Parallel()

		// given
		srv := codecommittest.NewServer(t)
		srv.Respond("GetBranch", http.StatusOK, []byte(`{"branch":`))
		tr := newTransport(t, srv.URL, nil)
		var out branchOutput

		// when
		err := tr.Do(context.Background(), "GetBranch", nil, &out)

		// then
		assert.True(t, errors.IsSerialization(err))
		assert.False(t, transport.IsServiceFault(err))
	})

	t.Run("should report an unreachable endpoint as a transport failure", func(t *testing.T) {
		t.Parallel()

		// given
		srv := codecommittest.NewServer(t)
		url := srv.URL
		srv.Close()
		tr := newTransport(t, url, nil)

		// when
		err := tr.Do(context.Background(), "ListRepositories", nil, nil)

		// then
		var opErr *errors.OperationError
		require.True(t, errors.As(err, &opErr))
		assert.Equal(t, 0, opErr.HTTPStatus())
		assert.True(t, errors.IsTransport(err))
	})

	t.Run("should report credential failures without sending", func(t *testing.T) {
		t.Parallel()

		// given
		srv := codecommittest.NewServer(t)
		creds := aws.CredentialsProviderFunc(func(context.Context) (aws.Credentials, error) {
			return aws.Credentials{}, stderrors.New("no profile")
		})
		tr := newTransport(t, srv.URL, creds)

		// when
		err := tr.Do(context.Background(), "ListRepositories", nil, nil)

		// then
		assert.ErrorIs(t, err, errors.ErrCredentials)
		assert.False(t, errors.IsTransport(err))
		assert.Empty(t, srv.Requests())
	})
}
