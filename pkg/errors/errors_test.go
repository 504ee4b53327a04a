package errors_test

import (
	stderrors "errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bravo68web/codecommit/pkg/errors"
)

func TestArgumentError(t *testing.T) {
	t.Parallel()

	t.Run("should match the invalid argument class", func(t *testing.T) {
		t.Parallel()

		// given
		err := errors.InvalidArgument("repositoryName", "is required")

		// when / then
		assert.True(t, errors.IsInvalidArgument(err))
		assert.False(t, errors.IsTransport(err))
		assert.Equal(t, "invalid argument: repositoryName: is required", err.Error())
	})

	t.Run("should omit an empty field from the message", func(t *testing.T) {
		t.Parallel()

		// given
		err := errors.InvalidArgument("", "request is nil")

		// when / then
		assert.Equal(t, "invalid argument: request is nil", err.Error())
	})
}

func TestOperationError(t *testing.T) {
	t.Parallel()

	t.Run("should describe the call and unwrap to its cause", func(t *testing.T) {
		t.Parallel()

		// given
		cause := stderrors.New("boom")
		err := errors.NewOperationError("GetBranch", cause)
		err.StatusCode = http.StatusServiceUnavailable
		err.RequestID = "req-1"

		// when
		msg := err.Error()

		// then
		assert.Equal(t, "operation GetBranch, status 503, request id req-1: boom", msg)
		assert.ErrorIs(t, err, cause)
		assert.Equal(t, http.StatusServiceUnavailable, err.HTTPStatus())
		assert.True(t, err.IsServerSide())
	})

	t.Run("should treat a missing response as not server side", func(t *testing.T) {
		t.Parallel()

		// given
		err := errors.NewOperationError("ListRepositories", errors.ErrTransport)

		// when / then
		assert.Equal(t, 0, err.HTTPStatus())
		assert.False(t, err.IsServerSide())
		assert.True(t, errors.IsTransport(err))
	})

	t.Run("should be reachable with As through wrapping", func(t *testing.T) {
		t.Parallel()

		// given
		wrapped := errors.Wrap(errors.NewOperationError("GetFile", errors.ErrIntegrity), "download")

		// when
		var opErr *errors.OperationError
		ok := errors.As(wrapped, &opErr)

		// then
		assert.True(t, ok)
		assert.Equal(t, "GetFile", opErr.Operation)
		assert.True(t, errors.IsIntegrity(wrapped))
	})
}

func TestWrapClass(t *testing.T) {
	t.Parallel()

	t.Run("should match both the class and the cause", func(t *testing.T) {
		t.Parallel()

		// given
		cause := stderrors.New("unexpected EOF")

		// when
		err := errors.WrapClass(errors.ErrSerialization, cause, "decode GetBlob output")

		// then
		assert.True(t, errors.IsSerialization(err))
		assert.ErrorIs(t, err, cause)
		assert.Equal(t, "serialization failure: decode GetBlob output: unexpected EOF", err.Error())
	})

	t.Run("should return nil for a nil error", func(t *testing.T) {
		t.Parallel()

		assert.NoError(t, errors.WrapClass(errors.ErrTransport, nil, "send"))
		assert.NoError(t, errors.Wrap(nil, "send"))
	})
}
