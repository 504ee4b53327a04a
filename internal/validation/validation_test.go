package validation_test

import (
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bravo68web/codecommit/internal/validation"
	"github.com/bravo68web/codecommit/pkg/codecommit/types"
	"github.com/bravo68web/codecommit/pkg/errors"
)

type request struct {
	RepositoryName *string                `json:"repositoryName,omitempty" validate:"required,min=1,max=5"`
	PutFiles       []types.PutFileEntry   `json:"putFiles,omitempty" validate:"omitempty,dive"`
	FileMode       types.FileModeTypeEnum `json:"fileMode,omitempty" validate:"omitempty,enum"`
	MaxResults     *int32                 `json:"MaxResults,omitempty" validate:"omitempty,min=1"`
}

func argumentError(t *testing.T, err error) *errors.ArgumentError {
	t.Helper()

	var argErr *errors.ArgumentError
	require.True(t, errors.As(err, &argErr), "expected ArgumentError, got %v", err)
	return argErr
}

func TestValidatorStruct(t *testing.T) {
	t.Parallel()

	v := validation.New()

	t.Run("should accept a valid request", func(t *testing.T) {
		t.Parallel()

		// given
		req := request{
			RepositoryName: aws.String("demo"),
			PutFiles:       []types.PutFileEntry{{FilePath: aws.String("a.txt")}},
			FileMode:       types.FileModeTypeEnumExecutable,
		}

		// when / then
		assert.NoError(t, v.Struct(req))
	})

	t.Run("should name a missing required field by its wire name", func(t *testing.T) {
		t.Parallel()

		// when
		err := v.Struct(request{})

		// then
		argErr := argumentError(t, err)
		assert.Equal(t, "repositoryName", argErr.Field)
		assert.Equal(t, "is required", argErr.Message)
		assert.True(t, errors.IsInvalidArgument(err))
	})

	t.Run("should report length bounds", func(t *testing.T) {
		t.Parallel()

		// when
		tooLong := argumentError(t, v.Struct(request{RepositoryName: aws.String("abcdef")}))
		empty := argumentError(t, v.Struct(request{RepositoryName: aws.String("")}))

		// then
		assert.Equal(t, "must have length at most 5", tooLong.Message)
		assert.Equal(t, "must have length at least 1", empty.Message)
	})

	t.Run("should report numeric bounds", func(t *testing.T) {
		t.Parallel()

		// when
		argErr := argumentError(t, v.Struct(request{RepositoryName: aws.String("demo"), MaxResults: aws.Int32(0)}))

		// then
		assert.Equal(t, "MaxResults", argErr.Field)
		assert.Equal(t, "must be at least 1", argErr.Message)
	})

	t.Run("should reject undeclared enum values", func(t *testing.T) {
		t.Parallel()

		// when
		argErr := argumentError(t, v.Struct(request{RepositoryName: aws.String("demo"), FileMode: "BOGUS"}))

		// then
		assert.Equal(t, "fileMode", argErr.Field)
		assert.Equal(t, "unknown value BOGUS", argErr.Message)
	})

	t.Run("should descend into lists of structures", func(t *testing.T) {
		t.Parallel()

		// given
		req := request{
			RepositoryName: aws.String("demo"),
			PutFiles: []types.PutFileEntry{
				{FilePath: aws.String("ok.txt")},
				{FileContent: []byte("x")},
			},
		}

		// when
		argErr := argumentError(t, v.Struct(req))

		// then
		assert.Equal(t, "putFiles[1].filePath", argErr.Field)
		assert.Equal(t, "is required", argErr.Message)
	})
}
