package types_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bravo68web/codecommit/pkg/codecommit/types"
	"github.com/bravo68web/codecommit/pkg/errors"
)

func TestNormalizeDiscriminator(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"RepositoryDoesNotExistException":                                                 "RepositoryDoesNotExistException",
		"com.amazonaws.codecommit#RepositoryDoesNotExistException":                        "RepositoryDoesNotExistException",
		"RepositoryDoesNotExistException:http://internal.amazon.com/coral/com.amazon/":    "RepositoryDoesNotExistException",
		"aws.protocoltests#RepositoryDoesNotExistException:http://internal.amazon.com/x/": "RepositoryDoesNotExistException",
		"  EncryptionKeyDisabledException ":                                               "EncryptionKeyDisabledException",
		"": "",
	}

	for in, want := range cases {
		t.Run("should normalize "+in, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, want, types.NormalizeDiscriminator(in))
		})
	}
}

func TestDecodeServiceError(t *testing.T) {
	t.Parallel()

	t.Run("should map a cataloged discriminator to its kind", func(t *testing.T) {
		t.Parallel()

		// when
		se := types.DecodeServiceError("com.amazonaws.codecommit#BranchNameExistsException", "branch exists")

		// then
		assert.Equal(t, types.ErrorKindBranchNameExists, se.Kind)
		assert.Equal(t, "com.amazonaws.codecommit#BranchNameExistsException", se.Code)
		assert.Equal(t, "BranchNameExistsException: branch exists", se.Error())
	})

	t.Run("should fall back to a service fault for unknown discriminators", func(t *testing.T) {
		t.Parallel()

		// when
		se := types.DecodeServiceError("ThrottlingException", "slow down")
		empty := types.DecodeServiceError("", "")

		// then
		assert.Equal(t, types.ErrorKindServiceFault, se.Kind)
		assert.Equal(t, "ThrottlingException", se.Code)
		assert.Equal(t, "slow down", se.Message)
		assert.Equal(t, types.ErrorKindServiceFault, empty.Kind)
		assert.Equal(t, "ServiceFault", empty.Error())
	})
}

func TestParseErrorKind(t *testing.T) {
	t.Parallel()

	t.Run("should parse a namespaced discriminator", func(t *testing.T) {
		t.Parallel()

		// when
		kind, err := types.ParseErrorKind("com.amazonaws.codecommit#CommitIdDoesNotExistException")

		// then
		require.NoError(t, err)
		assert.Equal(t, types.ErrorKindCommitIdDoesNotExist, kind)
		assert.True(t, kind.IsKnown())
	})

	t.Run("should reject empty and unknown discriminators", func(t *testing.T) {
		t.Parallel()

		// when
		_, errEmpty := types.ParseErrorKind("")
		_, errUnknown := types.ParseErrorKind("NoSuchThingException")

		// then
		assert.True(t, errors.IsInvalidArgument(errEmpty))
		assert.True(t, errors.IsInvalidArgument(errUnknown))
		assert.Contains(t, errUnknown.Error(), "unknown value NoSuchThingException")
	})
}

func TestErrorKinds(t *testing.T) {
	t.Parallel()

	t.Run("should catalog every kind once without the fallback", func(t *testing.T) {
		t.Parallel()

		// when
		kinds := types.ErrorKinds()

		// then
		assert.Len(t, kinds, 184)
		seen := make(map[types.ErrorKind]bool, len(kinds))
		for _, k := range kinds {
			assert.False(t, seen[k], "duplicate kind %s", k)
			seen[k] = true
			assert.True(t, k.IsKnown())
		}
		assert.False(t, seen[types.ErrorKindServiceFault])
		assert.True(t, types.ErrorKindServiceFault.IsKnown())
	})

	t.Run("should return a copy of the catalog", func(t *testing.T) {
		t.Parallel()

		// given
		kinds := types.ErrorKinds()

		// when
		kinds[0] = "Mutated"

		// then
		assert.NotEqual(t, types.ErrorKind("Mutated"), types.ErrorKinds()[0])
	})
}

func TestIsKind(t *testing.T) {
	t.Parallel()

	t.Run("should find the kind through an operation error", func(t *testing.T) {
		t.Parallel()

		// given
		err := errors.NewOperationError("GetRepository",
			types.NewServiceError(types.ErrorKindRepositoryDoesNotExist, "no such repo"))

		// when
		se, ok := types.AsServiceError(err)

		// then
		require.True(t, ok)
		assert.Equal(t, "no such repo", se.Message)
		assert.True(t, types.IsKind(err, types.ErrorKindRepositoryDoesNotExist))
		assert.False(t, types.IsKind(err, types.ErrorKindBranchDoesNotExist))
		assert.ErrorIs(t, err, &types.ServiceError{Kind: types.ErrorKindRepositoryDoesNotExist})
	})

	t.Run("should report false for non-service errors", func(t *testing.T) {
		t.Parallel()

		// given
		err := errors.NewOperationError("GetRepository", errors.InvalidArgument("repositoryName", "is required"))

		// when
		_, ok := types.AsServiceError(err)

		// then
		assert.False(t, ok)
		assert.False(t, types.IsKind(err, types.ErrorKindServiceFault))
		assert.False(t, types.IsKind(nil, types.ErrorKindServiceFault))
	})
}
