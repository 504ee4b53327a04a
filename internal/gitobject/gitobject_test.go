package gitobject_test

import (
	"os"
	"testing"

	"github.com/go-git/go-git/v5/plumbing/filemode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bravo68web/codecommit/internal/gitobject"
	"github.com/bravo68web/codecommit/pkg/codecommit/types"
	"github.com/bravo68web/codecommit/pkg/errors"
)

func TestBlobID(t *testing.T) {
	t.Parallel()

	t.Run("should match git hash-object", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "e69de29bb2d1d6434b8b29ae775ad8c2e48c5391", gitobject.BlobID(nil))
		assert.Equal(t, "ce013625030ba8dba906f756967f9e9ca394464a", gitobject.BlobID([]byte("hello\n")))
	})
}

func TestVerifyBlob(t *testing.T) {
	t.Parallel()

	t.Run("should accept matching content in either case", func(t *testing.T) {
		t.Parallel()

		assert.NoError(t, gitobject.VerifyBlob("ce013625030ba8dba906f756967f9e9ca394464a", []byte("hello\n")))
		assert.NoError(t, gitobject.VerifyBlob("CE013625030BA8DBA906F756967F9E9CA394464A", []byte("hello\n")))
	})

	t.Run("should report an integrity failure for mismatched content", func(t *testing.T) {
		t.Parallel()

		// when
		err := gitobject.VerifyBlob("ce013625030ba8dba906f756967f9e9ca394464a", []byte("tampered"))

		// then
		require.Error(t, err)
		assert.True(t, errors.IsIntegrity(err))
		assert.False(t, errors.IsInvalidArgument(err))
	})

	t.Run("should reject an id that is not a hash", func(t *testing.T) {
		t.Parallel()

		// when
		err := gitobject.VerifyBlob("main", nil)

		// then
		assert.True(t, errors.IsInvalidArgument(err))
	})
}

func TestFileModes(t *testing.T) {
	t.Parallel()

	t.Run("should map service modes to git modes and back", func(t *testing.T) {
		t.Parallel()

		for _, m := range types.FileModeTypeEnum("").Values() {
			// when
			gm, err := gitobject.ToFileMode(m)
			require.NoError(t, err)
			back, err := gitobject.FromFileMode(gm)

			// then
			require.NoError(t, err)
			assert.Equal(t, m, back)
		}
	})

	t.Run("should reject modes without a counterpart", func(t *testing.T) {
		t.Parallel()

		// when
		_, toErr := gitobject.ToFileMode("BOGUS")
		_, fromErr := gitobject.FromFileMode(filemode.Dir)

		// then
		assert.True(t, errors.IsInvalidArgument(toErr))
		assert.True(t, errors.IsInvalidArgument(fromErr))
	})

	t.Run("should pick the mode of a local file", func(t *testing.T) {
		t.Parallel()

		// when
		normal, errNormal := gitobject.FromOSFileMode(0o644)
		exec, errExec := gitobject.FromOSFileMode(0o755)
		link, errLink := gitobject.FromOSFileMode(os.ModeSymlink | 0o777)
		_, errDir := gitobject.FromOSFileMode(os.ModeDir | 0o755)

		// then
		require.NoError(t, errNormal)
		require.NoError(t, errExec)
		require.NoError(t, errLink)
		assert.Equal(t, types.FileModeTypeEnumNormal, normal)
		assert.Equal(t, types.FileModeTypeEnumExecutable, exec)
		assert.Equal(t, types.FileModeTypeEnumSymlink, link)
		assert.Error(t, errDir)
	})
}
