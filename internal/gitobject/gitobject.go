// Package gitobject maps service values onto git object semantics.
package gitobject

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/filemode"

	"github.com/bravo68web/codecommit/pkg/codecommit/types"
	"github.com/bravo68web/codecommit/pkg/errors"
)

// BlobID returns the git object id of a blob with the given content.
func BlobID(content []byte) string {
	return plumbing.ComputeHash(plumbing.BlobObject, content).String()
}

// VerifyBlob checks that content hashes to id.
func VerifyBlob(id string, content []byte) error {
	if !plumbing.IsHash(id) {
		return errors.InvalidArgument("blobId", "not a git object id: "+id)
	}
	if got := BlobID(content); !strings.EqualFold(got, id) {
		return fmt.Errorf("%w: blob %s has content hashing to %s", errors.ErrIntegrity, id, got)
	}
	return nil
}

// ToFileMode converts a service file mode to a git file mode.
func ToFileMode(m types.FileModeTypeEnum) (filemode.FileMode, error) {
	switch m {
	case types.FileModeTypeEnumNormal:
		return filemode.Regular, nil
	case types.FileModeTypeEnumExecutable:
		return filemode.Executable, nil
	case types.FileModeTypeEnumSymlink:
		return filemode.Symlink, nil
	}
	return filemode.Empty, errors.InvalidArgument("fileMode", "unknown value "+string(m))
}

// FromFileMode converts a git file mode to a service file mode. Only blob
// modes have a service equivalent.
func FromFileMode(m filemode.FileMode) (types.FileModeTypeEnum, error) {
	switch m {
	case filemode.Regular, filemode.Deprecated:
		return types.FileModeTypeEnumNormal, nil
	case filemode.Executable:
		return types.FileModeTypeEnumExecutable, nil
	case filemode.Symlink:
		return types.FileModeTypeEnumSymlink, nil
	}
	return "", errors.InvalidArgument("fileMode", "no file mode for git mode "+m.String())
}

// FromOSFileMode picks the service file mode for a local file.
func FromOSFileMode(m os.FileMode) (types.FileModeTypeEnum, error) {
	fm, err := filemode.NewFromOSFileMode(m)
	if err != nil {
		return "", errors.InvalidArgument("fileMode", err.Error())
	}
	return FromFileMode(fm)
}
