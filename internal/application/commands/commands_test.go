package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bravo68web/codecommit/internal/codecommittest"
	"github.com/bravo68web/codecommit/pkg/codecommit/types"
	"github.com/bravo68web/codecommit/pkg/errors"
)

// cliHarness runs the CLI against an in-memory endpoint.
type cliHarness struct {
	t        *testing.T
	endpoint string
	config   string
}

func newHarness(t *testing.T) *cliHarness {
	t.Helper()

	srv := codecommittest.NewServer(t)
	codecommittest.NewBackend().Install(srv)

	cfg := filepath.Join(t.TempDir(), "codecommit.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("logging:\n  output: none\n"), 0o600))

	return &cliHarness{t: t, endpoint: srv.URL, config: cfg}
}

func (h *cliHarness) run(args ...string) (string, error) {
	h.t.Helper()

	var out bytes.Buffer
	root := NewCommandRegistry().RegisterCLI()
	root.Writer = &out
	root.ErrWriter = io.Discard

	argv := append([]string{"codecommit", "--config", h.config, "--endpoint", h.endpoint, "--no-sign-request"}, args...)
	err := root.Run(context.Background(), argv)
	return out.String(), err
}

func (h *cliHarness) mustRun(args ...string) string {
	h.t.Helper()

	out, err := h.run(args...)
	require.NoError(h.t, err, "codecommit %s", strings.Join(args, " "))
	return out
}

func writeLocal(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestCLI(t *testing.T) {
	t.Parallel()

	t.Run("should print a hint without a subcommand", func(t *testing.T) {
		t.Parallel()

		// given
		h := newHarness(t)

		// when
		out := h.mustRun()

		// then
		assert.Contains(t, out, "codecommit --help")
	})

	t.Run("should manage repositories", func(t *testing.T) {
		t.Parallel()

		// given
		h := newHarness(t)

		// when
		created := h.mustRun("repo", "create", "--name", "demo", "--description", "docs", "--tag", "team=core")
		listed := h.mustRun("repo", "list")
		tags := h.mustRun("repo", "tags", "--name", "demo")
		asJSON := h.mustRun("--output", "json", "repo", "get", "--name", "demo")

		// then
		assert.Contains(t, created, "repositoryName: demo")
		assert.Contains(t, created, "repositoryDescription: docs")
		assert.True(t, strings.HasPrefix(listed, "demo\t"), listed)
		assert.Equal(t, "team=core\n", tags)

		var got struct {
			RepositoryMetadata struct {
				RepositoryName string `json:"repositoryName"`
				Arn            string `json:"Arn"`
			} `json:"repositoryMetadata"`
		}
		require.NoError(t, json.Unmarshal([]byte(asJSON), &got))
		assert.Equal(t, "demo", got.RepositoryMetadata.RepositoryName)
		assert.Equal(t, "arn:aws:codecommit:us-east-1:123456789012:demo", got.RepositoryMetadata.Arn)
	})

	t.Run("should commit and read back files", func(t *testing.T) {
		t.Parallel()

		// given
		h := newHarness(t)
		h.mustRun("repo", "create", "--name", "demo")
		first := writeLocal(t, "readme.md", "hello\n")
		second := writeLocal(t, "readme.md", "hello again\n")

		// when
		put := h.mustRun("file", "put", "--repo", "demo", "--branch", "main", "--path", "README.md", "-m", "init", first)
		h.mustRun("file", "put", "--repo", "demo", "--branch", "main", "--path", "README.md", second)
		content := h.mustRun("file", "get", "--repo", "demo", "--path", "README.md")
		branches := h.mustRun("branch", "list", "--repo", "demo")

		// then
		assert.Contains(t, put, "blobId: ce013625030ba8dba906f756967f9e9ca394464a")
		assert.Equal(t, "hello again\n", content)
		assert.Equal(t, "main\n", branches)
	})

	t.Run("should surface service faults", func(t *testing.T) {
		t.Parallel()

		// given
		h := newHarness(t)
		h.mustRun("repo", "create", "--name", "demo")
		h.mustRun("file", "put", "--repo", "demo", "--branch", "main", "--path", "a.txt", writeLocal(t, "a.txt", "a"))

		// when
		_, deleteErr := h.run("branch", "delete", "--repo", "demo", "--branch", "main")
		_, missingErr := h.run("repo", "get", "--name", "ghost")

		// then
		assert.True(t, types.IsKind(deleteErr, types.ErrorKindDefaultBranchCannotBeDeleted))
		assert.True(t, types.IsKind(missingErr, types.ErrorKindRepositoryDoesNotExist))
	})

	t.Run("should reject bad arguments before calling the service", func(t *testing.T) {
		t.Parallel()

		// given
		h := newHarness(t)

		// when
		_, formatErr := h.run("--output", "yaml", "repo", "list")
		_, orderErr := h.run("repo", "list", "--order", "sideways")
		_, argsErr := h.run("file", "put", "--repo", "demo", "--branch", "main", "--path", "a.txt")

		// then
		assert.ErrorContains(t, formatErr, "unknown output format")
		assert.True(t, errors.IsInvalidArgument(orderErr))
		assert.True(t, errors.IsInvalidArgument(argsErr))
	})
}
