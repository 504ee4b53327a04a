package types_test

import (
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bravo68web/codecommit/pkg/codecommit/types"
)

func TestStringify(t *testing.T) {
	t.Parallel()

	t.Run("should render nested objects with wire names", func(t *testing.T) {
		t.Parallel()

		// given
		v := struct {
			DeletedBranch *types.BranchInfo `json:"deletedBranch,omitempty"`
		}{
			DeletedBranch: &types.BranchInfo{BranchName: aws.String("main"), CommitID: aws.String("a1b2c3")},
		}

		// when
		s := types.Stringify(v)

		// then
		assert.Equal(t, "{deletedBranch: {branchName: main,commitId: a1b2c3}}", s)
	})

	t.Run("should omit absent fields", func(t *testing.T) {
		t.Parallel()

		// given
		info := types.BranchInfo{BranchName: aws.String("dev")}

		// when
		s := info.String()

		// then
		assert.Equal(t, "{branchName: dev}", s)
	})

	t.Run("should render an empty shape as empty braces", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "{}", types.UserInfo{}.String())
	})

	t.Run("should render lists, maps, timestamps and blobs", func(t *testing.T) {
		t.Parallel()

		// given
		created := time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)
		trigger := types.RepositoryTrigger{
			Name:     aws.String("notify"),
			Branches: []string{"main", "dev"},
			Events:   []types.RepositoryTriggerEventEnum{types.RepositoryTriggerEventEnumAll},
		}
		meta := types.RepositoryMetadata{CreationDate: &created}
		entry := types.PutFileEntry{FilePath: aws.String("a.txt"), FileContent: []byte("hello")}
		comment := types.Comment{ReactionCounts: map[string]int32{"b": 2, "a": 1}}

		// when / then
		assert.Equal(t, "{name: notify,branches: [main, dev],events: [all]}", trigger.String())
		assert.Equal(t, "{creationDate: 2024-03-01T12:30:00Z}", meta.String())
		assert.Equal(t, "{filePath: a.txt,fileContent: <5 bytes>}", entry.String())
		assert.Equal(t, "{reactionCounts: {a=1, b=2}}", comment.String())
	})

	t.Run("should render an empty list distinctly from an absent one", func(t *testing.T) {
		t.Parallel()

		// given
		withEmpty := types.Commit{Parents: []string{}}
		absent := types.Commit{}

		// when / then
		assert.Equal(t, "{parents: []}", withEmpty.String())
		assert.Equal(t, "{}", absent.String())
	})

	t.Run("should render nil as null", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "null", types.Stringify(nil))
		assert.Equal(t, "null", types.Stringify((*types.BranchInfo)(nil)))
	})
}

func TestEqual(t *testing.T) {
	t.Parallel()

	t.Run("should treat shapes with equal fields as equal", func(t *testing.T) {
		t.Parallel()

		// given
		a := types.BranchInfo{BranchName: aws.String("main"), CommitID: aws.String("abc")}
		b := types.BranchInfo{BranchName: aws.String("main"), CommitID: aws.String("abc")}

		// when / then
		assert.True(t, types.Equal(a, b))
	})

	t.Run("should distinguish absent from present", func(t *testing.T) {
		t.Parallel()

		// given
		a := types.BranchInfo{BranchName: aws.String("main")}
		b := types.BranchInfo{BranchName: aws.String("main"), CommitID: aws.String("")}

		// when / then
		assert.False(t, types.Equal(a, b))
	})

	t.Run("should compare sequences in order", func(t *testing.T) {
		t.Parallel()

		// given
		a := types.Commit{Parents: []string{"p1", "p2"}}
		b := types.Commit{Parents: []string{"p2", "p1"}}

		// when / then
		assert.False(t, types.Equal(a, b))
		assert.True(t, types.Equal(a, types.Commit{Parents: []string{"p1", "p2"}}))
	})

	t.Run("should compare blobs by content", func(t *testing.T) {
		t.Parallel()

		// given
		a := types.PutFileEntry{FileContent: []byte{1, 2, 3}}
		b := types.PutFileEntry{FileContent: []byte{1, 2, 3}}

		// when / then
		assert.True(t, types.Equal(a, b))
		assert.True(t, types.Equal[*types.PutFileEntry](nil, nil))
	})
}

func TestRepositoryTriggerWith(t *testing.T) {
	t.Parallel()

	t.Run("should copy the given slice and replace any earlier value", func(t *testing.T) {
		t.Parallel()

		// given
		branches := []string{"main"}
		trigger := (&types.RepositoryTrigger{}).WithBranches("old")

		// when
		trigger.WithBranches(branches...)
		branches[0] = "mutated"

		// then
		require.Len(t, trigger.Branches, 1)
		assert.Equal(t, "main", trigger.Branches[0])
	})
}

func TestPullRequestEventMetadata(t *testing.T) {
	t.Parallel()

	t.Run("should return the metadata selected by the event type", func(t *testing.T) {
		t.Parallel()

		// given
		created := &types.PullRequestCreatedEventMetadata{RepositoryName: aws.String("demo")}
		event := types.PullRequestEvent{
			PullRequestEventType:            types.PullRequestEventTypePullRequestCreated,
			PullRequestCreatedEventMetadata: created,
		}

		// when
		md := event.Metadata()

		// then
		assert.Same(t, created, md)
	})

	t.Run("should return nil when the matching metadata is absent", func(t *testing.T) {
		t.Parallel()

		// given
		event := types.PullRequestEvent{PullRequestEventType: types.PullRequestEventTypePullRequestCreated}

		// when / then
		assert.Nil(t, event.Metadata())
		assert.Nil(t, types.PullRequestEvent{}.Metadata())
	})
}
