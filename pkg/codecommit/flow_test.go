package codecommit_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bravo68web/codecommit/internal/codecommittest"
	"github.com/bravo68web/codecommit/pkg/codecommit"
	"github.com/bravo68web/codecommit/pkg/codecommit/types"
)

func newBackendClient(t *testing.T, pageSize int) *codecommit.Client {
	t.Helper()

	srv := codecommittest.NewServer(t)
	backend := codecommittest.NewBackend()
	backend.PageSize = pageSize
	backend.Install(srv)
	return newClient(t, srv, func(o *codecommit.Options) { o.VerifyContent = true })
}

func TestRepositoryLifecycle(t *testing.T) {
	t.Parallel()

	t.Run("should create, describe and delete a repository", func(t *testing.T) {
		t.Parallel()

		// given
		ctx := context.Background()
		client := newBackendClient(t, 0)

		// when
		created, err := client.CreateRepository(ctx, (&codecommit.CreateRepositoryRequest{
			RepositoryName:        aws.String("demo"),
			RepositoryDescription: aws.String("first"),
		}).WithTags(map[string]string{"team": "core"}))
		require.NoError(t, err)

		_, dupErr := client.CreateRepository(ctx, &codecommit.CreateRepositoryRequest{RepositoryName: aws.String("demo")})
		got, err := client.GetRepository(ctx, &codecommit.GetRepositoryRequest{RepositoryName: aws.String("demo")})
		require.NoError(t, err)
		tags, err := client.ListTagsForResource(ctx, &codecommit.ListTagsForResourceRequest{ResourceArn: got.RepositoryMetadata.Arn})
		require.NoError(t, err)
		deleted, err := client.DeleteRepository(ctx, &codecommit.DeleteRepositoryRequest{RepositoryName: aws.String("demo")})
		require.NoError(t, err)
		again, err := client.DeleteRepository(ctx, &codecommit.DeleteRepositoryRequest{RepositoryName: aws.String("demo")})
		require.NoError(t, err)
		_, missingErr := client.GetRepository(ctx, &codecommit.GetRepositoryRequest{RepositoryName: aws.String("demo")})

		// then
		meta := created.RepositoryMetadata
		require.NotNil(t, meta)
		assert.Equal(t, "demo", aws.ToString(meta.RepositoryName))
		assert.Equal(t, "arn:aws:codecommit:us-east-1:123456789012:demo", aws.ToString(meta.Arn))
		assert.Equal(t, "https://git-codecommit.us-east-1.amazonaws.com/v1/repos/demo", aws.ToString(meta.CloneURLHTTP))
		assert.NotNil(t, meta.CreationDate)
		assert.True(t, types.IsKind(dupErr, types.ErrorKindRepositoryNameExists))
		assert.Equal(t, "first", aws.ToString(got.RepositoryMetadata.RepositoryDescription))
		assert.Equal(t, map[string]string{"team": "core"}, tags.Tags)
		assert.Equal(t, aws.ToString(meta.RepositoryID), aws.ToString(deleted.RepositoryID))
		assert.Nil(t, again.RepositoryID)
		assert.True(t, types.IsKind(missingErr, types.ErrorKindRepositoryDoesNotExist))
	})

	t.Run("should page through repositories in name order", func(t *testing.T) {
		t.Parallel()

		// given
		ctx := context.Background()
		client := newBackendClient(t, 2)
		for _, name := range []string{"e", "c", "a", "d", "b"} {
			_, err := client.CreateRepository(ctx, &codecommit.CreateRepositoryRequest{RepositoryName: aws.String(name)})
			require.NoError(t, err)
		}

		// when
		var names []string
		pages := 0
		p := codecommit.NewListRepositoriesPaginator(client, &codecommit.ListRepositoriesRequest{
			SortBy: types.SortByEnumRepositoryName,
			Order:  types.OrderEnumDescending,
		})
		for p.HasMorePages() {
			page, err := p.NextPage(ctx)
			require.NoError(t, err)
			for _, r := range page.Repositories {
				names = append(names, aws.ToString(r.RepositoryName))
			}
			pages++
		}

		// then
		assert.Equal(t, []string{"e", "d", "c", "b", "a"}, names)
		assert.Equal(t, 3, pages)
	})

	t.Run("should report missing repositories of a batch", func(t *testing.T) {
		t.Parallel()

		// given
		ctx := context.Background()
		client := newBackendClient(t, 0)
		_, err := client.CreateRepository(ctx, &codecommit.CreateRepositoryRequest{RepositoryName: aws.String("demo")})
		require.NoError(t, err)

		// when
		out, err := client.BatchGetRepositories(ctx,
			(&codecommit.BatchGetRepositoriesRequest{}).WithRepositoryNames("demo", "ghost"))

		// then
		require.NoError(t, err)
		require.Len(t, out.Repositories, 1)
		assert.Equal(t, "demo", aws.ToString(out.Repositories[0].RepositoryName))
		assert.Equal(t, []string{"ghost"}, out.RepositoriesNotFound)
	})
}

func TestFileAndBranchFlow(t *testing.T) {
	t.Parallel()

	t.Run("should commit files and manage branches", func(t *testing.T) {
		t.Parallel()

		// given
		ctx := context.Background()
		client := newBackendClient(t, 0)
		repo := aws.String("demo")
		_, err := client.CreateRepository(ctx, &codecommit.CreateRepositoryRequest{RepositoryName: repo})
		require.NoError(t, err)

		// when: the first commit creates the branch
		first, err := client.PutFile(ctx, &codecommit.PutFileRequest{
			RepositoryName: repo,
			BranchName:     aws.String("main"),
			FilePath:       aws.String("docs/readme.md"),
			FileContent:    []byte("hello\n"),
			CommitMessage:  aws.String("add readme"),
			Name:           aws.String("Dev"),
			Email:          aws.String("dev@example.com"),
		})
		require.NoError(t, err)

		// then
		assert.Equal(t, "ce013625030ba8dba906f756967f9e9ca394464a", aws.ToString(first.BlobID))
		branch, err := client.GetBranch(ctx, &codecommit.GetBranchRequest{RepositoryName: repo, BranchName: aws.String("main")})
		require.NoError(t, err)
		assert.Equal(t, aws.ToString(first.CommitID), aws.ToString(branch.Branch.CommitID))

		// when: a later commit must name the tip
		_, noParent := client.PutFile(ctx, &codecommit.PutFileRequest{
			RepositoryName: repo,
			BranchName:     aws.String("main"),
			FilePath:       aws.String("run.sh"),
			FileContent:    []byte("#!/bin/sh\n"),
		})
		_, same := client.PutFile(ctx, &codecommit.PutFileRequest{
			RepositoryName: repo,
			BranchName:     aws.String("main"),
			FilePath:       aws.String("docs/readme.md"),
			FileContent:    []byte("hello\n"),
			ParentCommitID: first.CommitID,
		})
		second, err := client.PutFile(ctx, &codecommit.PutFileRequest{
			RepositoryName: repo,
			BranchName:     aws.String("main"),
			FilePath:       aws.String("run.sh"),
			FileMode:       types.FileModeTypeEnumExecutable,
			FileContent:    []byte("#!/bin/sh\n"),
			ParentCommitID: first.CommitID,
		})
		require.NoError(t, err)
		_, outdated := client.PutFile(ctx, &codecommit.PutFileRequest{
			RepositoryName: repo,
			BranchName:     aws.String("main"),
			FilePath:       aws.String("other.txt"),
			FileContent:    []byte("x"),
			ParentCommitID: first.CommitID,
		})

		// then
		assert.True(t, types.IsKind(noParent, types.ErrorKindParentCommitIdRequired))
		assert.True(t, types.IsKind(same, types.ErrorKindSameFileContent))
		assert.True(t, types.IsKind(outdated, types.ErrorKindParentCommitIdOutdated))

		file, err := client.GetFile(ctx, &codecommit.GetFileRequest{RepositoryName: repo, FilePath: aws.String("/docs/readme.md")})
		require.NoError(t, err)
		assert.Equal(t, []byte("hello\n"), file.FileContent)
		assert.Equal(t, types.FileModeTypeEnumNormal, file.FileMode)
		assert.Equal(t, aws.ToString(second.CommitID), aws.ToString(file.CommitID))

		script, err := client.GetFile(ctx, &codecommit.GetFileRequest{
			RepositoryName:  repo,
			CommitSpecifier: second.CommitID,
			FilePath:        aws.String("run.sh"),
		})
		require.NoError(t, err)
		assert.Equal(t, types.FileModeTypeEnumExecutable, script.FileMode)

		_, gone := client.GetFile(ctx, &codecommit.GetFileRequest{
			RepositoryName:  repo,
			CommitSpecifier: first.CommitID,
			FilePath:        aws.String("run.sh"),
		})
		assert.True(t, types.IsKind(gone, types.ErrorKindFileDoesNotExist))

		blob, err := client.GetBlob(ctx, &codecommit.GetBlobRequest{RepositoryName: repo, BlobID: first.BlobID})
		require.NoError(t, err)
		assert.Equal(t, []byte("hello\n"), blob.Content)

		commit, err := client.GetCommit(ctx, &codecommit.GetCommitRequest{RepositoryName: repo, CommitID: second.CommitID})
		require.NoError(t, err)
		assert.Equal(t, []string{aws.ToString(first.CommitID)}, commit.Commit.Parents)
		assert.Equal(t, "codecommittest", aws.ToString(commit.Commit.Author.Name))
		firstCommit, err := client.GetCommit(ctx, &codecommit.GetCommitRequest{RepositoryName: repo, CommitID: first.CommitID})
		require.NoError(t, err)
		assert.Equal(t, "Dev", aws.ToString(firstCommit.Commit.Author.Name))
		assert.Equal(t, "add readme", aws.ToString(firstCommit.Commit.Message))
		assert.Empty(t, firstCommit.Commit.Parents)

		// when: branching and changing the default
		require.NoError(t, client.CreateBranch(ctx, &codecommit.CreateBranchRequest{
			RepositoryName: repo,
			BranchName:     aws.String("dev"),
			CommitID:       first.CommitID,
		}))
		_, defaultErr := client.DeleteBranch(ctx, &codecommit.DeleteBranchRequest{RepositoryName: repo, BranchName: aws.String("main")})
		require.NoError(t, client.UpdateDefaultBranch(ctx, &codecommit.UpdateDefaultBranchRequest{
			RepositoryName:    repo,
			DefaultBranchName: aws.String("dev"),
		}))
		deleted, err := client.DeleteBranch(ctx, &codecommit.DeleteBranchRequest{RepositoryName: repo, BranchName: aws.String("main")})
		require.NoError(t, err)
		branches, err := client.ListBranches(ctx, &codecommit.ListBranchesRequest{RepositoryName: repo})
		require.NoError(t, err)
		meta, err := client.GetRepository(ctx, &codecommit.GetRepositoryRequest{RepositoryName: repo})
		require.NoError(t, err)

		// then
		assert.True(t, types.IsKind(defaultErr, types.ErrorKindDefaultBranchCannotBeDeleted))
		assert.Equal(t, "main", aws.ToString(deleted.DeletedBranch.BranchName))
		assert.Equal(t, aws.ToString(second.CommitID), aws.ToString(deleted.DeletedBranch.CommitID))
		assert.Equal(t, []string{"dev"}, branches.Branches)
		assert.Equal(t, "dev", aws.ToString(meta.RepositoryMetadata.DefaultBranch))
		assert.Equal(t, fmt.Sprintf("{branchName: main,commitId: %s}", aws.ToString(second.CommitID)), deleted.DeletedBranch.String())
	})
}
