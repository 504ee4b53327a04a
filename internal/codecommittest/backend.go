package codecommittest

import (
	"fmt"
	"io"
	"net/http"
	"slices"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/filemode"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/storage/memory"
	"github.com/google/uuid"

	"github.com/bravo68web/codecommit/internal/gitobject"
	"github.com/bravo68web/codecommit/pkg/codecommit/types"
)

// AccountID is the account every Backend repository belongs to.
const AccountID = "123456789012"

// Backend serves repository, branch, file and tag operations from in-memory
// git repositories.
type Backend struct {
	// Region appears in ARNs and clone URLs.
	Region string
	// PageSize bounds list results; zero means 100.
	PageSize int
	// Now is the clock used for timestamps and commit signatures.
	Now func() time.Time

	mu    sync.Mutex
	repos map[string]*repository
}

type repository struct {
	meta    types.RepositoryMetadata
	storage *memory.Storage
	git     *git.Repository
	tags    map[string]string
}

type fileEntry struct {
	hash plumbing.Hash
	mode filemode.FileMode
}

// NewBackend returns an empty Backend.
func NewBackend() *Backend {
	return &Backend{
		Region: "us-east-1",
		Now:    time.Now,
		repos:  make(map[string]*repository),
	}
}

// Install registers the Backend's operations on s.
func (b *Backend) Install(s *Server) {
	handlers := map[string]HandlerFunc{
		"CreateRepository":            b.createRepository,
		"GetRepository":               b.getRepository,
		"BatchGetRepositories":        b.batchGetRepositories,
		"DeleteRepository":            b.deleteRepository,
		"ListRepositories":            b.listRepositories,
		"UpdateRepositoryDescription": b.updateRepositoryDescription,
		"UpdateRepositoryName":        b.updateRepositoryName,
		"CreateBranch":                b.createBranch,
		"GetBranch":                   b.getBranch,
		"ListBranches":                b.listBranches,
		"DeleteBranch":                b.deleteBranch,
		"UpdateDefaultBranch":         b.updateDefaultBranch,
		"PutFile":                     b.putFile,
		"GetFile":                     b.getFile,
		"GetBlob":                     b.getBlob,
		"GetCommit":                   b.getCommit,
		"TagResource":                 b.tagResource,
		"UntagResource":               b.untagResource,
		"ListTagsForResource":         b.listTagsForResource,
	}
	for op, h := range handlers {
		s.Handle(op, b.locked(h))
	}
}

func (b *Backend) locked(h HandlerFunc) HandlerFunc {
	return func(req *Request) Response {
		b.mu.Lock()
		defer b.mu.Unlock()
		return h(req)
	}
}

func (b *Backend) pageSize() int {
	if b.PageSize <= 0 {
		return 100
	}
	return b.PageSize
}

func (b *Backend) arn(name string) string {
	return fmt.Sprintf("arn:aws:codecommit:%s:%s:%s", b.Region, AccountID, name)
}

// page slices items according to an index token.
func page[T any](items []T, token *string, size int) ([]T, *string, error) {
	start := 0
	if token != nil && *token != "" {
		n, err := strconv.Atoi(*token)
		if err != nil || n < 0 || n > len(items) {
			return nil, nil, fmt.Errorf("invalid continuation token %q", *token)
		}
		start = n
	}
	end := min(start+size, len(items))
	var next *string
	if end < len(items) {
		next = aws.String(strconv.Itoa(end))
	}
	return items[start:end], next, nil
}

func badRequest(kind types.ErrorKind, format string, args ...any) Response {
	return Fault(http.StatusBadRequest, kind, fmt.Sprintf(format, args...))
}

func decodeOrFault(req *Request, v any) (Response, bool) {
	if err := req.Decode(v); err != nil {
		return Fault(http.StatusBadRequest, "SerializationException", err.Error()), false
	}
	return Response{}, true
}

func (b *Backend) lookup(name *string) (*repository, Response, bool) {
	if name == nil || *name == "" {
		return nil, badRequest(types.ErrorKindRepositoryNameRequired, "repository name is required"), false
	}
	r, ok := b.repos[*name]
	if !ok {
		return nil, badRequest(types.ErrorKindRepositoryDoesNotExist, "%s does not exist", *name), false
	}
	return r, Response{}, true
}

// Repositories

func (b *Backend) createRepository(req *Request) Response {
	var in struct {
		RepositoryName        *string           `json:"repositoryName"`
		RepositoryDescription *string           `json:"repositoryDescription"`
		Tags                  map[string]string `json:"tags"`
	}
	if resp, ok := decodeOrFault(req, &in); !ok {
		return resp
	}
	if in.RepositoryName == nil || *in.RepositoryName == "" {
		return badRequest(types.ErrorKindRepositoryNameRequired, "repository name is required")
	}
	name := *in.RepositoryName
	if _, exists := b.repos[name]; exists {
		return badRequest(types.ErrorKindRepositoryNameExists, "repository named %s already exists", name)
	}

	storage := memory.NewStorage()
	repo, err := git.Init(storage, nil)
	if err != nil {
		return Fault(http.StatusInternalServerError, "InternalFailure", err.Error())
	}

	now := b.Now().UTC()
	r := &repository{
		meta: types.RepositoryMetadata{
			AccountID:             aws.String(AccountID),
			RepositoryID:          aws.String(uuid.NewString()),
			RepositoryName:        aws.String(name),
			RepositoryDescription: in.RepositoryDescription,
			CreationDate:          &now,
			LastModifiedDate:      &now,
			CloneURLHTTP:          aws.String(fmt.Sprintf("https://git-codecommit.%s.amazonaws.com/v1/repos/%s", b.Region, name)),
			CloneURLSSH:           aws.String(fmt.Sprintf("ssh://git-codecommit.%s.amazonaws.com/v1/repos/%s", b.Region, name)),
			Arn:                   aws.String(b.arn(name)),
		},
		storage: storage,
		git:     repo,
		tags:    make(map[string]string),
	}
	for k, v := range in.Tags {
		r.tags[k] = v
	}
	b.repos[name] = r

	return OK(map[string]any{"repositoryMetadata": r.meta})
}

func (b *Backend) getRepository(req *Request) Response {
	var in struct {
		RepositoryName *string `json:"repositoryName"`
	}
	if resp, ok := decodeOrFault(req, &in); !ok {
		return resp
	}
	r, resp, ok := b.lookup(in.RepositoryName)
	if !ok {
		return resp
	}
	return OK(map[string]any{"repositoryMetadata": r.meta})
}

func (b *Backend) batchGetRepositories(req *Request) Response {
	var in struct {
		RepositoryNames []string `json:"repositoryNames"`
	}
	if resp, ok := decodeOrFault(req, &in); !ok {
		return resp
	}
	found := []types.RepositoryMetadata{}
	notFound := []string{}
	for _, name := range in.RepositoryNames {
		if r, ok := b.repos[name]; ok {
			found = append(found, r.meta)
		} else {
			notFound = append(notFound, name)
		}
	}
	return OK(map[string]any{"repositories": found, "repositoriesNotFound": notFound})
}

func (b *Backend) deleteRepository(req *Request) Response {
	var in struct {
		RepositoryName *string `json:"repositoryName"`
	}
	if resp, ok := decodeOrFault(req, &in); !ok {
		return resp
	}
	if in.RepositoryName == nil {
		return badRequest(types.ErrorKindRepositoryNameRequired, "repository name is required")
	}
	r, ok := b.repos[*in.RepositoryName]
	if !ok {
		return OK(map[string]any{})
	}
	delete(b.repos, *in.RepositoryName)
	return OK(map[string]any{"repositoryId": r.meta.RepositoryID})
}

func (b *Backend) listRepositories(req *Request) Response {
	var in struct {
		NextToken *string          `json:"nextToken"`
		SortBy    types.SortByEnum `json:"sortBy"`
		Order     types.OrderEnum  `json:"order"`
	}
	if resp, ok := decodeOrFault(req, &in); !ok {
		return resp
	}

	all := make([]*repository, 0, len(b.repos))
	for _, r := range b.repos {
		all = append(all, r)
	}
	sort.Slice(all, func(i, j int) bool {
		if in.SortBy == types.SortByEnumLastModifiedDate {
			return all[i].meta.LastModifiedDate.Before(*all[j].meta.LastModifiedDate)
		}
		return *all[i].meta.RepositoryName < *all[j].meta.RepositoryName
	})
	if in.Order == types.OrderEnumDescending {
		slices.Reverse(all)
	}

	items, next, err := page(all, in.NextToken, b.pageSize())
	if err != nil {
		return badRequest(types.ErrorKindInvalidContinuationToken, "%v", err)
	}
	pairs := make([]types.RepositoryNameIdPair, 0, len(items))
	for _, r := range items {
		pairs = append(pairs, types.RepositoryNameIdPair{RepositoryName: r.meta.RepositoryName, RepositoryID: r.meta.RepositoryID})
	}
	return OK(map[string]any{"repositories": pairs, "nextToken": next})
}

func (b *Backend) updateRepositoryDescription(req *Request) Response {
	var in struct {
		RepositoryName        *string `json:"repositoryName"`
		RepositoryDescription *string `json:"repositoryDescription"`
	}
	if resp, ok := decodeOrFault(req, &in); !ok {
		return resp
	}
	r, resp, ok := b.lookup(in.RepositoryName)
	if !ok {
		return resp
	}
	r.meta.RepositoryDescription = in.RepositoryDescription
	b.touch(r)
	return OK(nil)
}

func (b *Backend) updateRepositoryName(req *Request) Response {
	var in struct {
		OldName *string `json:"oldName"`
		NewName *string `json:"newName"`
	}
	if resp, ok := decodeOrFault(req, &in); !ok {
		return resp
	}
	r, resp, ok := b.lookup(in.OldName)
	if !ok {
		return resp
	}
	if in.NewName == nil || *in.NewName == "" {
		return badRequest(types.ErrorKindRepositoryNameRequired, "new name is required")
	}
	if _, exists := b.repos[*in.NewName]; exists {
		return badRequest(types.ErrorKindRepositoryNameExists, "repository named %s already exists", *in.NewName)
	}
	delete(b.repos, *in.OldName)
	r.meta.RepositoryName = aws.String(*in.NewName)
	r.meta.Arn = aws.String(b.arn(*in.NewName))
	b.touch(r)
	b.repos[*in.NewName] = r
	return OK(nil)
}

func (b *Backend) touch(r *repository) {
	now := b.Now().UTC()
	r.meta.LastModifiedDate = &now
}

// Branches

func (b *Backend) branchHash(r *repository, branch string) (plumbing.Hash, bool) {
	ref, err := r.git.Reference(plumbing.NewBranchReferenceName(branch), true)
	if err != nil {
		return plumbing.ZeroHash, false
	}
	return ref.Hash(), true
}

func (b *Backend) createBranch(req *Request) Response {
	var in struct {
		RepositoryName *string `json:"repositoryName"`
		BranchName     *string `json:"branchName"`
		CommitID       *string `json:"commitId"`
	}
	if resp, ok := decodeOrFault(req, &in); !ok {
		return resp
	}
	r, resp, ok := b.lookup(in.RepositoryName)
	if !ok {
		return resp
	}
	if in.BranchName == nil || *in.BranchName == "" {
		return badRequest(types.ErrorKindBranchNameRequired, "branch name is required")
	}
	if _, exists := b.branchHash(r, *in.BranchName); exists {
		return badRequest(types.ErrorKindBranchNameExists, "branch %s already exists", *in.BranchName)
	}
	if in.CommitID == nil || *in.CommitID == "" {
		return badRequest(types.ErrorKindCommitIdRequired, "commit id is required")
	}
	hash := plumbing.NewHash(*in.CommitID)
	if _, err := r.git.CommitObject(hash); err != nil {
		return badRequest(types.ErrorKindCommitDoesNotExist, "commit %s does not exist", *in.CommitID)
	}

	ref := plumbing.NewHashReference(plumbing.NewBranchReferenceName(*in.BranchName), hash)
	if err := r.storage.SetReference(ref); err != nil {
		return Fault(http.StatusInternalServerError, "InternalFailure", err.Error())
	}
	if r.meta.DefaultBranch == nil {
		r.meta.DefaultBranch = aws.String(*in.BranchName)
	}
	b.touch(r)
	return OK(nil)
}

func (b *Backend) getBranch(req *Request) Response {
	var in struct {
		RepositoryName *string `json:"repositoryName"`
		BranchName     *string `json:"branchName"`
	}
	if resp, ok := decodeOrFault(req, &in); !ok {
		return resp
	}
	r, resp, ok := b.lookup(in.RepositoryName)
	if !ok {
		return resp
	}
	if in.BranchName == nil {
		return badRequest(types.ErrorKindBranchNameRequired, "branch name is required")
	}
	hash, exists := b.branchHash(r, *in.BranchName)
	if !exists {
		return badRequest(types.ErrorKindBranchDoesNotExist, "branch %s does not exist", *in.BranchName)
	}
	return OK(map[string]any{"branch": types.BranchInfo{BranchName: in.BranchName, CommitID: aws.String(hash.String())}})
}

func (b *Backend) listBranches(req *Request) Response {
	var in struct {
		RepositoryName *string `json:"repositoryName"`
		NextToken      *string `json:"nextToken"`
	}
	if resp, ok := decodeOrFault(req, &in); !ok {
		return resp
	}
	r, resp, ok := b.lookup(in.RepositoryName)
	if !ok {
		return resp
	}

	iter, err := r.git.Branches()
	if err != nil {
		return Fault(http.StatusInternalServerError, "InternalFailure", err.Error())
	}
	var names []string
	_ = iter.ForEach(func(ref *plumbing.Reference) error {
		names = append(names, ref.Name().Short())
		return nil
	})
	sort.Strings(names)

	items, next, err := page(names, in.NextToken, b.pageSize())
	if err != nil {
		return badRequest(types.ErrorKindInvalidContinuationToken, "%v", err)
	}
	return OK(map[string]any{"branches": items, "nextToken": next})
}

func (b *Backend) deleteBranch(req *Request) Response {
	var in struct {
		RepositoryName *string `json:"repositoryName"`
		BranchName     *string `json:"branchName"`
	}
	if resp, ok := decodeOrFault(req, &in); !ok {
		return resp
	}
	r, resp, ok := b.lookup(in.RepositoryName)
	if !ok {
		return resp
	}
	if in.BranchName == nil {
		return badRequest(types.ErrorKindBranchNameRequired, "branch name is required")
	}
	if r.meta.DefaultBranch != nil && *r.meta.DefaultBranch == *in.BranchName {
		return badRequest(types.ErrorKindDefaultBranchCannotBeDeleted, "the default branch cannot be deleted")
	}
	hash, exists := b.branchHash(r, *in.BranchName)
	if !exists {
		// deleting a missing branch succeeds with nothing to report
		return OK(map[string]any{})
	}
	if err := r.storage.RemoveReference(plumbing.NewBranchReferenceName(*in.BranchName)); err != nil {
		return Fault(http.StatusInternalServerError, "InternalFailure", err.Error())
	}
	b.touch(r)
	return OK(map[string]any{"deletedBranch": types.BranchInfo{BranchName: in.BranchName, CommitID: aws.String(hash.String())}})
}

func (b *Backend) updateDefaultBranch(req *Request) Response {
	var in struct {
		RepositoryName    *string `json:"repositoryName"`
		DefaultBranchName *string `json:"defaultBranchName"`
	}
	if resp, ok := decodeOrFault(req, &in); !ok {
		return resp
	}
	r, resp, ok := b.lookup(in.RepositoryName)
	if !ok {
		return resp
	}
	if in.DefaultBranchName == nil {
		return badRequest(types.ErrorKindBranchNameRequired, "branch name is required")
	}
	if _, exists := b.branchHash(r, *in.DefaultBranchName); !exists {
		return badRequest(types.ErrorKindBranchDoesNotExist, "branch %s does not exist", *in.DefaultBranchName)
	}
	r.meta.DefaultBranch = aws.String(*in.DefaultBranchName)
	b.touch(r)
	return OK(nil)
}

// Files and commits

func (b *Backend) putFile(req *Request) Response {
	var in struct {
		RepositoryName *string                `json:"repositoryName"`
		BranchName     *string                `json:"branchName"`
		FileContent    []byte                 `json:"fileContent"`
		FilePath       *string                `json:"filePath"`
		FileMode       types.FileModeTypeEnum `json:"fileMode"`
		ParentCommitID *string                `json:"parentCommitId"`
		CommitMessage  *string                `json:"commitMessage"`
		Name           *string                `json:"name"`
		Email          *string                `json:"email"`
	}
	if resp, ok := decodeOrFault(req, &in); !ok {
		return resp
	}
	r, resp, ok := b.lookup(in.RepositoryName)
	if !ok {
		return resp
	}
	if in.BranchName == nil || *in.BranchName == "" {
		return badRequest(types.ErrorKindBranchNameRequired, "branch name is required")
	}
	if in.FilePath == nil || strings.Trim(*in.FilePath, "/") == "" {
		return badRequest(types.ErrorKindPathRequired, "file path is required")
	}
	path := strings.Trim(*in.FilePath, "/")

	mode := filemode.Regular
	if in.FileMode != "" {
		m, err := gitobject.ToFileMode(in.FileMode)
		if err != nil {
			return badRequest(types.ErrorKindInvalidFileMode, "%v", err)
		}
		mode = m
	}

	files := map[string]fileEntry{}
	var parents []plumbing.Hash
	tip, hasBranch := b.branchHash(r, *in.BranchName)
	if hasBranch {
		if in.ParentCommitID == nil {
			return badRequest(types.ErrorKindParentCommitIdRequired, "parent commit id is required")
		}
		if *in.ParentCommitID != tip.String() {
			return badRequest(types.ErrorKindParentCommitIdOutdated, "parent commit id %s is not the tip of %s", *in.ParentCommitID, *in.BranchName)
		}
		var err error
		if files, err = b.flatten(r, tip); err != nil {
			return Fault(http.StatusInternalServerError, "InternalFailure", err.Error())
		}
		parents = []plumbing.Hash{tip}
	}

	blob, err := b.writeBlob(r, in.FileContent)
	if err != nil {
		return Fault(http.StatusInternalServerError, "InternalFailure", err.Error())
	}
	if prev, ok := files[path]; ok && prev.hash == blob && prev.mode == mode {
		return badRequest(types.ErrorKindSameFileContent, "the file already has this content")
	}
	files[path] = fileEntry{hash: blob, mode: mode}

	tree, err := b.writeTree(r, files)
	if err != nil {
		return Fault(http.StatusInternalServerError, "InternalFailure", err.Error())
	}

	sig := object.Signature{Name: aws.ToString(in.Name), Email: aws.ToString(in.Email), When: b.Now()}
	if sig.Name == "" {
		sig.Name = "codecommittest"
	}
	commit := &object.Commit{
		Author:       sig,
		Committer:    sig,
		Message:      aws.ToString(in.CommitMessage),
		TreeHash:     tree,
		ParentHashes: parents,
	}
	obj := r.storage.NewEncodedObject()
	if err := commit.Encode(obj); err != nil {
		return Fault(http.StatusInternalServerError, "InternalFailure", err.Error())
	}
	commitHash, err := r.storage.SetEncodedObject(obj)
	if err != nil {
		return Fault(http.StatusInternalServerError, "InternalFailure", err.Error())
	}

	ref := plumbing.NewHashReference(plumbing.NewBranchReferenceName(*in.BranchName), commitHash)
	if err := r.storage.SetReference(ref); err != nil {
		return Fault(http.StatusInternalServerError, "InternalFailure", err.Error())
	}
	if r.meta.DefaultBranch == nil {
		r.meta.DefaultBranch = aws.String(*in.BranchName)
	}
	b.touch(r)

	return OK(map[string]any{
		"commitId": commitHash.String(),
		"blobId":   blob.String(),
		"treeId":   tree.String(),
	})
}

func (b *Backend) getFile(req *Request) Response {
	var in struct {
		RepositoryName  *string `json:"repositoryName"`
		CommitSpecifier *string `json:"commitSpecifier"`
		FilePath        *string `json:"filePath"`
	}
	if resp, ok := decodeOrFault(req, &in); !ok {
		return resp
	}
	r, resp, ok := b.lookup(in.RepositoryName)
	if !ok {
		return resp
	}
	if in.FilePath == nil {
		return badRequest(types.ErrorKindPathRequired, "file path is required")
	}

	commit, resp, ok := b.resolve(r, in.CommitSpecifier)
	if !ok {
		return resp
	}
	tree, err := commit.Tree()
	if err != nil {
		return Fault(http.StatusInternalServerError, "InternalFailure", err.Error())
	}
	path := strings.Trim(*in.FilePath, "/")
	file, err := tree.File(path)
	if err != nil {
		return badRequest(types.ErrorKindFileDoesNotExist, "%s does not exist at %s", path, commit.Hash)
	}
	content, err := readAll(file.Blob.Reader())
	if err != nil {
		return Fault(http.StatusInternalServerError, "InternalFailure", err.Error())
	}
	mode, err := gitobject.FromFileMode(file.Mode)
	if err != nil {
		return Fault(http.StatusInternalServerError, "InternalFailure", err.Error())
	}

	return OK(map[string]any{
		"commitId":    commit.Hash.String(),
		"blobId":      file.Hash.String(),
		"filePath":    path,
		"fileMode":    mode,
		"fileSize":    file.Size,
		"fileContent": content,
	})
}

func (b *Backend) getBlob(req *Request) Response {
	var in struct {
		RepositoryName *string `json:"repositoryName"`
		BlobID         *string `json:"blobId"`
	}
	if resp, ok := decodeOrFault(req, &in); !ok {
		return resp
	}
	r, resp, ok := b.lookup(in.RepositoryName)
	if !ok {
		return resp
	}
	if in.BlobID == nil || *in.BlobID == "" {
		return badRequest(types.ErrorKindBlobIdRequired, "blob id is required")
	}
	if !plumbing.IsHash(*in.BlobID) {
		return badRequest(types.ErrorKindInvalidBlobId, "%s is not a blob id", *in.BlobID)
	}
	blob, err := r.git.BlobObject(plumbing.NewHash(*in.BlobID))
	if err != nil {
		return badRequest(types.ErrorKindBlobIdDoesNotExist, "blob %s does not exist", *in.BlobID)
	}
	content, err := readAll(blob.Reader())
	if err != nil {
		return Fault(http.StatusInternalServerError, "InternalFailure", err.Error())
	}
	return OK(map[string]any{"content": content})
}

func (b *Backend) getCommit(req *Request) Response {
	var in struct {
		RepositoryName *string `json:"repositoryName"`
		CommitID       *string `json:"commitId"`
	}
	if resp, ok := decodeOrFault(req, &in); !ok {
		return resp
	}
	r, resp, ok := b.lookup(in.RepositoryName)
	if !ok {
		return resp
	}
	if in.CommitID == nil || *in.CommitID == "" {
		return badRequest(types.ErrorKindCommitIdRequired, "commit id is required")
	}
	if !plumbing.IsHash(*in.CommitID) {
		return badRequest(types.ErrorKindInvalidCommitId, "%s is not a commit id", *in.CommitID)
	}
	c, err := r.git.CommitObject(plumbing.NewHash(*in.CommitID))
	if err != nil {
		return badRequest(types.ErrorKindCommitIdDoesNotExist, "commit %s does not exist", *in.CommitID)
	}
	return OK(map[string]any{"commit": toCommit(c)})
}

// resolve finds the commit named by a branch or commit id; nil means the
// default branch.
func (b *Backend) resolve(r *repository, spec *string) (*object.Commit, Response, bool) {
	name := aws.ToString(spec)
	if name == "" {
		name = aws.ToString(r.meta.DefaultBranch)
	}
	if hash, ok := b.branchHash(r, name); ok {
		c, err := r.git.CommitObject(hash)
		if err != nil {
			return nil, Fault(http.StatusInternalServerError, "InternalFailure", err.Error()), false
		}
		return c, Response{}, true
	}
	if plumbing.IsHash(name) {
		if c, err := r.git.CommitObject(plumbing.NewHash(name)); err == nil {
			return c, Response{}, true
		}
	}
	return nil, badRequest(types.ErrorKindCommitDoesNotExist, "no commit matches %q", name), false
}

func toCommit(c *object.Commit) types.Commit {
	parents := make([]string, 0, len(c.ParentHashes))
	for _, p := range c.ParentHashes {
		parents = append(parents, p.String())
	}
	return types.Commit{
		CommitID:  aws.String(c.Hash.String()),
		TreeID:    aws.String(c.TreeHash.String()),
		Parents:   parents,
		Message:   aws.String(c.Message),
		Author:    toUserInfo(c.Author),
		Committer: toUserInfo(c.Committer),
	}
}

func toUserInfo(s object.Signature) *types.UserInfo {
	return &types.UserInfo{
		Name:  aws.String(s.Name),
		Email: aws.String(s.Email),
		Date:  aws.String(fmt.Sprintf("%d %s", s.When.Unix(), s.When.Format("-0700"))),
	}
}

func (b *Backend) writeBlob(r *repository, content []byte) (plumbing.Hash, error) {
	obj := r.storage.NewEncodedObject()
	obj.SetType(plumbing.BlobObject)
	obj.SetSize(int64(len(content)))
	w, err := obj.Writer()
	if err != nil {
		return plumbing.ZeroHash, err
	}
	if _, err := w.Write(content); err != nil {
		return plumbing.ZeroHash, err
	}
	if err := w.Close(); err != nil {
		return plumbing.ZeroHash, err
	}
	return r.storage.SetEncodedObject(obj)
}

// flatten lists every blob reachable from the tree of commit.
func (b *Backend) flatten(r *repository, commit plumbing.Hash) (map[string]fileEntry, error) {
	c, err := r.git.CommitObject(commit)
	if err != nil {
		return nil, err
	}
	tree, err := c.Tree()
	if err != nil {
		return nil, err
	}
	files := map[string]fileEntry{}
	err = tree.Files().ForEach(func(f *object.File) error {
		files[f.Name] = fileEntry{hash: f.Hash, mode: f.Mode}
		return nil
	})
	return files, err
}

// writeTree stores the trees for a flat path listing and returns the root.
func (b *Backend) writeTree(r *repository, files map[string]fileEntry) (plumbing.Hash, error) {
	dirs := map[string]map[string]fileEntry{}
	var entries []object.TreeEntry
	for p, e := range files {
		if dir, rest, ok := strings.Cut(p, "/"); ok {
			if dirs[dir] == nil {
				dirs[dir] = map[string]fileEntry{}
			}
			dirs[dir][rest] = e
			continue
		}
		entries = append(entries, object.TreeEntry{Name: p, Mode: e.mode, Hash: e.hash})
	}
	for dir, sub := range dirs {
		h, err := b.writeTree(r, sub)
		if err != nil {
			return plumbing.ZeroHash, err
		}
		entries = append(entries, object.TreeEntry{Name: dir, Mode: filemode.Dir, Hash: h})
	}

	// git orders directories as if their name ended in '/'
	key := func(e object.TreeEntry) string {
		if e.Mode == filemode.Dir {
			return e.Name + "/"
		}
		return e.Name
	}
	sort.Slice(entries, func(i, j int) bool { return key(entries[i]) < key(entries[j]) })

	obj := r.storage.NewEncodedObject()
	if err := (&object.Tree{Entries: entries}).Encode(obj); err != nil {
		return plumbing.ZeroHash, err
	}
	return r.storage.SetEncodedObject(obj)
}

func readAll(rc io.ReadCloser, err error) ([]byte, error) {
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

// Tags

func (b *Backend) byArn(arn *string) (*repository, Response, bool) {
	if arn == nil || *arn == "" {
		return nil, badRequest(types.ErrorKindResourceArnRequired, "resource arn is required"), false
	}
	for _, r := range b.repos {
		if *r.meta.Arn == *arn {
			return r, Response{}, true
		}
	}
	return nil, badRequest(types.ErrorKindRepositoryDoesNotExist, "no repository has arn %s", *arn), false
}

func (b *Backend) tagResource(req *Request) Response {
	var in struct {
		ResourceArn *string           `json:"resourceArn"`
		Tags        map[string]string `json:"tags"`
	}
	if resp, ok := decodeOrFault(req, &in); !ok {
		return resp
	}
	r, resp, ok := b.byArn(in.ResourceArn)
	if !ok {
		return resp
	}
	if len(in.Tags) == 0 {
		return badRequest(types.ErrorKindTagsMapRequired, "tags are required")
	}
	for k, v := range in.Tags {
		r.tags[k] = v
	}
	return OK(nil)
}

func (b *Backend) untagResource(req *Request) Response {
	var in struct {
		ResourceArn *string  `json:"resourceArn"`
		TagKeys     []string `json:"tagKeys"`
	}
	if resp, ok := decodeOrFault(req, &in); !ok {
		return resp
	}
	r, resp, ok := b.byArn(in.ResourceArn)
	if !ok {
		return resp
	}
	for _, k := range in.TagKeys {
		delete(r.tags, k)
	}
	return OK(nil)
}

func (b *Backend) listTagsForResource(req *Request) Response {
	var in struct {
		ResourceArn *string `json:"resourceArn"`
	}
	if resp, ok := decodeOrFault(req, &in); !ok {
		return resp
	}
	r, resp, ok := b.byArn(in.ResourceArn)
	if !ok {
		return resp
	}
	return OK(map[string]any{"tags": r.tags})
}
