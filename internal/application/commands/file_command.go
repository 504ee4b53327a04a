package commands

import (
	"context"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/urfave/cli/v3"

	"github.com/bravo68web/codecommit/internal/gitobject"
	"github.com/bravo68web/codecommit/pkg/codecommit"
	"github.com/bravo68web/codecommit/pkg/codecommit/types"
	"github.com/bravo68web/codecommit/pkg/errors"
	"github.com/bravo68web/codecommit/pkg/logger"
)

func (r *CommandRegistry) FileCommands() *cli.Command {
	return &cli.Command{
		Name:  "file",
		Usage: "Read and write files",
		Commands: []*cli.Command{
			r.filePut(),
			r.fileGet(),
			r.fileCommit(),
		},
	}
}

func (r *CommandRegistry) filePut() *cli.Command {
	return &cli.Command{
		Name:      "put",
		Usage:     "Commit a local file to a branch",
		ArgsUsage: "<local file>",
		Flags: []cli.Flag{
			repoFlag(),
			branchFlag("Branch to commit to"),
			&cli.StringFlag{
				Name:     "path",
				Usage:    "Path of the file in the repository",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "parent",
				Usage: "Expected branch tip; defaults to the current tip",
			},
			&cli.StringFlag{
				Name:    "message",
				Aliases: []string{"m"},
				Usage:   "Commit message",
			},
			&cli.StringFlag{
				Name:  "author",
				Usage: "Author name",
			},
			&cli.StringFlag{
				Name:  "email",
				Usage: "Author email",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return errors.InvalidArgument("file", "exactly one local file is required")
			}
			client, err := r.Client(ctx)
			if err != nil {
				return err
			}

			content, mode, err := readLocalFile(cmd.Args().First())
			if err != nil {
				return err
			}

			req := &codecommit.PutFileRequest{
				RepositoryName: aws.String(cmd.String("repo")),
				BranchName:     aws.String(cmd.String("branch")),
				FilePath:       aws.String(cmd.String("path")),
				FileContent:    content,
				FileMode:       mode,
			}
			if m := cmd.String("message"); m != "" {
				req.CommitMessage = aws.String(m)
			}
			if a := cmd.String("author"); a != "" {
				req.Name = aws.String(a)
			}
			if e := cmd.String("email"); e != "" {
				req.Email = aws.String(e)
			}
			if parent := cmd.String("parent"); parent != "" {
				req.ParentCommitID = aws.String(parent)
			} else if req.ParentCommitID, err = branchTip(ctx, client, req.RepositoryName, req.BranchName); err != nil {
				return err
			}

			out, err := client.PutFile(ctx, req)
			if err != nil {
				return err
			}
			logger.WithContext(ctx).Debug("file committed",
				logger.Repository(aws.ToString(req.RepositoryName)),
				logger.Branch(aws.ToString(req.BranchName)),
				logger.Commit(aws.ToString(out.CommitID)),
			)
			return newPrinter(cmd).result(out)
		},
	}
}

// readLocalFile returns the content to commit for path. Symlinks are stored
// as their target, the way git stores them.
func readLocalFile(path string) ([]byte, types.FileModeTypeEnum, error) {
	info, err := os.Lstat(path)
	if err != nil {
		return nil, "", err
	}
	mode, err := gitobject.FromOSFileMode(info.Mode())
	if err != nil {
		return nil, "", err
	}
	if mode == types.FileModeTypeEnumSymlink {
		target, err := os.Readlink(path)
		if err != nil {
			return nil, "", err
		}
		return []byte(target), mode, nil
	}
	content, err := os.ReadFile(path)
	return content, mode, err
}

// branchTip returns the commit branch points at, or nil for a branch that
// does not exist yet.
func branchTip(ctx context.Context, client *codecommit.Client, repo, branch *string) (*string, error) {
	out, err := client.GetBranch(ctx, &codecommit.GetBranchRequest{RepositoryName: repo, BranchName: branch})
	if types.IsKind(err, types.ErrorKindBranchDoesNotExist) {
		logger.Debug("branch has no commits yet", logger.Repository(*repo), logger.Branch(*branch))
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if out.Branch == nil {
		return nil, nil
	}
	return out.Branch.CommitID, nil
}

func (r *CommandRegistry) fileGet() *cli.Command {
	return &cli.Command{
		Name:  "get",
		Usage: "Print a file at a commit or branch",
		Flags: []cli.Flag{
			repoFlag(),
			&cli.StringFlag{
				Name:     "path",
				Usage:    "Path of the file in the repository",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "ref",
				Usage: "Branch or commit; defaults to the default branch",
			},
			&cli.StringFlag{
				Name:  "out",
				Usage: "Write the content to this local file instead of stdout",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			client, err := r.Client(ctx)
			if err != nil {
				return err
			}
			req := &codecommit.GetFileRequest{
				RepositoryName: aws.String(cmd.String("repo")),
				FilePath:       aws.String(cmd.String("path")),
			}
			if ref := cmd.String("ref"); ref != "" {
				req.CommitSpecifier = aws.String(ref)
			}
			out, err := client.GetFile(ctx, req)
			if err != nil {
				return err
			}

			if dest := cmd.String("out"); dest != "" {
				perm := os.FileMode(0o644)
				if out.FileMode == types.FileModeTypeEnumExecutable {
					perm = 0o755
				}
				return os.WriteFile(dest, out.FileContent, perm)
			}
			p := newPrinter(cmd)
			if p.format == outputJSON {
				return p.json(out)
			}
			_, err = p.w.Write(out.FileContent)
			return err
		},
	}
}

func (r *CommandRegistry) fileCommit() *cli.Command {
	return &cli.Command{
		Name:      "commit",
		Usage:     "Show a commit",
		ArgsUsage: "<commit id>",
		Flags:     []cli.Flag{repoFlag()},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return errors.InvalidArgument("commit", "a commit id is required")
			}
			client, err := r.Client(ctx)
			if err != nil {
				return err
			}
			out, err := client.GetCommit(ctx, &codecommit.GetCommitRequest{
				RepositoryName: aws.String(cmd.String("repo")),
				CommitID:       aws.String(cmd.Args().First()),
			})
			if err != nil {
				return err
			}
			return newPrinter(cmd).result(out)
		},
	}
}
