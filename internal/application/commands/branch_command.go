package commands

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/urfave/cli/v3"

	"github.com/bravo68web/codecommit/pkg/codecommit"
)

func (r *CommandRegistry) BranchCommands() *cli.Command {
	return &cli.Command{
		Name:  "branch",
		Usage: "Manage branches",
		Commands: []*cli.Command{
			r.branchCreate(),
			r.branchGet(),
			r.branchList(),
			r.branchDelete(),
			r.branchDefault(),
		},
	}
}

func repoFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:     "repo",
		Aliases:  []string{"r"},
		Usage:    "Name of the repository",
		Required: true,
	}
}

func branchFlag(usage string) *cli.StringFlag {
	return &cli.StringFlag{
		Name:     "branch",
		Aliases:  []string{"b"},
		Usage:    usage,
		Required: true,
	}
}

func (r *CommandRegistry) branchCreate() *cli.Command {
	return &cli.Command{
		Name:  "create",
		Usage: "Create a branch pointing at a commit",
		Flags: []cli.Flag{
			repoFlag(),
			branchFlag("Name of the new branch"),
			&cli.StringFlag{
				Name:     "commit",
				Usage:    "Commit the branch points at",
				Required: true,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			client, err := r.Client(ctx)
			if err != nil {
				return err
			}
			err = client.CreateBranch(ctx, &codecommit.CreateBranchRequest{
				RepositoryName: aws.String(cmd.String("repo")),
				BranchName:     aws.String(cmd.String("branch")),
				CommitID:       aws.String(cmd.String("commit")),
			})
			if err != nil {
				return err
			}
			return newPrinter(cmd).done("created branch " + cmd.String("branch"))
		},
	}
}

func (r *CommandRegistry) branchGet() *cli.Command {
	return &cli.Command{
		Name:  "get",
		Usage: "Show the commit a branch points at",
		Flags: []cli.Flag{repoFlag(), branchFlag("Name of the branch")},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			client, err := r.Client(ctx)
			if err != nil {
				return err
			}
			out, err := client.GetBranch(ctx, &codecommit.GetBranchRequest{
				RepositoryName: aws.String(cmd.String("repo")),
				BranchName:     aws.String(cmd.String("branch")),
			})
			if err != nil {
				return err
			}
			return newPrinter(cmd).result(out)
		},
	}
}

func (r *CommandRegistry) branchList() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List branches",
		Flags: []cli.Flag{repoFlag()},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			client, err := r.Client(ctx)
			if err != nil {
				return err
			}

			all := &codecommit.ListBranchesResult{}
			p := codecommit.NewListBranchesPaginator(client, &codecommit.ListBranchesRequest{
				RepositoryName: aws.String(cmd.String("repo")),
			})
			for p.HasMorePages() {
				page, err := p.NextPage(ctx)
				if err != nil {
					return err
				}
				all.Branches = append(all.Branches, page.Branches...)
			}
			return newPrinter(cmd).list(all, all.Branches)
		},
	}
}

func (r *CommandRegistry) branchDelete() *cli.Command {
	return &cli.Command{
		Name:  "delete",
		Usage: "Delete a branch",
		Flags: []cli.Flag{repoFlag(), branchFlag("Name of the branch to delete")},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			client, err := r.Client(ctx)
			if err != nil {
				return err
			}
			out, err := client.DeleteBranch(ctx, &codecommit.DeleteBranchRequest{
				RepositoryName: aws.String(cmd.String("repo")),
				BranchName:     aws.String(cmd.String("branch")),
			})
			if err != nil {
				return err
			}
			return newPrinter(cmd).result(out)
		},
	}
}

func (r *CommandRegistry) branchDefault() *cli.Command {
	return &cli.Command{
		Name:  "default",
		Usage: "Make a branch the repository default",
		Flags: []cli.Flag{repoFlag(), branchFlag("Name of the branch")},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			client, err := r.Client(ctx)
			if err != nil {
				return err
			}
			err = client.UpdateDefaultBranch(ctx, &codecommit.UpdateDefaultBranchRequest{
				RepositoryName:    aws.String(cmd.String("repo")),
				DefaultBranchName: aws.String(cmd.String("branch")),
			})
			if err != nil {
				return err
			}
			return newPrinter(cmd).done("default branch is " + cmd.String("branch"))
		},
	}
}
