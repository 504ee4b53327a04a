package commands

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/urfave/cli/v3"

	"github.com/bravo68web/codecommit/pkg/codecommit"
	"github.com/bravo68web/codecommit/pkg/codecommit/types"
	"github.com/bravo68web/codecommit/pkg/errors"
	"github.com/bravo68web/codecommit/pkg/logger"
)

func (r *CommandRegistry) PullRequestCommands() *cli.Command {
	return &cli.Command{
		Name:    "pr",
		Aliases: []string{"pull-request"},
		Usage:   "Manage pull requests",
		Commands: []*cli.Command{
			r.prCreate(),
			r.prGet(),
			r.prList(),
			r.prStatus(),
			r.prApprove(),
			r.prMerge(),
		},
	}
}

func pullRequestFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:     "id",
		Usage:    "Pull request id",
		Required: true,
	}
}

func (r *CommandRegistry) prCreate() *cli.Command {
	return &cli.Command{
		Name:  "create",
		Usage: "Open a pull request",
		Flags: []cli.Flag{
			repoFlag(),
			&cli.StringFlag{
				Name:     "source",
				Usage:    "Source branch",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "destination",
				Usage: "Destination branch; defaults to the repository default",
			},
			&cli.StringFlag{
				Name:     "title",
				Aliases:  []string{"t"},
				Required: true,
			},
			&cli.StringFlag{
				Name:    "description",
				Aliases: []string{"d"},
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			client, err := r.Client(ctx)
			if err != nil {
				return err
			}
			target := types.Target{
				RepositoryName:  aws.String(cmd.String("repo")),
				SourceReference: aws.String(cmd.String("source")),
			}
			if d := cmd.String("destination"); d != "" {
				target.DestinationReference = aws.String(d)
			}
			req := (&codecommit.CreatePullRequestRequest{
				Title: aws.String(cmd.String("title")),
			}).WithTargets(target)
			if d := cmd.String("description"); d != "" {
				req.Description = aws.String(d)
			}

			out, err := client.CreatePullRequest(ctx, req)
			if err != nil {
				return err
			}
			if out.PullRequest != nil {
				logger.WithContext(ctx).Debug("pull request created",
					logger.Repository(cmd.String("repo")),
					logger.PullRequest(aws.ToString(out.PullRequest.PullRequestID)),
				)
			}
			return newPrinter(cmd).result(out)
		},
	}
}

func (r *CommandRegistry) prGet() *cli.Command {
	return &cli.Command{
		Name:  "get",
		Usage: "Show a pull request",
		Flags: []cli.Flag{pullRequestFlag()},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			client, err := r.Client(ctx)
			if err != nil {
				return err
			}
			out, err := client.GetPullRequest(ctx, &codecommit.GetPullRequestRequest{
				PullRequestID: aws.String(cmd.String("id")),
			})
			if err != nil {
				return err
			}
			return newPrinter(cmd).result(out)
		},
	}
}

func (r *CommandRegistry) prList() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List pull request ids of a repository",
		Flags: []cli.Flag{
			repoFlag(),
			&cli.StringFlag{
				Name:  "status",
				Usage: "OPEN or CLOSED",
			},
			&cli.StringFlag{
				Name:  "author",
				Usage: "Author ARN",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			client, err := r.Client(ctx)
			if err != nil {
				return err
			}
			req := &codecommit.ListPullRequestsRequest{RepositoryName: aws.String(cmd.String("repo"))}
			if s := cmd.String("status"); s != "" {
				if req.PullRequestStatus, err = types.ParsePullRequestStatusEnum(s); err != nil {
					return err
				}
			}
			if a := cmd.String("author"); a != "" {
				req.AuthorArn = aws.String(a)
			}

			all := &codecommit.ListPullRequestsResult{}
			p := codecommit.NewListPullRequestsPaginator(client, req)
			for p.HasMorePages() {
				page, err := p.NextPage(ctx)
				if err != nil {
					return err
				}
				all.PullRequestIDs = append(all.PullRequestIDs, page.PullRequestIDs...)
			}
			return newPrinter(cmd).list(all, all.PullRequestIDs)
		},
	}
}

func (r *CommandRegistry) prStatus() *cli.Command {
	return &cli.Command{
		Name:  "status",
		Usage: "Open or close a pull request",
		Flags: []cli.Flag{
			pullRequestFlag(),
			&cli.StringFlag{
				Name:     "status",
				Usage:    "OPEN or CLOSED",
				Required: true,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			status, err := types.ParsePullRequestStatusEnum(cmd.String("status"))
			if err != nil {
				return err
			}
			client, err := r.Client(ctx)
			if err != nil {
				return err
			}
			out, err := client.UpdatePullRequestStatus(ctx, &codecommit.UpdatePullRequestStatusRequest{
				PullRequestID:     aws.String(cmd.String("id")),
				PullRequestStatus: status,
			})
			if err != nil {
				return err
			}
			return newPrinter(cmd).result(out)
		},
	}
}

func (r *CommandRegistry) prApprove() *cli.Command {
	return &cli.Command{
		Name:  "approve",
		Usage: "Approve the current revision of a pull request",
		Flags: []cli.Flag{
			pullRequestFlag(),
			&cli.BoolFlag{
				Name:  "revoke",
				Usage: "Revoke an earlier approval instead",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			client, err := r.Client(ctx)
			if err != nil {
				return err
			}
			id := aws.String(cmd.String("id"))
			pr, err := client.GetPullRequest(ctx, &codecommit.GetPullRequestRequest{PullRequestID: id})
			if err != nil {
				return err
			}
			if pr.PullRequest == nil || pr.PullRequest.RevisionID == nil {
				return fmt.Errorf("pull request %s has no revision", *id)
			}

			state := types.ApprovalStateApprove
			if cmd.Bool("revoke") {
				state = types.ApprovalStateRevoke
			}
			err = client.UpdatePullRequestApprovalState(ctx, &codecommit.UpdatePullRequestApprovalStateRequest{
				PullRequestID: id,
				RevisionID:    pr.PullRequest.RevisionID,
				ApprovalState: state,
			})
			if err != nil {
				return err
			}
			return newPrinter(cmd).done(fmt.Sprintf("%s %s", state, *id))
		},
	}
}

func (r *CommandRegistry) prMerge() *cli.Command {
	return &cli.Command{
		Name:  "merge",
		Usage: "Merge a pull request",
		Flags: []cli.Flag{
			pullRequestFlag(),
			repoFlag(),
			&cli.StringFlag{
				Name:  "strategy",
				Usage: "FAST_FORWARD_MERGE, SQUASH_MERGE or THREE_WAY_MERGE",
				Value: string(types.MergeOptionTypeEnumFastForwardMerge),
			},
			&cli.StringFlag{
				Name:    "message",
				Aliases: []string{"m"},
				Usage:   "Commit message for squash and three-way merges",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			strategy, err := types.ParseMergeOptionTypeEnum(cmd.String("strategy"))
			if err != nil {
				return err
			}
			client, err := r.Client(ctx)
			if err != nil {
				return err
			}
			id := aws.String(cmd.String("id"))
			repo := aws.String(cmd.String("repo"))
			var message *string
			if m := cmd.String("message"); m != "" {
				message = aws.String(m)
			}

			var merged *types.PullRequest
			switch strategy {
			case types.MergeOptionTypeEnumFastForwardMerge:
				out, err := client.MergePullRequestByFastForward(ctx, &codecommit.MergePullRequestByFastForwardRequest{
					PullRequestID:  id,
					RepositoryName: repo,
				})
				if err != nil {
					return err
				}
				merged = out.PullRequest
			case types.MergeOptionTypeEnumSquashMerge:
				out, err := client.MergePullRequestBySquash(ctx, &codecommit.MergePullRequestBySquashRequest{
					PullRequestID:  id,
					RepositoryName: repo,
					CommitMessage:  message,
				})
				if err != nil {
					return err
				}
				merged = out.PullRequest
			case types.MergeOptionTypeEnumThreeWayMerge:
				out, err := client.MergePullRequestByThreeWay(ctx, &codecommit.MergePullRequestByThreeWayRequest{
					PullRequestID:  id,
					RepositoryName: repo,
					CommitMessage:  message,
				})
				if err != nil {
					return err
				}
				merged = out.PullRequest
			default:
				return errors.InvalidArgument("strategy", "unsupported merge strategy "+string(strategy))
			}

			if merged == nil {
				return newPrinter(cmd).done("merged " + *id)
			}
			return newPrinter(cmd).result(merged)
		},
	}
}
