package commands

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/urfave/cli/v3"

	"github.com/bravo68web/codecommit/pkg/codecommit"
)

func (r *CommandRegistry) CommentCommands() *cli.Command {
	return &cli.Command{
		Name:  "comment",
		Usage: "Comment on pull requests",
		Commands: []*cli.Command{
			r.commentPost(),
			r.commentReply(),
			r.commentList(),
		},
	}
}

func (r *CommandRegistry) commentPost() *cli.Command {
	return &cli.Command{
		Name:  "post",
		Usage: "Post a general comment on a pull request",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "pr", Usage: "Pull request id", Required: true},
			repoFlag(),
			&cli.StringFlag{Name: "before", Usage: "Destination commit of the comparison", Required: true},
			&cli.StringFlag{Name: "after", Usage: "Source commit of the comparison", Required: true},
			&cli.StringFlag{Name: "content", Usage: "Comment text", Required: true},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			client, err := r.Client(ctx)
			if err != nil {
				return err
			}
			out, err := client.PostCommentForPullRequest(ctx, &codecommit.PostCommentForPullRequestRequest{
				PullRequestID:  aws.String(cmd.String("pr")),
				RepositoryName: aws.String(cmd.String("repo")),
				BeforeCommitID: aws.String(cmd.String("before")),
				AfterCommitID:  aws.String(cmd.String("after")),
				Content:        aws.String(cmd.String("content")),
			})
			if err != nil {
				return err
			}
			return newPrinter(cmd).result(out)
		},
	}
}

func (r *CommandRegistry) commentReply() *cli.Command {
	return &cli.Command{
		Name:  "reply",
		Usage: "Reply to a comment",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "to", Usage: "Comment id to reply to", Required: true},
			&cli.StringFlag{Name: "content", Usage: "Reply text", Required: true},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			client, err := r.Client(ctx)
			if err != nil {
				return err
			}
			out, err := client.PostCommentReply(ctx, &codecommit.PostCommentReplyRequest{
				InReplyTo: aws.String(cmd.String("to")),
				Content:   aws.String(cmd.String("content")),
			})
			if err != nil {
				return err
			}
			return newPrinter(cmd).result(out)
		},
	}
}

func (r *CommandRegistry) commentList() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List the comments of a pull request",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "pr", Usage: "Pull request id", Required: true},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			client, err := r.Client(ctx)
			if err != nil {
				return err
			}

			all := &codecommit.GetCommentsForPullRequestResult{}
			var lines []string
			p := codecommit.NewGetCommentsForPullRequestPaginator(client, &codecommit.GetCommentsForPullRequestRequest{
				PullRequestID: aws.String(cmd.String("pr")),
			})
			for p.HasMorePages() {
				page, err := p.NextPage(ctx)
				if err != nil {
					return err
				}
				all.CommentsForPullRequestData = append(all.CommentsForPullRequestData, page.CommentsForPullRequestData...)
				for _, data := range page.CommentsForPullRequestData {
					for _, c := range data.Comments {
						lines = append(lines, fmt.Sprintf("%s\t%s", aws.ToString(c.CommentID), aws.ToString(c.Content)))
					}
				}
			}
			return newPrinter(cmd).list(all, lines)
		},
	}
}
