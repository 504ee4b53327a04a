package commands

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/urfave/cli/v3"

	"github.com/bravo68web/codecommit/pkg/codecommit"
	"github.com/bravo68web/codecommit/pkg/codecommit/types"
)

func (r *CommandRegistry) RepoCommands() *cli.Command {
	return &cli.Command{
		Name:  "repo",
		Usage: "Manage repositories",
		Commands: []*cli.Command{
			r.repoCreate(),
			r.repoGet(),
			r.repoList(),
			r.repoDelete(),
			r.repoDescribe(),
			r.repoRename(),
			r.repoTag(),
			r.repoTags(),
		},
	}
}

func repoNameFlag(usage string) *cli.StringFlag {
	return &cli.StringFlag{
		Name:     "name",
		Aliases:  []string{"n"},
		Usage:    usage,
		Required: true,
	}
}

func (r *CommandRegistry) repoCreate() *cli.Command {
	return &cli.Command{
		Name:  "create",
		Usage: "Create a repository",
		Flags: []cli.Flag{
			repoNameFlag("Name of the repository"),
			&cli.StringFlag{
				Name:    "description",
				Aliases: []string{"d"},
				Usage:   "Description of the repository",
			},
			&cli.StringMapFlag{
				Name:  "tag",
				Usage: "Tag as key=value, repeatable",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			client, err := r.Client(ctx)
			if err != nil {
				return err
			}
			req := &codecommit.CreateRepositoryRequest{RepositoryName: aws.String(cmd.String("name"))}
			if d := cmd.String("description"); d != "" {
				req.RepositoryDescription = aws.String(d)
			}
			if tags := cmd.StringMap("tag"); len(tags) > 0 {
				req.WithTags(tags)
			}
			out, err := client.CreateRepository(ctx, req)
			if err != nil {
				return err
			}
			return newPrinter(cmd).result(out)
		},
	}
}

func (r *CommandRegistry) repoGet() *cli.Command {
	return &cli.Command{
		Name:  "get",
		Usage: "Show repository metadata",
		Flags: []cli.Flag{repoNameFlag("Name of the repository")},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			client, err := r.Client(ctx)
			if err != nil {
				return err
			}
			out, err := client.GetRepository(ctx, &codecommit.GetRepositoryRequest{
				RepositoryName: aws.String(cmd.String("name")),
			})
			if err != nil {
				return err
			}
			return newPrinter(cmd).result(out)
		},
	}
}

func (r *CommandRegistry) repoList() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List repositories",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "sort-by",
				Usage: "repositoryName or lastModifiedDate",
			},
			&cli.StringFlag{
				Name:  "order",
				Usage: "ascending or descending",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			client, err := r.Client(ctx)
			if err != nil {
				return err
			}

			req := &codecommit.ListRepositoriesRequest{}
			if s := cmd.String("sort-by"); s != "" {
				if req.SortBy, err = types.ParseSortByEnum(s); err != nil {
					return err
				}
			}
			if o := cmd.String("order"); o != "" {
				if req.Order, err = types.ParseOrderEnum(o); err != nil {
					return err
				}
			}

			all := &codecommit.ListRepositoriesResult{}
			var lines []string
			p := codecommit.NewListRepositoriesPaginator(client, req)
			for p.HasMorePages() {
				page, err := p.NextPage(ctx)
				if err != nil {
					return err
				}
				for _, repo := range page.Repositories {
					all.Repositories = append(all.Repositories, repo)
					lines = append(lines, fmt.Sprintf("%s\t%s", aws.ToString(repo.RepositoryName), aws.ToString(repo.RepositoryID)))
				}
			}
			return newPrinter(cmd).list(all, lines)
		},
	}
}

func (r *CommandRegistry) repoDelete() *cli.Command {
	return &cli.Command{
		Name:  "delete",
		Usage: "Delete a repository",
		Flags: []cli.Flag{repoNameFlag("Name of the repository to delete")},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			client, err := r.Client(ctx)
			if err != nil {
				return err
			}
			out, err := client.DeleteRepository(ctx, &codecommit.DeleteRepositoryRequest{
				RepositoryName: aws.String(cmd.String("name")),
			})
			if err != nil {
				return err
			}
			return newPrinter(cmd).result(out)
		},
	}
}

func (r *CommandRegistry) repoDescribe() *cli.Command {
	return &cli.Command{
		Name:  "describe",
		Usage: "Set a repository description",
		Flags: []cli.Flag{
			repoNameFlag("Name of the repository"),
			&cli.StringFlag{
				Name:     "description",
				Aliases:  []string{"d"},
				Usage:    "New description",
				Required: true,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			client, err := r.Client(ctx)
			if err != nil {
				return err
			}
			err = client.UpdateRepositoryDescription(ctx, &codecommit.UpdateRepositoryDescriptionRequest{
				RepositoryName:        aws.String(cmd.String("name")),
				RepositoryDescription: aws.String(cmd.String("description")),
			})
			if err != nil {
				return err
			}
			return newPrinter(cmd).done("description updated")
		},
	}
}

func (r *CommandRegistry) repoRename() *cli.Command {
	return &cli.Command{
		Name:  "rename",
		Usage: "Rename a repository",
		Flags: []cli.Flag{
			repoNameFlag("Current name of the repository"),
			&cli.StringFlag{
				Name:     "to",
				Usage:    "New name",
				Required: true,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			client, err := r.Client(ctx)
			if err != nil {
				return err
			}
			err = client.UpdateRepositoryName(ctx, &codecommit.UpdateRepositoryNameRequest{
				OldName: aws.String(cmd.String("name")),
				NewName: aws.String(cmd.String("to")),
			})
			if err != nil {
				return err
			}
			return newPrinter(cmd).done("renamed to " + cmd.String("to"))
		},
	}
}

func (r *CommandRegistry) repoTag() *cli.Command {
	return &cli.Command{
		Name:  "tag",
		Usage: "Add tags to a repository",
		Flags: []cli.Flag{
			repoNameFlag("Name of the repository"),
			&cli.StringMapFlag{
				Name:     "tag",
				Usage:    "Tag as key=value, repeatable",
				Required: true,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			client, err := r.Client(ctx)
			if err != nil {
				return err
			}
			arn, err := repositoryArn(ctx, client, cmd.String("name"))
			if err != nil {
				return err
			}
			req := (&codecommit.TagResourceRequest{ResourceArn: arn}).WithTags(cmd.StringMap("tag"))
			if err := client.TagResource(ctx, req); err != nil {
				return err
			}
			return newPrinter(cmd).done("tagged " + cmd.String("name"))
		},
	}
}

func (r *CommandRegistry) repoTags() *cli.Command {
	return &cli.Command{
		Name:  "tags",
		Usage: "List the tags of a repository",
		Flags: []cli.Flag{repoNameFlag("Name of the repository")},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			client, err := r.Client(ctx)
			if err != nil {
				return err
			}
			arn, err := repositoryArn(ctx, client, cmd.String("name"))
			if err != nil {
				return err
			}

			all := &codecommit.ListTagsForResourceResult{Tags: map[string]string{}}
			p := codecommit.NewListTagsForResourcePaginator(client, &codecommit.ListTagsForResourceRequest{ResourceArn: arn})
			for p.HasMorePages() {
				page, err := p.NextPage(ctx)
				if err != nil {
					return err
				}
				for k, v := range page.Tags {
					all.Tags[k] = v
				}
			}

			var lines []string
			for _, k := range sortedKeys(all.Tags) {
				lines = append(lines, k+"="+all.Tags[k])
			}
			return newPrinter(cmd).list(all, lines)
		},
	}
}

func repositoryArn(ctx context.Context, client *codecommit.Client, name string) (*string, error) {
	out, err := client.GetRepository(ctx, &codecommit.GetRepositoryRequest{RepositoryName: aws.String(name)})
	if err != nil {
		return nil, err
	}
	if out.RepositoryMetadata == nil || out.RepositoryMetadata.Arn == nil {
		return nil, fmt.Errorf("repository %s has no ARN", name)
	}
	return out.RepositoryMetadata.Arn, nil
}
