package commands

import (
	"context"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/urfave/cli/v3"

	"github.com/bravo68web/codecommit/pkg/codecommit"
)

func (r *CommandRegistry) TemplateCommands() *cli.Command {
	return &cli.Command{
		Name:  "template",
		Usage: "Manage approval rule templates",
		Commands: []*cli.Command{
			r.templateCreate(),
			r.templateGet(),
			r.templateList(),
			r.templateAssociate(),
			r.templateRepos(),
			r.templateDelete(),
		},
	}
}

func templateNameFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:     "name",
		Aliases:  []string{"n"},
		Usage:    "Template name",
		Required: true,
	}
}

func (r *CommandRegistry) templateCreate() *cli.Command {
	return &cli.Command{
		Name:  "create",
		Usage: "Create an approval rule template",
		Flags: []cli.Flag{
			templateNameFlag(),
			&cli.StringFlag{
				Name:     "content-file",
				Usage:    "Local JSON file holding the rule content",
				Required: true,
			},
			&cli.StringFlag{
				Name:    "description",
				Aliases: []string{"d"},
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			content, err := os.ReadFile(cmd.String("content-file"))
			if err != nil {
				return err
			}
			client, err := r.Client(ctx)
			if err != nil {
				return err
			}
			req := &codecommit.CreateApprovalRuleTemplateRequest{
				ApprovalRuleTemplateName:    aws.String(cmd.String("name")),
				ApprovalRuleTemplateContent: aws.String(string(content)),
			}
			if d := cmd.String("description"); d != "" {
				req.ApprovalRuleTemplateDescription = aws.String(d)
			}
			out, err := client.CreateApprovalRuleTemplate(ctx, req)
			if err != nil {
				return err
			}
			return newPrinter(cmd).result(out)
		},
	}
}

func (r *CommandRegistry) templateGet() *cli.Command {
	return &cli.Command{
		Name:  "get",
		Usage: "Show an approval rule template",
		Flags: []cli.Flag{templateNameFlag()},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			client, err := r.Client(ctx)
			if err != nil {
				return err
			}
			out, err := client.GetApprovalRuleTemplate(ctx, &codecommit.GetApprovalRuleTemplateRequest{
				ApprovalRuleTemplateName: aws.String(cmd.String("name")),
			})
			if err != nil {
				return err
			}
			return newPrinter(cmd).result(out)
		},
	}
}

func (r *CommandRegistry) templateList() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List approval rule templates",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			client, err := r.Client(ctx)
			if err != nil {
				return err
			}
			all := &codecommit.ListApprovalRuleTemplatesResult{}
			p := codecommit.NewListApprovalRuleTemplatesPaginator(client, &codecommit.ListApprovalRuleTemplatesRequest{})
			for p.HasMorePages() {
				page, err := p.NextPage(ctx)
				if err != nil {
					return err
				}
				all.ApprovalRuleTemplateNames = append(all.ApprovalRuleTemplateNames, page.ApprovalRuleTemplateNames...)
			}
			return newPrinter(cmd).list(all, all.ApprovalRuleTemplateNames)
		},
	}
}

func (r *CommandRegistry) templateAssociate() *cli.Command {
	return &cli.Command{
		Name:  "associate",
		Usage: "Apply a template to repositories",
		Flags: []cli.Flag{
			templateNameFlag(),
			&cli.StringSliceFlag{
				Name:     "repo",
				Aliases:  []string{"r"},
				Usage:    "Repository name, repeatable",
				Required: true,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			client, err := r.Client(ctx)
			if err != nil {
				return err
			}
			req := (&codecommit.BatchAssociateApprovalRuleTemplateWithRepositoriesRequest{
				ApprovalRuleTemplateName: aws.String(cmd.String("name")),
			}).WithRepositoryNames(cmd.StringSlice("repo")...)
			out, err := client.BatchAssociateApprovalRuleTemplateWithRepositories(ctx, req)
			if err != nil {
				return err
			}
			return newPrinter(cmd).result(out)
		},
	}
}

func (r *CommandRegistry) templateRepos() *cli.Command {
	return &cli.Command{
		Name:  "repos",
		Usage: "List repositories a template applies to",
		Flags: []cli.Flag{templateNameFlag()},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			client, err := r.Client(ctx)
			if err != nil {
				return err
			}
			all := &codecommit.ListRepositoriesForApprovalRuleTemplateResult{}
			p := codecommit.NewListRepositoriesForApprovalRuleTemplatePaginator(client, &codecommit.ListRepositoriesForApprovalRuleTemplateRequest{
				ApprovalRuleTemplateName: aws.String(cmd.String("name")),
			})
			for p.HasMorePages() {
				page, err := p.NextPage(ctx)
				if err != nil {
					return err
				}
				all.RepositoryNames = append(all.RepositoryNames, page.RepositoryNames...)
			}
			return newPrinter(cmd).list(all, all.RepositoryNames)
		},
	}
}

func (r *CommandRegistry) templateDelete() *cli.Command {
	return &cli.Command{
		Name:  "delete",
		Usage: "Delete an approval rule template",
		Flags: []cli.Flag{templateNameFlag()},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			client, err := r.Client(ctx)
			if err != nil {
				return err
			}
			out, err := client.DeleteApprovalRuleTemplate(ctx, &codecommit.DeleteApprovalRuleTemplateRequest{
				ApprovalRuleTemplateName: aws.String(cmd.String("name")),
			})
			if err != nil {
				return err
			}
			return newPrinter(cmd).result(out)
		},
	}
}
