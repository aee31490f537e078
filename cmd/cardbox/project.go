// Project and project item commands for the cardbox CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cardboxhq/cardbox/pkg/types"
)

var (
	projectTitle string
	projectDesc  string

	pitemTitle    string
	pitemContent  string
	pitemProjects string
	pitemCardID   int64
	pitemArtID    int64
)

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Manage projects",
}

var projectCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new project",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		backend, err := attachBackend()
		if err != nil {
			return err
		}
		defer backend.Detach()

		project, err := backend.Projects().Create(&types.Project{
			Title: projectTitle,
			Desc:  projectDesc,
		})
		if err != nil {
			return fmt.Errorf("create project: %w", err)
		}
		return printResult(project, func() {
			fmt.Printf("Created project %d: %s\n", project.ID, project.Title)
		})
	},
}

var projectGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Get a project by id",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		backend, err := attachBackend()
		if err != nil {
			return err
		}
		defer backend.Detach()

		project, err := backend.Projects().Get(id)
		if err != nil {
			return fmt.Errorf("get project %d: %w", id, err)
		}
		count, err := backend.ProjectItems().CountInProject(id)
		if err != nil {
			return fmt.Errorf("count items in project %d: %w", id, err)
		}
		return printResult(project, func() {
			fmt.Printf("project %d: %s\n%s\n%d item(s)\n", project.ID, project.Title, project.Desc, count)
		})
	},
}

var projectListCmd = &cobra.Command{
	Use:   "list",
	Short: "List projects",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		backend, err := attachBackend()
		if err != nil {
			return err
		}
		defer backend.Detach()

		projects, err := backend.Projects().List()
		if err != nil {
			return fmt.Errorf("list projects: %w", err)
		}
		return printResult(projects, func() {
			for _, p := range projects {
				fmt.Printf("%d\t%s\n", p.ID, p.Title)
			}
		})
	},
}

var projectUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a project",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		backend, err := attachBackend()
		if err != nil {
			return err
		}
		defer backend.Detach()

		project, err := backend.Projects().Get(id)
		if err != nil {
			return fmt.Errorf("get project %d: %w", id, err)
		}
		if cmd.Flags().Changed("title") {
			project.Title = projectTitle
		}
		if cmd.Flags().Changed("desc") {
			project.Desc = projectDesc
		}
		project, err = backend.Projects().Update(project)
		if err != nil {
			return fmt.Errorf("update project %d: %w", id, err)
		}
		return printResult(project, func() {
			fmt.Printf("Updated project %d\n", project.ID)
		})
	},
}

var projectDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a project and prune its stale items",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		backend, err := attachBackend()
		if err != nil {
			return err
		}
		defer backend.Detach()

		n, err := backend.Projects().Delete(id)
		if err != nil {
			return fmt.Errorf("delete project %d: %w", id, err)
		}
		fmt.Printf("Deleted %d project(s)\n", n)
		return nil
	},
}

var pitemCmd = &cobra.Command{
	Use:   "item",
	Short: "Manage project items",
}

var pitemCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new project item",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		backend, err := attachBackend()
		if err != nil {
			return err
		}
		defer backend.Detach()

		projects, err := splitIDList(pitemProjects)
		if err != nil {
			return err
		}
		item := &types.ProjectItem{
			Title:    pitemTitle,
			Content:  pitemContent,
			Projects: projects,
		}
		if pitemCardID > 0 {
			card, err := backend.Cards().Get(pitemCardID)
			if err != nil {
				return fmt.Errorf("get card %d: %w", pitemCardID, err)
			}
			item.RefType = types.RefTypeCard
			item.RefID = pitemCardID
			item.Content = card.Content
		}
		if pitemArtID > 0 {
			article, err := backend.Articles().Get(pitemArtID)
			if err != nil {
				return fmt.Errorf("get article %d: %w", pitemArtID, err)
			}
			item.RefType = types.RefTypeArticle
			item.RefID = pitemArtID
			item.Title = article.Title
			item.Content = article.Content
		}
		item, err = backend.ProjectItems().Create(item)
		if err != nil {
			return fmt.Errorf("create project item: %w", err)
		}
		return printResult(item, func() {
			fmt.Printf("Created project item %d: %s\n", item.ID, item.Title)
		})
	},
}

var pitemGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Get a project item by id",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		backend, err := attachBackend()
		if err != nil {
			return err
		}
		defer backend.Detach()

		item, err := backend.ProjectItems().Get(id)
		if err != nil {
			return fmt.Errorf("get project item %d: %w", id, err)
		}
		return printResult(item, func() {
			fmt.Printf("item %d: %s\nprojects: %v\n%s\n", item.ID, item.Title, item.Projects, item.Content)
		})
	},
}

var pitemListCmd = &cobra.Command{
	Use:   "list",
	Short: "List project items",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		backend, err := attachBackend()
		if err != nil {
			return err
		}
		defer backend.Detach()

		items, err := backend.ProjectItems().List()
		if err != nil {
			return fmt.Errorf("list project items: %w", err)
		}
		return printResult(items, func() {
			for _, item := range items {
				fmt.Printf("%d\t%s\n", item.ID, item.Title)
			}
		})
	},
}

var pitemUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a project item",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		backend, err := attachBackend()
		if err != nil {
			return err
		}
		defer backend.Detach()

		item, err := backend.ProjectItems().Get(id)
		if err != nil {
			return fmt.Errorf("get project item %d: %w", id, err)
		}
		if cmd.Flags().Changed("title") {
			item.Title = pitemTitle
		}
		if cmd.Flags().Changed("content") {
			item.Content = pitemContent
		}
		if cmd.Flags().Changed("projects") {
			if item.Projects, err = splitIDList(pitemProjects); err != nil {
				return err
			}
		}
		item, err = backend.ProjectItems().Update(item)
		if err != nil {
			return fmt.Errorf("update project item %d: %w", id, err)
		}
		return printResult(item, func() {
			fmt.Printf("Updated project item %d\n", item.ID)
		})
	},
}

var pitemDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a project item",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		backend, err := attachBackend()
		if err != nil {
			return err
		}
		defer backend.Detach()

		n, err := backend.ProjectItems().Delete(id)
		if err != nil {
			return fmt.Errorf("delete project item %d: %w", id, err)
		}
		fmt.Printf("Deleted %d item(s)\n", n)
		return nil
	},
}

var pitemPruneCmd = &cobra.Command{
	Use:   "prune [project-id]",
	Short: "Delete orphaned items, or items stale in one project",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		backend, err := attachBackend()
		if err != nil {
			return err
		}
		defer backend.Detach()

		var n int64
		if len(args) == 1 {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if n, err = backend.ProjectItems().DeleteItemsNotInProject(id); err != nil {
				return fmt.Errorf("prune project %d: %w", id, err)
			}
		} else {
			if n, err = backend.ProjectItems().DeleteOrphans(); err != nil {
				return fmt.Errorf("prune orphans: %w", err)
			}
		}
		fmt.Printf("Pruned %d item(s)\n", n)
		return nil
	},
}

func init() {
	for _, cmd := range []*cobra.Command{projectCreateCmd, projectUpdateCmd} {
		cmd.Flags().StringVar(&projectTitle, "title", "", "project title")
		cmd.Flags().StringVar(&projectDesc, "desc", "", "project description")
	}
	projectCmd.AddCommand(projectCreateCmd)
	projectCmd.AddCommand(projectGetCmd)
	projectCmd.AddCommand(projectListCmd)
	projectCmd.AddCommand(projectUpdateCmd)
	projectCmd.AddCommand(projectDeleteCmd)
	projectCmd.AddCommand(pitemCmd)

	for _, cmd := range []*cobra.Command{pitemCreateCmd, pitemUpdateCmd} {
		cmd.Flags().StringVar(&pitemTitle, "title", "", "item title")
		cmd.Flags().StringVar(&pitemContent, "content", "", "item content")
		cmd.Flags().StringVar(&pitemProjects, "projects", "", "comma-separated project ids")
	}
	pitemCreateCmd.Flags().Int64Var(&pitemCardID, "card", 0, "reference an existing card")
	pitemCreateCmd.Flags().Int64Var(&pitemArtID, "article", 0, "reference an existing article")

	pitemCmd.AddCommand(pitemCreateCmd)
	pitemCmd.AddCommand(pitemGetCmd)
	pitemCmd.AddCommand(pitemListCmd)
	pitemCmd.AddCommand(pitemUpdateCmd)
	pitemCmd.AddCommand(pitemDeleteCmd)
	pitemCmd.AddCommand(pitemPruneCmd)
}
