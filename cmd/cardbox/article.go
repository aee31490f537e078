// Article commands for the cardbox CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cardboxhq/cardbox/pkg/types"
)

var (
	articleTitle   string
	articleAuthor  string
	articleContent string
	articleTags    string
	articleBanner  string
)

var articleCmd = &cobra.Command{
	Use:   "article",
	Short: "Manage articles",
}

var articleCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new article",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		backend, err := attachBackend()
		if err != nil {
			return err
		}
		defer backend.Detach()

		article, err := backend.Articles().Create(&types.Article{
			Title:   articleTitle,
			Author:  articleAuthor,
			Content: articleContent,
			Tags:    splitList(articleTags),
		})
		if err != nil {
			return fmt.Errorf("create article: %w", err)
		}
		return printResult(article, func() {
			fmt.Printf("Created article %d: %s\n", article.ID, article.Title)
		})
	},
}

var articleGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Get an article by id",
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

		article, err := backend.Articles().Get(id)
		if err != nil {
			return fmt.Errorf("get article %d: %w", id, err)
		}
		return printResult(article, func() {
			fmt.Printf("article %d: %s (%s)\n%s\n", article.ID, article.Title, article.Author, article.Content)
		})
	},
}

var articleListCmd = &cobra.Command{
	Use:   "list",
	Short: "List articles, pinned first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		backend, err := attachBackend()
		if err != nil {
			return err
		}
		defer backend.Detach()

		articles, err := backend.Articles().List()
		if err != nil {
			return fmt.Errorf("list articles: %w", err)
		}
		return printResult(articles, func() {
			for _, a := range articles {
				pin := " "
				if a.IsTop {
					pin = "*"
				}
				fmt.Printf("%s %d\t%s\n", pin, a.ID, a.Title)
			}
		})
	},
}

var articleUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update an article",
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

		article, err := backend.Articles().Get(id)
		if err != nil {
			return fmt.Errorf("get article %d: %w", id, err)
		}
		if cmd.Flags().Changed("title") {
			article.Title = articleTitle
		}
		if cmd.Flags().Changed("author") {
			article.Author = articleAuthor
		}
		if cmd.Flags().Changed("content") {
			article.Content = articleContent
		}
		if cmd.Flags().Changed("tags") {
			article.Tags = splitList(articleTags)
		}
		article, err = backend.Articles().Update(article)
		if err != nil {
			return fmt.Errorf("update article %d: %w", id, err)
		}
		return printResult(article, func() {
			fmt.Printf("Updated article %d\n", article.ID)
		})
	},
}

var articleDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an article",
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

		n, err := backend.Articles().Delete(id)
		if err != nil {
			return fmt.Errorf("delete article %d: %w", id, err)
		}
		fmt.Printf("Deleted %d article(s)\n", n)
		return nil
	},
}

var articleSetBannerCmd = &cobra.Command{
	Use:   "set-banner <id>",
	Short: "Set the article banner image",
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

		if err := backend.Articles().UpdateBannerBg(id, articleBanner); err != nil {
			return fmt.Errorf("set banner for article %d: %w", id, err)
		}
		fmt.Printf("Updated article %d\n", id)
		return nil
	},
}

var articleSetTopCmd = &cobra.Command{
	Use:   "set-top <id> <true|false>",
	Short: "Pin or unpin the article",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		isTop := args[1] == "true"
		backend, err := attachBackend()
		if err != nil {
			return err
		}
		defer backend.Detach()

		if err := backend.Articles().UpdateIsTop(id, isTop); err != nil {
			return fmt.Errorf("set top for article %d: %w", id, err)
		}
		fmt.Printf("Updated article %d\n", id)
		return nil
	},
}

func init() {
	for _, cmd := range []*cobra.Command{articleCreateCmd, articleUpdateCmd} {
		cmd.Flags().StringVar(&articleTitle, "title", "", "article title")
		cmd.Flags().StringVar(&articleAuthor, "author", "", "article author")
		cmd.Flags().StringVar(&articleContent, "content", "", "article content")
		cmd.Flags().StringVar(&articleTags, "tags", "", "comma-separated tags")
	}
	articleSetBannerCmd.Flags().StringVar(&articleBanner, "banner", "", "banner image path or URL")

	articleCmd.AddCommand(articleCreateCmd)
	articleCmd.AddCommand(articleGetCmd)
	articleCmd.AddCommand(articleListCmd)
	articleCmd.AddCommand(articleUpdateCmd)
	articleCmd.AddCommand(articleDeleteCmd)
	articleCmd.AddCommand(articleSetBannerCmd)
	articleCmd.AddCommand(articleSetTopCmd)
}
