// Document and document item commands for the cardbox CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cardboxhq/cardbox/pkg/types"
)

var (
	docTitle    string
	docDesc     string
	docContent  string
	docChildren string

	itemTitle     string
	itemContent   string
	itemChildren  string
	itemDirectory bool
	itemCardID    int64
	itemArticleID int64
)

var docCmd = &cobra.Command{
	Use:   "doc",
	Short: "Manage documents",
}

var docCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new document",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		backend, err := attachBackend()
		if err != nil {
			return err
		}
		defer backend.Detach()

		children, err := splitIDList(docChildren)
		if err != nil {
			return err
		}
		doc, err := backend.Documents().Create(&types.Document{
			Title:    docTitle,
			Desc:     docDesc,
			Content:  docContent,
			Children: children,
		})
		if err != nil {
			return fmt.Errorf("create document: %w", err)
		}
		return printResult(doc, func() {
			fmt.Printf("Created document %d: %s\n", doc.ID, doc.Title)
		})
	},
}

var docGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Get a document by id",
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

		doc, err := backend.Documents().Get(id)
		if err != nil {
			return fmt.Errorf("get document %d: %w", id, err)
		}
		return printResult(doc, func() {
			fmt.Printf("document %d: %s\n%s\nchildren: %v\n", doc.ID, doc.Title, doc.Desc, doc.Children)
		})
	},
}

var docListCmd = &cobra.Command{
	Use:   "list",
	Short: "List documents with their item counts",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		backend, err := attachBackend()
		if err != nil {
			return err
		}
		defer backend.Detach()

		docs, err := backend.Documents().ListWithCounts()
		if err != nil {
			return fmt.Errorf("list documents: %w", err)
		}
		return printResult(docs, func() {
			for _, d := range docs {
				fmt.Printf("%d\t%s\t%d items\n", d.Document.ID, d.Document.Title, d.Count)
			}
		})
	},
}

var docUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a document",
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

		doc, err := backend.Documents().Get(id)
		if err != nil {
			return fmt.Errorf("get document %d: %w", id, err)
		}
		if cmd.Flags().Changed("title") {
			doc.Title = docTitle
		}
		if cmd.Flags().Changed("desc") {
			doc.Desc = docDesc
		}
		if cmd.Flags().Changed("content") {
			doc.Content = docContent
		}
		if cmd.Flags().Changed("children") {
			if doc.Children, err = splitIDList(docChildren); err != nil {
				return err
			}
		}
		doc, err = backend.Documents().Update(doc)
		if err != nil {
			return fmt.Errorf("update document %d: %w", id, err)
		}
		return printResult(doc, func() {
			fmt.Printf("Updated document %d\n", doc.ID)
		})
	},
}

var docDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a document",
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

		n, err := backend.Documents().Delete(id)
		if err != nil {
			return fmt.Errorf("delete document %d: %w", id, err)
		}
		fmt.Printf("Deleted %d document(s)\n", n)
		return nil
	},
}

var itemCmd = &cobra.Command{
	Use:   "item",
	Short: "Manage document items",
}

var itemCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new document item",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		backend, err := attachBackend()
		if err != nil {
			return err
		}
		defer backend.Detach()

		children, err := splitIDList(itemChildren)
		if err != nil {
			return err
		}
		item := &types.DocumentItem{
			Title:       itemTitle,
			Content:     itemContent,
			Children:    children,
			IsDirectory: itemDirectory,
		}
		if itemCardID > 0 {
			item.IsCard = true
			item.CardID = itemCardID
			card, err := backend.Cards().Get(itemCardID)
			if err != nil {
				return fmt.Errorf("get card %d: %w", itemCardID, err)
			}
			item.Content = card.Content
		}
		if itemArticleID > 0 {
			item.IsArticle = true
			item.ArticleID = itemArticleID
			article, err := backend.Articles().Get(itemArticleID)
			if err != nil {
				return fmt.Errorf("get article %d: %w", itemArticleID, err)
			}
			item.Title = article.Title
			item.Content = article.Content
		}
		item, err = backend.DocumentItems().Create(item)
		if err != nil {
			return fmt.Errorf("create document item: %w", err)
		}
		return printResult(item, func() {
			fmt.Printf("Created document item %d: %s\n", item.ID, item.Title)
		})
	},
}

var itemGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Get a document item by id",
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

		item, err := backend.DocumentItems().Get(id)
		if err != nil {
			return fmt.Errorf("get document item %d: %w", id, err)
		}
		return printResult(item, func() {
			fmt.Printf("item %d: %s\nchildren: %v\nparents: %v\n%s\n",
				item.ID, item.Title, item.Children, item.Parents, item.Content)
		})
	},
}

var itemListCmd = &cobra.Command{
	Use:   "list",
	Short: "List document items",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		backend, err := attachBackend()
		if err != nil {
			return err
		}
		defer backend.Detach()

		items, err := backend.DocumentItems().List()
		if err != nil {
			return fmt.Errorf("list document items: %w", err)
		}
		return printResult(items, func() {
			for _, item := range items {
				fmt.Printf("%d\t%s\n", item.ID, item.Title)
			}
		})
	},
}

var itemUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a document item",
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

		item, err := backend.DocumentItems().Get(id)
		if err != nil {
			return fmt.Errorf("get document item %d: %w", id, err)
		}
		if cmd.Flags().Changed("title") {
			item.Title = itemTitle
		}
		if cmd.Flags().Changed("content") {
			item.Content = itemContent
		}
		if cmd.Flags().Changed("children") {
			if item.Children, err = splitIDList(itemChildren); err != nil {
				return err
			}
		}
		item, err = backend.DocumentItems().Update(item)
		if err != nil {
			return fmt.Errorf("update document item %d: %w", id, err)
		}
		return printResult(item, func() {
			fmt.Printf("Updated document item %d\n", item.ID)
		})
	},
}

var itemDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a document item",
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

		n, err := backend.DocumentItems().Delete(id)
		if err != nil {
			return fmt.Errorf("delete document item %d: %w", id, err)
		}
		fmt.Printf("Deleted %d item(s)\n", n)
		return nil
	},
}

var itemParentsCmd = &cobra.Command{
	Use:   "parents",
	Short: "Rebuild the parents cache for all items",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		backend, err := attachBackend()
		if err != nil {
			return err
		}
		defer backend.Detach()

		changed, err := backend.DocumentItems().RecomputeAllParents()
		if err != nil {
			return fmt.Errorf("recompute parents: %w", err)
		}
		fmt.Printf("Updated parents for %d item(s)\n", changed)
		return nil
	},
}

var itemAncestorsCmd = &cobra.Command{
	Use:   "ancestors <id>",
	Short: "List all ancestors of an item, nearest first",
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

		ancestors, err := backend.DocumentItems().AllAncestors(id)
		if err != nil {
			return fmt.Errorf("ancestors of item %d: %w", id, err)
		}
		return printResult(ancestors, func() {
			for _, a := range ancestors {
				fmt.Println(a)
			}
		})
	},
}

var itemChildOfCmd = &cobra.Command{
	Use:   "child-of <child-id> <ancestor-id>",
	Short: "Check whether an item sits below another",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		childID, err := parseID(args[0])
		if err != nil {
			return err
		}
		ancestorID, err := parseID(args[1])
		if err != nil {
			return err
		}
		backend, err := attachBackend()
		if err != nil {
			return err
		}
		defer backend.Detach()

		ok, err := backend.DocumentItems().IsDescendantOf(childID, ancestorID)
		if err != nil {
			return fmt.Errorf("checking descent: %w", err)
		}
		fmt.Println(ok)
		return nil
	},
}

func init() {
	for _, cmd := range []*cobra.Command{docCreateCmd, docUpdateCmd} {
		cmd.Flags().StringVar(&docTitle, "title", "", "document title")
		cmd.Flags().StringVar(&docDesc, "desc", "", "document description")
		cmd.Flags().StringVar(&docContent, "content", "", "document content")
		cmd.Flags().StringVar(&docChildren, "children", "", "comma-separated item ids")
	}
	docCmd.AddCommand(docCreateCmd)
	docCmd.AddCommand(docGetCmd)
	docCmd.AddCommand(docListCmd)
	docCmd.AddCommand(docUpdateCmd)
	docCmd.AddCommand(docDeleteCmd)

	for _, cmd := range []*cobra.Command{itemCreateCmd, itemUpdateCmd} {
		cmd.Flags().StringVar(&itemTitle, "title", "", "item title")
		cmd.Flags().StringVar(&itemContent, "content", "", "item content")
		cmd.Flags().StringVar(&itemChildren, "children", "", "comma-separated child item ids")
	}
	itemCreateCmd.Flags().BoolVar(&itemDirectory, "directory", false, "create a directory item")
	itemCreateCmd.Flags().Int64Var(&itemCardID, "card", 0, "wrap an existing card")
	itemCreateCmd.Flags().Int64Var(&itemArticleID, "article", 0, "wrap an existing article")

	itemCmd.AddCommand(itemCreateCmd)
	itemCmd.AddCommand(itemGetCmd)
	itemCmd.AddCommand(itemListCmd)
	itemCmd.AddCommand(itemUpdateCmd)
	itemCmd.AddCommand(itemDeleteCmd)
	itemCmd.AddCommand(itemParentsCmd)
	itemCmd.AddCommand(itemAncestorsCmd)
	itemCmd.AddCommand(itemChildOfCmd)
}
