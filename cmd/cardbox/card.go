// Card commands for the cardbox CLI.
package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/cardboxhq/cardbox/pkg/types"
)

var (
	cardContent  string
	cardTags     string
	cardLinks    string
	cardCategory string
)

var cardCmd = &cobra.Command{
	Use:   "card",
	Short: "Manage cards",
}

var cardCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new card",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		backend, err := attachBackend()
		if err != nil {
			return err
		}
		defer backend.Detach()

		links, err := splitIDList(cardLinks)
		if err != nil {
			return err
		}
		card, err := backend.Cards().Create(&types.Card{
			Content:  cardContent,
			Tags:     splitList(cardTags),
			Links:    links,
			Category: cardCategory,
		})
		if err != nil {
			return fmt.Errorf("create card: %w", err)
		}
		return printResult(card, func() {
			fmt.Printf("Created card %d\n", card.ID)
		})
	},
}

var cardGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Get a card by id",
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

		card, err := backend.Cards().Get(id)
		if err != nil {
			return fmt.Errorf("get card %d: %w", id, err)
		}
		return printResult(card, func() {
			fmt.Printf("card %d [%s] tags=%v\n%s\n", card.ID, card.Category, card.Tags, card.Content)
		})
	},
}

var cardListCmd = &cobra.Command{
	Use:   "list",
	Short: "List cards, most recently updated first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		backend, err := attachBackend()
		if err != nil {
			return err
		}
		defer backend.Detach()

		cards, err := backend.Cards().List()
		if err != nil {
			return fmt.Errorf("list cards: %w", err)
		}
		return printResult(cards, func() {
			for _, card := range cards {
				fmt.Printf("%d\t[%s]\t%s\n", card.ID, card.Category, snippet(card.Content))
			}
		})
	},
}

var cardUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a card",
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

		card, err := backend.Cards().Get(id)
		if err != nil {
			return fmt.Errorf("get card %d: %w", id, err)
		}
		if cmd.Flags().Changed("content") {
			card.Content = cardContent
		}
		if cmd.Flags().Changed("tags") {
			card.Tags = splitList(cardTags)
		}
		if cmd.Flags().Changed("links") {
			if card.Links, err = splitIDList(cardLinks); err != nil {
				return err
			}
		}
		if cmd.Flags().Changed("category") {
			card.Category = cardCategory
		}
		card, err = backend.Cards().Update(card)
		if err != nil {
			return fmt.Errorf("update card %d: %w", id, err)
		}
		return printResult(card, func() {
			fmt.Printf("Updated card %d\n", card.ID)
		})
	},
}

var cardDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a card",
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

		n, err := backend.Cards().Delete(id)
		if err != nil {
			return fmt.Errorf("delete card %d: %w", id, err)
		}
		fmt.Printf("Deleted %d card(s)\n", n)
		return nil
	},
}

var cardTagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "Group cards by tag",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		backend, err := attachBackend()
		if err != nil {
			return err
		}
		defer backend.Detach()

		groups, err := backend.Cards().GroupByTag()
		if err != nil {
			return fmt.Errorf("group cards: %w", err)
		}
		return printResult(groups, func() {
			tags := make([]string, 0, len(groups))
			for tag := range groups {
				tags = append(tags, tag)
			}
			sort.Strings(tags)
			for _, tag := range tags {
				fmt.Printf("%s (%d)\n", tag, len(groups[tag]))
				for _, card := range groups[tag] {
					fmt.Printf("  %d\t%s\n", card.ID, snippet(card.Content))
				}
			}
		})
	},
}

func init() {
	for _, cmd := range []*cobra.Command{cardCreateCmd, cardUpdateCmd} {
		cmd.Flags().StringVar(&cardContent, "content", "", "card content")
		cmd.Flags().StringVar(&cardTags, "tags", "", "comma-separated tags")
		cmd.Flags().StringVar(&cardLinks, "links", "", "comma-separated linked card ids")
		cmd.Flags().StringVar(&cardCategory, "category", "", "card category (permanent, literature, temporary)")
	}

	cardCmd.AddCommand(cardCreateCmd)
	cardCmd.AddCommand(cardGetCmd)
	cardCmd.AddCommand(cardListCmd)
	cardCmd.AddCommand(cardUpdateCmd)
	cardCmd.AddCommand(cardDeleteCmd)
	cardCmd.AddCommand(cardTagsCmd)
}
