package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/dandaka/internal/story"
)

var storyCmd = &cobra.Command{
	Use:   "story",
	Short: "Print the narrative book",
	Long: `Print every chapter of the narrative book shown between battles.

Uses the embedded book unless --book is given.

Examples:
  dandaka story
  dandaka story --book ./my-book.yaml`,
	Args: cobra.NoArgs,
	RunE: runStory,
}

func runStory(_ *cobra.Command, _ []string) error {
	book := story.Default()
	if flagBook != "" {
		b, err := story.LoadBook(flagBook)
		if err != nil {
			return err
		}
		book = b
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	textStyle := lipgloss.NewStyle().Width(72).PaddingLeft(2)

	for i := range book.Len() {
		ch, _ := book.Chapter(i)
		fmt.Println(titleStyle.Render(fmt.Sprintf("%d. %s", i+1, ch.Title)))
		fmt.Println(textStyle.Render(ch.Text))
		fmt.Println()
	}
	return nil
}
