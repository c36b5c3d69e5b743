package cli

import (
	"context"
	"fmt"

	"github.com/carlos0768/lexisync/internal/client/data"
	"github.com/carlos0768/lexisync/internal/models"
)

var wordUsage = "Usage: lexisync word <add|list|favorite|delete> <id>"

func (c *Cli) runWord(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing subcommand. %s", wordUsage)
	}

	switch args[0] {
	case "add":
		return c.runWordAdd(ctx, args[1:])
	case "list":
		return c.runWordList(ctx, args[1:])
	case "favorite":
		return c.runWordFavorite(ctx, args[1:])
	case "delete":
		return c.runWordDelete(ctx, args[1:])
	default:
		return fmt.Errorf("unknown subcommand: %s. %s", args[0], wordUsage)
	}
}

func (c *Cli) runWordAdd(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing project id. %s", wordUsage)
	}

	session, err := c.currentSession(ctx)
	if err != nil {
		return err
	}

	c.io.Println("=== Add Word ===")
	c.io.Println()

	english, err := c.io.ReadInput("English: ")
	if err != nil {
		return fmt.Errorf("failed to read word: %w", err)
	}
	if english == "" {
		return fmt.Errorf("english cannot be empty")
	}

	japanese, err := c.io.ReadInput("Japanese: ")
	if err != nil {
		return fmt.Errorf("failed to read translation: %w", err)
	}
	if japanese == "" {
		return fmt.Errorf("japanese cannot be empty")
	}

	example, err := c.io.ReadInput("Example sentence (optional): ")
	if err != nil {
		return fmt.Errorf("failed to read example: %w", err)
	}

	entry := models.WordEntry{
		English:         english,
		Japanese:        japanese,
		ExampleSentence: example,
	}

	svc := data.NewService(c.extractor, c.repoFor(session))
	words, err := svc.AddWords(ctx, args[0], []models.WordEntry{entry})
	if err != nil {
		return fmt.Errorf("failed to add word: %w", err)
	}

	c.io.Println()
	c.io.Println("✓ Word added!")
	c.io.Printf("ID: %s\n", words[0].ID)

	return nil
}

func (c *Cli) runWordList(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing project id. %s", wordUsage)
	}

	session, err := c.currentSession(ctx)
	if err != nil {
		return err
	}

	repo := c.repoFor(session)
	project, err := repo.GetProject(ctx, args[0])
	if err != nil {
		return fmt.Errorf("failed to get project: %w", err)
	}

	words, err := repo.GetWords(ctx, project.ID)
	if err != nil {
		return fmt.Errorf("failed to list words: %w", err)
	}

	c.io.Printf("=== %s ===\n", project.Title)
	c.io.Println()

	if len(words) == 0 {
		c.io.Println("No words yet.")
		c.io.Println()
		c.io.Printf("Use 'lexisync word add %s' or 'lexisync scan %s <image>' to add words.\n", project.ID, project.ID)
		return nil
	}

	c.io.Printf("Found %d word(s):\n", len(words))
	c.io.Println()
	for _, w := range words {
		marker := " "
		if w.IsFavorite {
			marker = "★"
		}
		c.io.Printf("%s %s  %s — %s  [%s]\n", marker, w.ID, w.English, w.Japanese, w.Status)
		if w.ExampleSentence != "" {
			c.io.Printf("    %s\n", w.ExampleSentence)
		}
	}

	return nil
}

func (c *Cli) runWordFavorite(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing word id. %s", wordUsage)
	}

	session, err := c.currentSession(ctx)
	if err != nil {
		return err
	}

	favorite := true
	repo := c.repoFor(session)
	if err := repo.UpdateWord(ctx, args[0], models.WordUpdate{IsFavorite: &favorite}); err != nil {
		return fmt.Errorf("failed to update word: %w", err)
	}

	c.io.Println("✓ Word marked as favorite.")

	return nil
}

func (c *Cli) runWordDelete(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing word id. %s", wordUsage)
	}

	session, err := c.currentSession(ctx)
	if err != nil {
		return err
	}

	repo := c.repoFor(session)
	if err := repo.DeleteWord(ctx, args[0]); err != nil {
		return fmt.Errorf("failed to delete word: %w", err)
	}

	c.io.Println("✓ Word deleted.")

	return nil
}
