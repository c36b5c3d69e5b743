package cli

import (
	"context"
	"fmt"

	"github.com/carlos0768/lexisync/internal/models"
)

var importUsage = "Usage: lexisync import <share-id>"

// runImport копирует расшаренный проект под текущего пользователя.
// Копия создаётся на сервере, после чего полная сверка переносит её
// в локальное хранилище.
func (c *Cli) runImport(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing share id. %s", importUsage)
	}

	session, err := c.currentSession(ctx)
	if err != nil {
		return err
	}
	if models.SubscriptionTier(session.Tier) != models.TierActive {
		return fmt.Errorf("importing shared projects requires a plan with cloud sync")
	}
	if !c.online.Online(ctx) {
		return fmt.Errorf("server is unreachable. Import requires a network connection")
	}

	project, words, err := c.remote.ImportSharedProject(ctx, args[0])
	if err != nil {
		return fmt.Errorf("failed to import shared project: %w", err)
	}

	c.io.Println("✓ Project imported!")
	c.io.Printf("Title: %s\n", project.Title)
	c.io.Printf("Words: %d\n", len(words))

	c.io.Println()
	c.io.Println("Synchronizing with server...")
	if err := c.reconciler.FullSync(ctx, session.UserID); err != nil {
		c.io.Printf("Warning: sync failed: %v\n", err)
		c.io.Println("Run 'lexisync sync' to pull the imported project locally.")
		return nil
	}
	c.io.Println("✓ Data synchronized.")

	return nil
}
