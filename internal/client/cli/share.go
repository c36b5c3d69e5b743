package cli

import (
	"context"
	"fmt"

	"github.com/carlos0768/lexisync/internal/models"
)

var shareUsage = "Usage: lexisync share <project-id>"

// runShare генерирует публичный share-токен проекта. Раздача идёт
// с сервера, поэтому команда требует облачный тариф и доступный сервер.
func (c *Cli) runShare(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing project id. %s", shareUsage)
	}

	session, err := c.currentSession(ctx)
	if err != nil {
		return err
	}
	if models.SubscriptionTier(session.Tier) != models.TierActive {
		return fmt.Errorf("sharing requires a plan with cloud sync")
	}
	if !c.online.Online(ctx) {
		return fmt.Errorf("server is unreachable. Sharing requires a network connection")
	}

	shareID, err := c.remote.GenerateShareID(ctx, args[0])
	if err != nil {
		return fmt.Errorf("failed to generate share link: %w", err)
	}

	c.io.Println("✓ Project shared!")
	c.io.Printf("Share ID: %s\n", shareID)
	c.io.Println()
	c.io.Printf("Anyone can import it with: lexisync import %s\n", shareID)

	return nil
}
