package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/carlos0768/lexisync/internal/models"
)

func (c *Cli) runStatus(ctx context.Context) error {
	c.io.Println("=== Status ===")
	c.io.Println()

	isAuth, err := c.authService.IsAuthenticated(ctx)
	if err != nil {
		return fmt.Errorf("failed to check authentication: %w", err)
	}

	if !isAuth {
		c.io.Println("Status: Not authenticated")
		c.io.Println()
		c.io.Println("Run 'lexisync login' to authenticate.")
		return nil
	}

	session, err := c.currentSession(ctx)
	if err != nil {
		return err
	}

	expiresAt := time.Unix(session.ExpiresAt, 0)
	remaining := time.Until(expiresAt)

	c.io.Println("Status: Authenticated")
	c.io.Printf("Username: %s\n", session.Username)
	c.io.Printf("Plan: %s\n", session.Tier)
	c.io.Printf("Token expires: %s\n", expiresAt.Format(time.RFC3339))
	if remaining <= 0 {
		c.io.Println("⚠️  Token has expired. It will be refreshed on the next request.")
	}

	if c.online.Online(ctx) {
		c.io.Println("Server: reachable")
	} else {
		c.io.Println("Server: unreachable (working offline)")
	}

	// Для free-тарифа облачная часть не используется, очередь и сверка
	// не имеют смысла.
	if models.SubscriptionTier(session.Tier) != models.TierActive {
		c.io.Println()
		c.io.Println("Cloud sync is not included in your plan. Data is stored locally.")
		return nil
	}

	pending, err := c.queue.QueueLen(ctx)
	if err != nil {
		c.io.Printf("\nWarning: failed to read sync queue: %v\n", err)
	} else {
		c.io.Println()
		if pending > 0 {
			c.io.Printf("⚠️  Pending sync: %d operation(s) waiting to be pushed\n", pending)
			c.io.Println("Run 'lexisync sync' to synchronize with server.")
		} else {
			c.io.Println("✓ No pending operations")
		}
	}

	lastSync, syncedUser, err := c.metadata.GetLastSync(ctx)
	if err != nil {
		c.io.Printf("Warning: failed to read sync metadata: %v\n", err)
		return nil
	}
	if lastSync == 0 || syncedUser != session.UserID {
		c.io.Println("Last full sync: never")
	} else {
		c.io.Printf("Last full sync: %s\n", time.UnixMilli(lastSync).Format(time.RFC3339))
	}

	return nil
}
