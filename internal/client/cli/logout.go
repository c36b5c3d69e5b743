package cli

import (
	"context"
	"fmt"
	"strings"
)

func (c *Cli) runLogout(ctx context.Context) error {
	c.io.Println("=== Logout ===")

	// Несинхронизированные изменения переживают logout, но предупреждаем:
	// под другим аккаунтом очередь будет сброшена при полной сверке.
	if pending, err := c.queue.QueueLen(ctx); err == nil && pending > 0 {
		c.io.Printf("Warning: %d unsynced change(s) are still queued.\n", pending)
		answer, err := c.io.ReadInput("Logout anyway? (y/N): ")
		if err != nil {
			return fmt.Errorf("failed to read confirmation: %w", err)
		}
		if strings.ToLower(strings.TrimSpace(answer)) != "y" {
			c.io.Println("Logout cancelled. Run 'lexisync sync' first.")
			return nil
		}
	}

	if err := c.authService.Logout(ctx); err != nil {
		return fmt.Errorf("logout failed: %w", err)
	}

	c.io.Println("✓ Logout successful!")
	c.io.Println("Your local session has been deleted.")

	return nil
}
