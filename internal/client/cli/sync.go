package cli

import (
	"context"
	"fmt"

	"github.com/carlos0768/lexisync/internal/models"
)

// runSync — ручной триггер синхронизации: сначала прогоняем очередь
// отложенных операций, потом выполняем полную сверку с сервером.
func (c *Cli) runSync(ctx context.Context) error {
	c.io.Println("=== Synchronization ===")

	session, err := c.currentSession(ctx)
	if err != nil {
		return err
	}
	if models.SubscriptionTier(session.Tier) != models.TierActive {
		return fmt.Errorf("your plan does not include cloud sync. Data is stored locally")
	}

	// Офлайн-попытка не должна сжигать retry counters очереди
	if !c.online.Online(ctx) {
		c.io.Println()
		c.io.Println("Server is unreachable. Pending changes remain queued and will be")
		c.io.Println("pushed on the next sync.")
		return nil
	}

	c.io.Println()
	c.io.Println("Pushing queued operations...")

	result, err := c.processor.Process(ctx)
	if err != nil {
		return fmt.Errorf("failed to process sync queue: %w", err)
	}
	c.io.Printf("Pushed:  %d operation(s)\n", result.Succeeded)
	if result.Failed > 0 {
		c.io.Printf("Failed:  %d operation(s) (will be retried)\n", result.Failed)
	}

	c.io.Println()
	c.io.Println("Running full reconciliation...")

	if err := c.reconciler.FullSync(ctx, session.UserID); err != nil {
		return fmt.Errorf("synchronization failed: %w", err)
	}

	c.io.Println()
	c.io.Println("✓ Synchronization completed successfully!")
	c.io.Println("Your data is now consistent with the server.")

	return nil
}
