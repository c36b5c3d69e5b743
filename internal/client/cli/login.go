package cli

import (
	"context"
	"fmt"

	"github.com/carlos0768/lexisync/internal/models"
)

func (c *Cli) runLogin(ctx context.Context) error {
	c.io.Println("=== Login ===")
	c.io.Println()

	username, err := c.io.ReadInput("Username: ")
	if err != nil {
		return fmt.Errorf("failed to read username: %w", err)
	}

	password, err := c.io.ReadPassword("Password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	c.io.Println()
	c.io.Println("Authenticating...")

	result, err := c.authService.Login(ctx, username, password)
	if err != nil {
		return err
	}

	c.io.Println()
	c.io.Println("✓ Login successful!")
	c.io.Printf("Username: %s\n", result.Username)
	c.io.Printf("Plan: %s\n", result.Tier)
	c.io.Printf("Access token expires in: %d seconds\n", result.ExpiresIn)

	// Для активного тарифа логин — один из триггеров полной сверки.
	// Неудача не мешает работе: данные останутся локальными до
	// следующего 'lexisync sync'.
	if models.SubscriptionTier(result.Tier) == models.TierActive {
		should, err := c.reconciler.ShouldSync(ctx, result.UserID)
		if err == nil && should {
			c.io.Println()
			c.io.Println("Synchronizing with server...")
			if err := c.reconciler.FullSync(ctx, result.UserID); err != nil {
				c.io.Printf("Warning: sync failed: %v\n", err)
				c.io.Println("Run 'lexisync sync' to retry.")
			} else {
				c.io.Println("✓ Data synchronized.")
			}
		}
	}

	return nil
}
