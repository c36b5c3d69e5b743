package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/carlos0768/lexisync/internal/client/data"
	"github.com/carlos0768/lexisync/internal/client/extract"
)

var scanUsage = "Usage: lexisync scan <project-id> <image-file> [--printed|--handwritten]"

func (c *Cli) runScan(ctx context.Context, args []string) error {
	if c.extractor == nil {
		return fmt.Errorf("scan import is not configured in this build")
	}
	if len(args) < 2 {
		return fmt.Errorf("missing arguments. %s", scanUsage)
	}

	session, err := c.currentSession(ctx)
	if err != nil {
		return err
	}

	mode := extract.ModeAuto
	for _, arg := range args[2:] {
		switch arg {
		case "--printed":
			mode = extract.ModePrinted
		case "--handwritten":
			mode = extract.ModeHandwritten
		default:
			return fmt.Errorf("unknown flag: %s. %s", arg, scanUsage)
		}
	}

	image, err := os.ReadFile(args[1])
	if err != nil {
		return fmt.Errorf("failed to read image file: %w", err)
	}

	c.io.Println("=== Scan Import ===")
	c.io.Println()
	c.io.Println("Extracting words from image...")

	svc := data.NewService(c.extractor, c.repoFor(session))
	opts := extract.Options{
		WithDistractors: true,
		WithExamples:    true,
	}
	words, err := svc.ImportScan(ctx, args[0], image, mode, opts)
	if err != nil {
		return fmt.Errorf("scan import failed: %w", err)
	}

	c.io.Println()
	c.io.Printf("✓ Imported %d word(s):\n", len(words))
	c.io.Println()
	for _, w := range words {
		c.io.Printf("  %s — %s\n", w.English, w.Japanese)
	}

	return nil
}
