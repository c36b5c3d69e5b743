package cli

import (
	"context"
	"fmt"

	"github.com/carlos0768/lexisync/internal/models"
)

var projectUsage = "Usage: lexisync project <add|list|favorite|unfavorite|delete> [args]"

func (c *Cli) runProject(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing subcommand. %s", projectUsage)
	}

	switch args[0] {
	case "add":
		return c.runProjectAdd(ctx, args[1:])
	case "list":
		return c.runProjectList(ctx)
	case "favorite":
		return c.runProjectFavorite(ctx, args[1:], true)
	case "unfavorite":
		return c.runProjectFavorite(ctx, args[1:], false)
	case "delete":
		return c.runProjectDelete(ctx, args[1:])
	default:
		return fmt.Errorf("unknown subcommand: %s. %s", args[0], projectUsage)
	}
}

func (c *Cli) runProjectAdd(ctx context.Context, args []string) error {
	session, err := c.currentSession(ctx)
	if err != nil {
		return err
	}

	var title string
	if len(args) > 0 {
		title = args[0]
	} else {
		title, err = c.io.ReadInput("Project title: ")
		if err != nil {
			return fmt.Errorf("failed to read title: %w", err)
		}
	}
	if title == "" {
		return fmt.Errorf("title cannot be empty")
	}

	repo := c.repoFor(session)
	project, err := repo.CreateProject(ctx, session.UserID, title)
	if err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}

	c.io.Println("✓ Project created!")
	c.io.Printf("ID: %s\n", project.ID)
	c.io.Printf("Title: %s\n", project.Title)

	return nil
}

func (c *Cli) runProjectList(ctx context.Context) error {
	session, err := c.currentSession(ctx)
	if err != nil {
		return err
	}

	repo := c.repoFor(session)
	projects, err := repo.GetProjects(ctx, session.UserID)
	if err != nil {
		return fmt.Errorf("failed to list projects: %w", err)
	}

	if len(projects) == 0 {
		c.io.Println("No projects found.")
		c.io.Println()
		c.io.Println("Use 'lexisync project add <title>' to create your first project.")
		return nil
	}

	c.io.Printf("Found %d project(s):\n", len(projects))
	c.io.Println()
	for _, p := range projects {
		marker := " "
		if p.IsFavorite {
			marker = "★"
		}
		c.io.Printf("%s %s  %s\n", marker, p.ID, p.Title)
		if p.ShareID != nil {
			c.io.Printf("    shared: %s\n", *p.ShareID)
		}
	}

	return nil
}

func (c *Cli) runProjectFavorite(ctx context.Context, args []string, favorite bool) error {
	if len(args) == 0 {
		return fmt.Errorf("missing project id. %s", projectUsage)
	}

	session, err := c.currentSession(ctx)
	if err != nil {
		return err
	}

	repo := c.repoFor(session)
	update := models.ProjectUpdate{IsFavorite: &favorite}
	if err := repo.UpdateProject(ctx, args[0], update); err != nil {
		return fmt.Errorf("failed to update project: %w", err)
	}

	if favorite {
		c.io.Println("✓ Project marked as favorite.")
	} else {
		c.io.Println("✓ Favorite mark removed.")
	}

	return nil
}

func (c *Cli) runProjectDelete(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing project id. %s", projectUsage)
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

	answer, err := c.io.ReadInput(fmt.Sprintf("Delete project %q and all its words? (y/N): ", project.Title))
	if err != nil {
		return fmt.Errorf("failed to read confirmation: %w", err)
	}
	if answer != "y" && answer != "Y" {
		c.io.Println("Cancelled.")
		return nil
	}

	if err := repo.DeleteProject(ctx, project.ID); err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}

	c.io.Println("✓ Project deleted.")

	return nil
}
