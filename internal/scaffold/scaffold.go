// Package scaffold bootstraps new sectionkit projects from a starter
// template repository.
package scaffold

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	"github.com/sectionkit/sectionkit/internal/logger"
	skerrors "github.com/sectionkit/sectionkit/pkg/errors"
)

// DefaultTemplateURL is the starter-template repository cloned by `sectionkit init`.
const DefaultTemplateURL = "https://github.com/sectionkit/starter-templates"

// StarterConfigName is the page config every starter template must carry.
const StarterConfigName = "sectionkit.yaml"

// Options describes a scaffolding request.
type Options struct {
	URL         string
	Destination string
	Branch      string
	Depth       int
}

// Init clones the starter template into the destination directory and
// verifies the expected page config exists. The destination must be empty or
// absent.
func Init(ctx context.Context, opts Options, log *logger.Logger) error {
	if opts.Destination == "" {
		return skerrors.NewValidationError("destination", "destination directory is required", nil)
	}

	url := opts.URL
	if url == "" {
		url = DefaultTemplateURL
	}

	if err := ensureEmpty(opts.Destination); err != nil {
		return err
	}

	cloneOpts := &git.CloneOptions{
		URL: url,
	}
	if opts.Depth > 0 {
		cloneOpts.Depth = opts.Depth
	}
	if opts.Branch != "" {
		cloneOpts.ReferenceName = plumbing.NewBranchReferenceName(opts.Branch)
		cloneOpts.SingleBranch = true
	}

	log.WithFields(map[string]any{"url": url, "destination": opts.Destination}).Info("cloning starter template")

	if _, err := git.PlainCloneContext(ctx, opts.Destination, false, cloneOpts); err != nil {
		return fmt.Errorf("failed to clone starter template: %w", err)
	}

	// A starter without a page config is not usable; fail before the user
	// discovers it at render time.
	configPath := filepath.Join(opts.Destination, StarterConfigName)
	if _, err := os.Stat(configPath); err != nil {
		if os.IsNotExist(err) {
			return skerrors.NewValidationError(StarterConfigName, "starter template does not include a page config", nil)
		}
		return fmt.Errorf("cannot stat %s: %w", configPath, err)
	}

	log.Info("starter project ready")
	return nil
}

func ensureEmpty(destination string) error {
	entries, err := os.ReadDir(destination)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("cannot read destination %s: %w", destination, err)
	}
	if len(entries) > 0 {
		return skerrors.NewValidationError("destination", fmt.Sprintf("directory %s is not empty", destination), nil)
	}
	return nil
}
