// Package usecase contains the business logic of the application.
package usecase

import (
	"context"
	"fmt"
	"image"
	"log"

	"github.com/montanaflynn/stats"
	"github.com/naka-gawa/readme-card/internal/domain"
	"github.com/naka-gawa/readme-card/internal/gateway"
	"github.com/naka-gawa/readme-card/internal/layout"
	"github.com/naka-gawa/readme-card/internal/raster"
	"github.com/naka-gawa/readme-card/internal/storage"
	"golang.org/x/sync/errgroup"
)

// RenderOptions selects the inputs and output of a single run.
type RenderOptions struct {
	Owner string
	// BackgroundPath is empty for the built-in background.
	BackgroundPath string
	OutputPath     string
	// AllCards stacks every card on the page instead of only the first one.
	AllCards bool
}

// Renderer is the use case for rendering a readme card.
// It orchestrates fetching repositories, building cards and laying out the page.
type Renderer struct {
	fetcher     gateway.Fetcher
	logger      *log.Logger
	concurrency int
}

// NewRenderer creates a new Renderer instance. At most concurrency cards are
// built at the same time.
func NewRenderer(fetcher gateway.Fetcher, logger *log.Logger, concurrency int) *Renderer {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Renderer{
		fetcher:     fetcher,
		logger:      logger,
		concurrency: concurrency,
	}
}

// Run renders the page for opts.Owner and writes it to opts.OutputPath.
// Nothing is written unless every step succeeds.
func (r *Renderer) Run(ctx context.Context, opts RenderOptions) error {
	background, err := storage.LoadBackground(opts.BackgroundPath)
	if err != nil {
		return fmt.Errorf("failed to load background: %w", err)
	}
	page, err := r.Render(ctx, opts.Owner, background, opts.AllCards)
	if err != nil {
		return err
	}
	data, err := raster.EncodePNG(page)
	if err != nil {
		return err
	}
	r.logger.Printf("Writing image: %s\n", opts.OutputPath)
	return storage.WriteFileAtomic(opts.OutputPath, data)
}

// Render performs the main business logic and returns the finished page.
func (r *Renderer) Render(ctx context.Context, owner string, background image.Image, allCards bool) (image.Image, error) {
	r.logger.Println("[1/3] Fetching public repositories...")
	repos, err := r.fetcher.FetchPublicRepos(ctx, owner)
	if err != nil {
		return nil, err
	}
	if len(repos) == 0 {
		return nil, fmt.Errorf("%w for %s", domain.ErrNoRepositories, owner)
	}
	r.summarize(repos)

	r.logger.Printf("[2/3] Building %d cards...\n", len(repos))
	cards, err := r.BuildCards(ctx, repos)
	if err != nil {
		return nil, err
	}

	r.logger.Println("[3/3] Laying out page...")
	if allCards {
		return layout.BuildGallery(background, cards)
	}
	// Only the first repository is placed; the rest need --all-cards.
	return layout.BuildPage(background, cards[0])
}

// BuildCards renders one card per repository, keeping the input order.
func (r *Renderer) BuildCards(ctx context.Context, repos []domain.Repository) ([]image.Image, error) {
	cards := make([]image.Image, len(repos))

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(r.concurrency)
	for i, repo := range repos {
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			card, err := layout.BuildCard(repo)
			if err != nil {
				return err
			}
			cards[i] = card
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return cards, nil
}

func (r *Renderer) summarize(repos []domain.Repository) {
	issues := make([]int, 0, len(repos))
	for _, repo := range repos {
		issues = append(issues, repo.OpenIssues)
	}
	data := stats.LoadRawData(issues)
	mean, err := stats.Mean(data)
	if err != nil {
		return
	}
	median, err := stats.Median(data)
	if err != nil {
		return
	}
	r.logger.Printf("  %d public repositories, open issues: mean %.1f, median %.1f\n", len(repos), mean, median)
}
