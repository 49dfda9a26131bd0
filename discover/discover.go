// Package discover orchestrates icon discovery. It coordinates ordered
// lookup strategies, raw file fetching, and collection assembly.
package discover

import (
	"context"
	"log/slog"
	"net/url"
	"time"

	"github.com/fwojciec/icondeck"
	"github.com/fwojciec/icondeck/bloom"
	"github.com/google/uuid"
)

// Dedup set sizing for a discovery run.
const (
	// dedupExpectedPaths is the expected number of icon paths for sizing.
	dedupExpectedPaths = 10000
	// dedupFalsePositiveRate is the acceptable false positive rate.
	dedupFalsePositiveRate = 0.01
)

// Pipeline resolves a repository's icon collection using the first
// successful of its ordered sources, then loads each located file's
// markup sequentially.
type Pipeline struct {
	Sources     []icondeck.Source
	Fetcher     icondeck.Fetcher
	Inspector   icondeck.Inspector
	RateLimiter icondeck.DomainLimiter
	RetryDelays []time.Duration
	Logger      *slog.Logger
}

// Result holds the outcome of a discovery run.
type Result struct {
	RunID    string
	Strategy string // winning source name, empty when every strategy came up empty
	Loaded   int
	Dropped  int
	Bytes    int
	Elapsed  time.Duration
}

// ProgressEvent reports progress during a discovery run.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	Path      string
	Err       error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressLoaded
	ProgressDropped
	ProgressFinished
)

// ProgressFunc is a callback for reporting discovery progress.
type ProgressFunc func(event ProgressEvent)

// Run executes one discovery run. The returned collection preserves the
// winning source's ref order. Strategy failures degrade to the next
// strategy and per-file failures drop the file; neither aborts the run.
// When every strategy comes up empty, Run returns an empty collection and
// a nil error so the caller can render a no-icons state.
func (p *Pipeline) Run(ctx context.Context, repo icondeck.Repo, progress ProgressFunc) (icondeck.Collection, *Result, error) {
	if err := repo.Validate(); err != nil {
		return nil, nil, err
	}

	begin := time.Now()
	result := &Result{RunID: uuid.New().String()}

	refs, strategy := p.locate(ctx, repo)
	result.Strategy = strategy

	if len(refs) == 0 {
		result.Elapsed = time.Since(begin)
		return icondeck.Collection{}, result, nil
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: len(refs)})
	}

	seen := bloom.NewSet(dedupExpectedPaths, dedupFalsePositiveRate)
	icons := make(icondeck.Collection, 0, len(refs))
	completed := 0

	for _, ref := range refs {
		if seen.Test(ref.Path) {
			continue
		}
		seen.Add(ref.Path)
		completed++

		svg, err := p.load(ctx, ref)
		if err != nil {
			result.Dropped++
			if p.Logger != nil {
				p.Logger.Warn("icon dropped", "path", ref.Path, "err", err)
			}
			if progress != nil {
				progress(ProgressEvent{
					Type:      ProgressDropped,
					Completed: completed,
					Total:     len(refs),
					Path:      ref.Path,
					Err:       err,
				})
			}
			continue
		}

		icons = append(icons, icondeck.Icon{
			Name:     ref.Name,
			Category: ref.Category,
			SVG:      svg,
			Path:     ref.Path,
		})
		result.Loaded++
		result.Bytes += len(svg)

		if progress != nil {
			progress(ProgressEvent{
				Type:      ProgressLoaded,
				Completed: completed,
				Total:     len(refs),
				Path:      ref.Path,
			})
		}
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: completed, Total: len(refs)})
	}

	result.Elapsed = time.Since(begin)
	return icons, result, nil
}

// locate tries sources in order and returns refs from the first one with a
// non-empty result. Source errors and empty results both fall through.
func (p *Pipeline) locate(ctx context.Context, repo icondeck.Repo) ([]icondeck.IconRef, string) {
	for _, src := range p.Sources {
		refs, err := src.List(ctx, repo)
		if err != nil {
			if p.Logger != nil {
				p.Logger.Warn("strategy failed", "strategy", src.Name(), "err", err)
			}
			continue
		}
		if len(refs) == 0 {
			if p.Logger != nil {
				p.Logger.Debug("strategy found nothing", "strategy", src.Name())
			}
			continue
		}
		return refs, src.Name()
	}
	return nil, ""
}

// load fetches one icon's markup with rate limiting and retry, then
// verifies it parses as SVG when an inspector is configured.
func (p *Pipeline) load(ctx context.Context, ref icondeck.IconRef) (string, error) {
	if p.RateLimiter != nil {
		u, err := url.Parse(ref.RawURL)
		if err != nil {
			return "", icondeck.Errorf(icondeck.EINVALID, "invalid raw URL %q: %v", ref.RawURL, err)
		}
		if err := p.RateLimiter.Wait(ctx, u.Host); err != nil {
			return "", err
		}
	}

	delays := p.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}

	svg, err := FetchWithRetryDelays(ctx, ref.RawURL, p.Fetcher.Fetch, nil, delays)
	if err != nil {
		return "", err
	}

	if p.Inspector != nil {
		if _, err := p.Inspector.Inspect(svg); err != nil {
			return "", err
		}
	}

	return svg, nil
}
