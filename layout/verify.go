package layout

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"
)

// VerifyOptions controls media existence checks.
type VerifyOptions struct {
	Remote      bool         // Issue HEAD requests for http(s) media
	Client      *http.Client // nil = client with a 10s timeout
	Concurrency int          // <= 0 = 4
}

// VerifyMedia checks that every media file referenced by the layout exists.
// Local paths are checked on fs; remote URLs only when opts.Remote is set.
// All failures are reported together.
func (l *Layout) VerifyMedia(ctx context.Context, fs afero.Fs, opts VerifyOptions) error {
	client := opts.Client
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	limit := opts.Concurrency
	if limit <= 0 {
		limit = 4
	}

	var (
		mu   sync.Mutex
		errs []error
	)
	fail := func(ref string, err error) {
		mu.Lock()
		defer mu.Unlock()
		errs = append(errs, invalid("media", 0, fmt.Errorf("%s: %w", ref, err)))
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for _, ref := range l.MediaRefs() {
		if IsRemote(ref) && !opts.Remote {
			continue
		}
		g.Go(func() error {
			if IsRemote(ref) {
				if err := headOK(gctx, client, ref); err != nil {
					fail(ref, err)
				}
				return nil
			}
			info, err := fs.Stat(ref)
			if err != nil {
				fail(ref, ErrMediaMissing)
				return nil
			}
			if info.IsDir() {
				fail(ref, fmt.Errorf("%w: is a directory", ErrMediaMissing))
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return errors.Join(errs...)
}

func headOK(ctx context.Context, client *http.Client, url string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return err
	}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	resp.Body.Close()
	if resp.StatusCode >= 400 {
		return fmt.Errorf("%w: HTTP %d", ErrMediaMissing, resp.StatusCode)
	}
	return nil
}
