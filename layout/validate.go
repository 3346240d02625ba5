package layout

import (
	"errors"
	"fmt"
	"strings"
)

// Validate checks the table for configuration errors. All problems are
// reported together; the returned error unwraps to each *ValidationError.
func (l *Layout) Validate() error {
	var errs []error

	if l.Version != CurrentVersion {
		errs = append(errs, invalid("version", 0, fmt.Errorf("%w: %d", ErrUnsupportedV, l.Version)))
	}
	if len(l.Hotspots) == 0 {
		errs = append(errs, invalid("hotspots", 0, ErrNoHotspots))
	}

	seen := make(map[int]string)
	check := func(section string, h Hotspot, needGeometry bool) {
		if h.ID <= 0 {
			errs = append(errs, invalid(section+".id", 0, fmt.Errorf("%w: %d", ErrOutOfRange, h.ID)))
		} else if prev, ok := seen[h.ID]; ok {
			errs = append(errs, invalid(section+".id", h.ID, fmt.Errorf("%w (also in %s)", ErrDuplicateID, prev)))
		} else {
			seen[h.ID] = section
		}
		if strings.TrimSpace(h.Label) == "" {
			errs = append(errs, invalid(section+".label", h.ID, ErrEmptyLabel))
		}
		if h.X < 0 || h.X > 100 {
			errs = append(errs, invalid(section+".x", h.ID, fmt.Errorf("%w: %g", ErrOutOfRange, h.X)))
		}
		if h.Y < 0 || h.Y > 100 {
			errs = append(errs, invalid(section+".y", h.ID, fmt.Errorf("%w: %g", ErrOutOfRange, h.Y)))
		}
		if needGeometry || h.Width != 0 || h.Height != 0 {
			if h.Width <= 0 {
				errs = append(errs, invalid(section+".width", h.ID, fmt.Errorf("%w: %g", ErrOutOfRange, h.Width)))
			}
			if h.Height <= 0 {
				errs = append(errs, invalid(section+".height", h.ID, fmt.Errorf("%w: %g", ErrOutOfRange, h.Height)))
			}
		}
	}

	for _, h := range l.Hotspots {
		check("hotspots", h, true)
	}
	if l.HasNavigation() {
		if l.Secondary == nil {
			errs = append(errs, invalid("secondary", 0, ErrNoSecondary))
		} else if len(l.Secondary.Actions) == 0 {
			errs = append(errs, invalid("secondary.actions", 0, ErrNoMediaAction))
		}
	}
	if l.Secondary != nil {
		for _, h := range l.Secondary.Actions {
			check("secondary.actions", h, l.Secondary.HasBackground())
			if h.IsNavigation() {
				errs = append(errs, invalid("secondary.actions.media", h.ID, ErrMisplacedNav))
			}
		}
	}

	return errors.Join(errs...)
}

// Problems flattens a Validate or VerifyMedia error into one line per
// problem, for display.
func Problems(err error) []string {
	if err == nil {
		return nil
	}
	var lines []string
	var walk func(error)
	walk = func(e error) {
		if joined, ok := e.(interface{ Unwrap() []error }); ok {
			for _, inner := range joined.Unwrap() {
				walk(inner)
			}
			return
		}
		lines = append(lines, e.Error())
	}
	walk(err)
	return lines
}
