package main

import (
	"fmt"
	"io"

	"go.uber.org/zap"
	"golang.org/x/xerrors"
)

// Run prints the greeting, the average of fx.Numbers and the score table
// followed by its average.
func Run(w io.Writer, fx *Fixture, sl *zap.SugaredLogger) error {
	if _, err := fmt.Fprintln(w, fx.Person.Greet()); err != nil {
		return xerrors.Errorf("greet: %w", err)
	}

	avg, ok := Average(fx.Numbers)
	sl.Debugw("average", "numbers", fx.Numbers, "value", avg, "present", ok)
	if ok {
		_, err := fmt.Fprintf(w, "Average: %.2f\n", avg)
		if err != nil {
			return xerrors.Errorf("average: %w", err)
		}
	} else if _, err := fmt.Fprintln(w, "No numbers provided"); err != nil {
		return xerrors.Errorf("average: %w", err)
	}

	for _, name := range fx.Scores.Names() {
		if _, err := fmt.Fprintf(w, "%s: %d\n", name, fx.Scores[name]); err != nil {
			return xerrors.Errorf("scores: %w", err)
		}
	}
	if avg, ok := fx.Scores.Average(); ok {
		sl.Debugf("Score average over %d entries: %.2f", len(fx.Scores), avg)
		if _, err := fmt.Fprintf(w, "Score average: %.2f\n", avg); err != nil {
			return xerrors.Errorf("scores: %w", err)
		}
	}
	return nil
}
