package domain

import "fmt"

// Validate checks the structural rules the game relies on. A failure here is a
// content bug and should stop the program before a session starts.
func (c Catalog) Validate() error {
	seen := make(map[string]struct{}, len(c.Packs))
	for _, p := range c.Packs {
		if p.ID == "" {
			return fmt.Errorf("%w: pack with empty id", ErrInvalidCatalog)
		}
		if _, dup := seen[p.ID]; dup {
			return fmt.Errorf("%w: duplicate pack id %q", ErrInvalidCatalog, p.ID)
		}
		seen[p.ID] = struct{}{}
		if len(p.Questions) == 0 {
			return fmt.Errorf("%w: pack %q has no questions", ErrInvalidCatalog, p.ID)
		}
		for i, q := range p.Questions {
			if len(q.Options) < 2 {
				return fmt.Errorf("%w: pack %q question %d needs at least two options", ErrInvalidCatalog, p.ID, i)
			}
			if q.CorrectAnswerIndex < 0 || q.CorrectAnswerIndex >= len(q.Options) {
				return fmt.Errorf("%w: pack %q question %d correct index %d out of range", ErrInvalidCatalog, p.ID, i, q.CorrectAnswerIndex)
			}
			if q.Points < 0 {
				return fmt.Errorf("%w: pack %q question %d has negative points", ErrInvalidCatalog, p.ID, i)
			}
		}
	}
	for i, b := range c.Bots {
		if b.Name == "" {
			return fmt.Errorf("%w: bot %d has no name", ErrInvalidCatalog, i)
		}
	}
	return nil
}
