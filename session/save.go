package session

import (
	"context"
	"errors"

	"github.com/goliatone/go-portfolio/pkg/types"
)

type saveResult struct {
	portfolio *types.Portfolio
	err       error
}

// Save commits the full draft. The store call runs under a deadline of
// SaveTimeout; when the deadline wins the call's context is cancelled, any
// late result is dropped and a timeout error is returned with the draft kept.
// A validation error is remembered per field and returned by every further
// Save until that field is edited.
func (s *Session) Save(ctx context.Context) (types.Portfolio, error) {
	s.mu.Lock()
	if err := s.writableLocked(); err != nil {
		s.mu.Unlock()
		return types.Portfolio{}, err
	}
	if err := s.firstInvalidLocked(); err != nil {
		s.mu.Unlock()
		return types.Portfolio{}, err
	}
	snapshot := s.draft.Clone()
	s.state = StateSaving
	s.mu.Unlock()

	saveCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	results := make(chan saveResult, 1)
	go func() {
		slug := snapshot.Slug
		update := types.PortfolioUpdate{
			Slug:            &slug,
			Personalization: &snapshot.Personalization,
			Profile:         &snapshot.Profile,
		}
		saved, err := s.store.SavePortfolio(saveCtx, snapshot.ID, update)
		results <- saveResult{portfolio: saved, err: err}
	}()

	var res saveResult
	select {
	case res = <-results:
		if res.err != nil && errors.Is(res.err, context.DeadlineExceeded) && saveCtx.Err() != nil {
			res.err = types.NewTimeoutError("save", s.timeout)
		}
	case <-saveCtx.Done():
		if errors.Is(saveCtx.Err(), context.DeadlineExceeded) && ctx.Err() == nil {
			res.err = types.NewTimeoutError("save", s.timeout)
		} else {
			res.err = saveCtx.Err()
		}
	}
	if res.err == nil && res.portfolio == nil {
		res.err = types.ErrPortfolioNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = StateReady

	if res.err != nil {
		if types.IsValidation(res.err) {
			field := types.ValidationField(res.err)
			if field == "" {
				field = "portfolio"
			}
			s.invalid[field] = res.err
		}
		s.logger.Error("portfolio save failed", res.err, "portfolio_id", snapshot.ID)
		return types.Portfolio{}, res.err
	}

	canonical := res.portfolio.Clone()
	s.draft = &canonical
	s.invalid = map[string]error{}
	s.logger.Info("portfolio saved", "portfolio_id", canonical.ID, "version", canonical.Version)
	return canonical.Clone(), nil
}
