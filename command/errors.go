package command

import (
	"errors"

	"github.com/goliatone/go-portfolio/pkg/types"
)

var (
	// ErrMissingRepository occurs when a command runs without a repository.
	ErrMissingRepository = types.ErrMissingRepository
	// ErrOwnerRequired indicates the create payload lacks an owner id.
	ErrOwnerRequired = types.ErrOwnerRequired
	// ErrPortfolioIDRequired indicates the save payload lacks a portfolio id.
	ErrPortfolioIDRequired = types.ErrPortfolioIDRequired
	// ErrSlugUnavailable indicates no free slug could be derived for a new
	// portfolio.
	ErrSlugUnavailable = errors.New("go-portfolio: no available slug could be derived")
)
