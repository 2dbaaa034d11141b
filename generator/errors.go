package generator

import "errors"

// Input validation errors. Generate wraps them with the offending value.
var (
	// ErrMissingCuisine is returned when Options.Cuisine is blank.
	ErrMissingCuisine = errors.New("cuisine is required")

	// ErrMissingDiets is returned when Options.Diets has no non-blank entry.
	ErrMissingDiets = errors.New("at least one dietary preference is required")

	// ErrInvalidItemCount is returned when Options.ItemsPerSection is negative.
	ErrInvalidItemCount = errors.New("items per section must be at least 1")
)

// ErrEmptyName is returned when the model's name response has no usable text.
var ErrEmptyName = errors.New("model returned no restaurant name")
