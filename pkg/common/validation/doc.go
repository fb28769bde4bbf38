// Package validation provides common validation utilities for configuration
// parameters across the feather library.
//
// Constructors such as redislist.New run every field of their Config through
// these helpers so that a rejected value always surfaces as an
// errors.ValidationError wrapping errors.ErrInvalidConfiguration.
package validation
