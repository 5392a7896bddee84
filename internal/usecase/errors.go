package usecase

import "stayhub/internal/pkg/errs"

// ErrValidation marks any error caused by bad input so handlers can map
// the whole family to a single client response.
var ErrValidation = errs.New("validation failed")
