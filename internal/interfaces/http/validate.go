package http

import "github.com/go-playground/validator/v10"

// validate backs the struct-tag validation of request DTOs; invalid payloads
// are rejected before they reach the category store.
var validate = validator.New()
