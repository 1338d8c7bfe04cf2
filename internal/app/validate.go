package app

import "github.com/go-playground/validator/v10"

// validate checks request structs against their validate tags. Field
// requirements live on the requests; cross-row invariants stay in the
// schema.
var validate = validator.New()
