package generator

import "errors"

// ErrInvalidInput is returned when [Generate] is handed inputs that violate
// the pipeline's preconditions — above all a zero [policy.Canonical] that
// did not come from policy.Validate. It signals a contract violation by the
// caller, never a runtime condition worth retrying.
var ErrInvalidInput = errors.New("generator: invalid input")
