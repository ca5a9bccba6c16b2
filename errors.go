package ndp

import "github.com/pkg/errors"

// Sentinel errors for the ways a DIMACS input or configuration can be
// rejected. cmd/ndp exits with status 1 on any of them; library callers can
// errors.Is against them.
var (
	ErrEmptyInput          = errors.New("ndp: input is empty")
	ErrMissingProductLine  = errors.New("ndp: DIMACS header is missing the \"Circuit for product\" comment")
	ErrMissingProblemLine  = errors.New("ndp: DIMACS file is missing the \"p cnf\" problem line")
	ErrEmptyClauseSet      = errors.New("ndp: parser produced no clauses of arity 1 or 3")
	ErrReserveExceedsCores = errors.New("ndp: reserve_cores leaves no usable cores")
)

// wrapf is a thin alias over errors.Wrapf kept local so call sites read as
// plain Go ("wrapf(err, ...)") without importing pkg/errors everywhere.
func wrapf(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}
