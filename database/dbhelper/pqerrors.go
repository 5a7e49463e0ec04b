package dbhelper

import (
	"errors"

	"github.com/lib/pq"
)

const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
	checkViolation      = "23514"
)

func pqCode(err error) (pq.ErrorCode, string) {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code, pqErr.Constraint
	}
	return "", ""
}

func IsUniqueViolation(err error) bool {
	code, _ := pqCode(err)
	return code == uniqueViolation
}

func IsForeignKeyViolation(err error) bool {
	code, _ := pqCode(err)
	return code == foreignKeyViolation
}

func IsCheckViolation(err error) bool {
	code, _ := pqCode(err)
	return code == checkViolation
}

// ViolatedConstraint returns the constraint name of a Postgres error, if any.
func ViolatedConstraint(err error) string {
	_, constraint := pqCode(err)
	return constraint
}
