package dbhelper

import (
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestClassifiesPostgresErrors(t *testing.T) {
	unique := fmt.Errorf("failed to insert asset: %w", &pq.Error{Code: "23505", Constraint: "assets_serial_number_key"})
	fk := &pq.Error{Code: "23503"}

	assert.True(t, IsUniqueViolation(unique))
	assert.Equal(t, "assets_serial_number_key", ViolatedConstraint(unique))
	assert.False(t, IsUniqueViolation(fk))
	assert.True(t, IsForeignKeyViolation(fk))
	assert.True(t, IsCheckViolation(&pq.Error{Code: "23514"}))
	assert.False(t, IsCheckViolation(assert.AnError))
}
