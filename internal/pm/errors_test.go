package pm

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorHelpers(t *testing.T) {
	nf := &NotFoundError{Entity: "space", ID: "s1"}
	assert.True(t, IsNotFound(nf))
	assert.True(t, IsNotFound(fmt.Errorf("wrapped: %w", nf)))
	assert.False(t, IsNotFound(errors.New("plain")))
	assert.Equal(t, `space "s1" not found`, nf.Error())

	ve := &ValidationError{Field: "name", Message: "is required"}
	assert.True(t, IsValidation(ve))
	assert.False(t, IsValidation(nf))
	assert.Equal(t, "validation error: name - is required", ve.Error())
}

func TestNotFoundErrorIs(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", &NotFoundError{Entity: "space", ID: "s1"})
	assert.True(t, errors.Is(err, &NotFoundError{Entity: "space"}))
	assert.True(t, errors.Is(err, &NotFoundError{}))
	assert.False(t, errors.Is(err, &NotFoundError{Entity: "plant"}))
}
