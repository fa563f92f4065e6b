package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSentinels_AreDistinct(t *testing.T) {
	all := []error{ErrorNotFound, ErrorConflict, ErrorValidation, ErrInvalidToken}
	for i, a := range all {
		for j, b := range all {
			if i != j {
				assert.False(t, errors.Is(a, b), "%v must not match %v", a, b)
			}
		}
	}
}

func TestSentinels_SurviveWrapping(t *testing.T) {
	err := fmt.Errorf("db error: %w", ErrorConflict)
	assert.ErrorIs(t, err, ErrorConflict)
	assert.NotErrorIs(t, err, ErrorNotFound)
}
