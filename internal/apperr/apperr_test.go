package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindNotFound, KindOf(NotFound("x")))
	assert.Equal(t, KindConflict, KindOf(Conflict("x")))
	assert.Equal(t, Kind(""), KindOf(errors.New("plain")))

	// kinds survive wrapping
	wrapped := fmt.Errorf("submit review: %w", Forbidden("not your order"))
	assert.Equal(t, KindForbidden, KindOf(wrapped))
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, 404, HTTPStatus(NotFound("x")))
	assert.Equal(t, 403, HTTPStatus(Forbidden("x")))
	assert.Equal(t, 409, HTTPStatus(InvalidState("x")))
	assert.Equal(t, 409, HTTPStatus(Conflict("x")))
	assert.Equal(t, 400, HTTPStatus(Validation("x")))
	assert.Equal(t, 500, HTTPStatus(errors.New("plain")))
}
