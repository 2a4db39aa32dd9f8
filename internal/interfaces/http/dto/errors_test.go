package dto

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ozercanmutlu-ship-it/capdana/internal/domain/shared"
)

func TestGetHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, GetHTTPStatus(shared.ErrCodeNotFound))
	assert.Equal(t, http.StatusConflict, GetHTTPStatus(shared.ErrCodeAlreadyExists))
	assert.Equal(t, http.StatusBadRequest, GetHTTPStatus(shared.ErrCodeEmptyCart))
	assert.Equal(t, http.StatusForbidden, GetHTTPStatus(shared.ErrCodeOrderRequired))
	assert.Equal(t, http.StatusUnauthorized, GetHTTPStatus(shared.ErrCodeUnauthorized))
	assert.Equal(t, http.StatusInternalServerError, GetHTTPStatus("SOMETHING_NEW"))
}
