package errs

import (
	"net/http"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStorageKeepsCauseInChain(t *testing.T) {
	err := Storage(os.ErrPermission, "write posts.json")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrStorage)
	assert.ErrorIs(t, err, os.ErrPermission)
	assert.Contains(t, err.Error(), "write posts.json")

	assert.NoError(t, Storage(nil, "noop"))
}

func TestHTTPStatusByKind(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(Validationf("bad input")))
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(Conflictf("duplicate")))
	assert.Equal(t, http.StatusNotFound, HTTPStatus(NotFoundf("missing")))
	assert.Equal(t, http.StatusForbidden, HTTPStatus(Authorizationf("not yours")))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(Storage(os.ErrClosed, "boom")))
}
