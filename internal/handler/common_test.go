package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetUserID(t *testing.T) {
	e := echo.New()

	newCtx := func(v interface{}) echo.Context {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		c := e.NewContext(req, httptest.NewRecorder())
		if v != nil {
			c.Set("user_id", v)
		}
		return c
	}

	for _, v := range []interface{}{uint64(7), int(7), int64(7), float64(7), "7"} {
		got, err := getUserID(newCtx(v))
		require.NoError(t, err)
		assert.Equal(t, uint64(7), got)
	}

	_, err := getUserID(newCtx(nil))
	assert.Error(t, err)

	_, err = getUserID(newCtx("not-a-number"))
	assert.Error(t, err)
}
