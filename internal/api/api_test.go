package api_test

import (
	"errors"
	"math"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KillianGolds/ds-serverlessREST-lab/internal/api"
)

func TestCreateResponse(t *testing.T) {
	t.Run("encodes body as json", func(t *testing.T) {
		resp := api.CreateResponse(http.StatusOK, map[string]interface{}{"data": map[string]interface{}{"id": 1}})

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.JSONEq(t, `{"data":{"id":1}}`, resp.Body)
		assert.Equal(t, "application/json", resp.Headers["Content-Type"])
	})

	t.Run("falls back to 500 when body cannot be encoded", func(t *testing.T) {
		resp := api.CreateResponse(http.StatusOK, map[string]interface{}{"bad": math.NaN()})

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		assert.JSONEq(t, `{"error":"Internal server error encoding response"}`, resp.Body)
		assert.Equal(t, "application/json", resp.Headers["Content-Type"])
	})
}

func TestMessage(t *testing.T) {
	resp := api.Message(http.StatusNotFound, "Missing movie Id")

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.JSONEq(t, `{"Message":"Missing movie Id"}`, resp.Body)
}

func TestError(t *testing.T) {
	resp := api.Error(errors.New("ResourceNotFoundException: table missing"))

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.JSONEq(t, `{"error":"ResourceNotFoundException: table missing"}`, resp.Body)
}
