package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raohamdcreator-bit/verity/internal/models"
)

func newTestRouter(t *testing.T) (*gin.Engine, *Handler) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	handler := NewHandler(nil, nil, nil, nil, nil)

	router := gin.New()
	router.GET("/health", handler.Health)
	router.POST("/compare", handler.Compare)
	router.POST("/phrases", handler.Phrases)
	return router, handler
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHealthEndpoint(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "healthy")
}

func TestCompareEndpoint(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/compare", models.CompareRequest{
		TextA: "Write a product description for wireless headphones",
		TextB: "Write a product description for wireless headphones",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var detail models.DetailedSimilarity
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &detail))
	assert.Equal(t, 100, detail.Overall)
	assert.Equal(t, 100, detail.Breakdown.Jaccard)
}

func TestCompareEndpointStripsComments(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/compare", models.CompareRequest{
		TextA:    "function add(a, b) { return a + b; } // quick sum",
		TextB:    "function add(a, b) { return a + b; } // different note",
		Language: "javascript",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var detail models.DetailedSimilarity
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &detail))
	assert.Equal(t, 100, detail.Overall)
}

func TestCompareEndpointInvalidBody(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/compare", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_REQUEST")
}

func TestPhrasesEndpoint(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/phrases", models.PhrasesRequest{
		TextA:     "the quick brown fox jumps over the fence",
		TextB:     "the quick brown fox runs under the fence",
		MinLength: 5,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.PhrasesResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, []string{"the quick brown fox"}, resp.Phrases)
}
