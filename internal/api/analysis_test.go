package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caloria-app/backend/config"
	"github.com/caloria-app/backend/internal/service"
)

func newAnalysisRouter(cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.TestMode)

	handler := NewAnalysisHandler(service.NewVisionService(cfg))

	router := gin.New()
	handler.RegisterRoutes(router.Group("/api/v1"))

	return router
}

func TestAnalyzeMissingImage(t *testing.T) {
	var upstreamCalls atomic.Int64
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		upstreamCalls.Add(1)
	}))
	defer ts.Close()

	router := newAnalysisRouter(&config.Config{OpenAIAPIKey: "test-key", OpenAIAPIURL: ts.URL, OpenAIModel: "gpt-4o"})

	w := postJSON(t, router, "/api/v1/foods/analyze", `{}`)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "URL da imagem é obrigatória", resp.Error)
	assert.Zero(t, upstreamCalls.Load(), "no upstream call should be attempted")
}

func TestAnalyzeMissingCredential(t *testing.T) {
	router := newAnalysisRouter(&config.Config{OpenAIModel: "gpt-4o"})

	w := postJSON(t, router, "/api/v1/foods/analyze", `{"imageUrl":"https://example.com/food.jpg"}`)

	require.Equal(t, http.StatusInternalServerError, w.Code)

	var resp struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Chave da API OpenAI não configurada", resp.Error)
}

func TestAnalyzeSuccess(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		content := "```json\n{\"name\":\"Feijoada\",\"calories\":450,\"protein\":25,\"carbs\":40,\"fat\":20,\"portion\":\"1 prato\",\"confidence\":\"alta\"}\n```"
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"choices":[{"message":{"content":%q}}]}`, content)
	}))
	defer ts.Close()

	router := newAnalysisRouter(&config.Config{OpenAIAPIKey: "test-key", OpenAIAPIURL: ts.URL, OpenAIModel: "gpt-4o"})

	w := postJSON(t, router, "/api/v1/foods/analyze", `{"imageUrl":"https://example.com/food.jpg"}`)

	require.Equal(t, http.StatusOK, w.Code)

	var resp service.FoodAnalysis
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Feijoada", resp.Name)
	assert.Equal(t, 450.0, resp.Calories)
	assert.Equal(t, "alta", resp.Confidence)
}

func TestAnalyzeUnparseableReply(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"choices":[{"message":{"content":"não sei dizer"}}]}`)
	}))
	defer ts.Close()

	router := newAnalysisRouter(&config.Config{OpenAIAPIKey: "test-key", OpenAIAPIURL: ts.URL, OpenAIModel: "gpt-4o"})

	w := postJSON(t, router, "/api/v1/foods/analyze", `{"imageUrl":"https://example.com/food.jpg"}`)

	require.Equal(t, http.StatusInternalServerError, w.Code)

	var resp struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Erro ao processar a imagem", resp.Error)
}
