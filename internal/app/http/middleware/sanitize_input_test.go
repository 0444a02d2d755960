package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func sanitizeTestRouter(captured *map[string]interface{}) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(SanitizeInputMiddleware())
	r.POST("/echo", func(c *gin.Context) {
		var body map[string]interface{}
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		*captured = body
		c.JSON(http.StatusOK, body)
	})
	return r
}

func postJSON(t *testing.T, r *gin.Engine, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()
	buf, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/echo", bytes.NewReader(buf))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSanitize_StripsMarkupFromTopLevelStrings(t *testing.T) {
	var captured map[string]interface{}
	r := sanitizeTestRouter(&captured)

	w := postJSON(t, r, map[string]interface{}{
		"title": `hello <script>alert(1)</script>`,
	})

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "hello ", captured["title"])
}

func TestSanitize_WalksNestedContentBlocks(t *testing.T) {
	var captured map[string]interface{}
	r := sanitizeTestRouter(&captured)

	w := postJSON(t, r, map[string]interface{}{
		"content": []interface{}{
			map[string]interface{}{"type": "text", "content": `<b>bold</b> move`},
		},
	})

	require.Equal(t, http.StatusOK, w.Code)
	blocks := captured["content"].([]interface{})
	block := blocks[0].(map[string]interface{})
	require.Equal(t, "bold move", block["content"])
}

func TestSanitize_RejectsMalformedJSON(t *testing.T) {
	var captured map[string]interface{}
	r := sanitizeTestRouter(&captured)

	req := httptest.NewRequest(http.MethodPost, "/echo", bytes.NewReader([]byte(`{"broken`)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSanitize_LeavesNonJSONAlone(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(SanitizeInputMiddleware())
	r.POST("/raw", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	req := httptest.NewRequest(http.MethodPost, "/raw", bytes.NewReader([]byte("a=b")))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
}
