package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/microcosm-cc/bluemonday"
)

// SanitizeInputMiddleware strips markup from every string field of JSON
// request bodies using bluemonday. Block content still gets escaped again
// when rendered; this is the first line against stored markup.
func SanitizeInputMiddleware() gin.HandlerFunc {
	policy := bluemonday.StrictPolicy()

	return func(c *gin.Context) {
		if c.Request.Method != http.MethodPost &&
			c.Request.Method != http.MethodPut &&
			c.Request.Method != http.MethodPatch {
			c.Next()
			return
		}
		// Multipart uploads are handled by the media handler.
		if !strings.Contains(c.ContentType(), "application/json") {
			c.Next()
			return
		}

		buf, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid body"})
			return
		}
		if len(bytes.TrimSpace(buf)) == 0 {
			c.Request.Body = io.NopCloser(bytes.NewBuffer(buf))
			c.Next()
			return
		}

		var body map[string]interface{}
		if err := json.Unmarshal(buf, &body); err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Malformed JSON"})
			return
		}

		sanitizeValue(policy, body)

		newBody, _ := json.Marshal(body)
		c.Request.Body = io.NopCloser(bytes.NewBuffer(newBody))
		c.Request.ContentLength = int64(len(newBody))

		c.Next()
	}
}

// sanitizeValue walks nested objects and arrays so page content blocks are
// cleaned too, not just top-level fields.
func sanitizeValue(policy *bluemonday.Policy, v interface{}) {
	switch val := v.(type) {
	case map[string]interface{}:
		for k, inner := range val {
			if str, ok := inner.(string); ok {
				val[k] = policy.Sanitize(str)
				continue
			}
			sanitizeValue(policy, inner)
		}
	case []interface{}:
		for i, inner := range val {
			if str, ok := inner.(string); ok {
				val[i] = policy.Sanitize(str)
				continue
			}
			sanitizeValue(policy, inner)
		}
	}
}
