package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"vidtube-go/internal/metrics"
	"vidtube-go/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func whoami(c *gin.Context) {
	id, ok := GetCurrentUserID(c)
	c.JSON(http.StatusOK, gin.H{"id": id, "ok": ok})
}

func TestAuthRequired(t *testing.T) {
	tm := utils.NewTokenManager("secret", "vidtube", time.Hour)
	token, err := tm.Generate("user-1")
	require.NoError(t, err)

	r := gin.New()
	r.GET("/me", AuthRequired(tm), whoami)

	tests := []struct {
		name   string
		header string
		status int
	}{
		{"valid", "Bearer " + token, http.StatusOK},
		{"lowercase scheme", "bearer " + token, http.StatusOK},
		{"missing", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic " + token, http.StatusUnauthorized},
		{"garbage", "Bearer nope", http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.status, w.Code)
			if tt.status == http.StatusOK {
				assert.JSONEq(t, `{"id":"user-1","ok":true}`, w.Body.String())
			} else {
				assert.Contains(t, w.Body.String(), `"success":false`)
			}
		})
	}
}

func TestOptionalAuth(t *testing.T) {
	tm := utils.NewTokenManager("secret", "vidtube", time.Hour)
	token, err := tm.Generate("user-1")
	require.NoError(t, err)

	r := gin.New()
	r.GET("/video", OptionalAuth(tm), whoami)

	for header, want := range map[string]string{
		"Bearer " + token: `{"id":"user-1","ok":true}`,
		"Bearer broken":   `{"id":"","ok":false}`,
		"":                `{"id":"","ok":false}`,
	} {
		req := httptest.NewRequest(http.MethodGet, "/video", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, want, w.Body.String())
	}
}

func TestRecovery(t *testing.T) {
	r := gin.New()
	r.Use(Recovery())
	r.GET("/boom", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"statusCode":500,"message":"服务器内部错误","success":false,"errors":[]}`, w.Body.String())
}

func TestTimeout(t *testing.T) {
	r := gin.New()
	r.Use(Timeout(50 * time.Millisecond))
	r.GET("/deadline", func(c *gin.Context) {
		_, ok := c.Request.Context().Deadline()
		c.JSON(http.StatusOK, gin.H{"deadline": ok})
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/deadline", nil))
	assert.JSONEq(t, `{"deadline":true}`, w.Body.String())
}

func TestMetrics(t *testing.T) {
	r := gin.New()
	r.Use(Metrics())
	r.GET("/videos/:videoId", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	counter := metrics.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/videos/:videoId", "204")
	before := testutil.ToFloat64(counter)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/videos/abc", nil))

	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}
