package requestid

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serve(header string) (*httptest.ResponseRecorder, string) {
	gin.SetMode(gin.TestMode)
	var seen string
	r := gin.New()
	r.Use(Middleware())
	r.GET("/", func(c *gin.Context) { seen = Value(c) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set(Header, header)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w, seen
}

func TestMiddlewareKeepsIncomingID(t *testing.T) {
	w, seen := serve("edge-42.a")
	assert.Equal(t, "edge-42.a", seen)
	assert.Equal(t, "edge-42.a", w.Header().Get(Header))
}

func TestMiddlewareReplacesMissingOrUnsafeID(t *testing.T) {
	for _, in := range []string{"", "bad id with spaces", strings.Repeat("x", 65), "<script>"} {
		w, seen := serve(in)
		_, err := uuid.Parse(seen)
		require.NoError(t, err, "input %q", in)
		assert.Equal(t, seen, w.Header().Get(Header))
	}
}
