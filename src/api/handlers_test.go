package api_test

import (
	"encoding/binary"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/lost-woods/uniform/src/api"
	"github.com/lost-woods/uniform/src/rng"
)

type uint32CounterReader struct {
	next uint32
	buf  [4]byte
	off  int
}

func (r *uint32CounterReader) Read(p []byte) (int, error) {
	n := 0
	for n < len(p) {
		if r.off == 0 {
			binary.BigEndian.PutUint32(r.buf[:], r.next)
			r.next++
		}
		copied := copy(p[n:], r.buf[r.off:])
		n += copied
		r.off = (r.off + copied) % 4
	}
	return n, nil
}

var uuidV4Re = regexp.MustCompile(`(?i)^[0-9a-f]{8}-[0-9a-f]{4}-4[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)

func newTestHandlers(healthy bool) *api.Handlers {
	gin.SetMode(gin.TestMode)

	rr := &uint32CounterReader{next: 1}
	health := rng.NewHealth()
	if healthy {
		health.Set(true, "")
	} else {
		health.Set(false, "source check failed")
	}

	return api.NewHandlers(rr, health, zap.NewNop().Sugar())
}

func TestHandlers_AcceptHeaderControlsJSON(t *testing.T) {
	h := newTestHandlers(true)

	// JSON request
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/?min=1&max=3", nil)
	c.Request.Header.Set("Accept", "application/json")
	h.RandomNumber(c)

	if w.Code != 200 {
		t.Fatalf("json expected 200 got %d: %s", w.Code, w.Body.String())
	}
	body := w.Body.String()
	if !strings.Contains(body, "\"request_id\"") {
		t.Fatalf("json response missing request_id: %s", body)
	}

	// Extract request_id very simply (we avoid JSON decode because output shape might change slightly)
	rid := extractJSONField(body, "request_id")
	if rid == "" || !uuidV4Re.MatchString(rid) {
		t.Fatalf("invalid request_id: %q body=%s", rid, body)
	}

	// Plain text request (no Accept json)
	w2 := httptest.NewRecorder()
	c2, _ := gin.CreateTestContext(w2)
	c2.Request = httptest.NewRequest("GET", "/?min=1&max=3", nil)
	h.RandomNumber(c2)

	if w2.Code != 200 {
		t.Fatalf("text expected 200 got %d: %s", w2.Code, w2.Body.String())
	}
	body2 := w2.Body.String()
	if !strings.Contains(body2, "request_id:") {
		t.Fatalf("text response missing request_id: %s", body2)
	}
}

func TestRandomUniform_KnownDraw(t *testing.T) {
	h := newTestHandlers(true)

	// The counter's first draw is 1; for limit 10 the fixed-point product
	// is 0xA with fraction 10, fast path, integer part 0.
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/uniform?limit=10", nil)
	c.Request.Header.Set("Accept", "application/json")
	h.RandomUniform(c)

	require.Equal(t, 200, w.Code, w.Body.String())
	body := w.Body.String()
	require.Contains(t, body, `"limit":10`)
	require.Contains(t, body, `"number":0`)
	require.Regexp(t, uuidV4Re, extractJSONField(body, "request_id"))
}

func TestRandomUniform_ZeroLimitReturnsZero(t *testing.T) {
	h := newTestHandlers(true)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/uniform?limit=0", nil)
	c.Request.Header.Set("Accept", "application/json")
	h.RandomUniform(c)

	require.Equal(t, 200, w.Code, w.Body.String())
	require.Contains(t, w.Body.String(), `"number":0`)
}

func TestRandomUniform_RejectsBadLimit(t *testing.T) {
	h := newTestHandlers(true)

	for _, q := range []string{"limit=-1", "limit=abc", "limit=4294967296"} {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest("GET", "/uniform?"+q, nil)
		h.RandomUniform(c)

		require.Equal(t, 400, w.Code, "query %q: %s", q, w.Body.String())
	}
}

func TestHandlers_UnhealthySourceRefused(t *testing.T) {
	h := newTestHandlers(false)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/uniform?limit=10", nil)
	h.RandomUniform(c)

	require.Equal(t, 503, w.Code, w.Body.String())
	require.Contains(t, w.Body.String(), "RNG unhealthy")
}

func extractJSONField(body string, field string) string {
	// naive extractor for `"field":"value"`
	needle := `"` + field + `":"`
	i := strings.Index(body, needle)
	if i < 0 {
		return ""
	}
	start := i + len(needle)
	end := strings.Index(body[start:], `"`)
	if end < 0 {
		return ""
	}
	return body[start : start+end]
}
