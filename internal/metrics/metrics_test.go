package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecorder(t *testing.T) {
	a := assert.New(t)

	r := NewRecorder()
	r.ObserveRequest("/poker/rank", 200, 5*time.Millisecond)
	r.ObserveRequest("/poker/rank", 200, 5*time.Millisecond)
	r.ObserveRequest("/poker/rank", 400, time.Millisecond)
	r.PokerHand("Flush")
	r.InputError("poker")

	a.Equal(2.0, testutil.ToFloat64(r.httpRequests.WithLabelValues("/poker/rank", "200")))
	a.Equal(1.0, testutil.ToFloat64(r.httpRequests.WithLabelValues("/poker/rank", "400")))
	a.Equal(1.0, testutil.ToFloat64(r.pokerHands.WithLabelValues("Flush")))
	a.Equal(1.0, testutil.ToFloat64(r.inputErrors.WithLabelValues("poker")))

	count, err := testutil.GatherAndCount(r.Gatherer(), "katas_http_request_duration_seconds")
	a.NoError(err)
	a.Equal(1, count)
}

func TestRecorder_Handler(t *testing.T) {
	r := NewRecorder()
	r.PokerHand("StraightFlush")

	w := httptest.NewRecorder()
	r.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), `katas_poker_hands_evaluated_total{rank="StraightFlush"} 1`))
}
