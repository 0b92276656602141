package mux

import (
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"

	"katas-server/internal/rng"
	"katas-server/pkg/deck"
	"katas-server/pkg/poker"
)

func TestMux_postPokerRank(t *testing.T) {
	a := assert.New(t)

	m := NewMux("")
	ts := httptest.NewServer(m)
	defer ts.Close()

	var resp pokerRankResponse
	assertPost(t, ts, "/poker/rank", pokerRankRequest{Hand: []string{"A♠", "4♠", "3♠", "5♠", "2♠"}}, &resp, 200)
	a.Equal(poker.StraightFlush, resp.Rank)
	a.Equal("StraightFlush", resp.Name)
	a.Equal("Straight flush", resp.Label)
	a.Equal([]string{"A♠", "4♠", "3♠", "5♠", "2♠"}, resp.Hand)

	assertPost(t, ts, "/poker/rank", `{"hand":["2h","4d","4h","Ad","As"]}`, &resp, 200)
	a.Equal(poker.TwoPairs, resp.Rank)

	var errObj errorResponse
	assertPost(t, ts, "/poker/rank", pokerRankRequest{Hand: []string{"A♠", "4♠"}}, &errObj, 400)
	a.Equal("invalid hand [A♠ 4♠]: a hand must have exactly 5 cards, got 2", errObj.Message)

	assertPost(t, ts, "/poker/rank", pokerRankRequest{Hand: []string{"A♠", "4♠", "3♠", "5♠", "A♠"}}, &errObj, 400)
	a.Equal("invalid hand [A♠ 4♠ 3♠ 5♠ A♠]: duplicate card A♠ at position 5", errObj.Message)

	a.Equal(1.0, counterValue(t, m, `katas_poker_hands_evaluated_total{rank="StraightFlush"}`))
	a.Equal(2.0, counterValue(t, m, `katas_input_errors_total{kata="poker"}`))
}

func TestMux_postPokerCompare(t *testing.T) {
	a := assert.New(t)

	ts := httptest.NewServer(NewMux(""))
	defer ts.Close()

	var resp pokerCompareResponse
	assertPost(t, ts, "/poker/compare", pokerCompareRequest{
		A: []string{"A♥", "A♠", "3♦", "7♥", "9♣"},
		B: []string{"K♥", "K♠", "3♣", "7♦", "9♦"},
	}, &resp, 200)
	a.Equal(1, resp.Result)

	var errObj errorResponse
	assertPost(t, ts, "/poker/compare", pokerCompareRequest{
		A: []string{"A♥", "A♠", "3♦", "7♥", "9♣"},
		B: []string{"K♥", "K♠", "3♣", "7♦", "9?"},
	}, &errObj, 400)
	a.Equal(`invalid hand [K♥ K♠ 3♣ 7♦ 9?]: unrecognized card "9?" at position 5`, errObj.Message)
}

func TestMux_getPokerDeal(t *testing.T) {
	a := assert.New(t)

	m := NewMux("")
	m.dealer = rng.Seeded(3)
	ts := httptest.NewServer(m)
	defer ts.Close()

	var resp pokerRankResponse
	assertGet(t, ts, "/poker/deal", &resp, http.StatusOK)
	a.Len(resp.Hand, poker.HandSize)

	rank, err := poker.Evaluate(resp.Hand)
	a.NoError(err)
	a.Equal(rank, resp.Rank)
	a.Equal(rank.String(), resp.Name)

	cards, err := deck.ParseCards(resp.Hand)
	a.NoError(err)
	a.True(sort.IsSorted(cards), cards.String())
}
