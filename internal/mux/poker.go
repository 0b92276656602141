package mux

import (
	"errors"
	"net/http"

	"katas-server/pkg/poker"
)

type pokerRankRequest struct {
	Hand []string `json:"hand"`
}

type pokerRankResponse struct {
	Hand  []string   `json:"hand"`
	Rank  poker.Rank `json:"rank"`
	Name  string     `json:"name"`
	Label string     `json:"label"`
}

func newPokerRankResponse(hand []string, rank poker.Rank) pokerRankResponse {
	return pokerRankResponse{
		Hand:  hand,
		Rank:  rank,
		Name:  rank.String(),
		Label: rank.Label(),
	}
}

func (m *Mux) postPokerRank() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload pokerRankRequest
		if !decodeRequest(w, r, &payload) {
			return
		}

		rank, err := poker.Evaluate(payload.Hand)
		if err != nil {
			m.writePokerError(w, r, err)
			return
		}

		m.metrics.PokerHand(rank.String())
		writeJSON(w, http.StatusOK, newPokerRankResponse(payload.Hand, rank))
	}
}

type pokerCompareRequest struct {
	A []string `json:"a"`
	B []string `json:"b"`
}

type pokerCompareResponse struct {
	Result int `json:"result"`
}

func (m *Mux) postPokerCompare() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload pokerCompareRequest
		if !decodeRequest(w, r, &payload) {
			return
		}

		result, err := poker.Compare(payload.A, payload.B)
		if err != nil {
			m.writePokerError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, pokerCompareResponse{Result: result})
	}
}

func (m *Mux) getPokerDeal() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cards, err := poker.Deal(m.dealer)
		if err != nil {
			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		rank, err := poker.EvaluateCards(cards)
		if err != nil {
			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		m.metrics.PokerHand(rank.String())
		writeJSON(w, http.StatusOK, newPokerRankResponse(cards.Strings(), rank))
	}
}

// writePokerError sends input errors back to the client and anything else as a 500
func (m *Mux) writePokerError(w http.ResponseWriter, r *http.Request, err error) {
	var inputErr poker.InputError
	if errors.As(err, &inputErr) {
		m.writeInputError(w, r, "poker", err)
		return
	}

	logger(r).WithError(err).Error("could not evaluate hand")
	writeJSONError(w, http.StatusInternalServerError, err)
}
