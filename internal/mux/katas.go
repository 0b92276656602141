package mux

import (
	"fmt"
	"net/http"
	"strconv"

	gmux "github.com/gorilla/mux"

	"katas-server/pkg/bankocr"
	"katas-server/pkg/braces"
	"katas-server/pkg/compass"
	"katas-server/pkg/dominoes"
	"katas-server/pkg/ranges"
	"katas-server/pkg/rectangles"
	"katas-server/pkg/wraptext"
	"katas-server/pkg/zigzag"
)

func (m *Mux) getCompass() http.HandlerFunc {
	points := compass.Points()

	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, points)
	}
}

type bracesRequest struct {
	Input string `json:"input"`
}

type bracesResponse struct {
	Expansions []string `json:"expansions"`
}

func (m *Mux) postBraces() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload bracesRequest
		if !decodeRequest(w, r, &payload) {
			return
		}

		writeJSON(w, http.StatusOK, bracesResponse{Expansions: braces.Expand(payload.Input)})
	}
}

type zigZagResponse struct {
	Matrix [][]int `json:"matrix"`
}

func (m *Mux) getZigZag() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		n, err := strconv.Atoi(gmux.Vars(r)["n"])
		if err != nil {
			m.writeInputError(w, r, "zigzag", err)
			return
		}

		if n > m.options.maxZigZagSize {
			m.writeInputError(w, r, "zigzag", fmt.Errorf("n cannot be greater than %d", m.options.maxZigZagSize))
			return
		}

		matrix, err := zigzag.Matrix(n)
		if err != nil {
			m.writeInputError(w, r, "zigzag", err)
			return
		}

		writeJSON(w, http.StatusOK, zigZagResponse{Matrix: matrix})
	}
}

type dominoesRequest struct {
	Dominoes []dominoes.Tile `json:"dominoes"`
}

type dominoesResponse struct {
	CanMakeRow bool `json:"canMakeRow"`
}

func (m *Mux) postDominoes() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload dominoesRequest
		if !decodeRequest(w, r, &payload) {
			return
		}

		writeJSON(w, http.StatusOK, dominoesResponse{CanMakeRow: dominoes.CanMakeRow(payload.Dominoes)})
	}
}

type rangesRequest struct {
	Numbers []int `json:"numbers"`
}

type rangesResponse struct {
	Ranges string `json:"ranges"`
}

func (m *Mux) postRanges() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload rangesRequest
		if !decodeRequest(w, r, &payload) {
			return
		}

		writeJSON(w, http.StatusOK, rangesResponse{Ranges: ranges.Extract(payload.Numbers)})
	}
}

type bankAccountRequest struct {
	Scan string `json:"scan"`
}

type bankAccountResponse struct {
	Account int    `json:"account"`
	Digits  string `json:"digits"`
}

func (m *Mux) postBankAccount() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload bankAccountRequest
		if !decodeRequest(w, r, &payload) {
			return
		}

		account, err := bankocr.ParseAccount(payload.Scan)
		if err != nil {
			m.writeInputError(w, r, "bank-account", err)
			return
		}

		// ParseAccount succeeded, so the digits are valid
		digits, _ := bankocr.ParseDigits(payload.Scan)

		writeJSON(w, http.StatusOK, bankAccountResponse{Account: account, Digits: digits})
	}
}

type wrapRequest struct {
	Text    string `json:"text"`
	Columns *int   `json:"columns"`
}

type wrapResponse struct {
	Lines []string `json:"lines"`
}

func (m *Mux) postWrap() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload wrapRequest
		if !decodeRequest(w, r, &payload) {
			return
		}

		columns := m.options.defaultWrapColumns
		if payload.Columns != nil {
			columns = *payload.Columns
		}

		lines, err := wraptext.Wrap(payload.Text, columns)
		if err != nil {
			m.writeInputError(w, r, "wrap", err)
			return
		}

		writeJSON(w, http.StatusOK, wrapResponse{Lines: lines})
	}
}

type rectanglesRequest struct {
	Figure string `json:"figure"`
}

type rectanglesResponse struct {
	Rectangles []string `json:"rectangles"`
}

func (m *Mux) postRectangles() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload rectanglesRequest
		if !decodeRequest(w, r, &payload) {
			return
		}

		writeJSON(w, http.StatusOK, rectanglesResponse{Rectangles: rectangles.Decompose(payload.Figure)})
	}
}
