package mux

import (
	"net/http"

	"holdem-ledger-server/internal/util"
)

type profileResponse struct {
	Name  string `json:"name"`
	Emoji string `json:"emoji"`
}

func (m *Mux) getRandomProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, profileResponse{
			Name:  util.GetRandomName(),
			Emoji: util.GetRandomEmoji(),
		})
	}
}
