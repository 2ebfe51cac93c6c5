package server

import (
	"encoding/json"
	"net/http"

	"freshcart/internal/model"
)

func (s Server) userGet() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uc, ok := getUserContext(r.Context())
		if !ok {
			s.Logger.Errorf("userGet: Missing userContext")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		s.writeJsonResponse(w, uc.user, http.StatusOK)
	}
}

func (s Server) userUpdate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uc, ok := getUserContext(r.Context())
		if !ok {
			s.Logger.Errorf("userUpdate: Missing userContext")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		upd := model.UserUpdate{}
		if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
			s.Logger.Debugf("userUpdate: Error decoding JSON, err: %v", err)
			http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}

		u, ok := s.Store.UpdateUser(uc.user.ID, upd)
		if !ok {
			s.Logger.Errorf("userUpdate: UserID: %s not found", uc.user.ID)
			http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
			return
		}
		s.writeJsonResponse(w, u, http.StatusOK)
	}
}
