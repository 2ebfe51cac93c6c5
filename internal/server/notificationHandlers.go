package server

import (
	"encoding/json"
	"net/http"

	"freshcart/internal/model"

	"github.com/gorilla/mux"
)

func (s Server) notificationsGet() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uc, ok := getUserContext(r.Context())
		if !ok {
			s.Logger.Errorf("notificationsGet: Missing userContext")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		s.writeJsonResponse(w, s.Store.GetUserNotifications(uc.user.ID), http.StatusOK)
	}
}

func (s Server) notificationCount() http.HandlerFunc {
	type response struct {
		Count int `json:"count"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		uc, ok := getUserContext(r.Context())
		if !ok {
			s.Logger.Errorf("notificationCount: Missing userContext")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		s.writeJsonResponse(w, response{Count: s.Store.GetUnreadNotificationCount(uc.user.ID)}, http.StatusOK)
	}
}

func (s Server) notificationRead() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uc, ok := getUserContext(r.Context())
		if !ok {
			s.Logger.Errorf("notificationRead: Missing userContext")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		notificationID := mux.Vars(r)["notificationID"]
		if existing, ok := s.Store.GetNotification(notificationID); !ok || existing.UserID != uc.user.ID {
			s.Logger.Debugf("notificationRead: Notification not found for UserID: %s, ID: %s", uc.user.ID, notificationID)
			http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
			return
		}

		n, ok := s.Store.MarkNotificationAsRead(notificationID)
		if !ok {
			http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
			return
		}
		s.writeJsonResponse(w, n, http.StatusOK)
	}
}

func (s Server) notificationReadAll() http.HandlerFunc {
	type response struct {
		Success bool `json:"success"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		uc, ok := getUserContext(r.Context())
		if !ok {
			s.Logger.Errorf("notificationReadAll: Missing userContext")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		s.Store.MarkAllNotificationsAsRead(uc.user.ID)
		s.writeJsonResponse(w, response{Success: true}, http.StatusOK)
	}
}

func (s Server) adminNotificationCreate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		n := model.Notification{}
		if err := json.NewDecoder(r.Body).Decode(&n); err != nil {
			s.Logger.Debugf("adminNotificationCreate: Error decoding JSON, err: %v", err)
			http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}
		if n.Title == "" || n.Message == "" {
			http.Error(w, "Notification title and message are required", http.StatusBadRequest)
			return
		}
		if _, ok := s.Store.GetUser(n.UserID); !ok {
			s.Logger.Debugf("adminNotificationCreate: User not found, ID: %s", n.UserID)
			http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
			return
		}
		s.writeJsonResponse(w, s.Store.CreateNotification(n), http.StatusCreated)
	}
}
