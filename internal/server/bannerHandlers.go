package server

import (
	"encoding/json"
	"net/http"

	"freshcart/internal/model"

	"github.com/gorilla/mux"
)

func (s Server) bannersGet() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.writeJsonResponse(w, s.Store.GetActiveBanners(), http.StatusOK)
	}
}

func (s Server) adminBannersGet() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.writeJsonResponse(w, s.Store.GetAllBanners(), http.StatusOK)
	}
}

func (s Server) adminBannerCreate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		b := model.Banner{}
		if err := json.NewDecoder(r.Body).Decode(&b); err != nil {
			s.Logger.Debugf("adminBannerCreate: Error decoding JSON, err: %v", err)
			http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}
		if b.Title == "" {
			http.Error(w, "Banner title is required", http.StatusBadRequest)
			return
		}
		s.writeJsonResponse(w, s.Store.CreateBanner(b), http.StatusCreated)
	}
}

func (s Server) adminBannerUpdate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bannerID := mux.Vars(r)["bannerID"]

		upd := model.BannerUpdate{}
		if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
			s.Logger.Debugf("adminBannerUpdate: Error decoding JSON, err: %v", err)
			http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}

		b, ok := s.Store.UpdateBanner(bannerID, upd)
		if !ok {
			s.Logger.Debugf("adminBannerUpdate: Banner not found, ID: %s", bannerID)
			http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
			return
		}
		s.writeJsonResponse(w, b, http.StatusOK)
	}
}

func (s Server) adminBannerDelete() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bannerID := mux.Vars(r)["bannerID"]
		if !s.Store.DeleteBanner(bannerID) {
			s.Logger.Debugf("adminBannerDelete: Banner not found, ID: %s", bannerID)
			http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
