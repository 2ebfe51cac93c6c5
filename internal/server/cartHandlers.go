package server

import (
	"encoding/json"
	"net/http"

	"freshcart/internal/model"

	"github.com/gorilla/mux"
)

func (s Server) cartGet() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uc, ok := getUserContext(r.Context())
		if !ok {
			s.Logger.Errorf("cartGet: Missing userContext")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		s.writeJsonResponse(w, s.Store.GetCartItems(uc.user.ID), http.StatusOK)
	}
}

func (s Server) cartAdd() http.HandlerFunc {
	type request struct {
		ProductID string `json:"productId"`
		Quantity  int    `json:"quantity"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		uc, ok := getUserContext(r.Context())
		if !ok {
			s.Logger.Errorf("cartAdd: Missing userContext")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		req := request{}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			s.Logger.Debugf("cartAdd: Error decoding JSON, err: %v", err)
			http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}
		if _, ok := s.Store.GetProduct(req.ProductID); !ok {
			s.Logger.Debugf("cartAdd: Product not found, ID: %s", req.ProductID)
			http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
			return
		}

		ci := s.Store.AddToCart(model.CartItem{
			UserID:    uc.user.ID,
			ProductID: req.ProductID,
			Quantity:  req.Quantity,
		})
		s.writeJsonResponse(w, ci, http.StatusCreated)
	}
}

func (s Server) cartUpdate() http.HandlerFunc {
	type request struct {
		Quantity int `json:"quantity"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		uc, ok := getUserContext(r.Context())
		if !ok {
			s.Logger.Errorf("cartUpdate: Missing userContext")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		req := request{}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			s.Logger.Debugf("cartUpdate: Error decoding JSON, err: %v", err)
			http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}

		cartItemID := mux.Vars(r)["cartItemID"]
		if existing, ok := s.Store.GetCartItem(cartItemID); !ok || existing.UserID != uc.user.ID {
			s.Logger.Debugf("cartUpdate: CartItem not found for UserID: %s, ID: %s", uc.user.ID, cartItemID)
			http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
			return
		}

		ci, ok := s.Store.UpdateCartItem(cartItemID, req.Quantity)
		if !ok {
			http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
			return
		}
		s.writeJsonResponse(w, ci, http.StatusOK)
	}
}

func (s Server) cartRemove() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uc, ok := getUserContext(r.Context())
		if !ok {
			s.Logger.Errorf("cartRemove: Missing userContext")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		cartItemID := mux.Vars(r)["cartItemID"]
		if existing, ok := s.Store.GetCartItem(cartItemID); !ok || existing.UserID != uc.user.ID {
			s.Logger.Debugf("cartRemove: CartItem not found for UserID: %s, ID: %s", uc.user.ID, cartItemID)
			http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
			return
		}

		if !s.Store.RemoveFromCart(cartItemID) {
			http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func (s Server) cartClear() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uc, ok := getUserContext(r.Context())
		if !ok {
			s.Logger.Errorf("cartClear: Missing userContext")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		s.Store.ClearCart(uc.user.ID)
		w.WriteHeader(http.StatusNoContent)
	}
}
