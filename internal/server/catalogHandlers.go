package server

import (
	"encoding/json"
	"net/http"

	"freshcart/internal/model"

	"github.com/gorilla/mux"
)

func (s Server) categoriesGet() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.writeJsonResponse(w, s.Store.GetCategories(), http.StatusOK)
	}
}

func (s Server) productsGet() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		var ps []model.Product
		switch {
		case q.Get("popular") == "true":
			ps = s.Store.GetPopularProducts()
		case q.Get("category") != "":
			ps = s.Store.GetProductsByCategory(q.Get("category"))
		case q.Get("search") != "":
			ps = s.Store.SearchProducts(q.Get("search"))
		default:
			ps = s.Store.GetProducts()
		}
		if ps == nil {
			ps = []model.Product{}
		}
		s.writeJsonResponse(w, ps, http.StatusOK)
	}
}

func (s Server) productGetOne() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		productID := mux.Vars(r)["productID"]
		p, ok := s.Store.GetProduct(productID)
		if !ok {
			s.Logger.Debugf("productGetOne: Product not found, ID: %s", productID)
			http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
			return
		}
		s.writeJsonResponse(w, p, http.StatusOK)
	}
}

func (s Server) adminCategoryCreate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := model.Category{}
		if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
			s.Logger.Debugf("adminCategoryCreate: Error decoding JSON, err: %v", err)
			http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}
		if c.Name == "" || c.Slug == "" {
			http.Error(w, "Category name and slug are required", http.StatusBadRequest)
			return
		}
		s.writeJsonResponse(w, s.Store.CreateCategory(c), http.StatusCreated)
	}
}

func (s Server) adminProductCreate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p := model.Product{}
		if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
			s.Logger.Debugf("adminProductCreate: Error decoding JSON, err: %v", err)
			http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}
		if p.Name == "" || p.Price < 0 {
			http.Error(w, "Product name is required and price must not be negative", http.StatusBadRequest)
			return
		}
		s.writeJsonResponse(w, s.Store.CreateProduct(p), http.StatusCreated)
	}
}

func (s Server) adminProductUpdate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		productID := mux.Vars(r)["productID"]

		upd := model.ProductUpdate{}
		if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
			s.Logger.Debugf("adminProductUpdate: Error decoding JSON, err: %v", err)
			http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}

		p, ok := s.Store.UpdateProduct(productID, upd)
		if !ok {
			s.Logger.Debugf("adminProductUpdate: Product not found, ID: %s", productID)
			http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
			return
		}
		s.writeJsonResponse(w, p, http.StatusOK)
	}
}
