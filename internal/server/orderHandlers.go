package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"freshcart/internal/client"
	"freshcart/internal/model"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"
)

func (s Server) orderCreate() http.HandlerFunc {
	type request struct {
		DeliveryAddress string `json:"deliveryAddress"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		uc, ok := getUserContext(r.Context())
		if !ok {
			s.Logger.Errorf("orderCreate: Missing userContext")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		req := request{}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			s.Logger.Debugf("orderCreate: Error decoding JSON, err: %v", err)
			http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}

		entries := s.Store.GetCartItems(uc.user.ID)
		if len(entries) == 0 {
			s.Logger.Debugf("orderCreate: Empty cart for UserID: %s", uc.user.ID)
			http.Error(w, "Cart is empty", http.StatusBadRequest)
			return
		}

		total := 0
		for _, e := range entries {
			total += e.Product.Price * e.Quantity
		}

		address := req.DeliveryAddress
		if address == "" {
			address = uc.user.Address
		}

		o := s.Store.CreateOrder(model.Order{
			UserID:          uc.user.ID,
			TotalAmount:     total,
			DeliveryAddress: address,
		})
		s.Store.ClearCart(uc.user.ID)

		s.Store.CreateNotification(model.Notification{
			UserID:         uc.user.ID,
			Type:           model.NotificationTypeOrder,
			Title:          "Order placed",
			Message:        fmt.Sprintf("Your order for %d items has been placed", len(entries)),
			RelatedOrderID: o.ID,
		})
		go s.notifyOrder(o, o.Status)

		s.writeJsonResponse(w, o, http.StatusCreated)
	}
}

func (s Server) ordersGet() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uc, ok := getUserContext(r.Context())
		if !ok {
			s.Logger.Errorf("ordersGet: Missing userContext")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		s.writeJsonResponse(w, s.Store.GetUserOrders(uc.user.ID), http.StatusOK)
	}
}

func (s Server) adminOrdersGet() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.writeJsonResponse(w, s.Store.GetAllOrders(), http.StatusOK)
	}
}

func (s Server) adminOrderStatusUpdate() http.HandlerFunc {
	type request struct {
		Status string `json:"status"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		req := request{}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			s.Logger.Debugf("adminOrderStatusUpdate: Error decoding JSON, err: %v", err)
			http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}
		status, ok := model.ParseOrderStatus(req.Status)
		if !ok {
			s.Logger.Debugf("adminOrderStatusUpdate: Invalid status: %s", req.Status)
			http.Error(w, "Invalid order status", http.StatusBadRequest)
			return
		}

		orderID := mux.Vars(r)["orderID"]
		o, ok := s.Store.UpdateOrderStatus(orderID, status)
		if !ok {
			s.Logger.Debugf("adminOrderStatusUpdate: Order not found, ID: %s", orderID)
			http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
			return
		}

		s.Store.CreateNotification(model.Notification{
			UserID:         o.UserID,
			Type:           model.NotificationTypeOrder,
			Title:          "Order update",
			Message:        fmt.Sprintf("Your order is now %s", status),
			RelatedOrderID: o.ID,
		})
		go s.notifyOrder(o, status)

		s.writeJsonResponse(w, o, http.StatusOK)
	}
}

func (s Server) adminOrderDelete() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orderID := mux.Vars(r)["orderID"]
		if !s.Store.DeleteOrder(orderID) {
			s.Logger.Debugf("adminOrderDelete: Order not found, ID: %s", orderID)
			http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func (s Server) notifyOrder(o model.Order, status model.OrderStatus) {
	if err := s.Client.NotifyOrder(o, status); err != nil {
		if errors.Is(err, client.ErrNotConfigured) {
			s.Logger.Debugf("notifyOrder: Telegram not configured, skipping notification for OrderID: %s", o.ID)
			return
		}
		s.Logger.Errorf("notifyOrder: Error notifying for OrderID: %s, err: %v", o.ID, err)
	}
}
