package server

import (
	"net/http"

	"github.com/gorilla/mux"
)

func (s Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.Use(s.loggingMw, s.maxBytesMw)

	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/auth/request-code", s.authRequestCode()).Methods(http.MethodPost)
	api.HandleFunc("/auth/verify-code", s.authVerifyCode()).Methods(http.MethodPost)

	api.HandleFunc("/categories", s.categoriesGet()).Methods(http.MethodGet)
	api.HandleFunc("/products", s.productsGet()).Methods(http.MethodGet)
	api.HandleFunc("/products/{productID}", s.productGetOne()).Methods(http.MethodGet)
	api.HandleFunc("/banners", s.bannersGet()).Methods(http.MethodGet)

	userAPI := api.PathPrefix("").Subrouter()
	userAPI.Use(s.authMw)
	userAPI.HandleFunc("/auth/logout", s.authLogout()).Methods(http.MethodPost)
	userAPI.HandleFunc("/user", s.userGet()).Methods(http.MethodGet)
	userAPI.HandleFunc("/user", s.userUpdate()).Methods(http.MethodPut)
	userAPI.HandleFunc("/cart", s.cartGet()).Methods(http.MethodGet)
	userAPI.HandleFunc("/cart", s.cartAdd()).Methods(http.MethodPost)
	userAPI.HandleFunc("/cart", s.cartClear()).Methods(http.MethodDelete)
	userAPI.HandleFunc("/cart/{cartItemID}", s.cartUpdate()).Methods(http.MethodPut)
	userAPI.HandleFunc("/cart/{cartItemID}", s.cartRemove()).Methods(http.MethodDelete)
	userAPI.HandleFunc("/orders", s.orderCreate()).Methods(http.MethodPost)
	userAPI.HandleFunc("/orders", s.ordersGet()).Methods(http.MethodGet)
	userAPI.HandleFunc("/notifications", s.notificationsGet()).Methods(http.MethodGet)
	userAPI.HandleFunc("/notifications/count", s.notificationCount()).Methods(http.MethodGet)
	userAPI.HandleFunc("/notifications/read-all", s.notificationReadAll()).Methods(http.MethodPatch)
	userAPI.HandleFunc("/notifications/{notificationID}/read", s.notificationRead()).Methods(http.MethodPatch)

	adminAPI := api.PathPrefix("/admin").Subrouter()
	adminAPI.Use(s.adminMw)
	adminAPI.HandleFunc("/orders", s.adminOrdersGet()).Methods(http.MethodGet)
	adminAPI.HandleFunc("/orders/{orderID}/status", s.adminOrderStatusUpdate()).Methods(http.MethodPatch)
	adminAPI.HandleFunc("/orders/{orderID}", s.adminOrderDelete()).Methods(http.MethodDelete)
	adminAPI.HandleFunc("/categories", s.adminCategoryCreate()).Methods(http.MethodPost)
	adminAPI.HandleFunc("/products", s.adminProductCreate()).Methods(http.MethodPost)
	adminAPI.HandleFunc("/products/{productID}", s.adminProductUpdate()).Methods(http.MethodPatch)
	adminAPI.HandleFunc("/banners", s.adminBannersGet()).Methods(http.MethodGet)
	adminAPI.HandleFunc("/banners", s.adminBannerCreate()).Methods(http.MethodPost)
	adminAPI.HandleFunc("/banners/{bannerID}", s.adminBannerUpdate()).Methods(http.MethodPut)
	adminAPI.HandleFunc("/banners/{bannerID}", s.adminBannerDelete()).Methods(http.MethodDelete)
	adminAPI.HandleFunc("/notifications", s.adminNotificationCreate()).Methods(http.MethodPost)

	return r
}
