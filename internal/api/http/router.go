// Package http exposes the rental core over a JSON REST surface.
package http

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"fleetrent-backend/internal/service"
)

// NewRouter wires all handlers onto a mux router with the standard
// middleware chain.
func NewRouter(
	catalogSvc service.CatalogService,
	customerSvc service.CustomerService,
	rentalSvc service.RentalService,
	paymentSvc service.PaymentService,
	querySvc service.QueryService,
) *mux.Router {
	catalog := NewCatalogHandler(catalogSvc, querySvc)
	customers := NewCustomerHandler(customerSvc, querySvc)
	rentals := NewRentalHandler(rentalSvc, querySvc)
	payments := NewPaymentHandler(paymentSvc, querySvc)

	r := mux.NewRouter()
	r.Use(RequestID, Logging, Metrics)

	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/manufacturers", catalog.ListManufacturers).Methods(http.MethodGet)
	api.HandleFunc("/manufacturers", catalog.CreateManufacturer).Methods(http.MethodPost)
	api.HandleFunc("/manufacturers/{id:[0-9]+}", catalog.GetManufacturer).Methods(http.MethodGet)
	api.HandleFunc("/manufacturers/{id:[0-9]+}", catalog.UpdateManufacturer).Methods(http.MethodPut)
	api.HandleFunc("/manufacturers/{id:[0-9]+}", catalog.DeleteManufacturer).Methods(http.MethodDelete)

	api.HandleFunc("/vehicles", catalog.ListVehicles).Methods(http.MethodGet)
	api.HandleFunc("/vehicles", catalog.CreateVehicle).Methods(http.MethodPost)
	api.HandleFunc("/vehicles/{id:[0-9]+}", catalog.GetVehicle).Methods(http.MethodGet)
	api.HandleFunc("/vehicles/{id:[0-9]+}", catalog.UpdateVehicle).Methods(http.MethodPut)
	api.HandleFunc("/vehicles/{id:[0-9]+}", catalog.DeleteVehicle).Methods(http.MethodDelete)
	api.HandleFunc("/vehicles/{id:[0-9]+}/odometer", catalog.RecordOdometer).Methods(http.MethodPut)

	api.HandleFunc("/customers", customers.List).Methods(http.MethodGet)
	api.HandleFunc("/customers", customers.Create).Methods(http.MethodPost)
	api.HandleFunc("/customers/{id:[0-9]+}", customers.Get).Methods(http.MethodGet)
	api.HandleFunc("/customers/{id:[0-9]+}", customers.Update).Methods(http.MethodPut)
	api.HandleFunc("/customers/{id:[0-9]+}", customers.Delete).Methods(http.MethodDelete)

	api.HandleFunc("/rentals", rentals.List).Methods(http.MethodGet)
	api.HandleFunc("/rentals", rentals.Open).Methods(http.MethodPost)
	api.HandleFunc("/rentals/{id:[0-9]+}", rentals.Get).Methods(http.MethodGet)
	api.HandleFunc("/rentals/{id:[0-9]+}", rentals.Delete).Methods(http.MethodDelete)
	api.HandleFunc("/rentals/{id:[0-9]+}/return", rentals.Return).Methods(http.MethodPut)

	api.HandleFunc("/payments", payments.List).Methods(http.MethodGet)
	api.HandleFunc("/payments", payments.Record).Methods(http.MethodPost)
	api.HandleFunc("/payments/{id:[0-9]+}", payments.Get).Methods(http.MethodGet)
	api.HandleFunc("/payments/{id:[0-9]+}/reverse", payments.Reverse).Methods(http.MethodPost)

	return r
}
