package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/tonearm/tonearm/internal/api/recovery"
	"github.com/tonearm/tonearm/internal/metrics"
	"github.com/tonearm/tonearm/internal/services"
	"github.com/tonearm/tonearm/internal/store"
)

// RouterDeps carries everything the router needs. IsHealthy and Metrics are
// optional.
type RouterDeps struct {
	Store     store.Store
	IsHealthy func() bool
	Metrics   http.Handler
}

// NewRouter creates the HTTP router with all API routes.
func NewRouter(deps RouterDeps) *mux.Router {
	router := mux.NewRouter()

	router.Use(recovery.Middleware)
	router.Use(metrics.Middleware)

	userSvc := services.NewUserService(deps.Store)
	artistSvc := services.NewArtistService(deps.Store)
	membershipSvc := services.NewMembershipService(deps.Store)
	transactionSvc := services.NewTransactionService(deps.Store)

	healthHandler := NewHealthHandler(deps.IsHealthy)
	userHandler := NewUserHandler(userSvc)
	artistHandler := NewArtistHandler(artistSvc)
	membershipHandler := NewMembershipHandler(membershipSvc)
	transactionHandler := NewTransactionHandler(transactionSvc)

	// Health endpoint
	router.HandleFunc("/v1/health", healthHandler.CheckHealth).Methods("GET")

	// Metrics endpoint
	if deps.Metrics != nil {
		router.Handle("/metrics", deps.Metrics).Methods("GET")
	}

	// User endpoints
	router.HandleFunc("/v1/users", userHandler.ListUsers).Methods("GET")
	router.HandleFunc("/v1/users", userHandler.CreateUser).Methods("POST")
	router.HandleFunc("/v1/users/{id}", userHandler.GetUser).Methods("GET")
	router.HandleFunc("/v1/users/{id}", userHandler.UpdateUser).Methods("PUT")
	router.HandleFunc("/v1/users/{id}", userHandler.DeleteUser).Methods("DELETE")
	router.HandleFunc("/v1/users/{id}/balance", transactionHandler.UserBalance).Methods("GET")

	// Artist endpoints
	router.HandleFunc("/v1/artists", artistHandler.ListArtists).Methods("GET")
	router.HandleFunc("/v1/artists", artistHandler.CreateArtist).Methods("POST")
	router.HandleFunc("/v1/artists/stats", artistHandler.ArtistStats).Methods("GET")
	router.HandleFunc("/v1/artists/{id}", artistHandler.GetArtist).Methods("GET")
	router.HandleFunc("/v1/artists/{id}", artistHandler.UpdateArtist).Methods("PUT")
	router.HandleFunc("/v1/artists/{id}", artistHandler.DeleteArtist).Methods("DELETE")

	// Membership endpoints
	router.HandleFunc("/v1/memberships", membershipHandler.ListMemberships).Methods("GET")
	router.HandleFunc("/v1/memberships", membershipHandler.CreateMembership).Methods("POST")
	router.HandleFunc("/v1/memberships/stats", membershipHandler.MembershipStats).Methods("GET")
	router.HandleFunc("/v1/memberships/{id}", membershipHandler.GetMembership).Methods("GET")
	router.HandleFunc("/v1/memberships/{id}", membershipHandler.UpdateMembership).Methods("PUT")
	router.HandleFunc("/v1/memberships/{id}", membershipHandler.DeleteMembership).Methods("DELETE")

	// Transaction endpoints
	router.HandleFunc("/v1/transactions", transactionHandler.ListTransactions).Methods("GET")
	router.HandleFunc("/v1/transactions", transactionHandler.CreateTransaction).Methods("POST")
	router.HandleFunc("/v1/transactions/stats", transactionHandler.TransactionStats).Methods("GET")
	router.HandleFunc("/v1/transactions/{id}", transactionHandler.GetTransaction).Methods("GET")
	router.HandleFunc("/v1/transactions/{id}", transactionHandler.UpdateTransaction).Methods("PUT")
	router.HandleFunc("/v1/transactions/{id}/status", transactionHandler.SetTransactionStatus).Methods("PATCH")
	router.HandleFunc("/v1/transactions/{id}", transactionHandler.DeleteTransaction).Methods("DELETE")

	return router
}
