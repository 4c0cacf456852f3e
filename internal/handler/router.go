package handler

import (
	"net/http"

	"github.com/freeeve/datc-orders/internal/auth"
	"github.com/freeeve/datc-orders/internal/middleware"
	"github.com/freeeve/datc-orders/internal/service"
)

// maxBodyBytes bounds request bodies. DATC cases are a few hundred bytes.
const maxBodyBytes = 1 << 20

// NewRouter builds the API routes with global middleware applied.
func NewRouter(svc *service.ConvertService, jwtMgr *auth.JWTManager) http.Handler {
	convertHandler := NewConvertHandler(svc)
	caseHandler := NewCaseHandler(svc)
	authMw := auth.Middleware(jwtMgr)

	mux := http.NewServeMux()

	// Health
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	// Public
	mux.HandleFunc("POST /api/v1/convert", convertHandler.Convert)
	mux.HandleFunc("GET /api/v1/cases", caseHandler.ListCases)
	mux.HandleFunc("GET /api/v1/cases/{id}", caseHandler.GetCase)

	// Protected
	mux.Handle("POST /api/v1/cases", authMw(http.HandlerFunc(caseHandler.CreateCase)))
	mux.Handle("DELETE /api/v1/cases/{id}", authMw(http.HandlerFunc(caseHandler.DeleteCase)))

	return middleware.Chain(mux, middleware.MaxBytes(maxBodyBytes), middleware.Logger, middleware.CORS("*"))
}
