package main

import "net/http"

func buildHandler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /v1/status", handleStatus)
	mux.HandleFunc("GET /v1/variants", handleVariants)

	mux.HandleFunc("POST /v1/run", handleNewRun)
	mux.HandleFunc("GET /v1/run/{id}", handleGetRun)
	mux.HandleFunc("DELETE /v1/run/{id}", handleDeleteRun)

	mux.HandleFunc("/v1/run/{id}/connect", handleConnectWs)

	handler := useMiddleware(mux,
		corsMiddleware,
		loggingMiddleware,
	)

	return handler
}
