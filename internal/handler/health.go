package handler

import (
	"fmt"
	"net/http"
	"time"
)

// Root is the bare liveness probe Stripe CLI tunnels and load balancers hit.
func Root(w http.ResponseWriter, r *http.Request) {
	fmt.Fprintln(w, "founder-ledger: ok")
}

func Health(w http.ResponseWriter, r *http.Request) {
	RespondJSON(w, http.StatusOK, map[string]string{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
