// sendevent signs a synthetic checkout.session.completed event with the
// local webhook secret and posts it at a running instance. The target must
// be able to resolve the session's line items, so use a session id that
// exists in the configured Stripe test account.
package main

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/stripe/stripe-go/v82/webhook"
)

func main() {
	var (
		url     = flag.String("url", "http://localhost:8080/stripe-webhook", "webhook endpoint")
		secret  = flag.String("secret", os.Getenv("STRIPE_WEBHOOK_SECRET"), "webhook signing secret")
		session = flag.String("session", "", "checkout session id (required)")
		amount  = flag.Int64("amount", 25000, "amount_total in cents")
		email   = flag.String("email", "founder@example.com", "customer email")
		tier    = flag.String("tier", "", "optional metadata tier override")
	)
	flag.Parse()

	if *secret == "" || *session == "" {
		fmt.Fprintln(os.Stderr, "usage: sendevent -session cs_test_... [-secret whsec_...] [flags]")
		os.Exit(2)
	}

	object := map[string]any{
		"id":               *session,
		"object":           "checkout.session",
		"amount_total":     *amount,
		"customer_details": map[string]any{"email": *email},
	}
	if *tier != "" {
		object["metadata"] = map[string]string{"tier": *tier}
	}

	payload, err := json.Marshal(map[string]any{
		"id":   fmt.Sprintf("evt_local_%d", time.Now().UnixNano()),
		"type": "checkout.session.completed",
		"data": map[string]any{"object": object},
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "marshal event:", err)
		os.Exit(1)
	}

	now := time.Now()
	sig := webhook.ComputeSignature(now, payload, *secret)
	header := fmt.Sprintf("t=%d,v1=%s", now.Unix(), hex.EncodeToString(sig))

	req, err := http.NewRequest(http.MethodPost, *url, bytes.NewReader(payload))
	if err != nil {
		fmt.Fprintln(os.Stderr, "build request:", err)
		os.Exit(1)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Stripe-Signature", header)

	resp, err := (&http.Client{Timeout: 30 * time.Second}).Do(req)
	if err != nil {
		fmt.Fprintln(os.Stderr, "send:", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	fmt.Printf("%s\n%s\n", resp.Status, body)
}
