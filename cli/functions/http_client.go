package functions

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"

	"github.com/appspec/harness/cli/config"
)

func request[T any](method, route string, payload any) *T {
	var (
		_, ctx = config.GetCurrentContext()
		req    *http.Request
		err    error
	)
	if payload == nil {
		req, err = http.NewRequest(method, ctx.Endpoint+route, nil)
	} else {
		payloadBytes, jsonErr := json.Marshal(payload)
		if jsonErr != nil {
			log.Fatalf("Error in request JSON marshalling: %s", jsonErr)
		}
		req, err = http.NewRequest(method, ctx.Endpoint+route, bytes.NewReader(payloadBytes))
	}
	if err != nil {
		log.Fatalf("Error preparing request: %s", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if ctx.MasterKey != "" {
		req.Header.Set("Authorization", "Bearer "+ctx.MasterKey)
	}
	res, err := http.DefaultClient.Do(req)
	if err != nil {
		log.Fatalf("Error executing request: %s", err)
	}
	defer res.Body.Close()
	resBodyBytes, err := io.ReadAll(res.Body)
	if err != nil {
		log.Fatalf("Error reading response body: %s", err)
	}
	if res.StatusCode >= http.StatusMultipleChoices {
		log.Fatalf("Error response status code %d, body: %s", res.StatusCode, string(resBodyBytes))
	}
	body := new(T)
	if len(resBodyBytes) > 0 {
		if err := json.Unmarshal(resBodyBytes, body); err != nil {
			log.Fatalf("Error unmarshalling JSON: %s", err)
		}
	}
	return body
}

// requestRaw fetches a route and returns the raw body, used for
// non-JSON payloads like rendered TOML configs.
func requestRaw(method, route string) []byte {
	_, ctx := config.GetCurrentContext()
	req, err := http.NewRequest(method, ctx.Endpoint+route, nil)
	if err != nil {
		log.Fatalf("Error preparing request: %s", err)
	}
	if ctx.MasterKey != "" {
		req.Header.Set("Authorization", "Bearer "+ctx.MasterKey)
	}
	res, err := http.DefaultClient.Do(req)
	if err != nil {
		log.Fatalf("Error executing request: %s", err)
	}
	defer res.Body.Close()
	resBodyBytes, err := io.ReadAll(res.Body)
	if err != nil {
		log.Fatalf("Error reading response body: %s", err)
	}
	if res.StatusCode != http.StatusOK {
		log.Fatalf("Error response status code %d, body: %s", res.StatusCode, string(resBodyBytes))
	}
	return resBodyBytes
}
