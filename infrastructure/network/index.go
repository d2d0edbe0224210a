package network

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// NetworkController wraps outbound JSON HTTP calls to a single upstream
// service. BaseUrl carries the scheme and host, paths are joined per call.
type NetworkController struct {
	BaseUrl string
	Client  *http.Client
}

func NewNetworkController(baseURL string) *NetworkController {
	return &NetworkController{
		BaseUrl: baseURL,
		Client:  &http.Client{Timeout: 15 * time.Second},
	}
}

// Post sends a JSON body and returns the raw response bytes and status code.
func (nc *NetworkController) Post(path string, headers *map[string]string, body any) (*[]byte, *int, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, nil, fmt.Errorf("error marshalling request body: %w", err)
	}
	req, err := http.NewRequest(http.MethodPost, nc.BaseUrl+path, bytes.NewReader(payload))
	if err != nil {
		return nil, nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if headers != nil {
		for key, value := range *headers {
			req.Header.Set(key, value)
		}
	}
	return nc.do(req)
}

// Get performs a GET request against the configured upstream.
func (nc *NetworkController) Get(path string, headers *map[string]string) (*[]byte, *int, error) {
	req, err := http.NewRequest(http.MethodGet, nc.BaseUrl+path, nil)
	if err != nil {
		return nil, nil, err
	}
	if headers != nil {
		for key, value := range *headers {
			req.Header.Set(key, value)
		}
	}
	return nc.do(req)
}

func (nc *NetworkController) do(req *http.Request) (*[]byte, *int, error) {
	client := nc.Client
	if client == nil {
		client = http.DefaultClient
	}
	res, err := client.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer res.Body.Close()
	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, &res.StatusCode, err
	}
	return &resBody, &res.StatusCode, nil
}
