package aethokit

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultBaseURL is the endpoint of the hosted Aethokit service.
const DefaultBaseURL = "https://aethokit.onrender.com/api/"

// Config holds the settings used to construct a Client.
type Config struct {
	// GasKey is the secret identifying the caller's sponsorship account.
	// Required; sent on every request in the x-gas-key header.
	GasKey string
	// RPCOrNetwork optionally tells the service which network or RPC
	// endpoint to broadcast sponsored transactions on. The value is
	// passed through opaquely; accepted values are defined by the
	// service.
	RPCOrNetwork string
	// BaseURL overrides DefaultBaseURL, e.g. to point the client at a
	// self-hosted instance of the service.
	BaseURL string
	// HTTPClient overrides the transport used for requests. The
	// standard *http.Client satisfies the interface.
	HTTPClient HTTPClient
}

// Client is a client for the Aethokit Gas Sponsorship API. Its
// configuration is fixed at construction and it is safe for concurrent
// use.
type Client struct {
	gasKey       string
	rpcOrNetwork string
	baseURL      *url.URL
	http         HTTPClient
}

// New creates a Client from the given configuration. It returns
// ErrMissingGasKey if the gas key is empty or whitespace-only. No
// network I/O is performed.
func New(config Config) (*Client, error) {
	if strings.TrimSpace(config.GasKey) == "" {
		return nil, ErrMissingGasKey
	}

	base := config.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	baseURL, err := url.Parse(base)
	if err != nil {
		return nil, err
	}

	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: 30 * time.Second,
		}
	}

	return &Client{
		gasKey:       config.GasKey,
		rpcOrNetwork: config.RPCOrNetwork,
		baseURL:      baseURL,
		http:         httpClient,
	}, nil
}

// GetGasAddress retrieves the funding address of the gas tank
// associated with the client's gas key. Sponsored transactions must
// name this address as their fee payer.
func (c *Client) GetGasAddress(ctx context.Context) (string, error) {
	var resp gasAddressResponse
	if err := c.do(ctx, http.MethodGet, "get-gas-address", nil, &resp); err != nil {
		return "", err
	}
	if resp.GasAddress == "" {
		return "", &DecodeError{Err: errMissingField("gasAddress")}
	}
	return resp.GasAddress, nil
}

// SponsorTx submits a partially-signed serialized transaction for
// sponsorship. The service co-signs it as fee payer and broadcasts it,
// returning the resulting transaction hash.
func (c *Client) SponsorTx(ctx context.Context, tx string) (string, error) {
	req := SponsorTxRequest{
		Transaction:  tx,
		RPCOrNetwork: c.rpcOrNetwork,
	}
	var resp sponsorTxResponse
	if err := c.do(ctx, http.MethodPost, "sponsor-tx", &req, &resp); err != nil {
		return "", err
	}
	if resp.Hash == "" {
		return "", &DecodeError{Err: errMissingField("hash")}
	}
	return resp.Hash, nil
}
