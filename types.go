package aethokit

// SponsorTxRequest is the request body for the sponsor-tx endpoint.
type SponsorTxRequest struct {
	// Serialized transaction string, partially signed so the sponsor's
	// signature slot is still empty.
	Transaction string `json:"transaction"`
	// Optional RPC endpoint or network name. Omitted from the wire
	// payload when unset.
	RPCOrNetwork string `json:"rpcOrNetwork,omitempty"`
}

// gasAddressResponse is the response body for the get-gas-address endpoint.
type gasAddressResponse struct {
	GasAddress string `json:"gasAddress"`
}

// sponsorTxResponse is the response body for the sponsor-tx endpoint.
type sponsorTxResponse struct {
	Hash string `json:"hash"`
}
