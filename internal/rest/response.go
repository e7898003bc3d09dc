package rest

// ResponseError represent the response error struct
type ResponseError struct {
	Message string `json:"message"`
}

// PricingErrorResponse is the error body of the price endpoint. Existing
// clients read the "error" key.
type PricingErrorResponse struct {
	Error string `json:"error"`
}
