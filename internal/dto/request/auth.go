package request

type APIKeyAuthRequest struct {
	Key    string `json:"key"`
	Secret string `json:"secret"`
}
