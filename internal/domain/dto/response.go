package dto

// swagger:model
type ErrorResponse struct {
	Error string `json:"error" example:"Mug not found!"`
}

type Endpoint struct {
	Path        string `json:"path"`
	Method      string `json:"method"`
	Information string `json:"information"`
}

// swagger:model
type IndexResponse struct {
	Name      string     `json:"name"`
	Endpoints []Endpoint `json:"endpoints"`
}
