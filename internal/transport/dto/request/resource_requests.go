package request

type CreateResourceRequest struct {
	Name       string   `json:"name"`
	Link       string   `json:"link"`
	Visibility string   `json:"visibility"`
	Teams      []string `json:"teams"`
}

type UpdateResourceRequest struct {
	ResourceId string   `json:"-"`
	Name       string   `json:"name"`
	Link       string   `json:"link"`
	Visibility string   `json:"visibility"`
	Teams      []string `json:"teams"`
}
