package dto

type CreateResourceDTO struct {
	ResourceId string
	Name       string
	Link       string
	Visibility string
	Teams      []string
}

type UpdateResourceDTO struct {
	ResourceId string
	Name       string
	Link       string
	Visibility string
	Teams      []string
}
