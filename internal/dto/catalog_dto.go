package dto

import "soulful-home-be/pkg/catalog"

// IndexImageMessage is the payload of one catalog indexing job.
type IndexImageMessage struct {
	Image catalog.Image `json:"image"`
}

type IndexCatalogResponse struct {
	Queued  int `json:"queued"`
	Skipped int `json:"skipped"`
}
