package transport

// SearchPartsRequest holds the optional search filters. At least one must be
// non-empty; an empty value counts as absent.
type SearchPartsRequest struct {
	NSN          string `form:"nsn" validate:"required_without_all=NomenClature PartNumber"`
	NomenClature string `form:"nomenclature" validate:"required_without_all=NSN PartNumber"`
	PartNumber   string `form:"partnumber" validate:"required_without_all=NSN NomenClature"`
}

// PartResponse is the wire format of a catalog record.
type PartResponse struct {
	PartNumber   string `json:"PartNumber"`
	NomenClature string `json:"NomenClature"`
	NSN          string `json:"NSN"`
}

// StatusResponse is returned by the root liveness route.
type StatusResponse struct {
	Message string `json:"message"`
}
