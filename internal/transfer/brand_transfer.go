package transfer

type BrandCreation struct {
	Name string `json:"name"`
}

// BrandUpdate carries partial-update semantics: a nil field is left
// untouched.
type BrandUpdate struct {
	Name *string `json:"name"`
}
