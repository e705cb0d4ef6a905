package domain

// CatalogLoader reads the initial store catalog.
type CatalogLoader interface {
	Load(path string) (CatalogConfig, error)
}
