package catalogitem

// Repository stores catalog items keyed by their [ID].
type Repository interface {
	GetCatalogItem(id ID) (CatalogItem, error)
	SaveCatalogItem(item CatalogItem) error
	ListCatalogItems() ([]CatalogItem, error)
	CountCatalogItems() (int, error)
}
