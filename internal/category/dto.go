package category

type CategoriesResponse struct {
	Type       string   `json:"type"`
	Categories []string `json:"categories"`
}

type CatalogResponse struct {
	Income  []string `json:"income"`
	Expense []string `json:"expense"`
}
