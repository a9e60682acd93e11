package maintenance

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/vendo-server/internal/vending"
)

// parseCatalog maps the request catalog string onto a catalog kind.
func parseCatalog(raw string) (vending.CatalogKind, error) {
	switch raw {
	case string(vending.CatalogRegular):
		return vending.CatalogRegular, nil
	case string(vending.CatalogSpecial):
		return vending.CatalogSpecial, nil
	default:
		return "", huma.NewError(http.StatusBadRequest, "catalog must be regular or special")
	}
}
