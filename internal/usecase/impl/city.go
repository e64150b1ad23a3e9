package impl

import (
	"nomnom/internal/domain/entity"
	domainerrors "nomnom/internal/domain/errors"
	"nomnom/internal/domain/repository"
	"nomnom/internal/errors"
)

// resolveCity maps an empty id to the default city and rejects unknown ids.
func resolveCity(catalog repository.CatalogRepository, cityID string) (entity.City, error) {
	if cityID == "" {
		cityID = catalog.DefaultCityID()
	}

	city, ok := catalog.City(cityID)
	if !ok {
		return entity.City{}, errors.Wrapf(domainerrors.ErrCityNotFound, "city %q", cityID)
	}

	return city, nil
}
