package services

import (
	"context"
	"fmt"
	"log"

	"github.com/sherryhehe/fashion-api/models"
)

// CatalogService keeps the denormalized productCount fields on brands,
// categories and styles in line with the products that reference them.
// Every reconciliation is a full recount, never an increment, so concurrent
// races leave at worst a stale count that the next recount self-heals.
type CatalogService struct {
	products ProductStore
	catalog  CatalogStore
}

func NewCatalogService(products ProductStore, catalog CatalogStore) *CatalogService {
	return &CatalogService{products: products, catalog: catalog}
}

// ReconcileCount recounts active products carrying name in the given
// dimension and stores the result on the matching catalog entity. An empty
// name is a no-op; an unknown entity is skipped by the store without error.
func (s *CatalogService) ReconcileCount(ctx context.Context, dim Dimension, name string) error {
	if name == "" {
		return nil
	}
	count, err := s.products.CountByDimension(ctx, dim, name)
	if err != nil {
		return fmt.Errorf("count products for %s %q: %w", dim, name, err)
	}
	if err := s.catalog.SetProductCount(ctx, dim, name, count); err != nil {
		return fmt.Errorf("store product count for %s %q: %w", dim, name, err)
	}
	return nil
}

// ReconcileProduct reconciles every dimension touched by a product mutation.
// prev is nil on create and next is nil on delete. An unchanged dimension is
// skipped; a changed one reconciles both the old and the new bucket, because
// the product moved between them.
//
// Counts are advisory display aggregates, so failures are logged and never
// propagated to the triggering product mutation.
func (s *CatalogService) ReconcileProduct(ctx context.Context, prev, next *models.Product) {
	for _, dim := range Dimensions {
		oldName := DimensionValue(prev, dim)
		newName := DimensionValue(next, dim)

		if oldName == newName {
			if prev != nil && next != nil {
				continue // unchanged on update, no recount needed
			}
			s.reconcileLogged(ctx, dim, oldName)
			continue
		}
		s.reconcileLogged(ctx, dim, oldName)
		s.reconcileLogged(ctx, dim, newName)
	}
}

func (s *CatalogService) reconcileLogged(ctx context.Context, dim Dimension, name string) {
	if name == "" {
		return
	}
	if err := s.ReconcileCount(ctx, dim, name); err != nil {
		log.Printf("⚠️ catalog: reconcile %s %q failed: %v", dim, name, err)
	}
}

// DimensionValue reads a product's value for one dimension; nil products
// yield the empty string.
func DimensionValue(p *models.Product, dim Dimension) string {
	if p == nil {
		return ""
	}
	switch dim {
	case DimensionBrand:
		return p.Brand
	case DimensionCategory:
		return p.Category
	case DimensionStyle:
		return p.Style
	}
	return ""
}
