package model

import (
	"fmt"

	"gorm.io/gorm"
)

// CatalogItem is a reusable line-item template from the item master. Drafts
// copy its name and description; quantity and rate are entered per invoice.
type CatalogItem struct {
	gorm.Model
	ItemName    string
	Description string
}

func (CatalogItem) TableName() string { return "item_master" }

// SaveCatalogItem creates or updates a catalog item.
func (s *Store) SaveCatalogItem(ci *CatalogItem) error {
	return s.db.Save(ci).Error
}

// LoadCatalogItem returns one catalog item by id.
func (s *Store) LoadCatalogItem(id any) (*CatalogItem, error) {
	var ci CatalogItem
	if err := s.db.First(&ci, id).Error; err != nil {
		return nil, fmt.Errorf("load catalog item %v: %w", id, err)
	}
	return &ci, nil
}

// LoadAllCatalogItems returns the item master ordered by name.
func (s *Store) LoadAllCatalogItems() ([]CatalogItem, error) {
	var items []CatalogItem
	err := s.db.Order("LOWER(item_name) ASC, id ASC").Find(&items).Error
	return items, err
}

// DeleteCatalogItem removes a catalog item.
func (s *Store) DeleteCatalogItem(id uint) error {
	return s.db.Delete(&CatalogItem{}, id).Error
}
