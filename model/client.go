package model

import (
	"fmt"

	"github.com/biter777/countries"
	"gorm.io/gorm"
)

// Client is a billable customer ("company" on the wire). Its contact block
// is copied by value onto every invoice at submit time, so later edits to a
// client never rewrite already-issued invoices.
type Client struct {
	gorm.Model
	CompanyName    string
	ContactName    string
	Address        string
	Country        string
	PinCode        string
	Email          string
	MobileNo       string
	ConsultantName string
}

// CountryAlpha2 maps the free-text country of a client to an ISO alpha-2
// code. Unknown names map to "".
func (c *Client) CountryAlpha2() string {
	cc := countries.ByName(c.Country)
	if cc == countries.Unknown {
		return ""
	}
	return cc.Alpha2()
}

// SaveClient creates or updates a client.
func (s *Store) SaveClient(c *Client) error {
	return s.db.Save(c).Error
}

// LoadClient returns one client by id.
func (s *Store) LoadClient(id any) (*Client, error) {
	var c Client
	if err := s.db.First(&c, id).Error; err != nil {
		return nil, fmt.Errorf("load client %v: %w", id, err)
	}
	return &c, nil
}

// LoadAllClients returns every client ordered by company name.
func (s *Store) LoadAllClients() ([]Client, error) {
	var cs []Client
	err := s.db.Order("LOWER(company_name) ASC, id ASC").Find(&cs).Error
	return cs, err
}

// DeleteClient removes a client. Invoices keep their copied contact block.
func (s *Store) DeleteClient(id uint) error {
	return s.db.Delete(&Client{}, id).Error
}
