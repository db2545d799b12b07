// Package services covers the station's billable services (parking, station fee, cleaning...).
package services

import (
	"net/url"
	"time"

	"github.com/htung0403/quan-li-ben-xe-sub001/internal/resource"
)

type Service struct {
	ID        string     `json:"id"`
	Code      string     `json:"code,omitempty"`
	Name      string     `json:"name"`
	Unit      string     `json:"unit,omitempty"`
	Price     float64    `json:"price"`
	IsActive  bool       `json:"isActive"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

type Input struct {
	Code     string  `json:"code,omitempty"`
	Name     string  `json:"name"`
	Unit     string  `json:"unit,omitempty"`
	Price    float64 `json:"price"`
	IsActive *bool   `json:"isActive,omitempty"`
}

type Update struct {
	Code     *string  `json:"code,omitempty"`
	Name     *string  `json:"name,omitempty"`
	Unit     *string  `json:"unit,omitempty"`
	Price    *float64 `json:"price,omitempty"`
	IsActive *bool    `json:"isActive,omitempty"`
}

type Filter struct {
	IsActive *bool
}

func (f Filter) Query() (url.Values, error) {
	return resource.NewQuery().Bool("isActive", f.IsActive).Values()
}
