package operators

import (
	"net/url"
	"time"

	"github.com/htung0403/quan-li-ben-xe-sub001/internal/resource"
)

// Operator is a transport company running vehicles out of the station.
type Operator struct {
	ID             string     `json:"id"`
	Code           string     `json:"code,omitempty"`
	Name           string     `json:"name"`
	TaxCode        string     `json:"taxCode,omitempty"`
	Phone          string     `json:"phone,omitempty"`
	Email          string     `json:"email,omitempty"`
	Address        string     `json:"address,omitempty"`
	Representative string     `json:"representative,omitempty"`
	IsActive       bool       `json:"isActive"`
	CreatedAt      *time.Time `json:"createdAt,omitempty"`
	UpdatedAt      *time.Time `json:"updatedAt,omitempty"`
}

type Input struct {
	Code           string `json:"code,omitempty"`
	Name           string `json:"name"`
	TaxCode        string `json:"taxCode,omitempty"`
	Phone          string `json:"phone,omitempty"`
	Email          string `json:"email,omitempty"`
	Address        string `json:"address,omitempty"`
	Representative string `json:"representative,omitempty"`
	IsActive       *bool  `json:"isActive,omitempty"`
}

type Update struct {
	Code           *string `json:"code,omitempty"`
	Name           *string `json:"name,omitempty"`
	TaxCode        *string `json:"taxCode,omitempty"`
	Phone          *string `json:"phone,omitempty"`
	Email          *string `json:"email,omitempty"`
	Address        *string `json:"address,omitempty"`
	Representative *string `json:"representative,omitempty"`
	IsActive       *bool   `json:"isActive,omitempty"`
}

type Filter struct {
	IsActive *bool
}

func (f Filter) Query() (url.Values, error) {
	return resource.NewQuery().Bool("isActive", f.IsActive).Values()
}
