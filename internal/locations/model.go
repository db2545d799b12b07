package locations

import (
	"net/url"
	"time"

	"github.com/htung0403/quan-li-ben-xe-sub001/internal/resource"
)

// Location is a station, stop or terminal a route can touch.
type Location struct {
	ID        string     `json:"id"`
	Code      string     `json:"code,omitempty"`
	Name      string     `json:"name"`
	Province  string     `json:"province"`
	District  string     `json:"district,omitempty"`
	Address   string     `json:"address,omitempty"`
	IsActive  bool       `json:"isActive"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

type Input struct {
	Code     string `json:"code,omitempty"`
	Name     string `json:"name"`
	Province string `json:"province"`
	District string `json:"district,omitempty"`
	Address  string `json:"address,omitempty"`
	IsActive *bool  `json:"isActive,omitempty"`
}

type Update struct {
	Code     *string `json:"code,omitempty"`
	Name     *string `json:"name,omitempty"`
	Province *string `json:"province,omitempty"`
	District *string `json:"district,omitempty"`
	Address  *string `json:"address,omitempty"`
	IsActive *bool   `json:"isActive,omitempty"`
}

type Filter struct {
	Province *string
	IsActive *bool
}

func (f Filter) Query() (url.Values, error) {
	return resource.NewQuery().
		String("province", f.Province).
		Bool("isActive", f.IsActive).
		Values()
}
