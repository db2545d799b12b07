package drivers

import (
	"net/url"
	"time"

	"github.com/htung0403/quan-li-ben-xe-sub001/internal/resource"
)

// Driver mirrors the /drivers resource of the backend.
type Driver struct {
	ID            string     `json:"id"`
	OperatorID    string     `json:"operatorId"`
	FullName      string     `json:"fullName"`
	Phone         string     `json:"phone,omitempty"`
	IDNumber      string     `json:"idNumber,omitempty"`
	LicenseNumber string     `json:"licenseNumber,omitempty"`
	LicenseClass  string     `json:"licenseClass,omitempty"`
	LicenseExpiry string     `json:"licenseExpiry,omitempty"` // YYYY-MM-DD
	IsActive      bool       `json:"isActive"`
	CreatedAt     *time.Time `json:"createdAt,omitempty"`
	UpdatedAt     *time.Time `json:"updatedAt,omitempty"`
}

// Input is the body of POST /drivers. IsActive is left to the server default when nil.
type Input struct {
	OperatorID    string `json:"operatorId"`
	FullName      string `json:"fullName"`
	Phone         string `json:"phone,omitempty"`
	IDNumber      string `json:"idNumber,omitempty"`
	LicenseNumber string `json:"licenseNumber,omitempty"`
	LicenseClass  string `json:"licenseClass,omitempty"`
	LicenseExpiry string `json:"licenseExpiry,omitempty"`
	IsActive      *bool  `json:"isActive,omitempty"`
}

// Update is a partial update: only non-nil fields are sent.
type Update struct {
	OperatorID    *string `json:"operatorId,omitempty"`
	FullName      *string `json:"fullName,omitempty"`
	Phone         *string `json:"phone,omitempty"`
	IDNumber      *string `json:"idNumber,omitempty"`
	LicenseNumber *string `json:"licenseNumber,omitempty"`
	LicenseClass  *string `json:"licenseClass,omitempty"`
	LicenseExpiry *string `json:"licenseExpiry,omitempty"`
	IsActive      *bool   `json:"isActive,omitempty"`
}

type Filter struct {
	OperatorID *string
	IsActive   *bool
}

func (f Filter) Query() (url.Values, error) {
	return resource.NewQuery().
		String("operatorId", f.OperatorID).
		Bool("isActive", f.IsActive).
		Values()
}
