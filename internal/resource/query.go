package resource

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// ErrInvalidFilter is returned before any request when a filter value cannot be serialized.
var ErrInvalidFilter = errors.New("invalid filter")

// Filter is a typed query for GetAll. Unset fields must not appear in the result.
type Filter interface {
	Query() (url.Values, error)
}

// NoFilter is the filter of collections that only support the full list.
type NoFilter struct{}

func (NoFilter) Query() (url.Values, error) { return nil, nil }

// QueryBuilder collects optional filter fields; nil pointers are skipped.
type QueryBuilder struct {
	values url.Values
	err    error
}

func NewQuery() *QueryBuilder {
	return &QueryBuilder{values: url.Values{}}
}

// String adds key with v unchanged when v is set. An empty or whitespace-only value
// is an error rather than an empty parameter.
func (q *QueryBuilder) String(key string, v *string) *QueryBuilder {
	if v == nil || q.err != nil {
		return q
	}
	if strings.TrimSpace(*v) == "" {
		q.err = fmt.Errorf("%w: %s is blank", ErrInvalidFilter, key)
		return q
	}
	q.values.Set(key, *v)
	return q
}

// Bool adds key as "true" or "false" when v is set.
func (q *QueryBuilder) Bool(key string, v *bool) *QueryBuilder {
	if v == nil || q.err != nil {
		return q
	}
	q.values.Set(key, strconv.FormatBool(*v))
	return q
}

func (q *QueryBuilder) Values() (url.Values, error) {
	if q.err != nil {
		return nil, q.err
	}
	if len(q.values) == 0 {
		return nil, nil
	}
	return q.values, nil
}
