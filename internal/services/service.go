package services

import "github.com/htung0403/quan-li-ben-xe-sub001/internal/resource"

const Path = "/services"

// Client is the CRUD client of /services (named to avoid clashing with the Service entity).
type Client = resource.Service[Service, Input, Update, Filter]

func NewClient(api resource.Requester) *Client {
	return resource.New[Service, Input, Update, Filter](api, Path)
}
