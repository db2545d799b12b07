package locations

import "github.com/htung0403/quan-li-ben-xe-sub001/internal/resource"

const Path = "/locations"

type Service = resource.Service[Location, Input, Update, Filter]

func NewService(api resource.Requester) *Service {
	return resource.New[Location, Input, Update, Filter](api, Path)
}
