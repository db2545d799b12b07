package drivers

import "github.com/htung0403/quan-li-ben-xe-sub001/internal/resource"

const Path = "/drivers"

type Service = resource.Service[Driver, Input, Update, Filter]

func NewService(api resource.Requester) *Service {
	return resource.New[Driver, Input, Update, Filter](api, Path)
}
