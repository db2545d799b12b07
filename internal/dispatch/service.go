package dispatch

import "github.com/htung0403/quan-li-ben-xe-sub001/internal/resource"

const Path = "/dispatch-records"

type Service = resource.Service[Record, Input, Patch, Filter]

func NewService(api resource.Requester) *Service {
	return resource.New[Record, Input, Patch, Filter](api, Path)
}
