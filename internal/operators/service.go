package operators

import "github.com/htung0403/quan-li-ben-xe-sub001/internal/resource"

const Path = "/operators"

type Service = resource.Service[Operator, Input, Update, Filter]

func NewService(api resource.Requester) *Service {
	return resource.New[Operator, Input, Update, Filter](api, Path)
}
