package vehicletypes

import "github.com/htung0403/quan-li-ben-xe-sub001/internal/resource"

const Path = "/vehicle-types"

// Service lists vehicle types without filters: GetAll only accepts resource.NoFilter.
type Service = resource.Service[VehicleType, Input, Update, resource.NoFilter]

func NewService(api resource.Requester) *Service {
	return resource.New[VehicleType, Input, Update, resource.NoFilter](api, Path)
}
