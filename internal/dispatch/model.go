// Package dispatch models the station's dispatch board: one record per vehicle turn,
// moving from entry to departure.
package dispatch

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/htung0403/quan-li-ben-xe-sub001/internal/resource"
)

type Status string

const (
	StatusEntered           Status = "entered"
	StatusPassengersDropped Status = "passengers_dropped"
	StatusPermitIssued      Status = "permit_issued"
	StatusPaid              Status = "paid"
	StatusDepartureOrdered  Status = "departure_ordered"
	StatusDeparted          Status = "departed"
	StatusCancelled         Status = "cancelled"
)

// Statuses in board order.
var Statuses = []Status{
	StatusEntered,
	StatusPassengersDropped,
	StatusPermitIssued,
	StatusPaid,
	StatusDepartureOrdered,
	StatusDeparted,
	StatusCancelled,
}

func (s Status) Valid() bool {
	for _, v := range Statuses {
		if s == v {
			return true
		}
	}
	return false
}

// Tab is the board tab: a Status or TabAll.
type Tab string

const TabAll Tab = "all"

func ParseTab(s string) (Tab, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" || s == string(TabAll) {
		return TabAll, nil
	}
	if !Status(s).Valid() {
		return "", fmt.Errorf("unknown tab %q", s)
	}
	return Tab(s), nil
}

type Record struct {
	ID                   string     `json:"id"`
	Status               Status     `json:"status"`
	VehicleID            string     `json:"vehicleId,omitempty"`
	PlateNumber          string     `json:"plateNumber"`
	DriverID             string     `json:"driverId,omitempty"`
	DriverName           string     `json:"driverName,omitempty"`
	OperatorID           string     `json:"operatorId,omitempty"`
	OperatorName         string     `json:"operatorName,omitempty"`
	RouteID              string     `json:"routeId,omitempty"`
	RouteName            string     `json:"routeName,omitempty"`
	EntryTime            *time.Time `json:"entryTime,omitempty"`
	PlannedDepartureTime *time.Time `json:"plannedDepartureTime,omitempty"`
	ExitTime             *time.Time `json:"exitTime,omitempty"`
	PassengersArrived    int        `json:"passengersArrived"`
	PassengersDeparting  int        `json:"passengersDeparting"`
	Notes                string     `json:"notes,omitempty"`
	CreatedAt            *time.Time `json:"createdAt,omitempty"`
	UpdatedAt            *time.Time `json:"updatedAt,omitempty"`
}

// Input is the body of POST /dispatch-records; the server sets the initial status.
type Input struct {
	VehicleID            string     `json:"vehicleId,omitempty"`
	PlateNumber          string     `json:"plateNumber"`
	DriverID             string     `json:"driverId,omitempty"`
	RouteID              string     `json:"routeId,omitempty"`
	EntryTime            *time.Time `json:"entryTime,omitempty"`
	PlannedDepartureTime *time.Time `json:"plannedDepartureTime,omitempty"`
	PassengersArrived    int        `json:"passengersArrived"`
	Notes                string     `json:"notes,omitempty"`
}

// Patch is a partial record: the wire body of PUT /dispatch-records/{id} and the
// argument of the store's UpdateRecord.
type Patch struct {
	Status               *Status    `json:"status,omitempty"`
	VehicleID            *string    `json:"vehicleId,omitempty"`
	PlateNumber          *string    `json:"plateNumber,omitempty"`
	DriverID             *string    `json:"driverId,omitempty"`
	DriverName           *string    `json:"driverName,omitempty"`
	OperatorID           *string    `json:"operatorId,omitempty"`
	OperatorName         *string    `json:"operatorName,omitempty"`
	RouteID              *string    `json:"routeId,omitempty"`
	RouteName            *string    `json:"routeName,omitempty"`
	EntryTime            *time.Time `json:"entryTime,omitempty"`
	PlannedDepartureTime *time.Time `json:"plannedDepartureTime,omitempty"`
	ExitTime             *time.Time `json:"exitTime,omitempty"`
	PassengersArrived    *int       `json:"passengersArrived,omitempty"`
	PassengersDeparting  *int       `json:"passengersDeparting,omitempty"`
	Notes                *string    `json:"notes,omitempty"`
	UpdatedAt            *time.Time `json:"updatedAt,omitempty"`
}

// Merge returns r with every field set in p copied over. The id never changes.
func (r Record) Merge(p Patch) Record {
	setIf(&r.Status, p.Status)
	setIf(&r.VehicleID, p.VehicleID)
	setIf(&r.PlateNumber, p.PlateNumber)
	setIf(&r.DriverID, p.DriverID)
	setIf(&r.DriverName, p.DriverName)
	setIf(&r.OperatorID, p.OperatorID)
	setIf(&r.OperatorName, p.OperatorName)
	setIf(&r.RouteID, p.RouteID)
	setIf(&r.RouteName, p.RouteName)
	setIf(&r.PassengersArrived, p.PassengersArrived)
	setIf(&r.PassengersDeparting, p.PassengersDeparting)
	setIf(&r.Notes, p.Notes)
	if p.EntryTime != nil {
		r.EntryTime = p.EntryTime
	}
	if p.PlannedDepartureTime != nil {
		r.PlannedDepartureTime = p.PlannedDepartureTime
	}
	if p.ExitTime != nil {
		r.ExitTime = p.ExitTime
	}
	if p.UpdatedAt != nil {
		r.UpdatedAt = p.UpdatedAt
	}
	return r
}

// PatchOf turns a full record (typically a server response) into a patch of all its fields.
func PatchOf(r Record) Patch {
	return Patch{
		Status:               &r.Status,
		VehicleID:            &r.VehicleID,
		PlateNumber:          &r.PlateNumber,
		DriverID:             &r.DriverID,
		DriverName:           &r.DriverName,
		OperatorID:           &r.OperatorID,
		OperatorName:         &r.OperatorName,
		RouteID:              &r.RouteID,
		RouteName:            &r.RouteName,
		EntryTime:            r.EntryTime,
		PlannedDepartureTime: r.PlannedDepartureTime,
		ExitTime:             r.ExitTime,
		PassengersArrived:    &r.PassengersArrived,
		PassengersDeparting:  &r.PassengersDeparting,
		Notes:                &r.Notes,
		UpdatedAt:            r.UpdatedAt,
	}
}

func setIf[V any](dst *V, src *V) {
	if src != nil {
		*dst = *src
	}
}

type Filter struct {
	Status *Status
}

func (f Filter) Query() (url.Values, error) {
	var status *string
	if f.Status != nil {
		if !f.Status.Valid() {
			return nil, fmt.Errorf("%w: unknown status %q", resource.ErrInvalidFilter, *f.Status)
		}
		s := string(*f.Status)
		status = &s
	}
	return resource.NewQuery().String("status", status).Values()
}

// Visible returns the records shown under tab, keeping their order.
func Visible(records []Record, tab Tab) []Record {
	if tab == TabAll || tab == "" {
		return records
	}
	out := make([]Record, 0, len(records))
	for _, r := range records {
		if Tab(r.Status) == tab {
			out = append(out, r)
		}
	}
	return out
}
