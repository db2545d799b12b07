// Prints the dispatch board: reference data counts and the records of the chosen tab.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"go.uber.org/zap"

	"github.com/htung0403/quan-li-ben-xe-sub001/internal/apiclient"
	"github.com/htung0403/quan-li-ben-xe-sub001/internal/board"
	"github.com/htung0403/quan-li-ben-xe-sub001/internal/config"
	"github.com/htung0403/quan-li-ben-xe-sub001/internal/dispatch"
	"github.com/htung0403/quan-li-ben-xe-sub001/internal/drivers"
	"github.com/htung0403/quan-li-ben-xe-sub001/internal/locations"
	"github.com/htung0403/quan-li-ben-xe-sub001/internal/logging"
	"github.com/htung0403/quan-li-ben-xe-sub001/internal/operators"
	"github.com/htung0403/quan-li-ben-xe-sub001/internal/resource"
	"github.com/htung0403/quan-li-ben-xe-sub001/internal/services"
	"github.com/htung0403/quan-li-ben-xe-sub001/internal/state"
	"github.com/htung0403/quan-li-ben-xe-sub001/internal/vehicletypes"
)

func main() {
	config.LoadDotEnvUp(8)

	logger := logging.New(os.Getenv("APP_ENV") == "local")
	defer func() { _ = logger.Sync() }()

	tabFlag := flag.String("tab", string(dispatch.TabAll), "dispatch tab: all or a status")
	shift := flag.String("shift", "", "current shift label")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("config load failed", zap.Error(err))
	}
	if err := cfg.API.Validate(); err != nil {
		logger.Fatal("api config", zap.Error(err))
	}
	tab, err := dispatch.ParseTab(*tabFlag)
	if err != nil {
		logger.Fatal("bad -tab", zap.Error(err))
	}

	api := apiclient.New(cfg.API, apiclient.WithLogger(logger))

	ui := state.NewUIStore()
	ui.SetTitle("Điều độ xe")
	if *shift != "" {
		ui.SetCurrentShift(*shift)
	}

	store := state.NewDispatchStore()
	unsubscribe := store.Subscribe(func(s state.DispatchState) {
		logger.Debug("dispatch store changed", zap.Int("records", len(s.Records)), zap.String("tab", string(s.ActiveTab)))
	})
	defer unsubscribe()
	store.SetActiveTab(tab)

	b := board.New(dispatch.NewService(api), store, logger)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	counts, err := referenceCounts(ctx, api)
	if err != nil {
		logger.Fatal("load reference data", zap.Error(err), zap.Int("status", apiclient.StatusCode(err)))
	}
	if err := b.Refresh(ctx, dispatch.Filter{}); err != nil {
		logger.Fatal("load dispatch records", zap.Error(err), zap.Int("status", apiclient.StatusCode(err)))
	}

	fmt.Printf("%s | ca: %s | tab: %s\n", ui.Title(), ui.CurrentShift(), store.ActiveTab())
	fmt.Printf("nhà xe %d | tài xế %d | bến %d | dịch vụ %d | loại xe %d\n\n",
		counts.operators, counts.drivers, counts.locations, counts.services, counts.vehicleTypes)
	printRecords(b.Visible())
}

type counts struct {
	operators, drivers, locations, services, vehicleTypes int
}

func referenceCounts(ctx context.Context, api *apiclient.Client) (counts, error) {
	active := true
	var c counts

	ops, err := operators.NewService(api).GetAll(ctx, operators.Filter{IsActive: &active})
	if err != nil {
		return c, err
	}
	drv, err := drivers.NewService(api).GetAll(ctx, drivers.Filter{IsActive: &active})
	if err != nil {
		return c, err
	}
	locs, err := locations.NewService(api).GetAll(ctx, locations.Filter{IsActive: &active})
	if err != nil {
		return c, err
	}
	svcs, err := services.NewClient(api).GetAll(ctx, services.Filter{IsActive: &active})
	if err != nil {
		return c, err
	}
	vts, err := vehicletypes.NewService(api).GetAll(ctx, resource.NoFilter{})
	if err != nil {
		return c, err
	}

	c.operators, c.drivers, c.locations, c.services, c.vehicleTypes = len(ops), len(drv), len(locs), len(svcs), len(vts)
	return c, nil
}

func printRecords(records []dispatch.Record) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "BIỂN SỐ\tTRẠNG THÁI\tNHÀ XE\tTÀI XẾ\tTUYẾN\tVÀO BẾN\tKHÁCH XUỐNG\tKHÁCH LÊN")
	for _, r := range records {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%d\t%d\n",
			r.PlateNumber, r.Status, r.OperatorName, r.DriverName, r.RouteName,
			formatTime(r.EntryTime), r.PassengersArrived, r.PassengersDeparting)
	}
	_ = w.Flush()
}

func formatTime(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Local().Format("02/01 15:04")
}
