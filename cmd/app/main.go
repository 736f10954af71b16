package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	_ "time/tzdata"

	"preparedelivery/cmd"
	"preparedelivery/internal/core/application/usecases/queries"
	"preparedelivery/internal/core/domain/model/eligibility"

	"github.com/labstack/gommon/log"
)

const (
	exitOK       = 0
	exitFailure  = 1
	exitRejected = 2
)

func main() {
	req, listVehicles := parseFlags()

	config, err := cmd.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	app, err := cmd.NewCompositionRoot(config, os.Stderr)
	if err != nil {
		log.Fatalf("Error building application: %v", err)
	}

	if listVehicles {
		os.Exit(printVehicles(app))
	}
	os.Exit(run(app, req))
}

func parseFlags() (cmd.DeliveryRequest, bool) {
	var (
		req          cmd.DeliveryRequest
		listVehicles bool
	)
	flag.BoolVar(&listVehicles, "list-vehicles", false, "print the configured vehicle classes and exit")
	flag.StringVar(&req.OrderID, "order", "", "order id (generated when empty)")
	flag.StringVar(&req.Weights, "weights", "20,40", "comma separated product weights in kg")
	flag.StringVar(&req.City, "city", "Ростов-на-Дону", "destination city")
	flag.StringVar(&req.Street, "street", "ул. Маршала Конюхова", "destination street")
	flag.StringVar(&req.House, "house", "д. 5", "destination house")
	flag.StringVar(&req.Date, "date", "", "delivery date, YYYY-MM-DD or RFC 3339 (default tomorrow)")
	flag.Parse()
	return req, listVehicles
}

func printVehicles(app cmd.CompositionRoot) int {
	handler := app.CreateGetVehicleClassesQueryHandler()
	classes, err := handler.Handle(context.Background(), queries.NewGetVehicleClassesQuery())
	if err != nil {
		log.Errorf("Error listing vehicle classes: %v", err)
		return exitFailure
	}

	for _, class := range classes {
		fmt.Printf("%s\t< %gkg\n", class.Name, class.CapacityKg)
	}
	return exitOK
}

func run(app cmd.CompositionRoot, req cmd.DeliveryRequest) int {
	command, err := cmd.BuildPrepareDeliveryCommand(req, app.Clock().Now())
	if err != nil {
		log.Errorf("Invalid delivery request: %v", err)
		return exitFailure
	}

	handler := app.CreatePrepareDeliveryCommandHandler()
	result, err := handler.Handle(context.Background(), command)
	if err != nil {
		log.Errorf("Error preparing delivery: %v", err)
		return exitFailure
	}

	fmt.Println(result)
	return exitCode(result)
}

func exitCode(result eligibility.Result) int {
	if result.IsAssigned() {
		return exitOK
	}
	return exitRejected
}
