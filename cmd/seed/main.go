package main

import (
	"context"
	"fmt"
	"time"

	"github.com/Spok95/fleet-ops/internal/config"
	"github.com/Spok95/fleet-ops/internal/domain/customers"
	"github.com/Spok95/fleet-ops/internal/domain/fleet"
	"github.com/Spok95/fleet-ops/internal/domain/pricing"
	"github.com/Spok95/fleet-ops/internal/domain/settings"
	"github.com/Spok95/fleet-ops/internal/infra/db"
	"github.com/Spok95/fleet-ops/internal/infra/logger"

	"github.com/subosito/gotenv"
)

// Демо-данные для локального стенда. Запускать после миграций.
func main() {
	_ = gotenv.Load()

	cfg, err := config.Load("config/example.yaml")
	if err != nil {
		panic(err)
	}
	log := logger.New(cfg.App.Env)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := db.Connect(ctx, cfg.Postgres.DSN)
	if err != nil {
		log.Error("db connect failed", "err", err)
		return
	}
	defer pool.Close()

	fleetRepo := fleet.NewRepo(pool)
	pricingRepo := pricing.NewRepo(pool)
	customersRepo := customers.NewRepo(pool)
	settingsRepo := settings.NewRepo(pool)

	branches := []fleet.Branch{
		{Code: "SJJ", Name: "Sarajevo Airport", City: "Sarajevo", Country: "BA", Timezone: "Europe/Sarajevo"},
		{Code: "BNX", Name: "Banja Luka Downtown", City: "Banja Luka", Country: "BA", Timezone: "Europe/Sarajevo"},
	}
	branchByCode := map[string]*fleet.Branch{}
	for _, b := range branches {
		out, err := fleetRepo.CreateBranch(ctx, b)
		if err != nil {
			log.Error("seed branch failed", "code", b.Code, "err", err)
			return
		}
		branchByCode[out.Code] = out
	}

	classes := []fleet.VehicleClass{
		{Code: "ECON", Name: "Economy", Seats: 5, Doors: 4, Transmission: "manual", FuelType: "petrol"},
		{Code: "SUV", Name: "Compact SUV", Seats: 5, Doors: 5, Transmission: "automatic", FuelType: "diesel"},
		{Code: "LUX", Name: "Luxury Sedan", Seats: 5, Doors: 4, Transmission: "automatic", FuelType: "petrol"},
	}
	classByCode := map[string]*fleet.VehicleClass{}
	for _, c := range classes {
		out, err := fleetRepo.CreateClass(ctx, c)
		if err != nil {
			log.Error("seed class failed", "code", c.Code, "err", err)
			return
		}
		classByCode[out.Code] = out
	}

	vehicles := []struct {
		vin, plate, name, branch, class string
		year, mileage                   int
	}{
		{"WVWZZZ1JZXW000001", "A11-M-001", "VW Golf #1", "SJJ", "ECON", 2022, 34100},
		{"WVWZZZ1JZXW000002", "A11-M-002", "VW Golf #2", "SJJ", "ECON", 2023, 12800},
		{"WAUZZZ4G0EN000003", "E22-T-003", "Audi Q3", "SJJ", "SUV", 2023, 22950},
		{"WDDZF4JB1HA000004", "K33-O-004", "Mercedes E-Class", "BNX", "LUX", 2024, 8600},
	}
	for _, v := range vehicles {
		branchID := branchByCode[v.branch].ID
		if _, err := fleetRepo.CreateVehicle(ctx, fleet.Vehicle{
			VIN:            v.vin,
			Plate:          v.plate,
			DisplayName:    v.name,
			BranchID:       &branchID,
			VehicleClassID: classByCode[v.class].ID,
			Year:           v.year,
			Mileage:        v.mileage,
		}); err != nil {
			log.Error("seed vehicle failed", "plate", v.plate, "err", err)
			return
		}
	}

	plan, err := pricingRepo.CreateRatePlan(ctx, pricing.RatePlan{
		Code: "STD", Name: "Standard", Description: "Walk-in and website rate", Active: true,
	})
	if err != nil {
		log.Error("seed rate plan failed", "err", err)
		return
	}

	dailyRates := map[string]float64{"ECON": 45, "SUV": 75, "LUX": 140}
	for code, amount := range dailyRates {
		if _, err := pricingRepo.CreatePriceRow(ctx, pricing.PriceRow{
			RatePlanID:     plan.ID,
			VehicleClassID: classByCode[code].ID,
			BaseAmount:     amount,
		}); err != nil {
			log.Error("seed price failed", "class", code, "err", err)
			return
		}
	}

	gpsDaily := 5.0
	seatFlat := 25.0
	extras := []pricing.Extra{
		{Code: "GPS", Name: "GPS navigation", DailyPrice: &gpsDaily, Active: true},
		{Code: "CHILD_SEAT", Name: "Child seat", FlatPrice: &seatFlat, Active: true},
	}
	for _, e := range extras {
		out, err := pricingRepo.CreateExtra(ctx, e)
		if err != nil {
			log.Error("seed extra failed", "code", e.Code, "err", err)
			return
		}
		for _, b := range branchByCode {
			if err := pricingRepo.SetExtraStock(ctx, out.ID, b.ID, 4); err != nil {
				log.Error("seed extra stock failed", "code", e.Code, "err", err)
				return
			}
		}
	}

	if _, err := customersRepo.Create(ctx, customers.Customer{
		FullName: "Amar Hodzic",
		Email:    "amar.hodzic@example.com",
		Phone:    "+387 61 000 000",
		City:     "Sarajevo",
		Country:  "BA",
	}); err != nil {
		log.Error("seed customer failed", "err", err)
		return
	}

	if err := settingsRepo.SetPolicy(ctx, settings.DefaultPolicy()); err != nil {
		log.Error("seed policy failed", "err", err)
		return
	}

	fmt.Println("seed complete")
}
