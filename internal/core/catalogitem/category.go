// Copyright (c) 2026 Roundhouse. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalogitem

import "github.com/CarloMicieli/roundhouse/internal/platform/validate"

// # Category

// Category is the coarse classification of a catalog item.
type Category string

const (
	CategoryLocomotives           Category = "LOCOMOTIVES"
	CategoryTrainSets             Category = "TRAIN_SETS"
	CategoryStarterSets           Category = "STARTER_SETS"
	CategoryFreightCars           Category = "FREIGHT_CARS"
	CategoryPassengerCars         Category = "PASSENGER_CARS"
	CategoryElectricMultipleUnits Category = "ELECTRIC_MULTIPLE_UNITS"
	CategoryRailcars              Category = "RAILCARS"
)

var categories = []Category{
	CategoryLocomotives,
	CategoryTrainSets,
	CategoryStarterSets,
	CategoryFreightCars,
	CategoryPassengerCars,
	CategoryElectricMultipleUnits,
	CategoryRailcars,
}

// ParseCategory parses a category name such as "LOCOMOTIVES".
func ParseCategory(raw string) (Category, error) {
	return validate.Enum(FieldCategory, raw, categories...)
}

// IsSet reports whether items of this category may mix rolling stock of
// different kinds.
func (c Category) IsSet() bool {
	return c == CategoryTrainSets || c == CategoryStarterSets
}

// # Sub-categories

// LocomotiveType classifies locomotives by traction.
type LocomotiveType string

const (
	LocomotiveTypeSteam    LocomotiveType = "STEAM_LOCOMOTIVE"
	LocomotiveTypeDiesel   LocomotiveType = "DIESEL_LOCOMOTIVE"
	LocomotiveTypeElectric LocomotiveType = "ELECTRIC_LOCOMOTIVE"
)

func ParseLocomotiveType(raw string) (LocomotiveType, error) {
	return validate.Enum(FieldSubCategory, raw, LocomotiveTypeSteam, LocomotiveTypeDiesel, LocomotiveTypeElectric)
}

// FreightCarType classifies freight cars.
type FreightCarType string

const (
	FreightCarTypeAutoTransportCars   FreightCarType = "AUTO_TRANSPORT_CARS"
	FreightCarTypeBrakeWagon          FreightCarType = "BRAKE_WAGON"
	FreightCarTypeContainerCars       FreightCarType = "CONTAINER_CARS"
	FreightCarTypeCoveredFreightCars  FreightCarType = "COVERED_FREIGHT_CARS"
	FreightCarTypeDeepWellFlatCars    FreightCarType = "DEEP_WELL_FLAT_CARS"
	FreightCarTypeDumpCars            FreightCarType = "DUMP_CARS"
	FreightCarTypeGondola             FreightCarType = "GONDOLA"
	FreightCarTypeHeavyGoodsWagons    FreightCarType = "HEAVY_GOODS_WAGONS"
	FreightCarTypeHingedCoverWagons   FreightCarType = "HINGED_COVER_WAGONS"
	FreightCarTypeHopperWagon         FreightCarType = "HOPPER_WAGON"
	FreightCarTypeRefrigeratorCars    FreightCarType = "REFRIGERATOR_CARS"
	FreightCarTypeSiloContainerCars   FreightCarType = "SILO_CONTAINER_CARS"
	FreightCarTypeSlideTarpaulinWagon FreightCarType = "SLIDE_TARPAULIN_WAGON"
	FreightCarTypeSlidingWallBoxcars  FreightCarType = "SLIDING_WALL_BOXCARS"
	FreightCarTypeSpecialTransport    FreightCarType = "SPECIAL_TRANSPORT"
	FreightCarTypeStakeWagons         FreightCarType = "STAKE_WAGONS"
	FreightCarTypeSwingRoofWagon      FreightCarType = "SWING_ROOF_WAGON"
	FreightCarTypeTankCars            FreightCarType = "TANK_CARS"
	FreightCarTypeTelescopeHoodWagons FreightCarType = "TELESCOPE_HOOD_WAGONS"
)

var freightCarTypes = []FreightCarType{
	FreightCarTypeAutoTransportCars, FreightCarTypeBrakeWagon, FreightCarTypeContainerCars,
	FreightCarTypeCoveredFreightCars, FreightCarTypeDeepWellFlatCars, FreightCarTypeDumpCars,
	FreightCarTypeGondola, FreightCarTypeHeavyGoodsWagons, FreightCarTypeHingedCoverWagons,
	FreightCarTypeHopperWagon, FreightCarTypeRefrigeratorCars, FreightCarTypeSiloContainerCars,
	FreightCarTypeSlideTarpaulinWagon, FreightCarTypeSlidingWallBoxcars, FreightCarTypeSpecialTransport,
	FreightCarTypeStakeWagons, FreightCarTypeSwingRoofWagon, FreightCarTypeTankCars,
	FreightCarTypeTelescopeHoodWagons,
}

func ParseFreightCarType(raw string) (FreightCarType, error) {
	return validate.Enum(FieldSubCategory, raw, freightCarTypes...)
}

// PassengerCarType classifies passenger cars.
type PassengerCarType string

const (
	PassengerCarTypeOpenCoach         PassengerCarType = "OPEN_COACH"
	PassengerCarTypeCompartmentCoach  PassengerCarType = "COMPARTMENT_COACH"
	PassengerCarTypeDiningCar         PassengerCarType = "DINING_CAR"
	PassengerCarTypeLounge            PassengerCarType = "LOUNGE"
	PassengerCarTypeObservation       PassengerCarType = "OBSERVATION"
	PassengerCarTypeSleepingCar       PassengerCarType = "SLEEPING_CAR"
	PassengerCarTypeBaggageCar        PassengerCarType = "BAGGAGE_CAR"
	PassengerCarTypeDoubleDecker      PassengerCarType = "DOUBLE_DECKER"
	PassengerCarTypeCombineCar        PassengerCarType = "COMBINE_CAR"
	PassengerCarTypeDrivingTrailer    PassengerCarType = "DRIVING_TRAILER"
	PassengerCarTypeRailwayPostOffice PassengerCarType = "RAILWAY_POST_OFFICE"
)

var passengerCarTypes = []PassengerCarType{
	PassengerCarTypeOpenCoach, PassengerCarTypeCompartmentCoach, PassengerCarTypeDiningCar,
	PassengerCarTypeLounge, PassengerCarTypeObservation, PassengerCarTypeSleepingCar,
	PassengerCarTypeBaggageCar, PassengerCarTypeDoubleDecker, PassengerCarTypeCombineCar,
	PassengerCarTypeDrivingTrailer, PassengerCarTypeRailwayPostOffice,
}

func ParsePassengerCarType(raw string) (PassengerCarType, error) {
	return validate.Enum(FieldSubCategory, raw, passengerCarTypes...)
}

// ElectricMultipleUnitType tells power cars and trailers apart.
type ElectricMultipleUnitType string

const (
	ElectricMultipleUnitTypePowerCar   ElectricMultipleUnitType = "POWER_CAR"
	ElectricMultipleUnitTypeTrailerCar ElectricMultipleUnitType = "TRAILER_CAR"
)

func ParseElectricMultipleUnitType(raw string) (ElectricMultipleUnitType, error) {
	return validate.Enum(FieldSubCategory, raw, ElectricMultipleUnitTypePowerCar, ElectricMultipleUnitTypeTrailerCar)
}

// RailcarType tells power cars and trailers apart.
type RailcarType string

const (
	RailcarTypePowerCar   RailcarType = "POWER_CAR"
	RailcarTypeTrailerCar RailcarType = "TRAILER_CAR"
)

func ParseRailcarType(raw string) (RailcarType, error) {
	return validate.Enum(FieldSubCategory, raw, RailcarTypePowerCar, RailcarTypeTrailerCar)
}

// # Power

// PowerMethod is the current a model runs on.
type PowerMethod string

const (
	PowerMethodAC PowerMethod = "AC"
	PowerMethodDC PowerMethod = "DC"
)

func ParsePowerMethod(raw string) (PowerMethod, error) {
	return validate.Enum(FieldPowerMethod, raw, PowerMethodAC, PowerMethodDC)
}

// Control is how a powered model is driven.
type Control string

const (
	ControlDccReady Control = "DCC_READY"
	ControlDcc      Control = "DCC"
	ControlDccSound Control = "DCC_SOUND"
	ControlNoDcc    Control = "NO_DCC"
)

var controls = []Control{ControlDcc, ControlDccReady, ControlDccSound, ControlNoDcc}

func ParseControl(raw string) (Control, error) {
	return validate.Enum(FieldControl, raw, controls...)
}

// WithDecoder reports whether the model ships with a decoder fitted.
func (c Control) WithDecoder() bool {
	return c == ControlDcc || c == ControlDccSound
}

// DccInterface is the connector used to install a decoder.
type DccInterface string

const (
	DccInterfaceNem651 DccInterface = "NEM_651"
	DccInterfaceNem652 DccInterface = "NEM_652"
	DccInterfacePlux8  DccInterface = "PLUX_8"
	DccInterfacePlux16 DccInterface = "PLUX_16"
	DccInterfacePlux22 DccInterface = "PLUX_22"
	DccInterfaceNext18 DccInterface = "NEXT_18"
	DccInterfaceMtc21  DccInterface = "MTC_21"
)

var dccInterfaces = []DccInterface{
	DccInterfaceNem651, DccInterfaceNem652, DccInterfacePlux8, DccInterfacePlux16,
	DccInterfacePlux22, DccInterfaceNext18, DccInterfaceMtc21,
}

func ParseDccInterface(raw string) (DccInterface, error) {
	return validate.Enum(FieldDccInterface, raw, dccInterfaces...)
}

// names converts enum values to the plain strings expected by [validate.Validator.OneOf].
func names[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}
