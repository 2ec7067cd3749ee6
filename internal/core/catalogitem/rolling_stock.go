// Copyright (c) 2026 Roundhouse. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalogitem

import (
	"strings"

	"github.com/CarloMicieli/roundhouse/internal/platform/validate"
	"github.com/CarloMicieli/roundhouse/pkg/pointer"
)

// RollingStock is a single piece of rolling stock inside a catalog item.
//
// # Variants
//
// The set is closed: [ElectricMultipleUnit], [Locomotive], [FreightCar],
// [PassengerCar] and [Railcar]. Only the powered variants (EMU, locomotive
// and railcar) have decoder related fields; for towed cars [RollingStock.DccInterface]
// is always empty and [RollingStock.WithDecoder] is always false.
type RollingStock interface {
	ID() RollingStockID
	Category() Category
	Railway() Railway
	Epoch() Epoch
	Livery() (string, bool)
	LengthOverBuffer() (LengthOverBuffer, bool)
	TechSpecs() (TechSpecs, bool)

	// RoadNumber is always present for locomotives.
	RoadNumber() (string, bool)

	DccInterface() (DccInterface, bool)
	WithDecoder() bool

	String() string

	rollingStock()
}

var (
	_ RollingStock = ElectricMultipleUnit{}
	_ RollingStock = Locomotive{}
	_ RollingStock = FreightCar{}
	_ RollingStock = PassengerCar{}
	_ RollingStock = Railcar{}
)

// # Options

// Details are the optional attributes every variant can carry.
type Details struct {
	Livery           *string
	LengthOverBuffer *LengthOverBuffer
	TechSpecs        *TechSpecs
}

// Powered holds the decoder attributes. Only powered variant options embed it.
type Powered struct {
	Control      *Control
	DccInterface *DccInterface
}

type ElectricMultipleUnitOptions struct {
	Details
	Powered
	RoadNumber *string
	Depot      *string
	IsDummy    bool
}

type LocomotiveOptions struct {
	Details
	Powered
	Series *string
	Depot  *string
}

type FreightCarOptions struct {
	Details
	RoadNumber *string
	Type       *FreightCarType
}

type PassengerCarOptions struct {
	Details
	RoadNumber   *string
	Type         *PassengerCarType
	ServiceLevel *ServiceLevel
}

type RailcarOptions struct {
	Details
	Powered
	RoadNumber *string
	Depot      *string
	Type       *RailcarType
	IsDummy    bool
}

// # Shared Fields

type base struct {
	id               RollingStockID
	railway          Railway
	epoch            Epoch
	livery           *string
	lengthOverBuffer *LengthOverBuffer
	techSpecs        *TechSpecs
}

func newBase(v *validate.Validator, id RollingStockID, railway Railway, epoch Epoch, d Details) base {
	v.Custom(FieldRollingStockID, id.IsZero(), "This field is required").
		Custom(FieldRailway, railway.ID().IsZero(), "This field is required").
		Custom(FieldEpoch, epoch.IsZero(), "This field is required")
	if d.Livery != nil {
		v.MaxLen(FieldLivery, *d.Livery, 50)
	}

	return base{
		id:               id,
		railway:          railway,
		epoch:            epoch,
		livery:           pointer.Clone(d.Livery),
		lengthOverBuffer: pointer.Clone(d.LengthOverBuffer),
		techSpecs:        pointer.Clone(d.TechSpecs),
	}
}

func (b base) ID() RollingStockID { return b.id }
func (b base) Railway() Railway { return b.railway }
func (b base) Epoch() Epoch { return b.epoch }
func (b base) Livery() (string, bool) { return pointer.Get(b.livery) }
func (b base) LengthOverBuffer() (LengthOverBuffer, bool) { return pointer.Get(b.lengthOverBuffer) }
func (b base) TechSpecs() (TechSpecs, bool) { return pointer.Get(b.techSpecs) }
func (base) rollingStock() {}

type powered struct {
	control      *Control
	dccInterface *DccInterface
}

func newPowered(v *validate.Validator, p Powered) powered {
	if p.Control != nil {
		v.OneOf(FieldControl, string(*p.Control), names(controls)...)
	}
	if p.DccInterface != nil {
		v.OneOf(FieldDccInterface, string(*p.DccInterface), names(dccInterfaces)...)
	}
	return powered{control: pointer.Clone(p.Control), dccInterface: pointer.Clone(p.DccInterface)}
}

func (p powered) Control() (Control, bool) { return pointer.Get(p.control) }
func (p powered) DccInterface() (DccInterface, bool) { return pointer.Get(p.dccInterface) }

// WithDecoder is false when the control method is unknown.
func (p powered) WithDecoder() bool {
	return p.control != nil && p.control.WithDecoder()
}

type towed struct{}

func (towed) DccInterface() (DccInterface, bool) { return "", false }
func (towed) WithDecoder() bool { return false }

func requiredName(v *validate.Validator, field, value string) string {
	value = strings.TrimSpace(value)
	v.Required(field, value).MaxLen(field, value, 25)
	return value
}

func optionalText(v *validate.Validator, field string, value *string) *string {
	if value == nil {
		return nil
	}
	v.MaxLen(field, *value, 50)
	return pointer.Clone(value)
}

// # Electric Multiple Unit

// ElectricMultipleUnit is a car of a self-propelled electric train.
type ElectricMultipleUnit struct {
	base
	powered
	typeName   string
	roadNumber *string
	emuType    ElectricMultipleUnitType
	depot      *string
	isDummy    bool
}

func NewElectricMultipleUnit(id RollingStockID, typeName string, railway Railway, epoch Epoch, emuType ElectricMultipleUnitType, opts ElectricMultipleUnitOptions) (ElectricMultipleUnit, error) {
	v := &validate.Validator{}
	emu := ElectricMultipleUnit{
		base:       newBase(v, id, railway, epoch, opts.Details),
		powered:    newPowered(v, opts.Powered),
		typeName:   requiredName(v, FieldTypeName, typeName),
		roadNumber: optionalText(v, FieldRoadNumber, opts.RoadNumber),
		emuType:    emuType,
		depot:      optionalText(v, FieldDepot, opts.Depot),
		isDummy:    opts.IsDummy,
	}
	v.OneOf(FieldSubCategory, string(emuType),
		string(ElectricMultipleUnitTypePowerCar), string(ElectricMultipleUnitTypeTrailerCar))

	if err := v.Err(); err != nil {
		return ElectricMultipleUnit{}, err
	}
	return emu, nil
}

func (ElectricMultipleUnit) Category() Category { return CategoryElectricMultipleUnits }

func (e ElectricMultipleUnit) TypeName() string { return e.typeName }
func (e ElectricMultipleUnit) RoadNumber() (string, bool) { return pointer.Get(e.roadNumber) }
func (e ElectricMultipleUnit) Type() ElectricMultipleUnitType { return e.emuType }
func (e ElectricMultipleUnit) Depot() (string, bool) { return pointer.Get(e.depot) }

// IsDummy reports whether the unit has no motor.
func (e ElectricMultipleUnit) IsDummy() bool { return e.isDummy }

func (e ElectricMultipleUnit) String() string { return describe(e.typeName, e.roadNumber) }

// # Locomotive

// Locomotive is the only variant with a mandatory road number.
type Locomotive struct {
	base
	powered
	className  string
	roadNumber string
	series     *string
	locoType   LocomotiveType
	depot      *string
}

func NewLocomotive(id RollingStockID, className, roadNumber string, railway Railway, epoch Epoch, locoType LocomotiveType, opts LocomotiveOptions) (Locomotive, error) {
	v := &validate.Validator{}
	loco := Locomotive{
		base:       newBase(v, id, railway, epoch, opts.Details),
		powered:    newPowered(v, opts.Powered),
		className:  requiredName(v, FieldClassName, className),
		roadNumber: requiredName(v, FieldRoadNumber, roadNumber),
		series:     optionalText(v, FieldSeries, opts.Series),
		locoType:   locoType,
		depot:      optionalText(v, FieldDepot, opts.Depot),
	}
	v.OneOf(FieldSubCategory, string(locoType),
		string(LocomotiveTypeSteam), string(LocomotiveTypeDiesel), string(LocomotiveTypeElectric))

	if err := v.Err(); err != nil {
		return Locomotive{}, err
	}
	return loco, nil
}

func (Locomotive) Category() Category { return CategoryLocomotives }

func (l Locomotive) ClassName() string { return l.className }
func (l Locomotive) RoadNumber() (string, bool) { return l.roadNumber, true }
func (l Locomotive) Series() (string, bool) { return pointer.Get(l.series) }
func (l Locomotive) Type() LocomotiveType { return l.locoType }
func (l Locomotive) Depot() (string, bool) { return pointer.Get(l.depot) }

func (l Locomotive) String() string { return describe(l.className, &l.roadNumber) }

// # Freight Car

type FreightCar struct {
	base
	towed
	typeName   string
	roadNumber *string
	carType    *FreightCarType
}

func NewFreightCar(id RollingStockID, typeName string, railway Railway, epoch Epoch, opts FreightCarOptions) (FreightCar, error) {
	v := &validate.Validator{}
	car := FreightCar{
		base:       newBase(v, id, railway, epoch, opts.Details),
		typeName:   requiredName(v, FieldTypeName, typeName),
		roadNumber: optionalText(v, FieldRoadNumber, opts.RoadNumber),
		carType:    pointer.Clone(opts.Type),
	}
	if opts.Type != nil {
		v.OneOf(FieldSubCategory, string(*opts.Type), names(freightCarTypes)...)
	}

	if err := v.Err(); err != nil {
		return FreightCar{}, err
	}
	return car, nil
}

func (FreightCar) Category() Category { return CategoryFreightCars }

func (f FreightCar) TypeName() string { return f.typeName }
func (f FreightCar) RoadNumber() (string, bool) { return pointer.Get(f.roadNumber) }
func (f FreightCar) Type() (FreightCarType, bool) { return pointer.Get(f.carType) }

func (f FreightCar) String() string { return describe(f.typeName, f.roadNumber) }

// # Passenger Car

type PassengerCar struct {
	base
	towed
	typeName     string
	roadNumber   *string
	carType      *PassengerCarType
	serviceLevel *ServiceLevel
}

func NewPassengerCar(id RollingStockID, typeName string, railway Railway, epoch Epoch, opts PassengerCarOptions) (PassengerCar, error) {
	v := &validate.Validator{}
	car := PassengerCar{
		base:         newBase(v, id, railway, epoch, opts.Details),
		typeName:     requiredName(v, FieldTypeName, typeName),
		roadNumber:   optionalText(v, FieldRoadNumber, opts.RoadNumber),
		carType:      pointer.Clone(opts.Type),
		serviceLevel: pointer.Clone(opts.ServiceLevel),
	}
	if opts.Type != nil {
		v.OneOf(FieldSubCategory, string(*opts.Type), names(passengerCarTypes)...)
	}
	if opts.ServiceLevel != nil {
		v.OneOf(FieldServiceLevel, string(*opts.ServiceLevel), names(serviceLevels)...)
	}

	if err := v.Err(); err != nil {
		return PassengerCar{}, err
	}
	return car, nil
}

func (PassengerCar) Category() Category { return CategoryPassengerCars }

func (p PassengerCar) TypeName() string { return p.typeName }
func (p PassengerCar) RoadNumber() (string, bool) { return pointer.Get(p.roadNumber) }
func (p PassengerCar) Type() (PassengerCarType, bool) { return pointer.Get(p.carType) }
func (p PassengerCar) ServiceLevel() (ServiceLevel, bool) { return pointer.Get(p.serviceLevel) }

func (p PassengerCar) String() string { return describe(p.typeName, p.roadNumber) }

// # Railcar

// Railcar is a self-propelled single car.
type Railcar struct {
	base
	powered
	typeName    string
	roadNumber  *string
	railcarType *RailcarType
	depot       *string
	isDummy     bool
}

func NewRailcar(id RollingStockID, typeName string, railway Railway, epoch Epoch, opts RailcarOptions) (Railcar, error) {
	v := &validate.Validator{}
	railcar := Railcar{
		base:        newBase(v, id, railway, epoch, opts.Details),
		powered:     newPowered(v, opts.Powered),
		typeName:    requiredName(v, FieldTypeName, typeName),
		roadNumber:  optionalText(v, FieldRoadNumber, opts.RoadNumber),
		railcarType: pointer.Clone(opts.Type),
		depot:       optionalText(v, FieldDepot, opts.Depot),
		isDummy:     opts.IsDummy,
	}
	if opts.Type != nil {
		v.OneOf(FieldSubCategory, string(*opts.Type), string(RailcarTypePowerCar), string(RailcarTypeTrailerCar))
	}

	if err := v.Err(); err != nil {
		return Railcar{}, err
	}
	return railcar, nil
}

func (Railcar) Category() Category { return CategoryRailcars }

func (r Railcar) TypeName() string { return r.typeName }
func (r Railcar) RoadNumber() (string, bool) { return pointer.Get(r.roadNumber) }
func (r Railcar) Type() (RailcarType, bool) { return pointer.Get(r.railcarType) }
func (r Railcar) Depot() (string, bool) { return pointer.Get(r.depot) }
func (r Railcar) IsDummy() bool { return r.isDummy }

func (r Railcar) String() string { return describe(r.typeName, r.roadNumber) }

// describe renders "<name> <road number>", or just the name.
func describe(name string, roadNumber *string) string {
	if roadNumber == nil || *roadNumber == "" {
		return name
	}
	return name + " " + *roadNumber
}
