package domain

// Status is the traffic-light readiness of a single item or a whole category.
type Status string

const (
	StatusCritical Status = "critical"
	StatusWarning  Status = "warning"
	StatusOK       Status = "ok"
)

// Unit is the measurement a quantity is expressed in.
type Unit string

const (
	UnitPieces    Unit = "pieces"
	UnitLiters    Unit = "liters"
	UnitKilograms Unit = "kilograms"
	UnitGrams     Unit = "grams"
	UnitCans      Unit = "cans"
	UnitPackages  Unit = "packages"
	UnitBottles   Unit = "bottles"
	UnitRolls     Unit = "rolls"
	UnitBoxes     Unit = "boxes"
	UnitSets      Unit = "sets"
	UnitPairs     Unit = "pairs"
	UnitMeters    Unit = "meters"
	UnitEuros     Unit = "euros"
	UnitKcal      Unit = "kcal"
)

// ValidUnits is the canonical set of accepted unit strings.
var ValidUnits = map[Unit]bool{
	UnitPieces: true, UnitLiters: true, UnitKilograms: true, UnitGrams: true,
	UnitCans: true, UnitPackages: true, UnitBottles: true, UnitRolls: true,
	UnitBoxes: true, UnitSets: true, UnitPairs: true, UnitMeters: true,
	UnitEuros: true,
}

// ItemTypeCustom tags inventory items the user created by hand, without a
// recommendation behind them.
const ItemTypeCustom = "custom"
