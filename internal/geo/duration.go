package geo

// VehicleType selects a point-to-point navigation speed profile.
type VehicleType string

const (
	VehicleBicycle    VehicleType = "bicycle"
	VehicleScooter    VehicleType = "scooter"
	VehicleMotorcycle VehicleType = "motorcycle"
	VehicleCar        VehicleType = "car"
	VehicleVan        VehicleType = "van"
)

// RouteSpeedKmh is the flat assumed urban speed used for whole-route
// estimation. Navigation ETAs use the per-vehicle table instead; the two
// profiles are kept deliberately distinct and live side by side here so
// neither is reached for by accident.
const RouteSpeedKmh = 30.0

// navSpeedKmh maps vehicle types to assumed urban navigation speeds.
var navSpeedKmh = map[VehicleType]float64{
	VehicleBicycle:    12,
	VehicleScooter:    15,
	VehicleVan:        18,
	VehicleCar:        20,
	VehicleMotorcycle: 25,
}

// defaultNavSpeedKmh applies when the vehicle type is unknown.
const defaultNavSpeedKmh = 20.0

func minutesAtSpeed(km, speedKmh float64) float64 {
	return km / speedKmh * 60
}

// EstimateTravelMinutes converts a route distance into a travel-time
// estimate at the flat route-planning speed.
func EstimateTravelMinutes(km float64) float64 {
	return minutesAtSpeed(km, RouteSpeedKmh)
}

// EstimateLegMinutes converts a single point-to-point distance into a
// navigation ETA for the given vehicle type.
func EstimateLegMinutes(km float64, vehicle VehicleType) float64 {
	speed, ok := navSpeedKmh[vehicle]
	if !ok {
		speed = defaultNavSpeedKmh
	}
	return minutesAtSpeed(km, speed)
}
