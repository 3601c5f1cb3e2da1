package convert

import (
	"math"
	"strconv"
	"time"
)

// seriously US?
const feetToMeter = 3.28084

const metersToMiles = 0.000621371

// ToFeet returns the given distance in meters to feet
// because we live in the US, and this country is still using the deprecated imperial
// system instead of the metric system like the rest of the world.
func ToFeet(meters float64) float64 {
	return meters * feetToMeter
}

// ToMiles returns the given distance in meters to miles
func ToMiles(meters float64) float64 {
	return meters * metersToMiles
}

// ToDaysHoursMin splits a duration in days, hours and minutes. Negative durations are zero.
func ToDaysHoursMin(d time.Duration) (int, int, int) {
	if d <= 0 {
		return 0, 0, 0
	}

	minutes := int(d / time.Minute)
	return minutes / (24 * 60), (minutes / 60) % 24, minutes % 60
}

// Ftoan formats a float rounded to the nearest integer
func Ftoan(f float64) string {
	return strconv.Itoa(int(math.Round(f)))
}
