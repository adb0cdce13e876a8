package main

import (
	"math"

	"github.com/golang/geo/r2"
)

// polar returns the point at the given angle (radians) and radius from the origin.
func polar(angleRad, radius float64) r2.Point {
	return r2.Point{X: radius * math.Cos(angleRad), Y: radius * math.Sin(angleRad)}
}

// polarAngle returns the angle of p measured from the positive x axis.
func polarAngle(p r2.Point) float64 {
	return math.Atan2(p.Y, p.X)
}

func distanceSquared(a, b r2.Point) float64 {
	d := a.Sub(b)
	return d.Dot(d)
}

func distance(a, b r2.Point) float64 {
	return a.Sub(b).Norm()
}
