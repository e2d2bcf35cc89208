package seed

import "math"

// point is a coordinate in R^dim, used by Grid's lattice, Complete's
// Fibonacci-sphere placement, and Random's uniform sampling.
type point []float64

func euclidean(a, b point) float64 {
	sum := 0.0
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return math.Sqrt(sum)
}

// fibonacciSphere places n points approximately evenly on the unit
// sphere using the golden-angle spiral construction.
func fibonacciSphere(n int) []point {
	pts := make([]point, n)
	goldenAngle := math.Pi * (3 - math.Sqrt(5))
	for i := 0; i < n; i++ {
		var y float64
		if n == 1 {
			y = 0
		} else {
			y = 1 - (float64(i)/float64(n-1))*2
		}
		radius := math.Sqrt(math.Max(0, 1-y*y))
		theta := goldenAngle * float64(i)
		x := math.Cos(theta) * radius
		z := math.Sin(theta) * radius
		pts[i] = point{x, y, z}
	}
	return pts
}

// arcDistance returns the great-circle distance between two points on
// the unit sphere, i.e. the angle (in radians) between them.
func arcDistance(a, b point) float64 {
	dot := 0.0
	for i := range a {
		dot += a[i] * b[i]
	}
	if dot > 1 {
		dot = 1
	} else if dot < -1 {
		dot = -1
	}
	return math.Acos(dot)
}
