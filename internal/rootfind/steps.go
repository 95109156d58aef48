package rootfind

// SecantStep returns the next secant iterate for f(x) = r, given two
// prior iterates x0, x1 with function values y0, y1.
func SecantStep(y0, y1, x0, x1, r float64) float64 {
	Y0 := y0 - r
	Y1 := y1 - r
	return (x0*Y1 - x1*Y0) / (Y1 - Y0)
}

// InverseQuadraticStep returns the next inverse-quadratic-interpolation
// iterate for f(x) = r, given three prior iterates with their function
// values. The three function values must be pairwise distinct.
func InverseQuadraticStep(y0, y1, y2, x0, x1, x2, r float64) float64 {
	Y0, Y1, Y2 := y0-r, y1-r, y2-r
	return x0*Y1*Y2/((Y0-Y1)*(Y0-Y2)) +
		x1*Y0*Y2/((Y1-Y0)*(Y1-Y2)) +
		x2*Y1*Y0/((Y2-Y1)*(Y2-Y0))
}
