package surf

import "gonum.org/v1/gonum/floats"

// Linspace returns count evenly spaced values over the closed interval [start, stop].
// For count >= 2 the first and last values are exactly start and stop.
// Linspace returns an empty slice for count <= 0 and [start] for count == 1.
func Linspace(start, stop float64, count int) []float64 {
	if count <= 0 {
		return []float64{}
	}
	res := make([]float64, count)
	res[0] = start
	if count == 1 {
		return res
	}
	floats.Span(res, start, stop)
	res[0] = start
	res[count-1] = stop
	return res
}

// Generate2D returns the ny-by-nx meshgrid of nx x-samples over [xmin,xmax]
// and ny y-samples over [ymin,ymax]. Row i holds a fixed y, column j a fixed x.
// An axis with a single sample degenerates to its minimum value.
func Generate2D(xmin, xmax, ymin, ymax float64, nx, ny int) (x, y [][]float64) {
	x = newRows(ny, nx)
	y = newRows(ny, nx)
	if nx <= 0 || ny <= 0 {
		return x, y
	}
	dx, dy := gridStep(xmin, xmax, nx), gridStep(ymin, ymax, ny)
	for i := 0; i < ny; i++ {
		v := ymin + float64(i)*dy
		for j := 0; j < nx; j++ {
			x[i][j] = xmin + float64(j)*dx
			y[i][j] = v
		}
	}
	return x, y
}

// Generate3D is like Generate2D and additionally returns z[i][j] = calcZ(x[i][j], y[i][j]).
// calcZ must be free of side effects; no evaluation order is guaranteed.
func Generate3D(xmin, xmax, ymin, ymax float64, nx, ny int, calcZ func(x, y float64) float64) (x, y, z [][]float64) {
	x, y = Generate2D(xmin, xmax, ymin, ymax, nx, ny)
	z = newRows(len(x), nx)
	for i := range x {
		for j := range x[i] {
			z[i][j] = calcZ(x[i][j], y[i][j])
		}
	}
	return x, y, z
}

func gridStep(min, max float64, n int) float64 {
	if n == 1 {
		return 0
	}
	return (max - min) / float64(n-1)
}

// newRows allocates rows slices of length cols backed by one array.
// Negative dimensions are treated as zero.
func newRows(rows, cols int) [][]float64 {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}
	data := make([]float64, rows*cols)
	m := make([][]float64, rows)
	for i := range m {
		m[i] = data[i*cols : (i+1)*cols : (i+1)*cols]
	}
	return m
}
