package geom

func Hypot(a, b float64) float64 { return a*a + b*b }
