package polygon

type Polygon struct{ Sides int }
