// Package shapes is a fixture with one object of every kind.
package shapes

import "fmt"

// Pi is a package constant.
const Pi = 3.14159

const _Internal = 0

// Unit is a package variable.
var Unit = "cm"

// Formatter is a package variable of func type.
var Formatter = fmt.Sprintf

// Shape is implemented by every figure.
type Shape interface {
	Area() float64
	Perimeter() float64
}

type Circle struct {
	Radius float64
	OnDraw func()
	color  string
}

func (c *Circle) Area() float64     { return Pi * c.Radius * c.Radius }
func (c Circle) Perimeter() float64 { return 2 * Pi * c.Radius }
func (c *Circle) repaint()          {}

type Square struct{ Side float64 }

func (s Square) Area() float64      { return s.Side * s.Side }
func (s Square) Perimeter() float64 { return 4 * s.Side }

func NewCircle(r float64) *Circle { return &Circle{Radius: r} }

func describe(s Shape) string { return fmt.Sprint(s.Area()) }
