// Package calculator holds a pocket calculator interface and code that depends on it.
package calculator

import "errors"

// ErrDivideByZero is returned by Divide when the divisor is zero.
var ErrDivideByZero = errors.New("divide by zero")

// Calculator is a pocket calculator with a display mode and numbered memory slots.
type Calculator interface {
	// Add sums two integers.
	Add(a, b int) int
	// Divide divides a by b.
	Divide(a, b float64) (float64, error)
	// Mode is the display mode, e.g. "DEC" or "HEX".
	Mode() string
	SetMode(mode string)
	// Memory is the value stored in a memory slot.
	Memory(slot int) float64
	SetMemory(slot int, value float64)
	// Clear resets the display.
	Clear()
}

// Total adds values one at a time with calc and clears the display afterwards.
func Total(calc Calculator, values ...int) int {
	total := 0
	for _, value := range values {
		total = calc.Add(total, value)
	}

	calc.Clear()

	return total
}

// Ratio divides a by b, switching the calculator to decimal mode first.
func Ratio(calc Calculator, a, b float64) (float64, error) {
	calc.SetMode("DEC")

	return calc.Divide(a, b)
}
