package utils

import (
	"math"
	"testing"

	"go.viam.com/test"
)

func TestDegRadConversions(t *testing.T) {
	test.That(t, DegToRad(0), test.ShouldEqual, 0)
	test.That(t, DegToRad(180), test.ShouldEqual, math.Pi)
	test.That(t, DegToRad(-90), test.ShouldEqual, -math.Pi/2)
	test.That(t, RadToDeg(math.Pi), test.ShouldEqual, 180)
	test.That(t, RadToDeg(DegToRad(127.5)), test.ShouldAlmostEqual, 127.5)
}

func TestSquare(t *testing.T) {
	test.That(t, Square(2.5), test.ShouldEqual, 6.25)
	test.That(t, Square(-3), test.ShouldEqual, 9)
	test.That(t, Square(0), test.ShouldEqual, 0)
}

func TestClamp(t *testing.T) {
	test.That(t, Clamp(1.5, -1, 1), test.ShouldEqual, 1)
	test.That(t, Clamp(-1.5, -1, 1), test.ShouldEqual, -1)
	test.That(t, Clamp(0.25, -1, 1), test.ShouldEqual, 0.25)
}

func TestFloat64AlmostEqual(t *testing.T) {
	test.That(t, Float64AlmostEqual(1, 1+1e-9, 1e-8), test.ShouldBeTrue)
	test.That(t, Float64AlmostEqual(1, 1+1e-7, 1e-8), test.ShouldBeFalse)
	test.That(t, Float64AlmostEqual(-2, 2, 1), test.ShouldBeFalse)
}
