// Copyright 2016 The threed-beam-fea Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ana implements closed-form solutions of simple beam problems
// used to verify the finite element results
package ana

// CantileverEndLoad computes the solution of a cantilevered beam with a
// transverse point load at the free end
type CantileverEndLoad struct {
	L  float64 // length
	EI float64 // bending stiffness
	F  float64 // transverse load at the tip
}

// TipDeflection returns the transverse displacement of the free end
func (o CantileverEndLoad) TipDeflection() float64 {
	return o.F * o.L * o.L * o.L / (3.0 * o.EI)
}

// TipRotation returns the rotation of the free end
func (o CantileverEndLoad) TipRotation() float64 {
	return o.F * o.L * o.L / (2.0 * o.EI)
}

// SupportShear returns the reaction force at the clamped end
func (o CantileverEndLoad) SupportShear() float64 {
	return -o.F
}

// SupportMoment returns the reaction moment at the clamped end
func (o CantileverEndLoad) SupportMoment() float64 {
	return -o.F * o.L
}

// CantileverEndDisp computes the solution of a cantilevered beam whose
// free end is displaced transversely with the end rotation left free
type CantileverEndDisp struct {
	L  float64 // length
	EI float64 // bending stiffness
	D  float64 // imposed transverse displacement of the tip
}

// TipForce returns the force required to impose the displacement
func (o CantileverEndDisp) TipForce() float64 {
	return 3.0 * o.EI * o.D / (o.L * o.L * o.L)
}

// TipRotation returns the resulting rotation of the free end
func (o CantileverEndDisp) TipRotation() float64 {
	return 3.0 * o.D / (2.0 * o.L)
}

// SupportMoment returns the reaction moment at the clamped end
func (o CantileverEndDisp) SupportMoment() float64 {
	return -3.0 * o.EI * o.D / (o.L * o.L)
}

// AxialBar computes the solution of a bar stretched axially
type AxialBar struct {
	L  float64 // length
	EA float64 // axial stiffness
	D  float64 // imposed end displacement
}

// EndForce returns the force required to impose the displacement
func (o AxialBar) EndForce() float64 {
	return o.EA * o.D / o.L
}
