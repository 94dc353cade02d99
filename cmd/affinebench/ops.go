package main

import (
	"fmt"
	"strings"

	"github.com/oliverbestmann/affine"
)

const precision = 1e-10

type operation struct {
	name string
	run  func(matrices []affine.Matrix2D) (float64, error)
}

var operations = []operation{
	{name: "multiply", run: runMultiply},
	{name: "inverse", run: runInverse},
	{name: "decompose", run: runDecompose},
	{name: "transform", run: runTransform},
}

func selectOperations(name string) ([]operation, error) {
	name = strings.ToLower(name)
	if name == "all" {
		return operations, nil
	}

	for _, op := range operations {
		if op.name == name {
			return []operation{op}, nil
		}
	}

	return nil, fmt.Errorf("unknown operation %q", name)
}

func runMultiply(matrices []affine.Matrix2D) (float64, error) {
	p := affine.NewPoint2D(1, 1)

	var checksum float64
	for idx, m := range matrices {
		next := matrices[(idx+1)%len(matrices)]
		product := m.Multiply(next)

		expected := p.Transform(next).Transform(m)
		if actual := p.Transform(product); !actual.PrecisionEquals(expected, 1e-9) {
			return checksum, fmt.Errorf("%s * %s applied to %s = %s, expected %s: %w",
				m, next, p, actual, expected, errRoundTrip)
		}

		checksum += product.E + product.F
	}

	return checksum, nil
}

func runInverse(matrices []affine.Matrix2D) (float64, error) {
	var checksum float64
	for _, m := range matrices {
		inverse, err := m.Inverse()
		if err != nil {
			return checksum, err
		}

		if product := m.Multiply(inverse); !product.PrecisionEquals(affine.Identity, precision) {
			return checksum, fmt.Errorf("%s * inverse = %s: %w", m, product, errRoundTrip)
		}

		checksum += inverse.Determinant()
	}

	return checksum, nil
}

func runDecompose(matrices []affine.Matrix2D) (float64, error) {
	var checksum float64
	for _, m := range matrices {
		d := m.GetDecomposition()

		if product := d.Matrix(); !product.PrecisionEquals(m, precision) {
			return checksum, fmt.Errorf("decomposition of %s = %s: %w", m, product, errRoundTrip)
		}

		checksum += d.Scale.A + d.Scale.D
	}

	return checksum, nil
}

func runTransform(matrices []affine.Matrix2D) (float64, error) {
	p := affine.NewPoint2D(1, 1)
	v := affine.NewVector2D(1, 1)

	var checksum float64
	for _, m := range matrices {
		tp := p.Transform(m)
		tv := v.Transform(m)

		checksum += tp.DistanceFrom(affine.Origin) + tv.Length()
	}

	return checksum, nil
}
