// Package linalg provides dense linear algebra over a finite field. The
// Berlekamp-Welch decoder is its only client in this module.
package linalg

import (
	"errors"

	"github.com/fieldshare/sss-lib/core/math/gf"
)

var (
	ErrSingular = errors.New("linalg: system has no solution")
	ErrBadShape = errors.New("linalg: matrix dimensions do not match")
)

// Solve returns a particular solution x of A·x = b over the field of the
// right-hand side. The system may be rectangular; when it is
// underdetermined, free variables are fixed to zero. An inconsistent
// system fails with ErrSingular.
func Solve(a [][]gf.Element, b []gf.Element) ([]gf.Element, error) {
	rows := len(a)
	if rows == 0 || len(b) != rows {
		return nil, ErrBadShape
	}
	cols := len(a[0])
	for _, row := range a {
		if len(row) != cols {
			return nil, ErrBadShape
		}
	}
	field := b[0].Field()

	// working copy, augmented with b in the last column
	m := make([][]gf.Element, rows)
	for i, row := range a {
		m[i] = make([]gf.Element, cols+1)
		copy(m[i], row)
		m[i][cols] = b[i]
	}

	// forward elimination with pivoting on the first nonzero entry
	pivotRow := make([]int, 0, cols)
	pivotCol := make([]int, 0, cols)
	rank := 0
	for col := 0; col < cols && rank < rows; col++ {
		pivot := -1
		for r := rank; r < rows; r++ {
			if !m[r][col].IsZero() {
				pivot = r
				break
			}
		}
		if pivot < 0 {
			continue
		}
		m[rank], m[pivot] = m[pivot], m[rank]
		inv, err := m[rank][col].Inv()
		if err != nil {
			return nil, err
		}
		for j := col; j <= cols; j++ {
			m[rank][j] = m[rank][j].Mul(inv)
		}
		for r := rank + 1; r < rows; r++ {
			factor := m[r][col]
			if factor.IsZero() {
				continue
			}
			for j := col; j <= cols; j++ {
				m[r][j] = m[r][j].Sub(factor.Mul(m[rank][j]))
			}
		}
		pivotRow = append(pivotRow, rank)
		pivotCol = append(pivotCol, col)
		rank++
	}

	// rows eliminated to zero must have a zero right-hand side
	for r := rank; r < rows; r++ {
		if !m[r][cols].IsZero() {
			return nil, ErrSingular
		}
	}

	// back substitution, free variables stay zero
	x := make([]gf.Element, cols)
	for j := range x {
		x[j] = field.Zero()
	}
	for p := rank - 1; p >= 0; p-- {
		r, c := pivotRow[p], pivotCol[p]
		acc := m[r][cols]
		for j := c + 1; j < cols; j++ {
			if m[r][j].IsZero() || x[j].IsZero() {
				continue
			}
			acc = acc.Sub(m[r][j].Mul(x[j]))
		}
		x[c] = acc // pivot entry was normalized to 1
	}
	return x, nil
}
