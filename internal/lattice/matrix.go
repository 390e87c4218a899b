package lattice

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"dwbuilder/internal/domain"
)

// degenerateTol is the determinant magnitude below which a matrix is
// treated as singular.
const degenerateTol = 1e-9

func dense(m domain.Matrix) *mat.Dense {
	return mat.NewDense(3, 3, []float64{
		m[0][0], m[0][1], m[0][2],
		m[1][0], m[1][1], m[1][2],
		m[2][0], m[2][1], m[2][2],
	})
}

func fromDense(d *mat.Dense) domain.Matrix {
	var m domain.Matrix
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			m[i][j] = d.At(i, j)
		}
	}
	return m
}

// Det returns the determinant of m.
func Det(m domain.Matrix) float64 { return mat.Det(dense(m)) }

// Volume returns the cell volume |det(cell)|.
func Volume(cell domain.Matrix) float64 { return math.Abs(Det(cell)) }

// Inverse returns m^-1, or ErrDegenerateTransform when m is singular.
func Inverse(m domain.Matrix) (domain.Matrix, error) {
	var inv mat.Dense
	if err := inv.Inverse(dense(m)); err != nil {
		return domain.Matrix{}, domain.ErrDegenerateTransform
	}
	return fromDense(&inv), nil
}

// Mul returns the matrix product a*b.
func Mul(a, b domain.Matrix) domain.Matrix {
	var out mat.Dense
	out.Mul(dense(a), dense(b))
	return fromDense(&out)
}

// Transpose returns m with rows and columns exchanged.
func Transpose(m domain.Matrix) domain.Matrix {
	var out domain.Matrix
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i][j] = m[j][i]
		}
	}
	return out
}

// MulVec returns m*v, treating v as a column vector.
func MulVec(m domain.Matrix, v domain.Vector) domain.Vector {
	var out domain.Vector
	for i := 0; i < 3; i++ {
		out[i] = m[i][0]*v[0] + m[i][1]*v[1] + m[i][2]*v[2]
	}
	return out
}

// Dot returns the scalar product of a and b.
func Dot(a, b domain.Vector) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

// Cross returns the vector product a x b.
func Cross(a, b domain.Vector) domain.Vector {
	return domain.Vector{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

// Norm returns the Euclidean length of v.
func Norm(v domain.Vector) float64 { return math.Sqrt(Dot(v, v)) }

// Add returns a + b.
func Add(a, b domain.Vector) domain.Vector {
	return domain.Vector{a[0] + b[0], a[1] + b[1], a[2] + b[2]}
}

// Sub returns a - b.
func Sub(a, b domain.Vector) domain.Vector {
	return domain.Vector{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

// Scale returns v scaled by f.
func Scale(v domain.Vector, f float64) domain.Vector {
	return domain.Vector{v[0] * f, v[1] * f, v[2] * f}
}

// Cartesian converts a fractional position to Cartesian coordinates:
// x = f_a*a + f_b*b + f_c*c.
func Cartesian(cell domain.Matrix, frac domain.Vector) domain.Vector {
	return MulVec(Transpose(cell), frac)
}

// isInteger reports whether every entry of m is an integer within tol.
func isInteger(m domain.Matrix, tol float64) bool {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if math.Abs(m[i][j]-math.Round(m[i][j])) > tol {
				return false
			}
		}
	}
	return true
}
