package math

// Constants shared by the kernels. They are untyped so they convert exactly
// to either float lane type.
const (
	E             = 2.71828182845904523536028747135266249775724709369995957496696763 // exp(1)
	Ln2           = 0.693147180559945309417232121458176568075500134360255254120680009
	Ln10          = 2.30258509299404568401799145468436420760110148862877297603332790
	Log10E        = 1 / Ln10
	Log2E         = 1 / Ln2
	Sqrt2         = 1.41421356237309504880168872420969807856967187537694807317667974
	Sqrt1_2       = 1 / Sqrt2
	Pi            = 3.14159265358979323846264338327950288419716939937510582097494459
	PiOver2       = Pi / 2
	PiOver4       = Pi / 4
	InvPi         = 1 / Pi
	TwoOverPi     = 2 / Pi
	TwoOverSqrtPi = 1.12837916709551257389615890312154517168810125865799771368817144
)

// Sine polynomial coefficients.
const (
	sinB = 4 / Pi // slope of the parabola at zero
	sinC = 4 / (Pi * Pi)
	sinP = 0.225 // blend toward the squared parabola
)

const (
	// MaxNewtonSteps32 and MaxNewtonSteps64 bound SqrtNR for float32 and
	// float64. From a guess of 1 each step roughly halves the distance in
	// the exponent, so the bound covers twice the exponent range. Float
	// rounding can leave the iteration alternating between two neighbours.
	MaxNewtonSteps32 = 300
	MaxNewtonSteps64 = 2200

	// maxAsinSteps bounds AsinNR.
	maxAsinSteps = 32

	// asinTolerance is the step size at which the inverse sines stop.
	asinTolerance = 0.01

	// nthRootSteps is the fixed number of Newton updates in NthRoot.
	nthRootSteps = 6
)
