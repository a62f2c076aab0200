package internal

// Path traversal constants
const (
	PathSeparator = "."
)

// Stringification constants
const (
	StringValueTrue      = "true"
	StringValueFalse     = "false"
	StringValueNull      = "null"
	StringValueNaN       = "NaN"
	StringValueInfinity  = "Infinity"
	StringValueNegInf    = "-Infinity"
	StringSliceSeparator = ","
	IntBase10            = 10
	FloatFormatFlag      = 'f'
	FloatExponentFlag    = 'e'
	FloatExponentUpper   = 1e21
	FloatExponentLower   = 1e-6
	FloatPrecisionAll    = -1
	FloatBitSize32       = 32
	FloatBitSize64       = 64
)

// HTML entity constants
const (
	EntityAmp  = "&amp;"
	EntityLt   = "&lt;"
	EntityGt   = "&gt;"
	EntityQuot = "&quot;"
	EntityApos = "&#39;"
	CharAmp    = "&"
	CharLt     = "<"
	CharGt     = ">"
	CharQuot   = "\""
	CharApos   = "'"
)
