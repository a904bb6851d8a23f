package field

import "errors"

var errNoPrimeFound = errors.New("field: no NTT-friendly prime found for cyclotomic ring")
var errCoeffLengthMismatch = errors.New("field: coefficient vector length does not match cyclotomic ring degree")
