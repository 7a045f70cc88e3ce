package fixture

import "errors"

// Sentinel errors for fixture generation. I/O errors wrap both the sentinel
// and the underlying *os.PathError.
var (
	ErrNegativeCount     = errors.New("negative record count")
	ErrInvalidSalesmanID = errors.New("invalid salesman id")
	ErrInvalidFiles      = errors.New("invalid output file names")

	ErrCreate = errors.New("create fixture file")
	ErrWrite  = errors.New("write fixture file")
	ErrClose  = errors.New("close fixture file")
)
