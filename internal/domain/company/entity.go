package company

// Company is static reference data. A single row holds the company code used
// as the prefix of every generated employee ID.
type Company struct {
	ID   int
	Name string
	Code string
}
