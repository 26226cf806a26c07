package models

// DataStatus describes how a provider fetch resolved
type DataStatus string

const (
	DataOK     DataStatus = "ok"
	DataEmpty  DataStatus = "empty"
	DataFailed DataStatus = "failed"
)

// Outcome is the result of one provider fetch. Empty and Failed are both
// "no usable data" for scoring; the distinction is kept for DataQuality.
type Outcome[T any] struct {
	Data   T          `json:"data"`
	Status DataStatus `json:"status"`
	Err    error      `json:"-"`
}

// Ok wraps fetched data
func Ok[T any](data T) Outcome[T] {
	return Outcome[T]{Data: data, Status: DataOK}
}

// Empty is a successful fetch that returned nothing
func Empty[T any]() Outcome[T] {
	return Outcome[T]{Status: DataEmpty}
}

// Failed is a fetch that could not complete
func Failed[T any](err error) Outcome[T] {
	return Outcome[T]{Status: DataFailed, Err: err}
}

// Usable reports whether Data can be read
func (o Outcome[T]) Usable() bool {
	return o.Status == DataOK
}

// Value returns Data when usable and the zero value otherwise
func (o Outcome[T]) Value() T {
	if o.Status != DataOK {
		var zero T
		return zero
	}
	return o.Data
}
