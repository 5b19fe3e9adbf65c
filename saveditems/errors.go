package saveditems

import "fmt"

// PartialError reports a move whose destination write committed but whose
// source removal did not: the product is present in both lists until the
// removal is retried.
type PartialError struct {
	FromKind  string
	ToKind    string
	UserID    string
	ProductID string
	Err       error
}

func (e *PartialError) Error() string {
	return fmt.Sprintf("move %s->%s for user %s product %s: destination written, source removal failed: %v",
		e.FromKind, e.ToKind, e.UserID, e.ProductID, e.Err)
}

func (e *PartialError) Unwrap() error { return e.Err }
