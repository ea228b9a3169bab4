package response

import (
	"github.com/jinzhu/copier"
)

// copyInto maps a view onto a response struct by field name. Slices and
// pointers are shared with the source.
func copyInto[T any](src any) *T {
	var dst T
	if err := copier.Copy(&dst, src); err != nil {
		// The response types mirror the views field by field; a failure here
		// is a programming error.
		panic("response mapping: " + err.Error())
	}
	return &dst
}

func copyList[T any, S any](items []S) []*T {
	out := make([]*T, 0, len(items))
	for _, it := range items {
		out = append(out, copyInto[T](it))
	}
	return out
}
