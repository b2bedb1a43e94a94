package ent

import (
	"github.com/coursewave/coursewave-app/ent"
	"github.com/coursewave/coursewave-app/pkg/constant"
)

// translateError maps ent storage errors onto the domain sentinels so the
// service layer never inspects driver-specific errors.
func translateError(err error) error {
	switch {
	case err == nil:
		return nil
	case ent.IsNotFound(err):
		return constant.ErrNotFound
	case ent.IsConstraintError(err):
		return constant.ErrConflict
	default:
		return err
	}
}
