package treebuild

import (
	"fmt"

	apperrors "github.com/galform/mergertree/pkg/errors"
)

func errInvalidData(format string, args ...interface{}) error {
	return apperrors.Newf(apperrors.CodeInvalidData, format, args...)
}

func errInvalidArgument(format string, args ...interface{}) error {
	return apperrors.Newf(apperrors.CodeInvalidArgument, format, args...)
}

func errSubhaloNotFound(descendantID int64, context string) error {
	base := apperrors.NewSubhaloNotFoundError(descendantID)
	base.Message = fmt.Sprintf("%s: %s", base.Message, context)
	return base
}
