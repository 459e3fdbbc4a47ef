package jobs

import "errors"

var (
	// ErrJobRecordNotFound means no job record exists under the name.
	ErrJobRecordNotFound = errors.New("job record not found")

	// ErrUnsupportedTargetDocType means the requested pull target is not
	// one of the five supported downstream document types.
	ErrUnsupportedTargetDocType = errors.New("unsupported doctype")
)
