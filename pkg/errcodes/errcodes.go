package errcodes

import "git.appkode.ru/pub/go/failure"

const (
	InternalServerError failure.ErrorCode = "InternalServerError"
	ValidationError     failure.ErrorCode = "ValidationError"

	// Fatal input errors, abort the run.
	InputNotFound  failure.ErrorCode = "InputNotFound"
	MalformedInput failure.ErrorCode = "MalformedInput"

	// Per-query absence reasons, never surfaced as failures.
	UnknownZip         failure.ErrorCode = "UnknownZip"
	AmbiguousZip       failure.ErrorCode = "AmbiguousZip"
	UnknownRateArea    failure.ErrorCode = "UnknownRateArea"
	NoSecondSilverRate failure.ErrorCode = "NoSecondSilverRate"
)
