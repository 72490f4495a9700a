package batch

import "errors"

var (
	ErrMalformedUpload    = errors.New("malformed upload: could not parse delimited text")
	ErrMissingHeader      = errors.New("upload is empty or missing a header row")
	ErrJobNotFound        = errors.New("batch job not found")
	ErrJobAlreadyFinished = errors.New("batch job already finished")
)
