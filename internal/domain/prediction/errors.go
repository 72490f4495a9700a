package prediction

import "errors"

var ErrPredictionNotFound = errors.New("prediction not found")
