package middlewares

import "errors"

var ErrNothingToUpdate = errors.New("no data is being updated")
