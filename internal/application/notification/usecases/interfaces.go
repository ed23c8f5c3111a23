package usecases

import "time"

// Clock supplies the current time.
type Clock func() time.Time
