package cli

import (
	"github.com/wrenhold/commute/internal/schedule"
)

type Context struct {
	Store *schedule.Store
}
