package apihandlers

import (
	"github.com/getzep/annotext/internal"
)

var log = internal.GetLogger()
