package server

import (
	"github.com/csdt/netcalc/logger"
	"github.com/csdt/netcalc/util/panics"
)

var (
	log   = logger.Logger("SRVR")
	spawn = panics.GoroutineWrapperFunc(log)
)
