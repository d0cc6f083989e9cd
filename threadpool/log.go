package threadpool

import (
	"github.com/csdt/netcalc/logger"
	"github.com/csdt/netcalc/util/panics"
)

var (
	log   = logger.Logger("POOL")
	spawn = panics.GoroutineWrapperFunc(log)
)
