package highlight

import (
	"github.com/nguyentantai21042004/segment-flow/internal/logger"
)

type implSelector struct {
	opts   Options
	oracle Oracle
	logger logger.Logger
}

// New creates a Selector. oracle may be nil, in which case selection goes
// straight to the local density scorer.
func New(opts Options, oracle Oracle, log logger.Logger) Selector {
	return &implSelector{
		opts:   opts,
		oracle: oracle,
		logger: log.WithPrefix("selector"),
	}
}
