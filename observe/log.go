package observe

import (
	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/maxflow/flow"
)

// LogObserver writes every augmentation round to a logrus logger.
type LogObserver struct {
	logger log.FieldLogger
	level  log.Level
}

// NewLogObserver returns an observer logging at debug level. A nil logger
// falls back to the logrus standard logger.
func NewLogObserver(logger log.FieldLogger) *LogObserver {
	if logger == nil {
		logger = log.StandardLogger()
	}

	return &LogObserver{logger: logger, level: log.DebugLevel}
}

// AtLevel returns a copy of o that logs at the given level.
func (o *LogObserver) AtLevel(level log.Level) *LogObserver {
	c := *o
	c.level = level

	return &c
}

// OnAugment implements flow.Observer.
func (o *LogObserver) OnAugment(r flow.Round) {
	entry := o.logger.WithFields(log.Fields{
		"round":      r.Index,
		"path":       r.Path.String(),
		"bottleneck": r.Bottleneck,
		"total":      r.Total,
	})
	switch o.level {
	case log.TraceLevel:
		entry.Trace("augment")
	case log.DebugLevel:
		entry.Debug("augment")
	case log.InfoLevel:
		entry.Info("augment")
	default:
		entry.Warn("augment")
	}
}

// Multi returns an observer that forwards each round to every non-nil
// observer in order. It returns nil when none remain, which FlowOptions
// treats as "no observer".
func Multi(observers ...flow.Observer) flow.Observer {
	var list multi
	for _, o := range observers {
		if o != nil {
			list = append(list, o)
		}
	}
	switch len(list) {
	case 0:
		return nil
	case 1:
		return list[0]
	}

	return list
}

type multi []flow.Observer

func (m multi) OnAugment(r flow.Round) {
	for _, o := range m {
		o.OnAugment(r)
	}
}
