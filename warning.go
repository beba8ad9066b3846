package pagecursor

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

const WarnButtonCountAdjusted = "button_count_adjusted"

// Warning is a non-fatal diagnostic produced while planning.
type Warning struct {
	Code      string
	Message   string
	Requested int
	Applied   int
}

// WarnFunc receives planner diagnostics. It must not affect the result.
type WarnFunc func(Warning)

func noopWarn(Warning) {}

func buttonCountWarning(requested, applied int) Warning {
	return Warning{
		Code: WarnButtonCountAdjusted,
		Message: fmt.Sprintf(
			"buttonCount of %d passed to page cursors, but using %d instead for the pagination logic",
			requested, applied,
		),
		Requested: requested,
		Applied:   applied,
	}
}

// LogrusWarnFunc forwards warnings to a logrus logger at warn level.
func LogrusWarnFunc(logger logrus.FieldLogger) WarnFunc {
	if logger == nil {
		return noopWarn
	}

	return func(w Warning) {
		logger.WithFields(logrus.Fields{
			"code":      w.Code,
			"requested": w.Requested,
			"applied":   w.Applied,
		}).Warn(w.Message)
	}
}
