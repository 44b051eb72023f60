package warmtransfer

import "time"

// nullStat is a no-op stat client used when running as a native Lambda
// where no metrics collector endpoint is available to the process.
type nullStat struct{}

func (*nullStat) Gauge(stat string, value float64, tags ...string)        {}
func (*nullStat) Count(stat string, count float64, tags ...string)        {}
func (*nullStat) Histogram(stat string, value float64, tags ...string)    {}
func (*nullStat) Timing(stat string, value time.Duration, tags ...string) {}
func (*nullStat) AddTags(tags ...string)                                  {}
func (*nullStat) GetTags() []string                                       { return nil }
