package domain

// Settings are operator defaults read from an optional config file.
// Zero values mean "not set"; flags and environment variables take
// precedence during resolution in the app layer.
type Settings struct {
	// Cluster is the default cluster identifier to watch.
	Cluster string
	// Region is the default provider region.
	Region string
	// Profile is the default credential profile.
	Profile string
	// IntervalSeconds is the default poll interval.
	IntervalSeconds int
	// Detail enables raw detail output by default.
	Detail bool
}
