package config

// this holds the resolved configuration values from CLI
var (
	LogLevel  string // sets the log level (zap log level values)
	LogFormat string // text vs json
	LogFilter string // zapfilter rules applied to the root logger

	Course     string // name of a built-in course
	CourseFile string // path to a YAML course definition (overrides Course)
	CarClasses string // comma separated car classes for the grid
	Laps       uint32 // laps to complete
	TickRate   int    // simulation ticks per second
	MaxTicks   int    // safety stop for headless runs (0 means no limit)
	Seed       uint64 // seed for the host-side random source

	TelemetryURL     string // NATS url for live state publishing (empty: off)
	TelemetrySubject string // NATS subject for live state publishing
	TelemetryEvery   int    // publish every n-th tick

	ResultsFile string // path for the final standings JSON (empty: off)
)
