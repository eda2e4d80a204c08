package race

import (
	"fmt"
	"os"
	"strings"

	"github.com/nats-io/nats.go"
	"github.com/spf13/cobra"

	"github.com/neondrift/racesim/log"
	"github.com/neondrift/racesim/pkg/config"
	"github.com/neondrift/racesim/pkg/simulation"
	"github.com/neondrift/racesim/pkg/simulation/track"
	"github.com/neondrift/racesim/pkg/telemetry"
)

func NewRaceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "race",
		Short: "commands for running races",
	}
	cmd.AddCommand(newRunCmd())
	return cmd
}

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "runs a headless race with AI drivers",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRace()
		},
	}
	cmd.Flags().StringVar(&config.Course,
		"course",
		"neon-city",
		"built-in course to race on")
	cmd.Flags().StringVar(&config.CourseFile,
		"course-file",
		"",
		"YAML course definition (overrides --course)")
	cmd.Flags().StringVar(&config.CarClasses,
		"classes",
		"speedster,muscle,racer,drift",
		"comma separated car classes for the grid")
	cmd.Flags().Uint32Var(&config.Laps,
		"laps",
		3,
		"laps to complete")
	cmd.Flags().IntVar(&config.TickRate,
		"tick-rate",
		60,
		"simulation ticks per second")
	cmd.Flags().IntVar(&config.MaxTicks,
		"max-ticks",
		0,
		"abort the race after this many ticks (0: no limit)")
	cmd.Flags().Uint64Var(&config.Seed,
		"seed",
		1,
		"seed for the host-side random source")
	cmd.Flags().StringVar(&config.TelemetryURL,
		"telemetry-url",
		"",
		"NATS url for live state publishing (empty: off)")
	cmd.Flags().StringVar(&config.TelemetrySubject,
		"telemetry-subject",
		"racesim",
		"NATS subject prefix for live state publishing")
	cmd.Flags().IntVar(&config.TelemetryEvery,
		"telemetry-every",
		6,
		"publish state every n-th tick")
	cmd.Flags().StringVar(&config.ResultsFile,
		"results-file",
		"",
		"write the final standings as JSON to this file (empty: off)")
	return cmd
}

// SetupLogger builds the process logger from the shared log flags.
func SetupLogger() *log.Logger {
	var logger *log.Logger
	switch config.LogFormat {
	case "json":
		logger = log.New(
			os.Stderr,
			parseLogLevel(config.LogLevel, log.InfoLevel),
			log.WithCaller(true),
			log.AddCallerSkip(1))
	default:
		logger = log.DevLogger(
			os.Stderr,
			parseLogLevel(config.LogLevel, log.InfoLevel),
			log.WithCaller(true),
			log.AddCallerSkip(1))
	}
	if config.LogFilter != "" {
		logger = logger.WithFilters(config.LogFilter)
	}
	log.ResetDefault(logger)
	return logger
}

func parseLogLevel(l string, defaultVal log.Level) log.Level {
	level, err := log.ParseLevel(l)
	if err != nil {
		return defaultVal
	}
	return level
}

// ResolveCourse loads the configured course, file taking precedence.
func ResolveCourse() (*track.Course, error) {
	if config.CourseFile != "" {
		return track.LoadCourse(config.CourseFile)
	}
	return track.CourseByName(config.Course)
}

// ParseClasses resolves the comma separated grid description.
func ParseClasses(arg string) ([]simulation.CarClass, error) {
	parts := strings.Split(arg, ",")
	ret := make([]simulation.CarClass, 0, len(parts))
	for _, p := range parts {
		c, err := simulation.ParseCarClass(strings.TrimSpace(p))
		if err != nil {
			return nil, err
		}
		ret = append(ret, c)
	}
	return ret, nil
}

// publisherObserver forwards race events to the telemetry publisher.
type publisherObserver struct {
	pub     *telemetry.Publisher
	session *simulation.Session
}

func (o *publisherObserver) RaceEvent(carIdx int, event simulation.Event) {
	o.pub.PublishEvent(o.session.Sim.TickNo, carIdx, event)
}

//nolint:funlen // wiring
func runRace() error {
	logger := SetupLogger()
	defer logger.Sync() //nolint:errcheck // last chance flush

	course, err := ResolveCourse()
	if err != nil {
		return err
	}
	classes, err := ParseClasses(config.CarClasses)
	if err != nil {
		return err
	}
	if config.TickRate <= 0 {
		return fmt.Errorf("tick rate %d must be positive", config.TickRate)
	}

	opts := []simulation.SessionOption{
		simulation.WithTargetLaps(config.Laps),
		simulation.WithRand(simulation.NewSplitMix(config.Seed)),
	}

	var pub *telemetry.Publisher
	obs := &publisherObserver{}
	if config.TelemetryURL != "" {
		conn, connErr := nats.Connect(config.TelemetryURL)
		if connErr != nil {
			return fmt.Errorf("connecting to NATS: %w", connErr)
		}
		defer conn.Close()
		pub = telemetry.NewPublisher(conn,
			telemetry.WithSubjectPrefix(config.TelemetrySubject),
			telemetry.WithInterval(uint64(config.TelemetryEvery))) //nolint:gosec // flag
		obs.pub = pub
		opts = append(opts, simulation.WithObserver(obs))
	}

	session, err := simulation.NewSession(course, classes, opts...)
	if err != nil {
		return err
	}
	obs.session = session

	logger.Info("race starting",
		log.String("course", course.Name),
		log.String("classes", config.CarClasses),
		log.Uint32("laps", config.Laps),
		log.Int("tickRate", config.TickRate))

	dt := float32(1) / float32(config.TickRate)
	for tick := 0; !session.Finished; tick++ {
		if config.MaxTicks > 0 && tick >= config.MaxTicks {
			logger.Warn("tick limit reached before the race finished",
				log.Int("maxTicks", config.MaxTicks))
			break
		}
		session.Tick(dt, nil)
		if pub != nil {
			if pubErr := pub.PublishState(&session.Sim, session.RaceTime); pubErr != nil {
				logger.Warn("publishing state", log.ErrorField(pubErr))
			}
		}
	}

	result := telemetry.BuildResult(session)
	for _, e := range result.Entries {
		logger.Info("standing",
			log.Uint32("position", e.Position),
			log.Int("car", e.CarIdx),
			log.String("class", e.Class),
			log.Uint32("laps", e.Laps))
	}
	logger.Info("race done",
		log.Float32("raceTime", result.RaceTime),
		log.Int("winner", result.Winner))

	if config.ResultsFile != "" {
		if err := telemetry.WriteResultFile(config.ResultsFile, result); err != nil {
			return err
		}
		logger.Info("results written", log.String("file", config.ResultsFile))
	}
	return nil
}
