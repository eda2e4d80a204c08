// Package telemetry streams race state over NATS and writes result files.
// Everything here is an observer of the simulation; nothing feeds back in.
package telemetry

import (
	"fmt"

	"github.com/nats-io/nats.go"
	"github.com/ohler55/ojg/oj"

	"github.com/neondrift/racesim/log"
	"github.com/neondrift/racesim/pkg/simulation"
)

type (
	Publisher struct {
		conn    *nats.Conn
		subject string
		every   uint64
		l       *log.Logger
	}
	Option func(*Publisher)
)

// NewPublisher wraps an established NATS connection.
func NewPublisher(conn *nats.Conn, opts ...Option) *Publisher {
	ret := &Publisher{
		conn:    conn,
		subject: "racesim",
		every:   1,
		l:       log.Default().Named("telemetry"),
	}
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}

// WithSubjectPrefix sets the subject prefix for all published messages.
func WithSubjectPrefix(subject string) Option {
	return func(p *Publisher) {
		if subject != "" {
			p.subject = subject
		}
	}
}

// WithInterval publishes state every n ticks instead of every tick.
func WithInterval(n uint64) Option {
	return func(p *Publisher) {
		if n > 0 {
			p.every = n
		}
	}
}

// CarFrame is the per-car slice of a state message.
type CarFrame struct {
	Class      string  `json:"class"`
	X          float32 `json:"x"`
	Y          float32 `json:"y"`
	Z          float32 `json:"z"`
	Heading    float32 `json:"heading"`
	Speed      float32 `json:"speed"`
	BoostMeter float32 `json:"boostMeter"`
	Boosting   bool    `json:"boosting"`
	Drifting   bool    `json:"drifting"`
	Lap        uint32  `json:"lap"`
	Checkpoint int     `json:"checkpoint"`
	Position   uint32  `json:"position"`
}

// StateFrame is one published snapshot of the race.
type StateFrame struct {
	Tick     uint64     `json:"tick"`
	RaceTime float32    `json:"raceTime"`
	Cars     []CarFrame `json:"cars"`
}

// EventFrame is one published race event.
type EventFrame struct {
	Tick   uint64 `json:"tick"`
	CarIdx int    `json:"carIdx"`
	Event  string `json:"event"`
}

// PublishState sends the current race state on <prefix>.state, honoring
// the configured interval.
func (p *Publisher) PublishState(sim *simulation.Simulation, raceTime float32) error {
	if sim.TickNo%p.every != 0 {
		return nil
	}
	frame := StateFrame{
		Tick:     sim.TickNo,
		RaceTime: raceTime,
		Cars:     make([]CarFrame, 0, sim.CarCount),
	}
	for i := 0; i < sim.CarCount; i++ {
		car := &sim.Cars[i]
		frame.Cars = append(frame.Cars, CarFrame{
			Class:      car.Class.String(),
			X:          car.X,
			Y:          car.Y,
			Z:          car.Z,
			Heading:    car.RotationY,
			Speed:      car.Speed(),
			BoostMeter: car.BoostMeter,
			Boosting:   car.Boosting,
			Drifting:   car.Drifting,
			Lap:        car.CurrentLap,
			Checkpoint: car.LastCheckpoint,
			Position:   car.RacePosition,
		})
	}
	data, err := oj.Marshal(frame)
	if err != nil {
		return fmt.Errorf("marshaling state frame: %w", err)
	}
	return p.conn.Publish(fmt.Sprintf("%s.state", p.subject), data)
}

// PublishEvent sends a race event on <prefix>.events.<name>.
func (p *Publisher) PublishEvent(tick uint64, carIdx int, event simulation.Event) {
	data, err := oj.Marshal(EventFrame{
		Tick:   tick,
		CarIdx: carIdx,
		Event:  event.String(),
	})
	if err != nil {
		p.l.Error("marshaling event frame", log.ErrorField(err))
		return
	}
	subject := fmt.Sprintf("%s.events.%s", p.subject, event.String())
	if err := p.conn.Publish(subject, data); err != nil {
		p.l.Warn("publishing event", log.ErrorField(err))
	}
}
