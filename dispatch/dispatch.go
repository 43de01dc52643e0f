package dispatch

import (
	"context"
	"errors"
	"fmt"

	dockermdns "github.com/devgianlu/docker-mdns"
	"github.com/devgianlu/docker-mdns/engine"
)

var ErrStreamClosed = errors.New("event stream closed")

type Publisher interface {
	Publish(spec dockermdns.RegistrationSpec) error
	Unpublish(spec dockermdns.RegistrationSpec) error
}

type Source interface {
	Events(ctx context.Context) (<-chan engine.Event, <-chan error)
	Running(ctx context.Context) ([]engine.Container, error)
}

// Dispatcher turns container events into publish and unpublish calls. Events
// are handled one at a time, in the order they are received.
type Dispatcher struct {
	log dockermdns.Logger
	pub Publisher
}

func New(log dockermdns.Logger, pub Publisher) *Dispatcher {
	return &Dispatcher{log: log, pub: pub}
}

func (d *Dispatcher) Handle(ev engine.Event) error {
	d.log.Tracef("received %s event: %+v", ev.Action, ev.Actor)

	action := dockermdns.ClassifyAction(ev.Action)
	if action == dockermdns.ActionIgnored {
		return nil
	}

	if ev.Actor == nil {
		d.log.Debugf("ignoring %s event without actor", ev.Action)
		return nil
	}

	spec, err := dockermdns.Interpret(ev.Actor.Id, ev.Actor.Attributes)
	if err != nil {
		return fmt.Errorf("invalid %s event: %w", ev.Action, err)
	}

	switch action {
	case dockermdns.ActionStart:
		return d.pub.Publish(spec)
	case dockermdns.ActionStop:
		return d.pub.Unpublish(spec)
	default:
		panic("unexpected action: " + string(action))
	}
}

// Reconcile publishes the containers that were already running before the
// dispatcher was started, stopping at the first failure.
func (d *Dispatcher) Reconcile(ctx context.Context, src Source) error {
	d.log.Infof("performing startup container scan")

	containers, err := src.Running(ctx)
	if err != nil {
		return err
	}

	for _, c := range containers {
		spec, err := dockermdns.Interpret(c.Id, c.Labels)
		if err != nil {
			return fmt.Errorf("invalid container in startup scan: %w", err)
		}

		if err := d.pub.Publish(spec); err != nil {
			return err
		}
	}

	return nil
}

// Run reconciles the running containers and then handles events until ctx is
// done, which is not an error. Any other exit of the loop is.
func (d *Dispatcher) Run(ctx context.Context, src Source) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// subscribe before scanning so that no event falls between the two
	evs, errs := src.Events(ctx)

	if err := d.Reconcile(ctx, src); err != nil {
		return fmt.Errorf("failed startup reconciliation: %w", err)
	}

	d.log.Infof("entering container events loop")

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-evs:
			if !ok {
				return ErrStreamClosed
			}

			if err := d.Handle(ev); err != nil {
				return fmt.Errorf("failed handling %s event: %w", ev.Action, err)
			}
		case err := <-errs:
			if ctx.Err() != nil {
				return nil
			}

			return fmt.Errorf("%w: %v", ErrStreamClosed, err)
		}
	}
}
