package engine

import (
	"context"
	"fmt"
	"time"

	dockermdns "github.com/devgianlu/docker-mdns"
	"github.com/docker/docker/api/types"
	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/events"
	"github.com/docker/docker/api/types/filters"
	"github.com/docker/docker/client"
)

const pingTimeout = 5 * time.Second

// scanStatuses are the container states that may still need their hostnames.
var scanStatuses = []string{"created", "paused", "restarting", "running"}

// Actor is the object an event refers to, it is nil when the engine did not
// report any.
type Actor struct {
	Id         string
	Attributes map[string]string
}

type Event struct {
	Action string
	Actor  *Actor
}

type Container struct {
	Id     string
	Labels map[string]string
}

// Engine is a thin wrapper around the Docker Engine API client that only
// exposes what is needed to follow containers.
type Engine struct {
	log    dockermdns.Logger
	client *client.Client
}

// New connects to the engine at host, or to the one configured in the
// environment if host is empty.
func New(ctx context.Context, log dockermdns.Logger, host string) (*Engine, error) {
	opts := []client.Opt{client.FromEnv, client.WithAPIVersionNegotiation()}
	if len(host) > 0 {
		opts = append(opts, client.WithHost(host))
	}

	cli, err := client.NewClientWithOpts(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed creating docker client: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	ping, err := cli.Ping(pingCtx)
	if err != nil {
		_ = cli.Close()
		return nil, fmt.Errorf("failed connecting to docker engine at %s: %w", cli.DaemonHost(), err)
	}

	log.Infof("connected to docker engine at %s (API %s, %s)", cli.DaemonHost(), ping.APIVersion, ping.OSType)

	return newEngine(log, cli), nil
}

func newEngine(log dockermdns.Logger, cli *client.Client) *Engine {
	return &Engine{log: log, client: cli}
}

// Events streams container events until ctx is done or the engine stream
// breaks. At most one error is delivered, after which both channels are dead.
func (e *Engine) Events(ctx context.Context) (<-chan Event, <-chan error) {
	msgs, errs := e.client.Events(ctx, events.ListOptions{
		Filters: filters.NewArgs(filters.Arg("type", string(events.ContainerEventType))),
	})

	return forward(ctx, msgs, errs)
}

// forward converts engine messages until ctx is done or the engine stream
// ends. A closed message stream closes the returned event channel.
func forward(ctx context.Context, msgs <-chan events.Message, errs <-chan error) (<-chan Event, <-chan error) {
	out := make(chan Event)
	outErr := make(chan error, 1)

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-msgs:
				if !ok {
					close(out)
					return
				}

				select {
				case out <- convertMessage(msg):
				case <-ctx.Done():
					return
				}
			case err := <-errs:
				outErr <- err
				return
			}
		}
	}()

	return out, outErr
}

// Running lists the containers that are up (or about to be) and carry the
// enable label.
func (e *Engine) Running(ctx context.Context) ([]Container, error) {
	list, err := e.client.ContainerList(ctx, container.ListOptions{
		All:     true,
		Filters: scanFilters(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed listing containers: %w", err)
	}

	containers := make([]Container, 0, len(list))
	for _, c := range list {
		containers = append(containers, convertContainer(c))
	}

	e.log.Debugf("startup scan found %d containers", len(containers))
	return containers, nil
}

func (e *Engine) Close() error {
	return e.client.Close()
}

func scanFilters() filters.Args {
	args := filters.NewArgs(filters.Arg("label", dockermdns.LabelEnable+"=true"))
	for _, status := range scanStatuses {
		args.Add("status", status)
	}

	return args
}

func convertMessage(msg events.Message) Event {
	ev := Event{Action: string(msg.Action)}
	if len(msg.Actor.ID) > 0 || msg.Actor.Attributes != nil {
		ev.Actor = &Actor{Id: msg.Actor.ID, Attributes: msg.Actor.Attributes}
	}

	return ev
}

func convertContainer(c types.Container) Container {
	return Container{Id: c.ID, Labels: c.Labels}
}
