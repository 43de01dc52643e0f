package publisher

import (
	"errors"
	"fmt"
	"net"

	dockermdns "github.com/devgianlu/docker-mdns"
	"github.com/devgianlu/docker-mdns/avahi"
	"github.com/godbus/dbus/v5"
)

// Daemon is the subset of avahi-daemon calls the Manager relies on.
type Daemon interface {
	InterfaceIndex(name string) (int32, error)
	EntryGroupNew() (dbus.ObjectPath, error)
	AddAddress(group dbus.ObjectPath, ifIndex, proto int32, flags uint32, host, address string) error
	Commit(group dbus.ObjectPath) error
	Reset(group dbus.ObjectPath) error
	Free(group dbus.ObjectPath) error
}

type AddressesFunc func(iface string) ([]net.IP, error)

// Manager keeps track of the entry group owned by each container. It is not
// safe for concurrent use, calls are expected to come from a single loop.
type Manager struct {
	log    dockermdns.Logger
	daemon Daemon
	addrs  AddressesFunc

	ifaceName  string
	ifaceIndex int32

	published map[string]dbus.ObjectPath
}

// NewManager resolves the avahi index of iface once, it is reused for the
// lifetime of the Manager.
func NewManager(log dockermdns.Logger, daemon Daemon, iface string) (*Manager, error) {
	log = log.WithField("interface", iface)

	idx, err := daemon.InterfaceIndex(iface)
	if err != nil {
		return nil, fmt.Errorf("failed resolving avahi interface index: %w", err)
	}

	log.Debugf("avahi interface index for %s is %d", iface, idx)

	return &Manager{
		log:        log,
		daemon:     daemon,
		addrs:      InterfaceAddresses,
		ifaceName:  iface,
		ifaceIndex: idx,
		published:  map[string]dbus.ObjectPath{},
	}, nil
}

func (m *Manager) InterfaceIndex() int32 {
	return m.ifaceIndex
}

// Publish registers every host of spec against every address of the selected
// interface in a new entry group. A container that already owns a group has it
// withdrawn first.
func (m *Manager) Publish(spec dockermdns.RegistrationSpec) error {
	log := m.log.WithField("container", dockermdns.ShortContainerId(spec.ContainerId()))

	if !spec.Publishable() {
		log.Debugf("nothing to publish for %s", spec)
		return nil
	}

	log.Infof("publishing %s", spec)

	if _, ok := m.published[spec.ContainerId()]; ok {
		log.Warnf("container already has a published entry group, withdrawing it")
		if err := m.Unpublish(spec); err != nil {
			return fmt.Errorf("failed withdrawing stale entry group: %w", err)
		}
	}

	iface := m.ifaceName
	if override, ok := spec.Interface(); ok {
		iface = override
	}

	// addresses may change between events, never cache them
	addrs, err := m.addrs(iface)
	if errors.Is(err, ErrUnknownInterface) {
		// a typo in a label must not take down every other container
		log.WithError(err).Warnf("interface %s does not exist, publishing an empty group", iface)
		addrs = nil
	} else if err != nil {
		return fmt.Errorf("failed listing addresses of %s: %w", iface, err)
	} else if len(addrs) == 0 {
		log.Warnf("no addresses found on interface %s", iface)
	}

	group, err := m.daemon.EntryGroupNew()
	if err != nil {
		return err
	}

	hosts := spec.Hosts()
	for _, addr := range addrs {
		for _, host := range hosts {
			log.Debugf("adding address %s for %s to %s", addr, host, group)

			if err := m.daemon.AddAddress(group, m.ifaceIndex, avahi.ProtoUnspec, avahi.FlagNoReverse, host, addr.String()); err != nil {
				return err
			}
		}
	}

	if err := m.daemon.Commit(group); err != nil {
		return err
	}

	m.published[spec.ContainerId()] = group
	log.WithField("group", group).Debugf("entry group committed")

	return nil
}

// Unpublish withdraws the entry group of the container, if any. The group is
// forgotten even if avahi fails to release it.
func (m *Manager) Unpublish(spec dockermdns.RegistrationSpec) error {
	group, ok := m.published[spec.ContainerId()]
	if !ok {
		return nil
	}

	delete(m.published, spec.ContainerId())

	log := m.log.WithField("container", dockermdns.ShortContainerId(spec.ContainerId())).WithField("group", group)
	log.Infof("unpublishing %s", spec)

	if err := m.daemon.Reset(group); err != nil {
		return err
	}

	if err := m.daemon.Free(group); err != nil {
		return err
	}

	log.Debugf("entry group released")
	return nil
}

// Shutdown releases every entry group still owned by the Manager. Failures
// are logged and do not stop the others from being released.
func (m *Manager) Shutdown() {
	for id, group := range m.published {
		log := m.log.WithField("container", dockermdns.ShortContainerId(id)).WithField("group", group)

		if err := m.daemon.Reset(group); err != nil {
			log.WithError(err).Warnf("failed resetting entry group")
		}

		if err := m.daemon.Free(group); err != nil {
			log.WithError(err).Warnf("failed freeing entry group")
		}

		delete(m.published, id)
	}
}
