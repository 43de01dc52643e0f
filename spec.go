package docker_mdns

import (
	"errors"
	"fmt"
	"strings"
)

const (
	LabelEnable    = "docker-mdns.enable"
	LabelHost      = "docker-mdns.host"
	LabelInterface = "docker-mdns.interface"
)

var ErrMissingContainerID = errors.New("missing container id")

// RegistrationSpec describes what should be published for a single container.
// It is built once per event and never modified afterwards.
type RegistrationSpec struct {
	containerId string
	enabled     bool
	hosts       []string
	iface       *string
}

// Interpret builds a RegistrationSpec out of a container id and its labels.
// A nil labels map yields a disabled spec. An empty container id is a broken
// engine contract and is reported with ErrMissingContainerID.
func Interpret(containerId string, labels map[string]string) (RegistrationSpec, error) {
	if len(containerId) == 0 {
		return RegistrationSpec{}, ErrMissingContainerID
	}

	spec := RegistrationSpec{containerId: containerId}
	if labels == nil {
		return spec, nil
	}

	spec.enabled = labels[LabelEnable] == "true"

	if val, ok := labels[LabelHost]; ok {
		spec.hosts = strings.Fields(val)
	}

	if val, ok := labels[LabelInterface]; ok {
		spec.iface = &val
	}

	return spec, nil
}

func (s RegistrationSpec) ContainerId() string {
	return s.containerId
}

func (s RegistrationSpec) Enabled() bool {
	return s.enabled
}

// Hosts returns a copy of the hostnames to publish, nil if the host label was
// not present.
func (s RegistrationSpec) Hosts() []string {
	if s.hosts == nil {
		return nil
	}

	hosts := make([]string, len(s.hosts))
	copy(hosts, s.hosts)
	return hosts
}

// Interface returns the interface override, if any.
func (s RegistrationSpec) Interface() (string, bool) {
	if s.iface == nil {
		return "", false
	}

	return *s.iface, true
}

// Publishable reports whether publishing this spec requires any work at all.
func (s RegistrationSpec) Publishable() bool {
	return s.enabled && len(s.hosts) > 0
}

func (s RegistrationSpec) String() string {
	iface, _ := s.Interface()
	return fmt.Sprintf("RegistrationSpec{id: %s, enabled: %t, hosts: %v, interface: %q}",
		ShortContainerId(s.containerId), s.enabled, s.hosts, iface)
}
