package publisher

import (
	"errors"
	"fmt"
	"net"
)

var ErrUnknownInterface = errors.New("unknown interface")

// InterfaceAddresses lists the non loopback addresses bound to iface.
// ErrUnknownInterface is returned if no interface has that name.
func InterfaceAddresses(iface string) ([]net.IP, error) {
	ifaces, err := net.Interfaces()
	if err != nil {
		return nil, fmt.Errorf("failed listing interfaces: %w", err)
	}

	for _, netIface := range ifaces {
		if netIface.Name != iface {
			continue
		}

		addrs, err := netIface.Addrs()
		if err != nil {
			return nil, fmt.Errorf("failed getting addresses of %s: %w", iface, err)
		}

		return filterAddrs(addrs), nil
	}

	return nil, fmt.Errorf("%w: %s", ErrUnknownInterface, iface)
}

func filterAddrs(addrs []net.Addr) []net.IP {
	var ips []net.IP
	for _, addr := range addrs {
		var ip net.IP
		switch addr := addr.(type) {
		case *net.IPNet:
			ip = addr.IP
		case *net.IPAddr:
			ip = addr.IP
		default:
			continue
		}

		if ip == nil || ip.IsLoopback() {
			continue
		}

		ips = append(ips, ip)
	}

	return ips
}
