package avahi

import (
	"fmt"

	"github.com/godbus/dbus/v5"
)

const (
	avahiService         = "org.freedesktop.Avahi"
	avahiServerPath      = "/"
	avahiServerIface     = "org.freedesktop.Avahi.Server"
	avahiEntryGroupIface = "org.freedesktop.Avahi.EntryGroup"
)

const (
	ProtoUnspec   = int32(-1)  // AVAHI_PROTO_UNSPEC
	FlagNoReverse = uint32(16) // AVAHI_PUBLISH_NO_REVERSE
)

const unknownVersion = "unknown"

// Client talks to avahi-daemon over the system D-Bus. Every method is a single
// blocking method call on the daemon.
type Client struct {
	conn    *dbus.Conn
	object  func(path dbus.ObjectPath) dbus.BusObject
	version string
}

// NewClient connects to the system bus and checks that avahi-daemon answers.
func NewClient() (*Client, error) {
	conn, err := dbus.SystemBus()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to system bus: %w", err)
	}

	return newClient(conn)
}

func newClient(conn *dbus.Conn) (*Client, error) {
	c := &Client{conn: conn, object: func(path dbus.ObjectPath) dbus.BusObject {
		return conn.Object(avahiService, path)
	}}

	if err := c.probe(); err != nil {
		_ = conn.Close()
		return nil, err
	}

	return c, nil
}

func (c *Client) probe() error {
	// GetHostName is available in every avahi version
	if _, err := c.HostName(); err != nil {
		return fmt.Errorf("failed to connect to avahi-daemon (is it running?): %w", err)
	}

	c.version = getVersion(c.server())
	return nil
}

func getVersion(server dbus.BusObject) string {
	// avahi 0.8+
	var versionStr string
	if err := server.Call(avahiServerIface+".GetVersionString", 0).Store(&versionStr); err == nil {
		return versionStr
	}

	var apiVersion uint32
	if err := server.Call(avahiServerIface+".GetAPIVersion", 0).Store(&apiVersion); err == nil {
		return fmt.Sprintf("API v%d", apiVersion)
	}

	return unknownVersion
}

// Version returns the avahi-daemon version string.
func (c *Client) Version() string {
	return c.version
}

func (c *Client) HostName() (string, error) {
	var hostname string
	if err := c.server().Call(avahiServerIface+".GetHostName", 0).Store(&hostname); err != nil {
		return "", fmt.Errorf("failed getting host name: %w", err)
	}

	return hostname, nil
}

func (c *Client) InterfaceIndex(name string) (int32, error) {
	var index int32
	if err := c.server().Call(avahiServerIface+".GetNetworkInterfaceIndexByName", 0, name).Store(&index); err != nil {
		return 0, fmt.Errorf("failed getting interface index for %s: %w", name, err)
	}

	return index, nil
}

func (c *Client) EntryGroupNew() (dbus.ObjectPath, error) {
	var path dbus.ObjectPath
	if err := c.server().Call(avahiServerIface+".EntryGroupNew", 0).Store(&path); err != nil {
		return "", fmt.Errorf("failed to create entry group: %w", err)
	}

	return path, nil
}

// AddAddress adds an address record to the group. Signature: iiuss.
func (c *Client) AddAddress(group dbus.ObjectPath, ifIndex, proto int32, flags uint32, host, address string) error {
	if err := c.entryGroup(group).Call(avahiEntryGroupIface+".AddAddress", 0,
		ifIndex,
		proto,
		flags,
		host,
		address,
	).Err; err != nil {
		return fmt.Errorf("failed to add address %s for %s: %w", address, host, err)
	}

	return nil
}

func (c *Client) Commit(group dbus.ObjectPath) error {
	if err := c.entryGroup(group).Call(avahiEntryGroupIface+".Commit", 0).Err; err != nil {
		return fmt.Errorf("failed to commit entry group: %w", err)
	}

	return nil
}

func (c *Client) Reset(group dbus.ObjectPath) error {
	if err := c.entryGroup(group).Call(avahiEntryGroupIface+".Reset", 0).Err; err != nil {
		return fmt.Errorf("failed to reset entry group: %w", err)
	}

	return nil
}

func (c *Client) Free(group dbus.ObjectPath) error {
	if err := c.entryGroup(group).Call(avahiEntryGroupIface+".Free", 0).Err; err != nil {
		return fmt.Errorf("failed to free entry group: %w", err)
	}

	return nil
}

func (c *Client) server() dbus.BusObject {
	return c.object(avahiServerPath)
}

func (c *Client) entryGroup(path dbus.ObjectPath) dbus.BusObject {
	return c.object(path)
}

// Close drops the bus connection. avahi-daemon frees every group owned by
// the connection once it goes away.
func (c *Client) Close() error {
	if c.conn == nil {
		return nil
	}

	err := c.conn.Close()
	c.conn = nil
	return err
}
