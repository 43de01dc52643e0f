package docker_mdns

const shortIdLength = 12

// ShortContainerId truncates a container id the same way the docker CLI does.
func ShortContainerId(id string) string {
	if len(id) <= shortIdLength {
		return id
	}

	return id[:shortIdLength]
}
