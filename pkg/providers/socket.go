package providers

import (
	"context"
	"fmt"
	"strings"

	"github.com/hostspec/hostspec/pkg/resource"
)

// NewSocket provides the "socket" resource. The subject is a socket spec of
// the form tcp://host:port, tcp://:port or udp://:port; a host of 0.0.0.0,
// :: or nothing matches any listening address.
func NewSocket() resource.Provider {
	return resource.Define(resource.Definition{
		Name: "Socket",
		Members: map[string]resource.MemberDef{
			"is_listening": {Kind: resource.Attribute, Get: socketListening},
		},
	})
}

func socketListening(ctx context.Context, s *resource.State) (any, error) {
	proto, host, port, err := parseSocketSpec(s.Subject)
	if err != nil {
		return nil, err
	}

	var protoFlag string
	switch proto {
	case "tcp":
		protoFlag = "-t"
	case "udp":
		protoFlag = "-u"
	default:
		return nil, fmt.Errorf("unsupported socket protocol %q", proto)
	}

	res, err := s.Backend.RunCommand(ctx, "ss", "-l", "-n", "-H", protoFlag)
	if err != nil {
		return nil, err
	}
	for _, line := range strings.Split(res.Stdout, "\n") {
		fields := strings.Fields(line)
		if len(fields) < 4 {
			continue
		}
		// The local address column is "addr:port" with the port after the
		// last colon.
		local := fields[3]
		idx := strings.LastIndex(local, ":")
		if idx < 0 || local[idx+1:] != port {
			continue
		}
		addr := strings.Trim(local[:idx], "[]")
		if host == "" || host == "0.0.0.0" || host == "::" {
			return true, nil
		}
		if addr == host || addr == "0.0.0.0" || addr == "*" || addr == "::" {
			return true, nil
		}
	}
	return false, nil
}

// parseSocketSpec splits "tcp://host:port" into its parts.
func parseSocketSpec(spec string) (proto, host, port string, err error) {
	proto, rest, ok := strings.Cut(spec, "://")
	if !ok || proto == "" {
		return "", "", "", fmt.Errorf("invalid socket spec %q (expected proto://host:port)", spec)
	}
	idx := strings.LastIndex(rest, ":")
	if idx < 0 || rest[idx+1:] == "" {
		return "", "", "", fmt.Errorf("invalid socket spec %q: missing port", spec)
	}
	host = strings.Trim(rest[:idx], "[]")
	port = rest[idx+1:]
	return proto, host, port, nil
}
