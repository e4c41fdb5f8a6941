package sensor

import (
	"encoding/json"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Packet is one raw reading received from the tracker: a workout code plus
// the positional sensor values for that workout type.
type Packet struct {
	WorkoutType string    `json:"workout_type"`
	Data        []float64 `json:"data"`
}

// ParsePacket parses the command-line packet form "CODE:v1,v2,...",
// e.g. "SWM:720,1,80,25,40". Whitespace around values is ignored.
func ParsePacket(s string) (Packet, error) {
	code, rawValues, ok := strings.Cut(s, ":")
	if !ok || code == "" {
		return Packet{}, errors.Errorf("malformed packet %q, want CODE:v1,v2,...", s)
	}
	parts := strings.Split(rawValues, ",")
	data := make([]float64, 0, len(parts))
	for _, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return Packet{}, errors.Wrapf(err, "malformed packet %q", s)
		}
		data = append(data, v)
	}
	return Packet{WorkoutType: strings.TrimSpace(code), Data: data}, nil
}

// ParseArgs parses each command-line argument as one packet.
func ParseArgs(args []string) ([]Packet, error) {
	packets := make([]Packet, 0, len(args))
	for _, arg := range args {
		p, err := ParsePacket(arg)
		if err != nil {
			return nil, err
		}
		packets = append(packets, p)
	}
	return packets, nil
}

// LoadFile reads a JSON array of packets from path.
func LoadFile(path string) ([]Packet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open packets file")
	}
	defer f.Close()

	var packets []Packet
	if err := json.NewDecoder(f).Decode(&packets); err != nil {
		return nil, errors.Wrapf(err, "failed to decode packets file %s", path)
	}
	return packets, nil
}

// DefaultPackets returns the built-in demo readings used when no other
// input source is configured.
func DefaultPackets() []Packet {
	return []Packet{
		{WorkoutType: "SWM", Data: []float64{720, 1, 80, 25, 40}},
		{WorkoutType: "RUN", Data: []float64{15000, 1, 75}},
		{WorkoutType: "WLK", Data: []float64{9000, 1, 75, 180}},
	}
}
