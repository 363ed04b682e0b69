package protocol

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/SeamusWaldron/nxcube"
)

// RotationEvent represents a single face rotation from the cube.
type RotationEvent struct {
	FaceCode          byte         // Raw face+direction code (0x00-0x0B)
	CenterOrientation byte         // Center piece orientation
	Clockwise         bool         // Direction of rotation
	Color             nxcube.Color // Center color of the turned face
}

// BatteryEvent represents a battery level notification.
type BatteryEvent struct {
	Level int // 0-100 percentage
}

// CubeTypeEvent represents a cube type notification.
type CubeTypeEvent struct {
	TypeCode byte
	TypeName string
}

// OrientationEvent represents a cube orientation notification.
type OrientationEvent struct {
	X float64
	Y float64
	Z float64
	W float64

	// Derived discrete orientation
	UpFace    nxcube.FaceName // Which face is pointing up
	FrontFace nxcube.FaceName // Which face is facing the solver
}

// OfflineStatsEvent represents offline statistics.
type OfflineStatsEvent struct {
	Moves  int
	Time   int // seconds
	Solves int
}

// Color index order used by the GoCube firmware.
var wireColors = [6]nxcube.Color{
	nxcube.Blue,
	nxcube.Green,
	nxcube.White,
	nxcube.Yellow,
	nxcube.Red,
	nxcube.Orange,
}

// DecodeRotation decodes a rotation message payload into rotation events.
// Rotation payloads contain pairs of bytes: [face_dir] [center_orientation]
func DecodeRotation(payload []byte) ([]RotationEvent, error) {
	if len(payload)%2 != 0 {
		return nil, fmt.Errorf("%w: rotation payload must have even length, got %d", ErrInvalidPayload, len(payload))
	}

	events := make([]RotationEvent, 0, len(payload)/2)
	for i := 0; i < len(payload); i += 2 {
		faceCode := payload[i]

		// Even codes turn clockwise, odd codes counter-clockwise.
		colorIdx := int(faceCode / 2)
		if colorIdx >= len(wireColors) {
			return nil, fmt.Errorf("%w: unknown color index %d from face code 0x%02X", ErrInvalidPayload, colorIdx, faceCode)
		}

		events = append(events, RotationEvent{
			FaceCode:          faceCode,
			CenterOrientation: payload[i+1],
			Clockwise:         faceCode%2 == 0,
			Color:             wireColors[colorIdx],
		})
	}

	return events, nil
}

// DecodeBattery decodes a battery message payload.
func DecodeBattery(payload []byte) (*BatteryEvent, error) {
	if len(payload) < 1 {
		return nil, fmt.Errorf("%w: battery payload too short", ErrInvalidPayload)
	}
	return &BatteryEvent{
		Level: int(payload[0]),
	}, nil
}

// DecodeCubeType decodes a cube type message payload.
func DecodeCubeType(payload []byte) (*CubeTypeEvent, error) {
	if len(payload) < 1 {
		return nil, fmt.Errorf("%w: cube type payload too short", ErrInvalidPayload)
	}

	typeName := "standard"
	if payload[0] == 0x01 {
		typeName = "edge"
	}

	return &CubeTypeEvent{
		TypeCode: payload[0],
		TypeName: typeName,
	}, nil
}

// DecodeOrientation decodes an orientation message payload.
// Format: ASCII string "x#y#z#w" where # is the separator.
func DecodeOrientation(payload []byte) (*OrientationEvent, error) {
	parts := strings.Split(string(payload), "#")
	if len(parts) != 4 {
		return nil, fmt.Errorf("%w: orientation payload must have 4 parts, got %d", ErrInvalidPayload, len(parts))
	}

	var q [4]float64
	for i, name := range []string{"x", "y", "z", "w"} {
		v, err := strconv.ParseFloat(extractNumeric(parts[i]), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid %s value: %w", ErrInvalidPayload, name, err)
		}
		q[i] = v
	}

	event := &OrientationEvent{X: q[0], Y: q[1], Z: q[2], W: q[3]}
	event.UpFace, event.FrontFace = quaternionToFaces(q[0], q[1], q[2], q[3])
	return event, nil
}

// extractNumeric extracts the leading numeric portion (including optional minus sign) from a string.
func extractNumeric(s string) string {
	var result strings.Builder
	for i, r := range s {
		if (r == '-' && i == 0) || (r >= '0' && r <= '9') || r == '.' {
			result.WriteRune(r)
			continue
		}
		break
	}
	return result.String()
}

// quaternionToFaces converts a quaternion to discrete face orientations.
// Returns which cube face is pointing up and which is facing the solver.
func quaternionToFaces(x, y, z, w float64) (upFace, frontFace nxcube.FaceName) {
	// Normalize the quaternion (GoCube sends raw integer values)
	mag := math.Sqrt(x*x + y*y + z*z + w*w)
	if mag > 0 {
		x /= mag
		y /= mag
		z /= mag
		w /= mag
	}

	// Rotate the up vector (0, 1, 0) by the quaternion
	upX := 2 * (x*y - w*z)
	upY := 1 - 2*(x*x+z*z)
	upZ := 2 * (y*z + w*x)

	// Rotate the front vector (0, 0, 1) by the quaternion
	frontX := 2 * (x*z + w*y)
	frontY := 2 * (y*z - w*x)
	frontZ := 1 - 2*(x*x+y*y)

	return vectorToFace(upX, upY, upZ), vectorToFace(frontX, frontY, frontZ)
}

// vectorToFace determines which cube face a vector points to.
func vectorToFace(x, y, z float64) nxcube.FaceName {
	absX := math.Abs(x)
	absY := math.Abs(y)
	absZ := math.Abs(z)

	if absY >= absX && absY >= absZ {
		if y > 0 {
			return nxcube.U
		}
		return nxcube.D
	}
	if absZ >= absX && absZ >= absY {
		if z > 0 {
			return nxcube.F
		}
		return nxcube.B
	}
	if x > 0 {
		return nxcube.R
	}
	return nxcube.L
}

// DecodeOfflineStats decodes an offline stats message payload.
// Format: ASCII string "moves#time#solves"
func DecodeOfflineStats(payload []byte) (*OfflineStatsEvent, error) {
	parts := strings.Split(string(payload), "#")
	if len(parts) != 3 {
		return nil, fmt.Errorf("%w: offline stats payload must have 3 parts, got %d", ErrInvalidPayload, len(parts))
	}

	var vals [3]int
	for i, name := range []string{"moves", "time", "solves"} {
		v, err := strconv.Atoi(parts[i])
		if err != nil {
			return nil, fmt.Errorf("%w: invalid %s value: %w", ErrInvalidPayload, name, err)
		}
		vals[i] = v
	}

	return &OfflineStatsEvent{
		Moves:  vals[0],
		Time:   vals[1],
		Solves: vals[2],
	}, nil
}
