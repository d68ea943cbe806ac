package protocol

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
)

// Version is a version number as int
type Version uint32

// The version numbers, making grepping easier
const (
	VersionUnknown Version = 0
	Version1       Version = 0x1
)

// SupportedVersions lists the versions that the codec understands,
// in descending order of preference.
var SupportedVersions = []Version{Version1}

// IsValidVersion says if the version is known to this codec
func IsValidVersion(v Version) bool {
	return IsSupportedVersion(SupportedVersions, v)
}

// IsSupportedVersion returns true if the server supports this version
func IsSupportedVersion(supported []Version, ver Version) bool {
	for _, v := range supported {
		if v == ver {
			return true
		}
	}
	return false
}

func (vn Version) String() string {
	//nolint:exhaustive
	switch vn {
	case VersionUnknown:
		return "unknown"
	case Version1:
		return "v1"
	default:
		return fmt.Sprintf("%#x", uint32(vn))
	}
}

// generateReservedVersion generates a reserved version number (v & 0x0f0f0f0f == 0x0a0a0a0a)
func generateReservedVersion() Version {
	b := make([]byte, 4)
	_, _ = rand.Read(b) // ignore the error here. Failure to read random data doesn't break anything.
	vn := Version(binary.BigEndian.Uint32(b))
	vn |= 0x0a0a0a0a
	vn &= 0xfafafafa
	return vn
}

// GetGreasedVersions adds one reserved version number to the slice, at a random position.
func GetGreasedVersions(supported []Version) []Version {
	b := make([]byte, 1)
	_, _ = rand.Read(b) // ignore the error here. Failure to read random data doesn't break anything.
	randPos := int(b[0]) % (len(supported) + 1)
	greased := make([]Version, len(supported)+1)
	copy(greased[:randPos], supported[:randPos])
	greased[randPos] = generateReservedVersion()
	copy(greased[randPos+1:], supported[randPos:])
	return greased
}
