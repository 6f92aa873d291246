// Package sniff classifies spreadsheet files before any parsing happens.
//
// Classification looks only at the file's leading bytes: the compound-file
// signature identifies the legacy binary (.xls) container family, and
// everything else is assumed to be a modern zip-based workbook. For legacy
// containers the compound-file stream directory is walked to catch
// rights-managed or encrypted documents early, before a decode is attempted.
package sniff

import (
	"bytes"
	"os"
	"strings"

	"github.com/shakinm/xlsReader/cfb"
)

// Classification is the sniffer's verdict for a spreadsheet file.
type Classification int

const (
	// Unknown means the file could not be probed (missing, unreadable).
	// Readers should attempt the modern decode path and let it fail there.
	Unknown Classification = iota

	// Modern is a zip-based workbook (.xlsx), or at least not a legacy
	// container. Decode failures surface at read time.
	Modern

	// LegacyBinary is a compound-file (.xls) workbook.
	LegacyBinary

	// LegacyEncrypted is a compound-file workbook whose stream directory
	// carries a rights-management or encryption marker. It cannot be read.
	LegacyEncrypted
)

// String returns a short name for logging.
func (c Classification) String() string {
	switch c {
	case Modern:
		return "modern"
	case LegacyBinary:
		return "legacy-binary"
	case LegacyEncrypted:
		return "legacy-encrypted"
	default:
		return "unknown"
	}
}

// oleSignature is the 8-byte magic that opens every compound-file container.
var oleSignature = []byte{0xd0, 0xcf, 0x11, 0xe0, 0xa1, 0xb1, 0x1a, 0xe1}

// encryptionMarkers are stream-directory names that indicate a protected
// payload (sensitivity labels, IRM, agile encryption).
var encryptionMarkers = []string{"EncryptedPackage", "DRMEncrypted"}

// Classify inspects the file at path and returns its classification.
// It never returns an error: probe failures yield Unknown, and an
// unverifiable legacy container is reported as LegacyBinary rather than
// guessed at as encrypted.
func Classify(path string) Classification {
	ole, err := hasOLESignature(path)
	if err != nil {
		return Unknown
	}
	if !ole {
		return Modern
	}
	if hasEncryptedStream(path) {
		return LegacyEncrypted
	}
	return LegacyBinary
}

// IsLegacyContainer reports whether the file starts with the compound-file
// signature. Probe failures count as "no".
func IsLegacyContainer(path string) bool {
	ole, err := hasOLESignature(path)
	return err == nil && ole
}

func hasOLESignature(path string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer f.Close()

	head := make([]byte, len(oleSignature))
	n, err := f.Read(head)
	if err != nil || n < len(oleSignature) {
		// Short or unreadable files are not legacy containers.
		return false, nil
	}
	return bytes.Equal(head, oleSignature), nil
}

// hasEncryptedStream walks the compound-file stream directory looking for
// encryption markers. If the container cannot be opened the answer is
// conservatively false: "cannot confirm encrypted" must not block a decode
// attempt that may still succeed or fail cleanly on its own.
func hasEncryptedStream(path string) bool {
	container, err := cfb.OpenFile(path)
	if err != nil {
		return false
	}
	for _, dir := range container.GetDirs() {
		name := dir.Name()
		for _, marker := range encryptionMarkers {
			if strings.Contains(name, marker) {
				return true
			}
		}
	}
	return false
}
