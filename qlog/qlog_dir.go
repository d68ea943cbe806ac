package qlog

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/quic-go/quicwire/internal/utils"
	"github.com/quic-go/quicwire/logging"
)

// DefaultTracer creates a qlog file in the directory specified by the QLOGDIR
// environment variable. It returns nil if QLOGDIR is not set.
func DefaultTracer() *logging.Tracer {
	qlogDir := os.Getenv("QLOGDIR")
	if qlogDir == "" {
		return nil
	}
	if err := os.MkdirAll(qlogDir, 0o755); err != nil {
		log.Printf("failed to create qlog dir %s: %s", qlogDir, err)
		return nil
	}
	path := filepath.Join(qlogDir, fmt.Sprintf("%s.sqlog", time.Now().Format("2006-01-02T15-04-05.000000000")))
	f, err := os.Create(path)
	if err != nil {
		log.Printf("failed to create qlog file %s: %s", path, err)
		return nil
	}
	return NewTracer(utils.NewBufferedWriteCloser(bufio.NewWriter(f), f))
}
