package aggregator

import (
	"strings"

	"go.trai.ch/libscan/internal/core/domain"
	"go.trai.ch/libscan/internal/core/ports"
	"go.trai.ch/zerr"
)

// nativeCallMarkers are the source fragments that start a native process.
var nativeCallMarkers = []string{
	"os.system",
	"os.spawnlp",
	"os.popen",
	"subprocess.call",
	"subprocess.Popen",
}

// Findings lists the source files of one application that escape pure Python.
type Findings struct {
	// CallsNative holds files that start native processes.
	CallsNative []string
	// Hybrid holds files that load native code through ctypes.
	Hybrid []string
}

// Detector flags source files that call native processes or use ctypes.
type Detector struct {
	sources ports.SourceTree
}

// NewDetector creates a Detector reading sources through the given tree.
func NewDetector(sources ports.SourceTree) *Detector {
	return &Detector{sources: sources}
}

// Detect inspects the raw imports of an application. Files importing os or
// subprocess are only flagged when their source text contains a native call.
func (d *Detector) Detect(app *domain.Application) (Findings, error) {
	var proc, hybrid []string
	scanned := make(map[string]bool)

	for _, src := range app.RawImports.SortedFiles() {
		for _, imp := range app.RawImports[src] {
			switch imp {
			case "subprocess.call", "subprocess.Popen":
				proc = append(proc, src)
			case "os", "subprocess":
				found, ok := scanned[src]
				if !ok {
					lines, err := d.sources.ReadLines(src)
					if err != nil {
						return Findings{}, zerr.With(zerr.Wrap(err, "failed to scan for native calls"), "app", app.Path)
					}
					found = callsNativeProc(lines)
					scanned[src] = found
				}
				if found {
					proc = append(proc, src)
				}
			case "ctypes":
				hybrid = append(hybrid, src)
			}
		}
	}

	var f Findings
	if len(proc) > 0 {
		f.CallsNative = domain.Dedup(proc)
	}
	if len(hybrid) > 0 {
		f.Hybrid = domain.Dedup(hybrid)
	}
	return f, nil
}

func callsNativeProc(lines []string) bool {
	for _, l := range lines {
		clean := strings.TrimSpace(l)
		if strings.HasPrefix(clean, "#") {
			continue
		}
		for _, m := range nativeCallMarkers {
			if strings.Contains(clean, m) {
				return true
			}
		}
	}
	return false
}
