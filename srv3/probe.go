package srv3

import "bytes"

// Probe reports whether data looks like the beginning of an SRV3/YTT
// document: a timedtext root declaring format 3.
func Probe(data []byte) bool {
	return bytes.Contains(data, []byte("<timedtext")) && bytes.Contains(data, []byte(`format="3">`))
}
