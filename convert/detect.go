package convert

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/h2non/filetype"
	"github.com/h2non/filetype/matchers"

	"yttc/srv3"
)

// sniffLen is how many leading bytes we look at when deciding what a file
// is. Both the zip signature and the timed-text root element with its format
// attribute sit well within this window.
const sniffLen = 8192

func readHead(r io.Reader) ([]byte, error) {
	head := make([]byte, sniffLen)
	n, err := io.ReadFull(r, head)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return nil, err
	}
	return head[:n], nil
}

// isArchiveFile reports whether path is a zip archive, judging by content
// rather than extension.
func isArchiveFile(path string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer f.Close()

	head, err := readHead(f)
	if err != nil {
		return false, fmt.Errorf("unable to sniff file type: %w", err)
	}
	return filetype.IsType(head, matchers.TypeZip), nil
}

// isSubtitleFile reports whether path looks like an SRV3 timed-text
// document: a plausible extension plus a successful content probe.
func isSubtitleFile(path string) (bool, error) {
	if !hasSubtitleExt(path) {
		return false, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer f.Close()

	head, err := readHead(f)
	if err != nil {
		return false, fmt.Errorf("unable to sniff file type: %w", err)
	}
	return srv3.Probe(head), nil
}

// isSubtitleInArchive is isSubtitleFile for a zip entry.
func isSubtitleInArchive(f *zip.File) (bool, error) {
	if !hasSubtitleExt(f.FileHeader.Name) {
		return false, nil
	}

	r, err := f.Open()
	if err != nil {
		return false, err
	}
	defer r.Close()

	head, err := readHead(r)
	if err != nil {
		return false, fmt.Errorf("unable to sniff file type: %w", err)
	}
	return srv3.Probe(head), nil
}

func hasSubtitleExt(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".srv3", ".ytt", ".xml":
		return true
	}
	return false
}
