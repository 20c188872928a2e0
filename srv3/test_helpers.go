package srv3

import (
	"os"
	"testing"

	"github.com/beevik/etree"
)

const sampleSRV3 = "testdata/sample.srv3"

func loadSampleDocument(t *testing.T) *etree.Document {
	t.Helper()

	file, err := os.Open(sampleSRV3)
	if err != nil {
		t.Fatalf("open sample file: %v", err)
	}
	t.Cleanup(func() { _ = file.Close() })

	doc := etree.NewDocument()
	doc.ReadSettings = etree.ReadSettings{
		ValidateInput: false,
		Permissive:    true,
	}

	if _, err := doc.ReadFrom(file); err != nil {
		t.Fatalf("parse sample file: %v", err)
	}
	return doc
}

func mustDocument(t *testing.T, xml string) *etree.Document {
	t.Helper()

	doc := etree.NewDocument()
	if err := doc.ReadFromString(xml); err != nil {
		t.Fatalf("read xml: %v", err)
	}
	if doc.Root() == nil {
		t.Fatalf("xml has no root element")
	}
	return doc
}
