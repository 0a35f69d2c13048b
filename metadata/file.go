package metadata

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Document is an exported set of archived headers.
type Document struct {
	Files map[string]FileRecord `yaml:"files" json:"files"`
}

// FileRecord is the archived header of one file.
type FileRecord struct {
	HeaderVersion string    `yaml:"hdrver" json:"hdrver"`
	Keywords      []Keyword `yaml:"keywords" json:"keywords"`
}

// FileSource serves headers from a Document held in memory.
type FileSource struct {
	doc *Document
}

// NewFileSource wraps an already decoded document.
func NewFileSource(doc *Document) *FileSource {
	if doc.Files == nil {
		doc.Files = map[string]FileRecord{}
	}
	return &FileSource{doc: doc}
}

// LoadFile reads a YAML, JSON or XML document chosen by the file extension.
func LoadFile(path string) (*FileSource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read metadata document")
	}

	var doc Document
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &doc)
	case ".json":
		err = json.Unmarshal(data, &doc)
	case ".xml":
		err = decodeXML(data, &doc)
	default:
		return nil, errors.Wrapf(ErrUnsupportedSource, "extension %q", ext)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "decode %s", path)
	}

	return NewFileSource(&doc), nil
}

func (s *FileSource) record(fileID string) (FileRecord, error) {
	rec, ok := s.doc.Files[fileID]
	if !ok {
		return FileRecord{}, errors.Wrap(ErrNotFound, fileID)
	}
	return rec, nil
}

func (s *FileSource) LookupHeaderVersion(ctx context.Context, fileID string) (string, error) {
	rec, err := s.record(fileID)
	if err != nil {
		return "", err
	}
	return rec.HeaderVersion, nil
}

func (s *FileSource) LookupKeywords(ctx context.Context, fileID string) ([]Keyword, error) {
	rec, err := s.record(fileID)
	if err != nil {
		return nil, err
	}
	return rec.Keywords, nil
}

func (s *FileSource) Close() error {
	return nil
}
