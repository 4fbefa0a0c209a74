package store

import (
	"os"
	"path/filepath"
	"strings"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/valyala/bytebufferpool"
)

// JSONStore reads and writes JSON files below a root directory.
type JSONStore struct {
	Root string
}

func NewJSONStore(root string) *JSONStore {
	return &JSONStore{Root: strings.TrimSpace(root)}
}

func (s *JSONStore) Path(rel string) string {
	return filepath.Join(s.Root, rel)
}

func (s *JSONStore) Exists(rel string) bool {
	_, err := os.Stat(s.Path(rel))
	return err == nil
}

// WriteJSON encodes v with two-space indentation, creating parent directories.
func (s *JSONStore) WriteJSON(rel string, v any) (string, error) {
	body, err := sonic.ConfigStd.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", crerr.Wrapf(err, "encode %s", rel)
	}

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	_, _ = buf.Write(body)
	_ = buf.WriteByte('\n')

	return s.WriteRaw(rel, buf.B)
}

func (s *JSONStore) WriteRaw(rel string, body []byte) (string, error) {
	path := s.Path(rel)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", crerr.Wrapf(err, "create directory for %s", path)
	}
	if err := os.WriteFile(path, body, 0o644); err != nil {
		return "", crerr.Wrapf(err, "write %s", path)
	}
	return path, nil
}

func (s *JSONStore) ReadRaw(rel string) ([]byte, error) {
	return os.ReadFile(s.Path(rel))
}

// ReadJSON decodes rel into target, keeping numbers as json.Number.
func (s *JSONStore) ReadJSON(rel string, target any) error {
	body, err := s.ReadRaw(rel)
	if err != nil {
		return err
	}
	if err := numberAPI.Unmarshal(body, target); err != nil {
		return crerr.Wrapf(err, "decode %s", rel)
	}
	return nil
}

var numberAPI = sonic.Config{UseNumber: true}.Froze()
