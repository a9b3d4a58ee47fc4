package history

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/comnam90/vdc-vault-readiness-sub000/internal/domain"
)

const historyFile = ".vaultcheck/history.json"

// maxEntries bounds the history file; older runs are dropped first.
const maxEntries = 200

// FileHistory implements domain.RunHistory using JSON file storage.
type FileHistory struct {
	mu sync.Mutex
}

func New() *FileHistory {
	return &FileHistory{}
}

func (h *FileHistory) Save(dir string, entry domain.RunEntry) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	entries, err := load(dir)
	if err != nil {
		return err
	}

	entries = append(entries, entry)
	if len(entries) > maxEntries {
		entries = entries[len(entries)-maxEntries:]
	}

	fp := filepath.Join(dir, historyFile)
	if err := os.MkdirAll(filepath.Dir(fp), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(fp, data, 0644)
}

func (h *FileHistory) Load(dir string) ([]domain.RunEntry, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return load(dir)
}

func load(dir string) ([]domain.RunEntry, error) {
	data, err := os.ReadFile(filepath.Join(dir, historyFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var entries []domain.RunEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, err
	}

	return entries, nil
}
