package openclaw

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/iCrack3x/agent-monitor/internal/health"
)

// FileSource reads the OpenClaw session store (sessions.json) directly,
// avoiding a subprocess per refresh. Useful for high-frequency watch mode.
type FileSource struct {
	// Path to sessions.json, typically <openclaw-root>/sessions.json.
	Path string
}

// storeEntry is one session state in sessions.json, which is a map of
// session key to state.
type storeEntry struct {
	Label       string `json:"label"`
	Kind        string `json:"kind"`
	Model       string `json:"model"`
	TotalTokens int64  `json:"totalTokens"`
	UpdatedAt   int64  `json:"updatedAt"`
}

// Sessions reads and decodes the store. Records are ordered by UpdatedAt
// descending, key ascending on ties, so repeated reads of the same store
// produce the same sequence.
func (s *FileSource) Sessions(ctx context.Context) ([]health.SessionRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("reading session store: %w", err)
	}

	var raw map[string]storeEntry
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing session store: %w", err)
	}

	records := make([]health.SessionRecord, 0, len(raw))
	for key, e := range raw {
		records = append(records, health.SessionRecord{
			Key:         key,
			Label:       e.Label,
			Kind:        e.Kind,
			Model:       e.Model,
			TotalTokens: e.TotalTokens,
			UpdatedAt:   e.UpdatedAt,
		})
	}
	sort.Slice(records, func(i, j int) bool {
		if records[i].UpdatedAt != records[j].UpdatedAt {
			return records[i].UpdatedAt > records[j].UpdatedAt
		}
		return records[i].Key < records[j].Key
	})
	return records, nil
}
