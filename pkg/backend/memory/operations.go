package memory

import (
	"errors"
	"fmt"
	"strings"

	"github.com/clipdeck/clipdeck-terminal/pkg/backend"
	"github.com/clipdeck/clipdeck-terminal/pkg/models"
	"github.com/clipdeck/clipdeck-terminal/pkg/utils"
)

// RunOperation implements backend.Backend. The lifecycle is always
// running(true) → "Running X..." → {"X finished." | "X failed: err"} →
// running(false); the result replaces an earlier subitem of the same tag.
func (s *Store) RunOperation(itemID int, operationKey string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	op, ok := models.OperationByKey(operationKey)
	if !ok {
		s.emit(backend.StatusMessage{Text: fmt.Sprintf("%s failed: unknown operation", operationKey)})
		return
	}
	it := s.itemLocked(itemID)
	if it == nil {
		return
	}

	s.emit(backend.OperationRunning{Running: true})
	s.emit(backend.StatusMessage{Text: fmt.Sprintf("Running %s...", op.Name)})

	result, err := s.applyOperationLocked(op, it)
	if err != nil {
		s.emit(backend.StatusMessage{Text: fmt.Sprintf("%s failed: %v", op.Name, err)})
		s.emit(backend.OperationRunning{Running: false})
		return
	}

	if i := it.SubitemIndexByTag(op.Key); i >= 0 {
		it.Subitems[i].Text = result
	} else {
		s.nextSubitemID++
		it.Subitems = append(it.Subitems, models.Subitem{ID: s.nextSubitemID, Tag: op.Key, Text: result})
	}
	s.emit(backend.ItemChanged{Item: cloneItem(it)})
	s.emit(backend.StatusMessage{Text: fmt.Sprintf("%s finished.", op.Name)})
	s.emit(backend.OperationRunning{Running: false})
}

// applyOperationLocked produces deterministic stand-in results so flows and
// tests behave like the real operation runner without network access.
func (s *Store) applyOperationLocked(op models.Operation, it *models.ClipItem) (string, error) {
	text := textOf(it)
	if text == "" {
		text = s.full[it.ID]
	}

	switch op.Key {
	case models.OpOCR.Key:
		if len(it.ContentBlob) == 0 {
			return "", errors.New("no image data")
		}
		return "", errors.New("recognizer not available offline")
	case models.OpTranslate.Key:
		return "(translated) " + utils.CollapseWhitespace(text), nil
	case models.OpImprove.Key:
		return "(improved) " + utils.CollapseWhitespace(text), nil
	case models.OpSummarize.Key:
		return utils.TruncateText(utils.CollapseWhitespace(text), 80), nil
	case models.OpFormat.Key:
		return formatText(text), nil
	}
	return "", fmt.Errorf("unknown operation %q", op.Key)
}

// formatText trims trailing space and collapses blank-line runs.
func formatText(text string) string {
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	blank := false
	for _, line := range lines {
		line = strings.TrimRight(line, " \t")
		if line == "" {
			if blank {
				continue
			}
			blank = true
		} else {
			blank = false
		}
		out = append(out, line)
	}
	return strings.TrimSpace(strings.Join(out, "\n"))
}
