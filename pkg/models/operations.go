package models

// Operation describes one backend-executed transformation offered in the
// context menu. Its result becomes a subitem tagged with Key, replacing any
// earlier result of the same operation.
type Operation struct {
	Key  string
	Name string
}

// Operations in menu order. OCR applies to raster content, the rest to
// text-bearing items.
var (
	OpOCR       = Operation{Key: "ocr", Name: "OCR"}
	OpTranslate = Operation{Key: "translate", Name: "Translate"}
	OpImprove   = Operation{Key: "improve", Name: "Improve"}
	OpSummarize = Operation{Key: "summarize", Name: "Summarize"}
	OpFormat    = Operation{Key: "format", Name: "Format"}
)

// OperationsFor returns the operations applicable to an item's content type.
// Plugin items get none.
func OperationsFor(item *ClipItem) []Operation {
	if item.FromPlugin() {
		return nil
	}
	switch item.ContentType {
	case ContentImage:
		return []Operation{OpOCR}
	case ContentText, ContentHTML:
		return []Operation{OpTranslate, OpImprove, OpSummarize, OpFormat}
	}
	return nil
}

// OperationByKey resolves an operation key, e.g. from a menu action id.
func OperationByKey(key string) (Operation, bool) {
	for _, op := range []Operation{OpOCR, OpTranslate, OpImprove, OpSummarize, OpFormat} {
		if op.Key == key {
			return op, true
		}
	}
	return Operation{}, false
}
