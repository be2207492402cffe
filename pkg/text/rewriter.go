package text

import (
	"context"
	"io"
	"strings"

	"gitlab.com/tozd/go/errors"
)

// RewriteResult contains the outcome of applying a rule list to a blob
type RewriteResult struct {
	// WasModified indicates if any replacements were made
	WasModified bool

	// ReplacementCount is the total number of replacements made
	ReplacementCount int

	// OriginalContent is the content before replacements
	OriginalContent []byte

	// ModifiedContent is the content after replacements
	ModifiedContent []byte
}

// Rewriter applies ordered literal replacement rules to whole text blobs
type Rewriter struct{}

// NewRewriter creates a new Rewriter
func NewRewriter() *Rewriter {
	return &Rewriter{}
}

// Rewrite reads all of content and applies each rule in list order over the
// full current state of the blob. Matching is case-sensitive, unanchored, and
// global (every non-overlapping occurrence is replaced before the next rule
// runs), so a later rule can see text inserted by an earlier one.
func (r *Rewriter) Rewrite(ctx context.Context, content io.Reader, rules []ReplacementRule) (*RewriteResult, error) {
	originalContent, err := io.ReadAll(content)
	if err != nil {
		return nil, errors.Errorf("reading content: %w", err)
	}

	result := &RewriteResult{
		OriginalContent: originalContent,
		ModifiedContent: originalContent,
	}

	currentContent := string(originalContent)
	for _, rule := range rules {
		// Skip empty rules
		if rule.FromText == "" {
			continue
		}

		newContent := strings.ReplaceAll(currentContent, rule.FromText, rule.ToText)

		if newContent != currentContent {
			result.WasModified = true
			result.ReplacementCount += strings.Count(currentContent, rule.FromText)
		}

		currentContent = newContent
	}

	result.ModifiedContent = []byte(currentContent)
	return result, nil
}
