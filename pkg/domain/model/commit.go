package model

import (
	"encoding/base64"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/refacto/pkg/domain/types"
)

type FileStatus string

const (
	FileAdded    FileStatus = "added"
	FileModified FileStatus = "modified"
	FileRemoved  FileStatus = "removed"
	FileRenamed  FileStatus = "renamed"
)

// Commit is the file-level view of a commit.
type Commit struct {
	SHA   types.CommitSHA
	Files []CommitFile
}

type CommitFile struct {
	Filename    string
	Status      FileStatus
	Additions   int
	Patch       string
	ContentsURL string
}

// IsCandidate reports whether the file is large enough to be rewritten.
func (x *CommitFile) IsCandidate(maxLines int) bool {
	if x.Status != FileModified && x.Status != FileAdded {
		return false
	}
	return x.Additions > maxLines
}

// FileContent is the body of a contents API response.
type FileContent struct {
	Content  string `json:"content"`
	Encoding string `json:"encoding"`
}

func (x *FileContent) Decode() (string, error) {
	if x.Encoding != "base64" {
		return x.Content, nil
	}

	// GitHub wraps base64 content at 60 columns.
	raw, err := base64.StdEncoding.DecodeString(strings.ReplaceAll(x.Content, "\n", ""))
	if err != nil {
		return "", goerr.Wrap(err, "failed to decode base64 content")
	}
	return string(raw), nil
}

// FileRecord pairs a file's current content with its changed blocks. Its
// snippet form is [content, block_1, block_2, ...].
type FileRecord struct {
	Filename string
	Content  string
	Blocks   []string
}

func (x *FileRecord) Snippets() []string {
	return append([]string{x.Content}, x.Blocks...)
}

// HasBlocks is false when the record has only the full content, i.e. there
// is nothing to rewrite.
func (x *FileRecord) HasBlocks() bool {
	return len(x.Blocks) > 0
}

// RewrittenFile is the rewritten full content of one file.
type RewrittenFile struct {
	Filename string
	Content  string
}

// ParseChangedBlocks splits a unified diff into runs of added lines. A block
// is flushed at each hunk header; a trailing block is emitted as well.
func ParseChangedBlocks(patch string) []string {
	var blocks []string
	var current []string

	for _, line := range strings.Split(patch, "\n") {
		switch {
		case strings.HasPrefix(line, "@@"):
			if len(current) > 0 {
				blocks = append(blocks, strings.Join(current, "\n"))
				current = nil
			}
		case strings.HasPrefix(line, "+"):
			current = append(current, line[1:])
		}
	}

	if len(current) > 0 {
		blocks = append(blocks, strings.Join(current, "\n"))
	}

	return blocks
}
