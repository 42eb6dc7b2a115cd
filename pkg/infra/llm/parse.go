package llm

import (
	"encoding/json"
	"strings"

	"github.com/m-mizutani/goerr/v2"

	"github.com/secmon-lab/refacto/pkg/domain/model"
	"github.com/secmon-lab/refacto/pkg/domain/types"
)

// parseRewrite accepts exactly `{"<filename>": "<content>"}`, optionally
// wrapped in one Markdown code fence.
func parseRewrite(filename, answer string) (*model.RewrittenFile, error) {
	body := stripFence(strings.TrimSpace(answer))

	var obj map[string]json.RawMessage
	if err := json.Unmarshal([]byte(body), &obj); err != nil {
		return nil, goerr.Wrap(types.ErrMalformedRewrite, "answer is not a JSON object",
			goerr.V("filename", filename),
			goerr.V("error", err.Error()),
		)
	}
	if len(obj) != 1 {
		return nil, goerr.Wrap(types.ErrMalformedRewrite, "answer must have exactly one member",
			goerr.V("filename", filename),
			goerr.V("members", len(obj)),
		)
	}

	raw, ok := obj[filename]
	if !ok {
		return nil, goerr.Wrap(types.ErrMalformedRewrite, "answer key does not match filename", goerr.V("filename", filename))
	}

	var content string
	if err := json.Unmarshal(raw, &content); err != nil {
		return nil, goerr.Wrap(types.ErrMalformedRewrite, "answer value is not a string", goerr.V("filename", filename))
	}

	return &model.RewrittenFile{Filename: filename, Content: content}, nil
}

func stripFence(s string) string {
	if !strings.HasPrefix(s, "```") || !strings.HasSuffix(s, "```") || len(s) < 6 {
		return s
	}

	inner := strings.TrimSuffix(s, "```")
	// Drop the opening fence line including an optional language tag.
	if idx := strings.Index(inner, "\n"); idx >= 0 {
		inner = inner[idx+1:]
	} else {
		return s
	}
	return strings.TrimSpace(inner)
}
