package llm

import (
	_ "embed"
	"encoding/json"
	"strings"
	"text/template"

	"github.com/m-mizutani/goerr/v2"
	"gopkg.in/yaml.v3"

	"github.com/secmon-lab/refacto/pkg/domain/model"
)

//go:embed prompt.yaml
var promptYAML []byte

type promptSet struct {
	System string `yaml:"system"`
	User   string `yaml:"user"`
}

type prompts struct {
	system string
	user   *template.Template
}

func loadPrompts(raw []byte) (*prompts, error) {
	var set promptSet
	if err := yaml.Unmarshal(raw, &set); err != nil {
		return nil, goerr.Wrap(err, "failed to parse prompt file")
	}
	if set.System == "" || set.User == "" {
		return nil, goerr.New("prompt file lacks system or user prompt")
	}

	tmpl, err := template.New("user").Parse(set.User)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to parse user prompt template")
	}

	return &prompts{system: set.System, user: tmpl}, nil
}

// userMessage renders the file record as `{filename: [content, blocks...]}`.
func (x *prompts) userMessage(file *model.FileRecord) (string, error) {
	input, err := json.Marshal(map[string][]string{
		file.Filename: file.Snippets(),
	})
	if err != nil {
		return "", goerr.Wrap(err, "failed to encode file record", goerr.V("filename", file.Filename))
	}

	var b strings.Builder
	if err := x.user.Execute(&b, struct{ Input string }{Input: string(input)}); err != nil {
		return "", goerr.Wrap(err, "failed to render user prompt", goerr.V("filename", file.Filename))
	}
	return b.String(), nil
}
