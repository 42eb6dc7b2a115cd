package llm

import "github.com/secmon-lab/refacto/pkg/domain/model"

var (
	ParseRewriteForTest = parseRewrite
	StripFenceForTest   = stripFence
)

func UserMessageForTest(file *model.FileRecord) (string, error) {
	p, err := loadPrompts(promptYAML)
	if err != nil {
		return "", err
	}
	return p.userMessage(file)
}
