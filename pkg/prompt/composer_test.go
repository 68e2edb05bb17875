package prompt

import (
	"strings"
	"testing"

	"aroma-content-be/pkg/corpus"
	"aroma-content-be/pkg/retriever"

	"github.com/stretchr/testify/assert"
)

func exampleWith(id int, text string, score float64) retriever.Example {
	return retriever.Example{
		Entry: corpus.Entry{Id: id, Text: text, Metadata: corpus.Tag(text)},
		Score: score,
	}
}

func TestComposePostRendersScoresAndOrder(t *testing.T) {
	examples := []retriever.Example{
		exampleWith(0, "Аромат зимнего вечера", 0.81),
		exampleWith(1, "Свечи для уюта", 0.76),
	}

	p := Compose(TaskPost, "уютный вечер", examples, "")

	assert.Contains(t, p.User, "схожесть: 0.81")
	assert.Contains(t, p.User, "схожесть: 0.76")
	assert.Contains(t, p.User, "Аромат зимнего вечера")
	assert.Contains(t, p.User, "Свечи для уюта")
	// higher-similarity example is listed first
	assert.Less(t,
		strings.Index(p.User, "Аромат зимнего вечера"),
		strings.Index(p.User, "Свечи для уюта"))
	assert.Contains(t, p.User, "Напиши пост на тему: уютный вечер")
}

func TestComposeConversationContextComesFirst(t *testing.T) {
	ctx := "\n\n--- КОНТЕКСТ РАЗГОВОРА ---\nПользователь: привет\n"
	p := Compose(TaskPost, "тема", []retriever.Example{exampleWith(0, "пост", 0.5)}, ctx)

	assert.True(t, strings.HasPrefix(p.User, ctx))
	assert.Less(t, strings.Index(p.User, "КОНТЕКСТ РАЗГОВОРА"), strings.Index(p.User, "ПРИМЕРЫ ТВОИХ ПОСТОВ"))
}

func TestComposeIdeasThemeVariants(t *testing.T) {
	withTheme := Compose(TaskIdeas, "зима", nil, "")
	assert.Contains(t, withTheme.User, "идей для постов на тему 'зима'")

	withoutTheme := Compose(TaskIdeas, "", nil, "")
	assert.Contains(t, withoutTheme.User, "идей для постов.")
	assert.NotContains(t, withoutTheme.User, "на тему")
}

func TestComposeIdeasLabelsCategories(t *testing.T) {
	examples := []retriever.Example{
		exampleWith(0, "Интересный факт о воске", 0.9),
	}

	p := Compose(TaskIdeas, "", examples, "")
	assert.Contains(t, p.User, "(educational)")
}

func TestSystemPromptPerKind(t *testing.T) {
	tests := []struct {
		kind   TaskKind
		marker string
	}{
		{TaskPost, "Напиши пост для Telegram-канала"},
		{TaskIdeas, "Генерируй креативные идеи"},
		{TaskResearch, "Проводи исследования"},
		{TaskConversation, "Веди естественную беседу"},
		{TaskRefinement, "запрос на изменение или улучшение"},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			sys := SystemPrompt(tt.kind)
			assert.Contains(t, sys, "основательница премиального бренда")
			assert.Contains(t, sys, tt.marker)
		})
	}

	// same kind always yields the same prompt
	assert.Equal(t, SystemPrompt(TaskPost), SystemPrompt(TaskPost))
}

func TestProfileFor(t *testing.T) {
	tests := []struct {
		kind    TaskKind
		count   int
		temp    float64
		maxTok  int
	}{
		{TaskPost, 4, 0.8, 1000},
		{TaskIdeas, 6, 0.9, 1200},
		{TaskResearch, 4, 0.7, 1500},
		{TaskRefinement, 0, 0.8, 1200},
		{TaskConversation, 0, 0.9, 800},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			p := ProfileFor(tt.kind)
			assert.Equal(t, tt.count, p.ExampleCount)
			assert.Equal(t, tt.temp, p.Temperature)
			assert.Equal(t, tt.maxTok, p.MaxTokens)
		})
	}
}

func TestComposeRefinementSkipsExamples(t *testing.T) {
	p := Compose(TaskRefinement, "сделай короче", nil, "контекст\n")

	assert.True(t, strings.HasPrefix(p.User, "контекст\n"))
	assert.Contains(t, p.User, "ЗАПРОС НА ИЗМЕНЕНИЕ")
	assert.Contains(t, p.User, "Пользователь просит: сделай короче")
	assert.NotContains(t, p.User, "ПРИМЕРЫ")
}
