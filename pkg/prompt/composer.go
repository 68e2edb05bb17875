package prompt

import (
	"fmt"
	"strings"

	"aroma-content-be/pkg/retriever"
)

// defaultIdeaCount is how many ideas the model is asked to produce per request.
const defaultIdeaCount = 5

// Prompts is the pair handed to the completion provider. No validation or
// retries happen here; composition is pure string assembly.
type Prompts struct {
	System string
	User   string
}

// Compose builds the prompts for one generation task. The user prompt always
// concatenates, in order: the conversation context (verbatim, first when
// present), the rendered exemplar block, and the task trailer restating the
// query. Exemplars are a style reference only and the trailers say so.
func Compose(kind TaskKind, query string, examples []retriever.Example, conversationContext string) Prompts {
	var user strings.Builder
	user.WriteString(conversationContext)

	switch kind {
	case TaskPost:
		writePostExamples(&user, examples)
		fmt.Fprintf(&user, "\n\n--- ЗАДАНИЕ ---\nНапиши пост на тему: %s\n\nИспользуй примеры выше как референс твоего стиля, тона и манеры изложения. Пиши естественно и аутентично.", query)

	case TaskIdeas:
		writeIdeaExamples(&user, examples)
		themeText := ""
		if query != "" {
			themeText = fmt.Sprintf(" на тему '%s'", query)
		}
		fmt.Fprintf(&user, "\n\n--- ЗАДАНИЕ ---\nПредложи %d креативных идей для постов%s.\n\nОсновывайся на успешных паттернах из примеров выше. Каждая идея должна включать:\n- Заголовок/тему\n- Краткое описание содержания\n- Предполагаемый стиль подачи\n- Возможные эмодзи и хештеги", defaultIdeaCount, themeText)

	case TaskResearch:
		writeResearchExamples(&user, examples)
		fmt.Fprintf(&user, "\n\n--- ИССЛЕДОВАНИЕ ---\nИсследуй тему: %s\n\nПредоставь полезную информацию, которую можно использовать для создания интересного и образовательного поста. Включи:\n- Интересные факты\n- Историческую информацию\n- Практические советы\n- Связь с ароматерапией/свечами\n- Идеи для креативной подачи\n\nОснуйся на контексте из моих существующих постов и дополни новой полезной информацией.", query)

	case TaskRefinement:
		fmt.Fprintf(&user, "\n\n--- ЗАПРОС НА ИЗМЕНЕНИЕ ---\nПользователь просит: %s\n\nПроанализируй предыдущий разговор и найди контент, который нужно изменить. Внеси запрашиваемые изменения, сохраняя мой стиль и качество. Если нужно изменить пост, идеи или исследование - сделай это. Если просьба неясна, уточни что именно нужно изменить.", query)

	case TaskConversation:
		fmt.Fprintf(&user, "\n\n--- ТЕКУЩЕЕ СООБЩЕНИЕ ---\nПользователь: %s\n\nПроанализируй контекст разговора. Если пользователь просит изменить или улучшить предыдущий ответ - сделай это. Если это новый вопрос или тема - ответь естественно и дружелюбно.", query)
	}

	return Prompts{
		System: SystemPrompt(kind),
		User:   user.String(),
	}
}

// writePostExamples renders exemplars with rank and similarity score. Scores
// keep two decimals so the model sees how close each reference is.
func writePostExamples(user *strings.Builder, examples []retriever.Example) {
	user.WriteString("\n\n--- ПРИМЕРЫ ТВОИХ ПОСТОВ ---\n")
	for i, ex := range examples {
		fmt.Fprintf(user, "\nПример %d (схожесть: %.2f):\n%s\n", i+1, ex.Score, ex.Entry.Text)
	}
}

// writeIdeaExamples labels each exemplar with its category instead of a
// score: for idea generation the spread of post types is the useful signal.
func writeIdeaExamples(user *strings.Builder, examples []retriever.Example) {
	user.WriteString("\n\n--- УСПЕШНЫЕ ПОСТЫ ДЛЯ ВДОХНОВЕНИЯ ---\n")
	for i, ex := range examples {
		fmt.Fprintf(user, "\nПост %d (%s):\n%s\n", i+1, ex.Entry.Metadata.Category, ex.Entry.Text)
	}
}

func writeResearchExamples(user *strings.Builder, examples []retriever.Example) {
	user.WriteString("\n\n--- КОНТЕКСТ ИЗ ТВОИХ ПОСТОВ ---\n")
	for i, ex := range examples {
		fmt.Fprintf(user, "\nПост %d:\n%s\n", i+1, ex.Entry.Text)
	}
}
